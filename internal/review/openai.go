package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"careerhub/internal/resume"
	"careerhub/internal/shared/telemetry"
)

const systemPrompt = `You are an experienced recruiter reviewing a resume.
Return a JSON object of the form {"suggestions": ["..."]} with at most 5 short,
specific, actionable suggestions for improving the resume. Do not repeat the resume back.`

// OpenAIReviewer asks an OpenAI chat model for suggestions in JSON mode.
type OpenAIReviewer struct {
	client *openai.Client
	model  string
}

// NewOpenAIReviewer constructs a reviewer. baseURL may be empty for the public API.
func NewOpenAIReviewer(apiKey, model, baseURL string) (*OpenAIReviewer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("llm model is required for OpenAI")
	}
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIReviewer{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

type suggestionsPayload struct {
	Suggestions []string `json:"suggestions"`
}

// Review sends the document as JSON and parses the model's suggestions.
func (r *OpenAIReviewer) Review(ctx context.Context, doc *resume.Document) ([]string, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(docJSON)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai response missing choices")
	}
	telemetry.Info("review.llm_response", map[string]any{
		"model":             resp.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})

	var payload suggestionsPayload
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("openai response parse: %w", err)
	}
	return clean(payload.Suggestions)
}

func clean(in []string) ([]string, error) {
	out := make([]string, 0, MaxSuggestions)
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == MaxSuggestions {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSuggestions
	}
	return out, nil
}

var _ Reviewer = (*OpenAIReviewer)(nil)
