package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub/internal/resume"
	"careerhub/internal/shared/server/respond"
	"careerhub/internal/shared/telemetry"
)

// Response is the body of a successful review.
type Response struct {
	Suggestions []string `json:"suggestions"`
}

// Handler wires HTTP handlers to a Reviewer.
type Handler struct {
	Reviewer Reviewer
}

// NewHandler constructs a Handler.
func NewHandler(r Reviewer) *Handler {
	return &Handler{Reviewer: r}
}

// RegisterRoutes attaches the review route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai-review", h.review)
}

func (h *Handler) review(c *gin.Context) {
	var doc resume.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume document", nil)
		return
	}
	doc.Normalize()

	suggestions, err := h.Reviewer.Review(c.Request.Context(), &doc)
	if err != nil {
		telemetry.Error("review.failed", map[string]any{"error": err, "request_id": c.GetString("requestId")})
		respond.Error(c, http.StatusBadGateway, "review_failed", "failed to review resume", nil)
		return
	}
	respond.OK(c, Response{Suggestions: suggestions})
}
