package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub/internal/review"
	"careerhub/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.LocalStoreDir = t.TempDir()
	cfg.DatabaseURL = ""
	return cfg
}

func TestBuildAPIUsesMemoryReposInDev(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := BuildAPI(context.Background(), devConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.DB)
	assert.IsType(t, review.RulesReviewer{}, app.Reviewer)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list, 5)
}

func TestBuildAPIRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"
	_, err := BuildAPI(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildAPIOpenAIWithoutKeyFallsBackToRules(t *testing.T) {
	cfg := devConfig(t)
	cfg.LLMProvider = "openai"
	cfg.OpenAIAPIKey = ""
	app, err := BuildAPI(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, review.RulesReviewer{}, app.Reviewer)
}

func TestBuildWebServesBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	web, err := BuildWeb(devConfig(t))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/builder", nil)
	req.Header.Set("X-Session-Id", "sess-boot")
	resp := httptest.NewRecorder()
	web.Router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, web.Workspaces.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	web.Sweep(ctx, 0)
}
