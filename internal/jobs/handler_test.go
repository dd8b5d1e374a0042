package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct{ listing Listing }

func (s staticSource) Load(context.Context) (Listing, error) { return s.listing, nil }

func newTestRouter(debounce time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(staticSource{listing: Listing{Jobs: MockJobs(), Fallback: true}}, time.Minute)
	NewHandler(svc, debounce).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestListFiltersByQuery(t *testing.T) {
	r := newTestRouter(0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?search=developer", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var res Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
	require.Len(t, res.Cards, 1)
	assert.Equal(t, "Senior Frontend Developer", res.Cards[0].Title)
	assert.Equal(t, MatchHigh, res.Cards[0].MatchLevel)
	assert.Len(t, res.Cards[0].Skills, CardSkills)
	assert.True(t, res.Fallback)
}

func TestListEmptyResultMessage(t *testing.T) {
	r := newTestRouter(0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?location=Mars", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), NoJobsMessage)
}

func TestApplyAcknowledges(t *testing.T) {
	r := newTestRouter(0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/3/apply", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Application submitted for job ID: 3")

	req = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/abc/apply", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func readResponse(t *testing.T, conn *websocket.Conn) streamResponse {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg streamResponse
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestStreamDebouncesTypedInput(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(200 * time.Millisecond))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/jobs/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	initial := readResponse(t, conn)
	require.Equal(t, "results", initial.Type)
	assert.Equal(t, 5, initial.Result.Total)

	for _, v := range []string{"e", "en", "eng", "engineer"} {
		require.NoError(t, conn.WriteJSON(streamRequest{Field: "search", Value: v}))
	}

	got := readResponse(t, conn)
	require.Equal(t, "results", got.Type)
	assert.Equal(t, "engineer", got.Result.Query.Search)
	assert.Equal(t, 2, got.Result.Total)

	require.NoError(t, conn.WriteJSON(streamRequest{Field: "type", Value: "Part-time"}))
	typed := readResponse(t, conn)
	assert.Equal(t, 0, typed.Result.Total)
	assert.Equal(t, NoJobsMessage, typed.Result.Message)

	require.NoError(t, conn.WriteJSON(streamRequest{Op: "apply", ID: 2}))
	applied := readResponse(t, conn)
	assert.Equal(t, "applied", applied.Type)
	assert.Equal(t, "Application submitted for job ID: 2", applied.Message)
}
