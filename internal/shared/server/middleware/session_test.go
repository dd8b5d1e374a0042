package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestSessionUsesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	var seen string
	router.GET("/x", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(SessionHeader, "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != "abc" {
		t.Fatalf("expected session abc, got %q", seen)
	}
	if got := resp.Header().Get(SessionHeader); got != "abc" {
		t.Fatalf("expected echoed header abc, got %q", got)
	}
}

func TestSessionFallsBackToQueryThenMints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	router.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, SessionIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/x?session=from-query", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Body.String() != "from-query" {
		t.Fatalf("expected query session, got %q", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if _, err := uuid.Parse(resp.Body.String()); err != nil {
		t.Fatalf("expected minted uuid, got %q: %v", resp.Body.String(), err)
	}
}

func TestSessionSkipsOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	router.OPTIONS("/x", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if got := resp.Header().Get(SessionHeader); got != "" {
		t.Fatalf("expected no session header on preflight, got %q", got)
	}
}
