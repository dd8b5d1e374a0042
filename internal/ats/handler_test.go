package ats

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerhub/internal/session"
	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	flows := session.NewStore(time.Hour, func(string) *Flow { return NewFlow(0) })
	r := gin.New()
	r.Use(middleware.Session())
	NewHandler(flows).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func uploadRequest(t *testing.T, name, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.SessionHeader, "ats-session")
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestUploadAnalyzeReset(t *testing.T) {
	r := newTestRouter()

	resp := serve(r, uploadRequest(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4\n")))
	require.Equal(t, http.StatusCreated, resp.Code)
	var state State
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &state))
	assert.Equal(t, StageUploaded, state.Stage)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/analyze", nil)
	req.Header.Set(middleware.SessionHeader, "ats-session")
	resp = serve(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
	var report Report
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))
	assert.Equal(t, 78, report.Score)
	assert.Equal(t, "cv.pdf", report.FileName)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/ats", nil)
	req.Header.Set(middleware.SessionHeader, "ats-session")
	resp = serve(r, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &state))
	assert.Equal(t, StageIdle, state.Stage)
}

func TestUploadSniffsOctetStream(t *testing.T) {
	r := newTestRouter()
	resp := serve(r, uploadRequest(t, "cv.pdf", "application/octet-stream", []byte("%PDF-1.4\n")))
	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestUploadRejectsWrongType(t *testing.T) {
	r := newTestRouter()
	resp := serve(r, uploadRequest(t, "cv.txt", "text/plain", []byte("hello")))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body respond.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Please upload a PDF, DOC, or DOCX file.", body.Error.Message)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r := newTestRouter()
	data := bytes.Repeat([]byte("a"), MaxUploadBytes+1)
	copy(data, "%PDF-1.4\n")
	resp := serve(r, uploadRequest(t, "cv.pdf", "application/pdf", data))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "File size must be less than 10MB.")
}

func TestUploadMissingFile(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/upload", nil)
	resp := serve(r, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAnalyzeWithoutUpload(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/analyze", nil)
	resp := serve(r, req)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestUploadContentDoesNotAffectResult(t *testing.T) {
	r := newTestRouter()
	analyze := func(data []byte) Report {
		resp := serve(r, uploadRequest(t, "cv.pdf", "application/pdf", data))
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.NotContains(t, resp.Body.String(), "wordCount")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/ats/analyze", nil)
		req.Header.Set(middleware.SessionHeader, "ats-session")
		resp = serve(r, req)
		require.Equal(t, http.StatusOK, resp.Code)
		var report Report
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &report))
		return report
	}

	short := analyze([]byte("%PDF-1.4\n"))
	long := analyze(append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("experienced engineer "), 5000)...))
	assert.Equal(t, short, long)
	assert.Equal(t, MockReport("cv.pdf"), long)
}
