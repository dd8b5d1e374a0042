package ats

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub/internal/session"
	"careerhub/internal/shared/metrics"
	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
	"careerhub/internal/shared/telemetry"
)

// multipartOverhead allows for form boundaries and headers around the file.
const multipartOverhead = 1 << 20

// sniffBytes is how much of the file is read to detect its type.
const sniffBytes = 3072

// Handler serves the ATS upload flow for the caller's session.
type Handler struct {
	Flows *session.Store[*Flow]
}

// NewHandler constructs a Handler.
func NewHandler(flows *session.Store[*Flow]) *Handler {
	return &Handler{Flows: flows}
}

// RegisterRoutes attaches ATS routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ats", h.state)
	rg.POST("/ats/upload", h.upload)
	rg.POST("/ats/analyze", h.analyze)
	rg.DELETE("/ats", h.reset)
}

func (h *Handler) flow(c *gin.Context) *Flow {
	return h.Flows.Get(middleware.SessionIDFromContext(c))
}

func (h *Handler) state(c *gin.Context) {
	respond.OK(c, h.flow(c).State())
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.IncUploadRejected()
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", ErrTooLarge.Error(), nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingFile.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	// only the head is read, for type detection
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	upload := Upload{
		FileName:    fileHeader.Filename,
		ContentType: DetectType(fileHeader.Header.Get("Content-Type"), head[:n]),
		Size:        fileHeader.Size,
	}
	state, err := h.flow(c).Accept(upload)
	if err != nil {
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{
			"contentType": upload.ContentType,
			"size":        upload.Size,
		})
		return
	}

	metrics.IncUploadAccepted()
	telemetry.Info("ats.upload_accepted", map[string]any{
		"session_id":   middleware.SessionIDFromContext(c),
		"content_type": upload.ContentType,
		"size":         upload.Size,
	})
	respond.JSON(c, http.StatusCreated, state)
}

func (h *Handler) analyze(c *gin.Context) {
	report, err := h.flow(c).Analyze(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNoUpload):
			respond.Error(c, http.StatusConflict, "no_upload", "Upload a resume before analyzing.", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusServiceUnavailable, "analysis_cancelled", "Analysis failed. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Analysis failed. Please try again.", nil)
		}
		return
	}
	metrics.IncATSAnalysis()
	respond.OK(c, report)
}

func (h *Handler) reset(c *gin.Context) {
	respond.OK(c, h.flow(c).Reset())
}
