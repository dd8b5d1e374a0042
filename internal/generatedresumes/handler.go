package generatedresumes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerhub/internal/resume"
	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
)

// HeaderGeneratedID carries the record id alongside the PDF body.
const HeaderGeneratedID = "X-Generated-Resume-Id"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generated resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-resume", h.generate)
	rg.GET("/generated-resumes", h.list)
	rg.GET("/generated-resumes/:id/download", h.download)
}

func (h *Handler) generate(c *gin.Context) {
	var doc resume.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume document", nil)
		return
	}
	doc.Normalize()

	rec, data, err := h.Svc.Generate(c.Request.Context(), middleware.SessionIDFromContext(c), &doc)
	if err != nil {
		writeError(c, err, "failed to generate resume")
		return
	}
	c.Header(HeaderGeneratedID, rec.ID)
	respond.Attachment(c, FileName, "application/pdf", data)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.Svc.List(c.Request.Context(), middleware.SessionIDFromContext(c), limit, offset)
	if err != nil {
		writeError(c, err, "failed to list generated resumes")
		return
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}

func (h *Handler) download(c *gin.Context) {
	rec, rc, err := h.Svc.Open(c.Request.Context(), middleware.SessionIDFromContext(c), c.Param("id"))
	if err != nil {
		writeError(c, err, "failed to open generated resume")
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read generated resume", nil)
		return
	}
	c.Header(HeaderGeneratedID, rec.ID)
	respond.Attachment(c, FileName, "application/pdf", data)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusNotFound, "not_found", "generated resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
