// Package messages stores contact form submissions for the reference API.
package messages

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
	"careerhub/internal/shared/telemetry"
)

type submission struct {
	Fields map[string]string `validate:"required,min=1,dive,keys,required,max=64,endkeys,max=5000"`
}

// Handler exposes the contact endpoint.
type Handler struct {
	Repo     Repo
	Now      func() time.Time
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo, Now: time.Now, validate: validator.New()}
}

// RegisterRoutes attaches message routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.create)
	rg.GET("/contact", h.list)
}

func (h *Handler) create(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	sub := submission{Fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		sub.Fields[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := h.validate.Struct(sub); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrInvalidInput.Error(), nil)
		return
	}

	msg := Message{
		ID:        uuid.NewString(),
		SessionID: middleware.SessionIDFromContext(c),
		Fields:    sub.Fields,
		CreatedAt: h.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), msg); err != nil {
		telemetry.Error("contact_message.store_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store message", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"id": msg.ID})
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	items, err := h.Repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list messages", nil)
		return
	}
	respond.OK(c, gin.H{"items": items})
}
