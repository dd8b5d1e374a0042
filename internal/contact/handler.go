// Package contact accepts the site's contact form and forwards it to the remote API.
package contact

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
	"careerhub/internal/shared/telemetry"
)

// Submitter forwards a form. It returns the acknowledgement to show and
// whether the message actually reached the remote side.
type Submitter interface {
	Submit(ctx context.Context, form map[string]string) (string, bool)
}

// Form is the contact form as posted by the page. Field names are free-form.
type Form struct {
	Fields map[string]string `validate:"required,min=1,dive,keys,required,max=64,endkeys,max=5000"`
}

// Response is returned for every accepted form.
type Response struct {
	Message string `json:"message"`
}

// Handler wires the contact form to a Submitter.
type Handler struct {
	Submitter Submitter
	validate  *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(s Submitter) *Handler {
	return &Handler{Submitter: s, validate: validator.New()}
}

// RegisterRoutes attaches the contact route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	form := Form{Fields: trimFields(fields)}
	if err := h.validate.Struct(form); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "contact form is empty or malformed", nil)
		return
	}

	msg, delivered := h.Submitter.Submit(c.Request.Context(), form.Fields)
	if !delivered {
		c.Set("fallback", true)
	}
	telemetry.Info("contact.submitted", map[string]any{
		"session_id": middleware.SessionIDFromContext(c),
		"delivered":  delivered,
		"fields":     len(form.Fields),
	})
	respond.OK(c, Response{Message: msg})
}

func trimFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
