package builder

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"careerhub/internal/remote"
	"careerhub/internal/resume"
	"careerhub/internal/session"
	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/server/respond"
	"careerhub/internal/shared/telemetry"
	"careerhub/internal/view"
)

// Reviewer produces improvement suggestions. The bool reports built-in suggestions.
type Reviewer interface {
	Review(ctx context.Context, doc *resume.Document) ([]string, bool)
}

// Downloader renders the document for download.
type Downloader interface {
	Download(ctx context.Context, doc *resume.Document) ([]byte, error)
}

// DownloadFileName is the name offered for the downloaded resume.
const DownloadFileName = "resume.pdf"

// Handler serves the resume builder for the caller's session.
type Handler struct {
	Sessions   *session.Store[*Workspace]
	Reviewer   Reviewer
	Downloader Downloader
	upgrader   websocket.Upgrader
}

// NewHandler constructs a Handler.
func NewHandler(sessions *session.Store[*Workspace], reviewer Reviewer, downloader Downloader) *Handler {
	return &Handler{
		Sessions:   sessions,
		Reviewer:   reviewer,
		Downloader: downloader,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes attaches builder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	b := rg.Group("/builder")
	b.GET("", h.get)
	b.GET("/sections/:section", h.show)
	b.POST("/events", h.event)
	b.PUT("/personal/:field", h.updatePersonal)
	b.PUT("/summary", h.updateSummary)
	b.POST("/experience", h.addExperience)
	b.PATCH("/experience/:index", h.updateExperience)
	b.DELETE("/experience/:index", h.removeExperience)
	b.POST("/education", h.addEducation)
	b.PATCH("/education/:index", h.updateEducation)
	b.DELETE("/education/:index", h.removeEducation)
	b.POST("/skills", h.addSkill)
	b.DELETE("/skills/:index", h.removeSkill)
	b.GET("/preview", h.preview)
	b.GET("/document", h.document)
	b.POST("/ai-review", h.review)
	b.POST("/download", h.download)
	b.GET("/stream", h.stream)
}

type eventRequest struct {
	Action string `json:"action" binding:"required"`
	Value  string `json:"value"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type fieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (h *Handler) workspace(c *gin.Context) *Workspace {
	return h.Sessions.Get(middleware.SessionIDFromContext(c))
}

func (h *Handler) get(c *gin.Context) {
	respond.OK(c, h.workspace(c).Snapshot())
}

func (h *Handler) show(c *gin.Context) {
	c.Set("section", c.Param("section"))
	snap, err := h.workspace(c).Show(Section(c.Param("section")))
	if err != nil {
		writeEditError(c, err)
		return
	}
	if c.Query("format") == "html" {
		html, err := view.HTML(snap.Form)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render section", nil)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}
	respond.OK(c, snap)
}

func (h *Handler) event(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "action is required", nil)
		return
	}
	c.Set("action", req.Action)
	h.reply(c)(h.workspace(c).Dispatch(req.Action, req.Value))
}

func (h *Handler) updatePersonal(c *gin.Context) {
	field, err := resume.ParsePersonalField(c.Param("field"))
	if err != nil {
		writeEditError(c, err)
		return
	}
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		return ed.UpdatePersonal(field, req.Value)
	}))
}

func (h *Handler) updateSummary(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		ed.UpdateSummary(req.Value)
		return nil
	}))
}

func (h *Handler) addExperience(c *gin.Context) {
	h.replyCreated(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		ed.AddExperience()
		return nil
	}))
}

func (h *Handler) updateExperience(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field is required", nil)
		return
	}
	field, err := resume.ParseExperienceField(req.Field)
	if err != nil {
		writeEditError(c, err)
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		return ed.UpdateExperience(index, field, req.Value)
	}))
}

func (h *Handler) removeExperience(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		return ed.RemoveExperience(index)
	}))
}

func (h *Handler) addEducation(c *gin.Context) {
	h.replyCreated(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		ed.AddEducation()
		return nil
	}))
}

func (h *Handler) updateEducation(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "field is required", nil)
		return
	}
	field, err := resume.ParseEducationField(req.Field)
	if err != nil {
		writeEditError(c, err)
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		return ed.UpdateEducation(index, field, req.Value)
	}))
}

func (h *Handler) removeEducation(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		return ed.RemoveEducation(index)
	}))
}

func (h *Handler) addSkill(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		ed.AddSkill(req.Value)
		return nil
	}))
}

func (h *Handler) removeSkill(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.reply(c)(h.workspace(c).Edit(func(ed *resume.Editor) error {
		return ed.RemoveSkill(index)
	}))
}

func (h *Handler) preview(c *gin.Context) {
	respond.OK(c, h.workspace(c).Preview())
}

func (h *Handler) document(c *gin.Context) {
	respond.OK(c, h.workspace(c).Document())
}

func (h *Handler) review(c *gin.Context) {
	ws := h.workspace(c)
	suggestions, fallback := h.Reviewer.Review(c.Request.Context(), ws.Document())
	if fallback {
		c.Set("fallback", true)
	}
	respond.OK(c, ws.SetReview(Review{Suggestions: suggestions, Fallback: fallback}))
}

func (h *Handler) download(c *gin.Context) {
	data, err := h.Downloader.Download(c.Request.Context(), h.workspace(c).Document())
	if err != nil {
		respond.Error(c, http.StatusServiceUnavailable, "download_unavailable", remote.DownloadUnavailableMessage, nil)
		return
	}
	telemetry.Info("builder.download", map[string]any{
		"session_id": middleware.SessionIDFromContext(c),
		"bytes":      len(data),
	})
	respond.Attachment(c, DownloadFileName, "application/pdf", data)
}

func (h *Handler) reply(c *gin.Context) func(Snapshot, error) {
	return func(snap Snapshot, err error) {
		if err != nil {
			writeEditError(c, err)
			return
		}
		respond.OK(c, snap)
	}
}

func (h *Handler) replyCreated(c *gin.Context) func(Snapshot, error) {
	return func(snap Snapshot, err error) {
		if err != nil {
			writeEditError(c, err)
			return
		}
		respond.JSON(c, http.StatusCreated, snap)
	}
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return 0, false
	}
	return index, true
}

func writeEditError(c *gin.Context, err error) {
	var idxErr *resume.IndexError
	switch {
	case errors.As(err, &idxErr):
		respond.Error(c, http.StatusUnprocessableEntity, "index_out_of_range", err.Error(), gin.H{
			"list":  idxErr.List,
			"index": idxErr.Index,
			"len":   idxErr.Len,
		})
	case errors.Is(err, resume.ErrUnknownField),
		errors.Is(err, ErrUnknownSection),
		errors.Is(err, view.ErrUnknownAction):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "edit failed", nil)
	}
}
