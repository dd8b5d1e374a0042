package jobs

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"careerhub/internal/shared/server/respond"
	"careerhub/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Debounce time.Duration
	upgrader websocket.Upgrader
}

// NewHandler constructs a Handler. debounce applies to typed input on the stream.
func NewHandler(svc *Service, debounce time.Duration) *Handler {
	return &Handler{
		Svc:      svc,
		Debounce: debounce,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/stream", h.stream)
	rg.POST("/jobs/:id/apply", h.apply)
}

func (h *Handler) list(c *gin.Context) {
	var q Query
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid query", nil)
		return
	}
	res, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "jobs_unavailable", "failed to load jobs", nil)
		return
	}
	if res.Fallback {
		c.Set("fallback", true)
	}
	respond.OK(c, res)
}

// ApplyMessage is the acknowledgement shown after applying to a posting.
func ApplyMessage(id int) string {
	return fmt.Sprintf("Application submitted for job ID: %d", id)
}

func (h *Handler) apply(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job id", nil)
		return
	}
	c.Set("job_id", id)
	telemetry.Info("jobs.apply", map[string]any{"job_id": id, "request_id": c.GetString("requestId")})
	respond.OK(c, gin.H{"jobId": id, "message": ApplyMessage(id)})
}
