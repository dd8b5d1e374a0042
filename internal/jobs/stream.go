package jobs

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"careerhub/internal/shared/telemetry"
)

// streamRequest is one message from the search page.
//
//	{"field":"search","value":"dev"}    typed input, debounced
//	{"field":"type","value":"Full-time"} applied immediately
//	{"op":"search"}                      search button, immediate
//	{"op":"apply","id":3}                apply to a posting
type streamRequest struct {
	Op    string `json:"op"`
	Field string `json:"field"`
	Value string `json:"value"`
	ID    int    `json:"id"`
}

// streamResponse is one message to the search page.
type streamResponse struct {
	Type    string  `json:"type"`
	Result  *Result `json:"result,omitempty"`
	Message string  `json:"message,omitempty"`
}

type searchStream struct {
	svc  *Service
	ctx  context.Context
	conn *websocket.Conn

	writeMu sync.Mutex
	mu      sync.Mutex
	query   Query
}

func (h *Handler) stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		telemetry.Warn("jobs.stream_upgrade_failed", map[string]any{"error": err})
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	s := &searchStream{svc: h.Svc, ctx: ctx, conn: conn}
	debouncer := NewDebouncer(h.Debounce, s.run)
	defer debouncer.Stop()

	s.run()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				telemetry.Warn("jobs.stream_read_failed", map[string]any{"error": err})
			}
			return
		}

		var req streamRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send(streamResponse{Type: "error", Message: "invalid message format"})
			continue
		}

		switch {
		case req.Op == "search":
			debouncer.Flush()
		case req.Op == "apply":
			if req.ID <= 0 {
				s.send(streamResponse{Type: "error", Message: "invalid job id"})
				continue
			}
			s.send(streamResponse{Type: "applied", Message: ApplyMessage(req.ID)})
		case req.Field == "search" || req.Field == "location":
			s.set(req.Field, req.Value)
			debouncer.Trigger()
		case req.Field == "type":
			s.set(req.Field, req.Value)
			debouncer.Flush()
		default:
			s.send(streamResponse{Type: "error", Message: "unknown message"})
		}
	}
}

func (s *searchStream) set(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "search":
		s.query.Search = value
	case "location":
		s.query.Location = value
	case "type":
		s.query.Type = value
	}
}

func (s *searchStream) run() {
	s.mu.Lock()
	q := s.query
	s.mu.Unlock()

	res, err := s.svc.Search(s.ctx, q)
	if err != nil {
		s.send(streamResponse{Type: "error", Message: "failed to load jobs"})
		return
	}
	s.send(streamResponse{Type: "results", Result: &res})
}

func (s *searchStream) send(resp streamResponse) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(resp); err != nil {
		telemetry.Debug("jobs.stream_write_failed", map[string]any{"error": err})
	}
}
