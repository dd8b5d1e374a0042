package builder

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"careerhub/internal/resume"
	"careerhub/internal/shared/server/middleware"
	"careerhub/internal/shared/telemetry"
	"careerhub/internal/view"
)

// streamRequest is one message from the builder page.
//
//	{"section":"skills"}                     switch section
//	{"action":"skills.add","value":"Go"}     form event
type streamRequest struct {
	Section string `json:"section"`
	Action  string `json:"action"`
	Value   string `json:"value"`
}

// streamMessage is one message to the builder page. Snapshots are pushed
// after every change, including changes made over plain HTTP.
type streamMessage struct {
	Type     string    `json:"type"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Code     string    `json:"code,omitempty"`
	Message  string    `json:"message,omitempty"`
}

func (h *Handler) stream(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	ws := h.Sessions.Get(sessionID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		telemetry.Warn("builder.stream_upgrade_failed", map[string]any{"error": err, "session_id": sessionID})
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	send := func(msg streamMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			telemetry.Debug("builder.stream_write_failed", map[string]any{"error": err, "session_id": sessionID})
		}
	}

	updates, cancel := ws.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range updates {
			s := snap
			send(streamMessage{Type: "snapshot", Snapshot: &s})
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				telemetry.Warn("builder.stream_read_failed", map[string]any{"error": err, "session_id": sessionID})
			}
			break
		}

		h.Sessions.Touch(sessionID)

		var req streamRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			send(streamMessage{Type: "error", Code: "validation_error", Message: "invalid message format"})
			continue
		}

		switch {
		case req.Section != "":
			_, err = ws.Show(Section(req.Section))
		case req.Action != "":
			_, err = ws.Dispatch(req.Action, req.Value)
		default:
			err = errors.New("message needs a section or an action")
		}
		if err != nil {
			send(streamMessage{Type: "error", Code: streamErrorCode(err), Message: err.Error()})
		}
	}

	cancel()
	<-done
}

func streamErrorCode(err error) string {
	switch {
	case errors.Is(err, resume.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, resume.ErrUnknownField), errors.Is(err, ErrUnknownSection), errors.Is(err, view.ErrUnknownAction):
		return "validation_error"
	default:
		return "invalid_request"
	}
}
