package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the payload served by the health endpoint.
type Status struct {
	OK       bool   `json:"ok"`
	Process  string `json:"process"`
	Database string `json:"database,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	Process string
	DB      Pinger
	Timeout time.Duration
}

// NewService constructs a new health service. db may be nil.
func NewService(process string, db Pinger) *Service {
	return &Service{Process: process, DB: db, Timeout: 2 * time.Second}
}

// Check reports process liveness and, when a database is wired, whether it answers a ping.
func (s *Service) Check(ctx context.Context) Status {
	st := Status{OK: true, Process: s.Process}
	if s.DB == nil {
		return st
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		st.OK = false
		st.Database = "down"
		return st
	}
	st.Database = "up"
	return st
}
