package game

import (
	"time"

	"github.com/coder/quartz"
)

// Session captures wall-clock bounds around a play session. The clock is
// injected so duration handling stays testable; pass nil for real time.
type Session struct {
	clock   quartz.Clock
	started time.Time
	ended   time.Time
}

// StartSession records the session start time
func StartSession(clock quartz.Clock) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{clock: clock, started: clock.Now()}
}

// Stop records the session end time. Only the first call takes effect, so
// it is safe to defer alongside explicit early-exit calls.
func (s *Session) Stop() {
	if s.ended.IsZero() {
		s.ended = s.clock.Now()
	}
}

// StartedAt returns when the session began
func (s *Session) StartedAt() time.Time {
	return s.started
}

// Duration returns the session length. Before Stop it measures elapsed
// time so far, so it is valid on both normal and early exit paths.
func (s *Session) Duration() time.Duration {
	if s.ended.IsZero() {
		return s.clock.Since(s.started)
	}
	return s.ended.Sub(s.started)
}
