package tui

import "sync"

// StatusSink collects non-fatal warnings for display in the status line.
// Its Warn method satisfies service.WarnFunc, so the layout engine can
// report persistence failures straight into the screen.
type StatusSink struct {
	mu   sync.Mutex
	last string
}

// NewStatusSink creates an empty sink.
func NewStatusSink() *StatusSink {
	return &StatusSink{}
}

// Warn records a warning, replacing any earlier one.
func (s *StatusSink) Warn(msg string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	s.last = msg
}

// Last returns the most recent warning, or "".
func (s *StatusSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
