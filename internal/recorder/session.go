package recorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/leandrodaf/midirec/sdk/smf"
)

// Session owns the raw events of a single recording. It is append-only and
// mutated exclusively by the Recorder's drain goroutine until Stop freezes
// it; after that it is read-only.
type Session struct {
	ID      uuid.UUID
	Started time.Time
	events  []smf.RawEvent
}

func newSession(started time.Time) *Session {
	return &Session{
		ID:      uuid.New(),
		Started: started,
	}
}

func (s *Session) append(ev smf.RawEvent) {
	s.events = append(s.events, ev)
}

// Events returns the captured events in arrival order. Only valid after the
// session has been frozen by Recorder.Stop.
func (s *Session) Events() []smf.RawEvent {
	return s.events
}

// Len reports the number of captured events.
func (s *Session) Len() int {
	return len(s.events)
}
