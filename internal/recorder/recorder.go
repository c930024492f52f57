// Package recorder drains a MIDI input client into a session buffer,
// re-expressing driver arrival timestamps as seconds since the session
// started. The encoder consumes the frozen session once capture ends.
package recorder

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/midirec/sdk/contracts"
	"github.com/leandrodaf/midirec/sdk/smf"
)

// Recorder couples a capture client to a Session. One drain goroutine is the
// session's only writer; the UI reads progress through the atomic counter.
type Recorder struct {
	client   contracts.ClientMIDI
	logger   contracts.Logger
	events   chan contracts.Event
	session  *Session
	start    uint64 // session start, UnixNano
	count    atomic.Int64
	done     chan struct{}
	stopOnce sync.Once
	stopErr  error
}

// New builds a Recorder around the client. buffer is the capacity of the
// event channel between the driver callback and the drain goroutine; the
// client drops events when it fills.
func New(client contracts.ClientMIDI, logger contracts.Logger, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = 128
	}
	return &Recorder{
		client: client,
		logger: logger,
		events: make(chan contracts.Event, buffer),
		done:   make(chan struct{}),
	}
}

// Start begins capture. The session start instant is taken here; every
// event's time is measured against it.
func (r *Recorder) Start() {
	now := time.Now()
	r.start = uint64(now.UTC().UnixNano())
	r.session = newSession(now)

	r.client.StartCapture(r.events)
	go r.drain()

	r.logger.Info("recording started",
		r.logger.Field().String("sessionID", r.session.ID.String()))
}

// drain is the session's single writer. It exits when the event channel is
// closed by Stop.
func (r *Recorder) drain() {
	defer close(r.done)
	for ev := range r.events {
		// A clock skew between the driver stamp and the session start can
		// put the first event marginally before zero; clamp it.
		var rel float64
		if ev.Timestamp > r.start {
			rel = float64(ev.Timestamp-r.start) / float64(time.Second)
		}
		r.session.append(smf.RawEvent{
			Time:   rel,
			Status: ev.Status,
			Data1:  ev.Data1,
			Data2:  ev.Data2,
		})
		r.count.Add(1)
	}
}

// EventCount reports how many events have been captured so far. Safe to call
// from any goroutine while recording.
func (r *Recorder) EventCount() int64 {
	return r.count.Load()
}

// Started returns the session start instant.
func (r *Recorder) Started() time.Time {
	return r.session.Started
}

// Stop halts the client, waits for the drain goroutine to finish, and
// returns the frozen session. The session is handed over exactly once;
// subsequent calls return the same snapshot.
func (r *Recorder) Stop() (*Session, error) {
	r.stopOnce.Do(func() {
		// The client guarantees no sends after Stop returns, so closing the
		// channel here is safe and releases the drain goroutine.
		r.stopErr = r.client.Stop()
		close(r.events)
		<-r.done

		r.logger.Info("recording stopped",
			r.logger.Field().String("sessionID", r.session.ID.String()),
			r.logger.Field().Int("events", r.session.Len()))
	})
	return r.session, r.stopErr
}
