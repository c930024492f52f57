package smf

import (
	"math"
	"sort"
)

// RawEvent is a MIDI message captured from an input device, tagged with its
// arrival time in seconds relative to the start of the recording session.
// The encoder enforces nothing about the three message bytes; malformed
// status bytes pass through to the file unchanged.
type RawEvent struct {
	Time   float64
	Status byte
	Data1  byte
	Data2  byte
}

// TickEvent is a RawEvent re-expressed in integer ticks elapsed since the
// previous event in the track. The first event's delta is relative to tick 0.
type TickEvent struct {
	DeltaTicks uint32
	Status     byte
	Data1      byte
	Data2      byte
}

// Normalize orders a session snapshot by arrival time and converts the gaps
// between successive events into tick deltas at the given resolution.
//
// The conversion assumes a fixed tempo of 120 BPM (500000 microseconds per
// quarter note), so the file needs no tempo meta event: one quarter note
// lasts half a second and ticksPerSecond = division * 2. Deltas round half
// away from zero via math.Round. Each delta is measured against the true
// previous timestamp rather than an accumulated tick clock, which bounds
// rounding drift to half a tick per event; that residual drift is accepted.
//
// The sort is stable: events with identical timestamps keep their arrival
// order, which is how several events drained from a single poll stay in
// sequence with zero deltas between them. An empty snapshot yields an empty
// timeline; whether that still becomes a file is the caller's call.
func Normalize(events []RawEvent, division uint16) []TickEvent {
	sorted := make([]RawEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	ticksPerSecond := float64(division) * 2

	track := make([]TickEvent, len(sorted))
	prev := 0.0
	for i, ev := range sorted {
		ticks := math.Round((ev.Time - prev) * ticksPerSecond)
		if ticks < 0 {
			// Equal timestamps can round to a small negative artifact.
			ticks = 0
		}
		if ticks > math.MaxUint32 {
			// Narrowing an out-of-range float64 to uint32 is
			// implementation-defined; cap gaps at the largest delta a
			// single event can carry (~258 days at the default division).
			ticks = math.MaxUint32
		}
		prev = ev.Time
		track[i] = TickEvent{
			DeltaTicks: uint32(ticks),
			Status:     ev.Status,
			Data1:      ev.Data1,
			Data2:      ev.Data2,
		}
	}
	return track
}
