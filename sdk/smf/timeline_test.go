package smf

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSortsByTime(t *testing.T) {
	events := []RawEvent{
		{Time: 1.0, Status: 0x90, Data1: 0x42, Data2: 0x40},
		{Time: 0.25, Status: 0x90, Data1: 0x40, Data2: 0x40},
		{Time: 0.5, Status: 0x80, Data1: 0x40, Data2: 0x00},
	}

	track := Normalize(events, 96)

	assert := assert.New(t)
	assert.Len(track, 3)
	// division 96 -> 192 ticks per second
	assert.Equal(uint32(48), track[0].DeltaTicks)
	assert.Equal(byte(0x40), track[0].Data1)
	assert.Equal(uint32(48), track[1].DeltaTicks)
	assert.Equal(byte(0x80), track[1].Status)
	assert.Equal(uint32(96), track[2].DeltaTicks)
	assert.Equal(byte(0x42), track[2].Data1)
}

func TestNormalizeSingleEvent(t *testing.T) {
	track := Normalize([]RawEvent{
		{Time: 0.5, Status: 0x90, Data1: 0x40, Data2: 0x7F},
	}, 96)

	assert := assert.New(t)
	assert.Len(track, 1)
	// First delta is relative to tick 0: round(0.5 * 192) = 96.
	assert.Equal(uint32(96), track[0].DeltaTicks)
}

func TestNormalizeEqualTimestampsKeepArrivalOrder(t *testing.T) {
	// Two events drained from the same poll share a timestamp; the stable
	// sort must keep them in arrival order with a zero delta between them.
	events := []RawEvent{
		{Time: 0.5, Status: 0x90, Data1: 0x3C, Data2: 0x50},
		{Time: 0.5, Status: 0x90, Data1: 0x40, Data2: 0x50},
	}

	track := Normalize(events, 96)

	assert := assert.New(t)
	assert.Len(track, 2)
	assert.Equal(byte(0x3C), track[0].Data1)
	assert.Equal(byte(0x40), track[1].Data1)
	assert.Equal(uint32(0), track[1].DeltaTicks)
}

func TestNormalizeDeltasNeverNegative(t *testing.T) {
	events := []RawEvent{
		{Time: 3.00001},
		{Time: 3.0},
		{Time: 0.0},
		{Time: 2.999999},
	}

	track := Normalize(events, 960)

	for i, ev := range track {
		assert.GreaterOrEqual(t, ev.DeltaTicks, uint32(0), "delta %d", i)
	}
}

func TestNormalizeCapsOversizedGaps(t *testing.T) {
	// A gap beyond the 32-bit tick range caps at the largest encodable
	// delta instead of narrowing through an undefined conversion.
	events := []RawEvent{
		{Time: 0.0, Status: 0x90, Data1: 0x3C, Data2: 0x64},
		{Time: 1e9, Status: 0x80, Data1: 0x3C, Data2: 0x00},
	}

	track := Normalize(events, 96)

	assert.Equal(t, uint32(math.MaxUint32), track[1].DeltaTicks)
}

func TestNormalizeEmptySession(t *testing.T) {
	assert.Empty(t, Normalize(nil, 96))
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	events := []RawEvent{
		{Time: 2.0, Data1: 2},
		{Time: 1.0, Data1: 1},
	}

	Normalize(events, 96)

	assert.False(t, sort.SliceIsSorted(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	}))
}

func TestNormalizePerEventRoundingBound(t *testing.T) {
	// Deltas are measured against the true previous timestamp, so each one
	// is within half a tick of the exact gap regardless of how many events
	// came before it.
	var events []RawEvent
	times := []float64{0.013, 0.071, 0.0711, 0.25, 1.9994, 2.0, 7.3331}
	for _, ts := range times {
		events = append(events, RawEvent{Time: ts, Status: 0x90})
	}

	track := Normalize(events, 96)

	prev := 0.0
	for i, ev := range track {
		exact := (times[i] - prev) * 192
		assert.InDelta(t, exact, float64(ev.DeltaTicks), 0.5, "event %d", i)
		prev = times[i]
	}
}
