// Package smf encodes a timeline of captured MIDI events into a Standard
// MIDI File, Format 0 (a single track). The package is write-only: it never
// reads or parses existing files.
package smf

import (
	"bytes"
	"encoding/binary"
)

// Header field constants for the files this package produces.
const (
	formatSingleTrack = 0
	numTracks         = 1
	headerLength      = 6

	// DefaultDivision is the ticks-per-quarter-note resolution used when the
	// caller does not choose one.
	DefaultDivision uint16 = 96
)

// endOfTrack is the mandatory track terminator: delta time 0 followed by the
// End-Of-Track meta event FF 2F 00.
var endOfTrack = []byte{0x00, 0xFF, 0x2F, 0x00}

// Encode serializes the track into a complete Format-0 file image: an MThd
// chunk followed by a single MTrk chunk. It is pure and deterministic for a
// given timeline and division.
//
// Every event restates its full status byte; running-status compression is
// deliberately not used. The MTrk length field is the exact byte length of
// the body that follows it, terminator included.
func Encode(division uint16, track []TickEvent) []byte {
	// Delta times up to 127 ticks fit in one byte, so 4 bytes per event is
	// the common case.
	body := make([]byte, 0, len(track)*4+len(endOfTrack))
	for _, ev := range track {
		body = AppendVarLen(body, ev.DeltaTicks)
		body = append(body, ev.Status, ev.Data1, ev.Data2)
	}
	body = append(body, endOfTrack...)

	var buf bytes.Buffer
	buf.Grow(8 + headerLength + 8 + len(body))

	buf.WriteString("MThd")
	binary.Write(&buf, binary.BigEndian, uint32(headerLength))
	binary.Write(&buf, binary.BigEndian, uint16(formatSingleTrack))
	binary.Write(&buf, binary.BigEndian, uint16(numTracks))
	binary.Write(&buf, binary.BigEndian, division)

	buf.WriteString("MTrk")
	binary.Write(&buf, binary.BigEndian, uint32(len(body)))
	buf.Write(body)

	return buf.Bytes()
}
