// Package midi constructs platform MIDI input clients behind the
// contracts.ClientMIDI interface.
package midi

import (
	"github.com/leandrodaf/midirec/sdk/contracts"
)

// NewMIDIClient creates a MIDI input client for the current platform with
// the given options applied over the defaults.
func NewMIDIClient(opts ...contracts.Option) (contracts.ClientMIDI, error) {
	options := applyDefaultOptions(opts...)
	return newClient(&options)
}
