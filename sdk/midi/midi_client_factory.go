package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/midirec/internal/midi/mididarwin"
	"github.com/leandrodaf/midirec/internal/midi/midiwindows"
	"github.com/leandrodaf/midirec/sdk/contracts"
)

// ErrUnsupportedOS is returned when no MIDI backend exists for the current
// operating system.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps GOOS values to their MIDI backend constructors.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,
	"windows": midiwindows.NewMIDIClient,
}

func newClient(opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if initializer, ok := clientInitializers[runtime.GOOS]; ok {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
