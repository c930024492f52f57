package contracts

// Command identifies a MIDI message type for event filtering. Values are the
// status byte with a zero channel nibble.
type Command byte

const (
	NoteOff         Command = 0x80
	NoteOn          Command = 0x90
	PolyPressure    Command = 0xA0
	ControlChange   Command = 0xB0
	ProgramChange   Command = 0xC0
	ChannelPressure Command = 0xD0
	PitchBend       Command = 0xE0
)

// EventFilter restricts capture to the listed commands. A nil filter passes
// everything through, malformed status bytes included.
type EventFilter struct {
	Commands []Command
}

// Allows reports whether the filter passes an event with the given status
// byte. The channel nibble is ignored.
func (f *EventFilter) Allows(status byte) bool {
	if f == nil {
		return true
	}
	command := status & 0xF0
	for _, c := range f.Commands {
		if command == byte(c) {
			return true
		}
	}
	return false
}

// CoreMIDIConfig holds configuration for the CoreMIDI backend.
type CoreMIDIConfig struct {
	ClientName string
}

// ClientOptions configures a MIDI input client.
type ClientOptions struct {
	Logger         Logger
	LogLevel       LogLevel
	EventFilter    *EventFilter
	CoreMIDIConfig *CoreMIDIConfig
}

// Option mutates ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger used by the client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the minimum log severity.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithEventFilter restricts capture to the given commands.
func WithEventFilter(filter EventFilter) Option {
	return func(opts *ClientOptions) {
		opts.EventFilter = &filter
	}
}

// WithCoreMIDIConfig overrides the CoreMIDI client configuration.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}
