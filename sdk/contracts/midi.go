package contracts

// Event is a raw MIDI message captured from an input device. Only the first
// three message bytes are kept; when a platform driver supplies a fourth
// byte it is dropped at the capture boundary. The message bytes are not
// validated here, they travel to the recorder verbatim.
type Event struct {
	Timestamp uint64 // arrival time in nanoseconds since the Unix epoch
	Status    byte   // status byte, channel nibble included
	Data1     byte
	Data2     byte
}

// Command returns the status byte with the channel nibble masked off.
func (e Event) Command() byte {
	return e.Status & 0xF0
}

// ClientMIDI is a platform MIDI input client.
type ClientMIDI interface {
	// Stop halts capture and releases the device. Safe to call more than once.
	Stop() error
	// ListDevices enumerates the available MIDI input devices.
	ListDevices() ([]DeviceInfo, error)
	// SelectDevice connects to a device by its index in ListDevices order.
	SelectDevice(deviceID int) error
	// StartCapture begins delivering events to eventChannel. Sends never
	// block; events are dropped when the channel is full.
	StartCapture(eventChannel chan Event)
}
