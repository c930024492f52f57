package contracts

// DeviceInfo describes a MIDI input device.
type DeviceInfo struct {
	Name         string // device name as reported by the driver
	Manufacturer string
	EntityName   string // entity the device belongs to, platform permitting
}
