//go:build !darwin
// +build !darwin

package mididarwin

import (
	"errors"

	"github.com/leandrodaf/midirec/sdk/contracts"
)

var errUnavailable = errors.New("CoreMIDI is not available on this platform")

type dummyClient struct {
	logger contracts.Logger
}

// NewMIDIClient returns a stub so the package builds on non-Darwin systems.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	return &dummyClient{logger: options.Logger}, nil
}

func (c *dummyClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return nil, errUnavailable
}

func (c *dummyClient) SelectDevice(deviceID int) error {
	return errUnavailable
}

func (c *dummyClient) StartCapture(eventChannel chan contracts.Event) {
	c.logger.Warn("StartCapture called on dummy CoreMIDI client")
}

func (c *dummyClient) Stop() error {
	return nil
}
