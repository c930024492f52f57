//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/youpy/go-coremidi"

	"github.com/leandrodaf/midirec/sdk/contracts"
)

// Errors surfaced by the CoreMIDI backend.
var (
	ErrNoMIDIDevices       = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice   = errors.New("invalid MIDI device")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI device")
	ErrCreateInputPort     = errors.New("error creating input port")
	ErrShortMIDIPacket     = errors.New("incomplete MIDI packet")
)

// portConnection is the part of a CoreMIDI port connection the client needs.
type portConnection interface {
	Disconnect()
}

// client captures MIDI input through CoreMIDI. Incoming packets arrive on a
// CoreMIDI callback thread; the event channel is held in an atomic.Value so
// the callback never races StartCapture or Stop.
type client struct {
	logger       contracts.Logger
	eventChannel atomic.Value
	midiClient   coremidi.Client
	inputPort    coremidi.InputPort
	portConn     portConnection
	filter       *contracts.EventFilter
	config       *contracts.CoreMIDIConfig
	mu           sync.Mutex
	capturing    bool
	wg           sync.WaitGroup
	stopOnce     sync.Once
}

// NewMIDIClient creates the CoreMIDI-backed input client.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	midiClient, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Debug("CoreMIDI client created",
		options.Logger.Field().String("name", options.CoreMIDIConfig.ClientName))

	return &client{
		logger:     options.Logger,
		midiClient: midiClient,
		filter:     options.EventFilter,
		config:     options.CoreMIDIConfig,
	}, nil
}

// ListDevices enumerates CoreMIDI sources.
func (c *client) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		entity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice connects the input port to the source at the given index,
// disconnecting any previous source first.
func (c *client) SelectDevice(deviceID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		return fmt.Errorf("%w: index %d", ErrInvalidMIDIDevice, deviceID)
	}

	if c.portConn != nil {
		c.portConn.Disconnect()
		c.portConn = nil
	}

	source := sources[deviceID]
	c.inputPort, err = coremidi.NewInputPort(c.midiClient, "midirec input", c.handlePacket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	c.portConn, err = c.inputPort.Connect(source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	c.logger.Info("MIDI device connected",
		c.logger.Field().Int("deviceID", deviceID),
		c.logger.Field().String("deviceName", source.Name()))
	return nil
}

// handlePacket runs on the CoreMIDI callback thread. It keeps the first
// three message bytes, stamps the arrival time, and hands the event to the
// capture channel without blocking.
func (c *client) handlePacket(source coremidi.Source, packet coremidi.Packet) {
	c.wg.Add(1)
	defer c.wg.Done()

	ch, _ := c.eventChannel.Load().(chan contracts.Event)
	if ch == nil {
		return
	}

	if len(packet.Data) < 3 {
		c.logger.Warn(ErrShortMIDIPacket.Error(),
			c.logger.Field().Int("bytes", len(packet.Data)))
		return
	}

	event := contracts.Event{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Status:    packet.Data[0],
		Data1:     packet.Data[1],
		Data2:     packet.Data[2],
	}
	if !c.filter.Allows(event.Status) {
		return
	}

	select {
	case ch <- event:
	default:
		c.logger.Warn("event buffer full; dropping MIDI event")
	}
}

// StartCapture publishes the event channel to the callback thread.
func (c *client) StartCapture(eventChannel chan contracts.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if eventChannel == nil {
		c.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if c.capturing {
		c.logger.Warn("capture already started")
		return
	}

	c.eventChannel.Store(eventChannel)
	c.capturing = true
	c.logger.Info("MIDI capture started")
}

// Stop disconnects the source and waits for in-flight callbacks to finish.
// After Stop returns no further events are delivered.
func (c *client) Stop() error {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !c.capturing {
			return
		}
		c.capturing = false

		if c.portConn != nil {
			c.portConn.Disconnect()
			c.portConn = nil
		}

		// Swap in a channel nobody reads so a late callback drops its event
		// instead of writing to the caller's channel.
		c.eventChannel.Store(make(chan contracts.Event))
		c.wg.Wait()
		c.logger.Info("MIDI capture stopped")
	})
	return nil
}
