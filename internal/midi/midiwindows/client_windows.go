//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/leandrodaf/midirec/sdk/contracts"
)

// HMIDIIN is a winmm MIDI input device handle.
type HMIDIIN windows.Handle

const (
	callbackFunction = 0x00030000 // midiInOpen: dwCallback is a function
	midiIOStatus     = 0x00000020
)

// winmm callback message types.
const (
	mimOpen      = 0x3C1
	mimClose     = 0x3C2
	mimData      = 0x3C3
	mimError     = 0x3C5
	mimLongError = 0x3C6
	mimMoreData  = 0x3CC
)

// midiInCaps mirrors the winmm MIDIINCAPSW structure.
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")
)

// ErrNoMIDIDevices is returned when winmm reports zero input devices.
var ErrNoMIDIDevices = errors.New("no MIDI devices found")

// client captures MIDI input through the winmm API. The driver invokes
// midiInCallback on its own thread; the event channel lives in an
// atomic.Value so the callback never races StartCapture or Stop.
type client struct {
	logger       contracts.Logger
	eventChannel atomic.Value
	handle       HMIDIIN
	connected    bool
	callback     uintptr
	filter       *contracts.EventFilter
	mu           sync.Mutex
	wg           sync.WaitGroup
}

// NewMIDIClient creates the winmm-backed input client.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	return &client{
		logger: options.Logger,
		filter: options.EventFilter,
	}, nil
}

// ListDevices enumerates winmm MIDI input devices.
func (c *client) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			c.logger.Warn("failed to query MIDI device",
				c.logger.Field().Int("deviceID", int(i)))
			continue
		}
		name := windows.UTF16ToString(caps.szPname[:])
		devices[i] = contracts.DeviceInfo{
			Name:         name,
			EntityName:   name,
			Manufacturer: fmt.Sprintf("MID %d PID %d", caps.wMid, caps.wPid),
		}
	}
	return devices, nil
}

// SelectDevice opens the device with midiInOpen, releasing any previously
// opened handle first.
func (c *client) SelectDevice(deviceID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		if err := c.closeDevice(); err != nil {
			return fmt.Errorf("failed to release previous MIDI device: %w", err)
		}
	}

	c.callback = windows.NewCallback(midiInCallback)
	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&c.handle)),
		uintptr(deviceID),
		c.callback,
		uintptr(unsafe.Pointer(c)),
		uintptr(callbackFunction|midiIOStatus),
	)
	if r1 != 0 {
		return fmt.Errorf("failed to open MIDI device %d: %v", deviceID, err)
	}

	c.connected = true
	c.logger.Info("MIDI device connected",
		c.logger.Field().Int("deviceID", deviceID))
	return nil
}

// StartCapture publishes the event channel and starts the input stream.
func (c *client) StartCapture(eventChannel chan contracts.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if eventChannel == nil {
		c.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if !c.connected {
		c.logger.Error("cannot start capture: no MIDI device selected")
		return
	}
	if _, ok := c.eventChannel.Load().(chan contracts.Event); ok {
		c.logger.Warn("capture already started")
		return
	}

	c.eventChannel.Store(eventChannel)

	r1, _, err := procMidiInStart.Call(uintptr(c.handle))
	if r1 != 0 {
		c.logger.Error("failed to start MIDI capture",
			c.logger.Field().Error("error", err))
		return
	}
	c.logger.Info("MIDI capture started")
}

// midiInCallback runs on the winmm driver thread. dwParam1 packs the three
// message bytes of a short message; anything beyond them is discarded.
func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	c := (*client)(unsafe.Pointer(dwInstance))
	c.wg.Add(1)
	defer c.wg.Done()

	switch wMsg {
	case mimOpen:
		c.logger.Debug("MIDI device opened")
	case mimClose:
		c.logger.Debug("MIDI device closed")
	case mimData:
		event := contracts.Event{
			Timestamp: uint64(time.Now().UTC().UnixNano()),
			Status:    byte(dwParam1 & 0xFF),
			Data1:     byte((dwParam1 >> 8) & 0xFF),
			Data2:     byte((dwParam1 >> 16) & 0xFF),
		}
		if !c.filter.Allows(event.Status) {
			return 0
		}
		if ch, ok := c.eventChannel.Load().(chan contracts.Event); ok && ch != nil {
			select {
			case ch <- event:
			default:
				c.logger.Warn("event buffer full; dropping MIDI event")
			}
		}
	case mimError, mimLongError:
		c.logger.Error(fmt.Sprintf("MIDI input error: msg=0x%X", wMsg))
	case mimMoreData:
		// Input is arriving faster than the callback drains it; short
		// messages still come through mimData, nothing to do here.
	default:
		c.logger.Warn(fmt.Sprintf("unexpected MIDI callback message: 0x%X", wMsg))
	}

	return 0
}

// Stop halts the input stream and closes the device handle.
func (c *client) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	if err := c.closeDevice(); err != nil {
		return fmt.Errorf("failed to stop MIDI capture: %w", err)
	}
	c.logger.Info("MIDI capture stopped")
	return nil
}

// closeDevice stops and closes the winmm handle. Callers hold c.mu.
func (c *client) closeDevice() error {
	if c.handle == 0 {
		return errors.New("invalid MIDI device handle")
	}

	if r1, _, err := procMidiInStop.Call(uintptr(c.handle)); r1 != 0 {
		return fmt.Errorf("midiInStop: %v", err)
	}
	if r1, _, err := procMidiInClose.Call(uintptr(c.handle)); r1 != 0 {
		return fmt.Errorf("midiInClose: %v", err)
	}

	c.connected = false
	c.handle = 0
	c.detachEventChannel()
	return nil
}

// detachEventChannel swaps in a channel nobody reads and waits for in-flight
// callbacks to finish, so a callback that loaded the old channel before the
// swap has completed its send before the caller closes that channel.
func (c *client) detachEventChannel() {
	c.eventChannel.Store(make(chan contracts.Event))
	c.wg.Wait()
}
