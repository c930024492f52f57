//go:build windows
// +build windows

package midiwindows

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/sdk/contracts"
)

func TestDetachEventChannelWaitsForInflightCallback(t *testing.T) {
	c := &client{logger: logger.NewNop()}
	c.eventChannel.Store(make(chan contracts.Event, 1))
	c.wg.Add(1) // a callback is mid-flight

	done := make(chan struct{})
	go func() {
		c.detachEventChannel()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("detach returned while a callback was still in flight")
	case <-time.After(20 * time.Millisecond):
	}

	c.wg.Done()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("detach did not return after callbacks finished")
	}
}

func TestLateCallbackDropsEventAfterDetach(t *testing.T) {
	c := &client{logger: logger.NewNop()}
	ch := make(chan contracts.Event, 1)
	c.eventChannel.Store(ch)

	c.detachEventChannel()
	close(ch) // the recorder closes its channel once the client is stopped

	// A straggling driver callback must land on the detached channel, not
	// the closed one. dwParam1 packs status 0x90, data1 0x40, data2 0x7F.
	midiInCallback(0, mimData, uintptr(unsafe.Pointer(c)), 0x7F4090, 1)

	assert.Empty(t, ch)
}
