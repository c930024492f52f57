package recorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/sdk/contracts"
)

// fakeClient feeds scripted events into whatever channel StartCapture gets.
type fakeClient struct {
	ch      chan contracts.Event
	stopped bool
}

func (f *fakeClient) StartCapture(ch chan contracts.Event) { f.ch = ch }

func (f *fakeClient) Stop() error {
	f.stopped = true
	return nil
}

func (f *fakeClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return []contracts.DeviceInfo{{Name: "fake"}}, nil
}

func (f *fakeClient) SelectDevice(deviceID int) error { return nil }

func (f *fakeClient) send(offset time.Duration, status, d1, d2 byte) {
	f.ch <- contracts.Event{
		Timestamp: uint64(time.Now().Add(offset).UTC().UnixNano()),
		Status:    status,
		Data1:     d1,
		Data2:     d2,
	}
}

func TestRecorderCapturesInArrivalOrder(t *testing.T) {
	client := &fakeClient{}
	rec := New(client, logger.NewNop(), 16)
	rec.Start()

	client.send(10*time.Millisecond, 0x90, 0x3C, 0x64)
	client.send(20*time.Millisecond, 0x90, 0x40, 0x64)
	client.send(30*time.Millisecond, 0x80, 0x3C, 0x00)

	session, err := rec.Stop()

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(client.stopped)
	assert.Equal(3, session.Len())

	events := session.Events()
	assert.Equal(byte(0x3C), events[0].Data1)
	assert.Equal(byte(0x40), events[1].Data1)
	assert.Equal(byte(0x80), events[2].Status)
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(events[i].Time, events[i-1].Time)
	}
}

func TestRecorderClampsTimestampsBeforeStart(t *testing.T) {
	client := &fakeClient{}
	rec := New(client, logger.NewNop(), 16)
	rec.Start()

	client.ch <- contracts.Event{Timestamp: 0, Status: 0x90, Data1: 0x40, Data2: 0x7F}

	session, err := rec.Stop()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, session.Len())
	assert.Equal(0.0, session.Events()[0].Time)
}

func TestRecorderEmptySession(t *testing.T) {
	client := &fakeClient{}
	rec := New(client, logger.NewNop(), 16)
	rec.Start()

	session, err := rec.Stop()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Zero(session.Len())
	assert.Empty(session.Events())
}

func TestRecorderStopIsIdempotent(t *testing.T) {
	client := &fakeClient{}
	rec := New(client, logger.NewNop(), 16)
	rec.Start()
	client.send(0, 0x90, 0x3C, 0x64)

	first, err1 := rec.Stop()
	second, err2 := rec.Stop()

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Same(first, second)
	assert.Equal(1, second.Len())
}

func TestRecorderEventCount(t *testing.T) {
	client := &fakeClient{}
	rec := New(client, logger.NewNop(), 16)
	rec.Start()

	client.send(0, 0x90, 0x3C, 0x64)
	client.send(0, 0x80, 0x3C, 0x00)
	rec.Stop()

	assert.Equal(t, int64(2), rec.EventCount())
}
