package smf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "take.mid")
	data := Encode(96, []TickEvent{
		{DeltaTicks: 96, Status: 0x90, Data1: 0x40, Data2: 0x7F},
	})

	err := WriteFile(path, data)

	assert := assert.New(t)
	assert.NoError(err)
	got, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal(data, got)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "take.mid"), []byte{1})

	assert.Error(t, err)
}

func TestOutputFilename(t *testing.T) {
	at := time.Date(2026, 8, 26, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "recording_20260826_140509.mid", OutputFilename("recording", ".mid", at))
}
