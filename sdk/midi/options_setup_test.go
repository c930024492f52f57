package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/sdk/contracts"
)

func TestDefaultsFilledIn(t *testing.T) {
	options := applyDefaultOptions()

	assert := assert.New(t)
	assert.NotNil(options.Logger)
	assert.NotNil(options.CoreMIDIConfig)
	assert.Equal("midirec", options.CoreMIDIConfig.ClientName)
	assert.Nil(options.EventFilter)
}

func TestExplicitOptionsKept(t *testing.T) {
	log := logger.NewNop()
	options := applyDefaultOptions(
		contracts.WithLogger(log),
		contracts.WithCoreMIDIConfig(contracts.CoreMIDIConfig{ClientName: "custom"}),
		contracts.WithEventFilter(contracts.EventFilter{Commands: []contracts.Command{contracts.NoteOn}}),
	)

	assert := assert.New(t)
	assert.Same(log, options.Logger)
	assert.Equal("custom", options.CoreMIDIConfig.ClientName)
	assert.Len(options.EventFilter.Commands, 1)
}
