package midi

import (
	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/sdk/contracts"
)

// applyDefaultOptions folds the option functions over a ClientOptions with
// usable defaults: a zap-backed logger at info level and a generic CoreMIDI
// client name.
func applyDefaultOptions(opts ...contracts.Option) contracts.ClientOptions {
	options := contracts.ClientOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{ClientName: "midirec"}
	}

	options.Logger.SetLevel(options.LogLevel)
	return options
}
