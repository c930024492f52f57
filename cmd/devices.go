package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/sdk/contracts"
	"github.com/leandrodaf/midirec/sdk/midi"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available MIDI input devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewZapLogger()
		log.SetLevel(contracts.WarnLevel)

		client, err := midi.NewMIDIClient(contracts.WithLogger(log))
		if err != nil {
			return err
		}
		defer client.Stop()

		devices, err := client.ListDevices()
		if err != nil {
			return fmt.Errorf("no MIDI input device found: %w", err)
		}

		for i, d := range devices {
			fmt.Printf("%2d  %s", i, d.Name)
			if d.Manufacturer != "" {
				fmt.Printf("  (%s)", d.Manufacturer)
			}
			fmt.Println()
		}
		return nil
	},
}
