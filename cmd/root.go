package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midirec",
	Short: "Record live MIDI input to a Standard MIDI File",
	Long: `midirec captures events from a connected MIDI input device and, once
recording stops, writes them to a single-track (Format 0) Standard MIDI File.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
