package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/internal/recorder"
	"github.com/leandrodaf/midirec/internal/tui"
	"github.com/leandrodaf/midirec/sdk/contracts"
	"github.com/leandrodaf/midirec/sdk/midi"
	"github.com/leandrodaf/midirec/sdk/smf"
)

var (
	flagDevice   int
	flagOutput   string
	flagDivision uint16
	flagBuffer   int
	flagQuiet    bool
	flagVerbose  bool
)

func init() {
	recordCmd.Flags().IntVar(&flagDevice, "device", 0, "input device index (see 'midirec devices')")
	recordCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default recording_<timestamp>.mid)")
	recordCmd.Flags().Uint16Var(&flagDivision, "division", smf.DefaultDivision, "ticks per quarter note")
	recordCmd.Flags().IntVar(&flagBuffer, "buffer", 128, "capture channel capacity")
	recordCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "no UI; record until interrupted")
	recordCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(recordCmd)
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Capture MIDI input until stopped, then write a Format-0 file",
	RunE:  runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	if flagDivision == 0 {
		return fmt.Errorf("division must be positive")
	}

	log := logger.NewZapLogger()
	level := contracts.WarnLevel
	if flagQuiet {
		level = contracts.InfoLevel
	}
	if flagVerbose {
		level = contracts.DebugLevel
	}

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
	)
	if err != nil {
		return err
	}

	// A missing device is fatal before capture: no file is ever produced.
	if _, err := client.ListDevices(); err != nil {
		return fmt.Errorf("no MIDI input device found: %w", err)
	}
	if err := client.SelectDevice(flagDevice); err != nil {
		return err
	}

	rec := recorder.New(client, log, flagBuffer)
	rec.Start()

	if flagQuiet {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Info("recording; send SIGINT or SIGTERM to stop")
		<-ctx.Done()
	} else {
		if _, err := tea.NewProgram(tui.NewModel(rec)).Run(); err != nil {
			// The view failing is no reason to lose the take; fall through
			// and save whatever was captured.
			log.Warn("display loop failed", log.Field().Error("error", err))
		}
	}

	session, err := rec.Stop()
	if err != nil {
		log.Warn("error while stopping capture", log.Field().Error("error", err))
	}

	out := flagOutput
	if out == "" {
		out = smf.OutputFilename("recording", ".mid", session.Started)
	}
	return saveSession(session, flagDivision, out, log)
}

// saveSession encodes the frozen session and writes it to path. An empty
// session produces no file and is not an error; the informational message is
// the whole outcome.
func saveSession(session *recorder.Session, division uint16, path string, log contracts.Logger) error {
	if session.Len() == 0 {
		log.Info("no MIDI events were recorded; skipping file",
			log.Field().String("sessionID", session.ID.String()))
		fmt.Println("No MIDI events were recorded.")
		return nil
	}

	data := smf.Encode(division, smf.Normalize(session.Events(), division))
	if err := smf.WriteFile(path, data); err != nil {
		return fmt.Errorf("write failed for %s: %w", path, err)
	}

	log.Info("MIDI file written",
		log.Field().String("path", path),
		log.Field().Int("events", session.Len()),
		log.Field().String("sessionID", session.ID.String()))
	fmt.Println("MIDI file written to", path)
	return nil
}
