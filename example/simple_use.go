package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/leandrodaf/midirec/internal/logger"
	"github.com/leandrodaf/midirec/internal/recorder"
	"github.com/leandrodaf/midirec/sdk/contracts"
	"github.com/leandrodaf/midirec/sdk/midi"
	"github.com/leandrodaf/midirec/sdk/smf"
)

// Records note events until interrupted, then writes take.mid.
func main() {
	log := logger.NewZapLogger()

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithEventFilter(contracts.EventFilter{
			Commands: []contracts.Command{contracts.NoteOn, contracts.NoteOff},
		}),
	)
	if err != nil {
		log.Fatal("failed to initialize MIDI client", log.Field().Error("error", err))
	}

	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		log.Fatal("no MIDI devices found", log.Field().Error("error", err))
	}
	fmt.Println("Available MIDI devices:", devices)

	if err = client.SelectDevice(0); err != nil {
		log.Fatal("failed to select MIDI device", log.Field().Error("error", err))
	}

	rec := recorder.New(client, log, 128)
	rec.Start()

	fmt.Println("Recording... press Ctrl+C to stop.")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	session, err := rec.Stop()
	if err != nil {
		log.Warn("error stopping capture", log.Field().Error("error", err))
	}
	if session.Len() == 0 {
		fmt.Println("No MIDI events were recorded.")
		return
	}

	data := smf.Encode(smf.DefaultDivision, smf.Normalize(session.Events(), smf.DefaultDivision))
	if err := smf.WriteFile("take.mid", data); err != nil {
		log.Fatal("write failed", log.Field().Error("error", err))
	}
	fmt.Println("MIDI file written to take.mid")
}
