package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karalabe/hid"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
	"golang.org/x/term"

	"github.com/maschinekit/maschine/canvas"
	"github.com/maschinekit/maschine/colour"
	"github.com/maschinekit/maschine/device/mikromk2"
	"github.com/maschinekit/maschine/event"
	"github.com/maschinekit/maschine/fonts"
	"github.com/maschinekit/maschine/internal/log"
)

// Jam runs an interactive demo loop on a connected controller: button
// presses light up in random colours, pad hits light the pad and can be
// forwarded as MIDI notes.
type Jam struct {
	Banner       string        `help:"Text drawn on the display" default:"MASCHINE"`
	TickInterval time.Duration `help:"Pause between controller ticks" default:"2ms" env:"MASCHINE_TICK_INTERVAL"`
	MidiPort     int           `help:"MIDI output port index for pad notes, -1 to disable" default:"-1"`
	MidiChannel  uint8         `help:"MIDI channel for pad notes" default:"0"`
	BaseNote     uint8         `help:"MIDI note number for pad 1" default:"36"`
}

// Run is called by Kong when the jam command is executed.
func (j *Jam) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infos := hid.Enumerate(mikromk2.VendorID, mikromk2.ProductID)
	if len(infos) == 0 {
		return fmt.Errorf("no controller found (vendor %04x, product %04x)", mikromk2.VendorID, mikromk2.ProductID)
	}
	dev, err := infos[0].Open()
	if err != nil {
		return fmt.Errorf("open controller: %w", err)
	}
	defer dev.Close()

	logger.Info("Controller connected", "product", infos[0].Product, "serial", infos[0].Serial)

	sendNote, err := j.openMIDI(logger)
	if err != nil {
		return err
	}
	defer midi.CloseDriver()

	driver := mikromk2.New(dev, logger, rawLogger)
	driver.Display().Print(j.Banner, 3, 4, &fonts.Default, canvas.PixelOn)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	queue := event.NewContext()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil
		default:
		}

		if err := driver.Tick(queue); err != nil {
			return fmt.Errorf("controller tick: %w", err)
		}
		for {
			ev, ok := queue.Next()
			if !ok {
				break
			}
			j.handle(driver, ev, sendNote, interactive)
		}

		time.Sleep(j.TickInterval)
	}
}

func (j *Jam) handle(driver *mikromk2.Driver, ev event.Event, sendNote func(midi.Message) error, interactive bool) {
	switch e := ev.(type) {
	case event.ButtonChange:
		if e.Pressed {
			driver.SetButtonLED(e.Button, colour.Random())
		} else if !e.Shift {
			driver.SetButtonLED(e.Button, colour.Black)
		}
	case event.PadChange:
		if e.Velocity > 0 {
			driver.SetPadLED(e.Pad, colour.RandomIndexed())
			if sendNote != nil {
				_ = sendNote(midi.NoteOn(j.MidiChannel, j.BaseNote+e.Pad, e.Velocity))
			}
		} else {
			driver.SetPadLED(e.Pad, colour.Black)
			if sendNote != nil {
				_ = sendNote(midi.NoteOff(j.MidiChannel, j.BaseNote+e.Pad))
			}
		}
	}
	if interactive {
		fmt.Printf("%+v\n", ev)
	}
}

// openMIDI resolves the configured output port. A nil sender disables
// note forwarding.
func (j *Jam) openMIDI(logger *slog.Logger) (func(midi.Message) error, error) {
	if j.MidiPort < 0 {
		return nil, nil
	}
	outs := midi.GetOutPorts()
	if j.MidiPort >= len(outs) {
		return nil, errors.New("MIDI output port index out of range")
	}
	send, err := midi.SendTo(outs[j.MidiPort])
	if err != nil {
		return nil, fmt.Errorf("open MIDI port: %w", err)
	}
	logger.Info("MIDI output enabled", "port", outs[j.MidiPort].String())
	return send, nil
}
