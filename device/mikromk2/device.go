// Package mikromk2 implements the userspace driver for the Native
// Instruments Maschine Mikro MK2 grid controller: it decodes the raw HID
// input reports into button, pad and encoder events, and transmits the
// display framebuffer and LED table as correctly addressed output reports.
package mikromk2

import (
	"fmt"
	"log/slog"

	"github.com/maschinekit/maschine/canvas"
	"github.com/maschinekit/maschine/device"
	"github.com/maschinekit/maschine/event"
	"github.com/maschinekit/maschine/internal/log"
)

// Display geometry.
const (
	displayWidth  = 128
	displayHeight = 64

	// One display report carries two band rows: 128 columns * 2 rows.
	displayChunkBytes = 256
)

// Tick phases. One class of USB traffic is serviced per tick to keep
// bandwidth use predictable; liveness is the caller's loop.
const (
	phaseDisplay = iota
	phaseLEDs
	phasePoll
)

// Driver drives a single Maschine Mikro MK2 over an open HID transport.
//
// It is not safe for concurrent use: all state is owned by the calling
// goroutine and Tick is the sole suspension point.
type Driver struct {
	transport device.Transport
	logger    *slog.Logger
	raw       log.RawLogger

	phase   int
	display *canvas.Monochrome

	leds      [ledCount]byte
	ledsDirty bool

	buttonStates [buttonCount]bool
	shiftPressed bool
	padsData     [padCount]uint16
	padsStatus   [padCount]bool
	encoderValue uint8
}

var _ device.Controller = (*Driver)(nil)

// New returns a driver bound to an open HID transport. logger and raw may
// be nil.
func New(t device.Transport, logger *slog.Logger, raw log.RawLogger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Driver{
		transport: t,
		logger:    logger,
		raw:       raw,
		display:   canvas.NewMonochrome(displayWidth, displayHeight),
		ledsDirty: true,
	}
}

// Display returns the driver-owned display canvas. Mutations mark it
// dirty; the next display phase transmits the whole frame.
func (d *Driver) Display() *canvas.Monochrome {
	return d.display
}

// ShiftPressed reports the current state of the latched Shift modifier.
func (d *Driver) ShiftPressed() bool {
	return d.shiftPressed
}

// Tick services one phase of device work: transmitting the display,
// transmitting the LED table, or polling for input reports. The phase
// advances after each successful call whether or not the phase had work;
// a transport error is returned immediately and the failed phase is
// retried on the next call.
func (d *Driver) Tick(ctx *event.Context) error {
	switch d.phase {
	case phaseDisplay:
		if err := d.sendFrame(); err != nil {
			return err
		}
	case phaseLEDs:
		if err := d.sendLEDs(); err != nil {
			return err
		}
	case phasePoll:
		if err := d.poll(ctx); err != nil {
			return err
		}
	}

	d.phase = (d.phase + 1) % 3
	return nil
}

// sendFrame transmits the full frame as four chunks of two band rows
// each. The dirty flag clears only after all four chunks are written, so
// a mid-sequence failure resends the whole frame next time.
func (d *Driver) sendFrame() error {
	if !d.display.IsDirty() {
		return nil
	}

	buf := make([]byte, 0, 9+displayChunkBytes)
	for row := 0; row < 8; row += 2 {
		buf = append(buf[:0],
			displayAddress,
			0x00,      // column offset
			0x00,      // reserved
			byte(row), // band row (8 pixels high)
			0x00,      // reserved
			0x80,      // columns per row, 128 is full width
			0x00,      // reserved
			0x02,      // number of band rows
			0x00,      // reserved
		)
		offset := row * displayWidth
		buf = append(buf, d.display.Data()[offset:offset+displayChunkBytes]...)

		if _, err := d.transport.Write(buf); err != nil {
			return fmt.Errorf("display write: %w", err)
		}
		d.raw.Log(false, buf)
	}

	log.Trace(d.logger, "frame sent")
	d.display.ClearDirtyFlag()
	return nil
}

// sendLEDs transmits the LED table when it has changed since the last
// successful transmission.
func (d *Driver) sendLEDs() error {
	if d.ledsDirty {
		buf := make([]byte, 0, 1+ledCount)
		buf = append(buf, ledAddress)
		buf = append(buf, d.leds[:]...)

		if _, err := d.transport.Write(buf); err != nil {
			return fmt.Errorf("led write: %w", err)
		}
		d.raw.Log(false, buf)
	}
	d.ledsDirty = false
	return nil
}

// poll reads up to pollAttempts input reports and dispatches them by tag.
// Unrecognised tags are discarded, as are pad-scan buffers outside the
// sampling cadence (the device floods them with noise).
func (d *Driver) poll(ctx *event.Context) error {
	var buf [inputBufferSize]byte

	for attempt := 0; attempt < pollAttempts; attempt++ {
		n, err := d.transport.Read(buf[:])
		if err != nil {
			return fmt.Errorf("report read: %w", err)
		}
		if n == 0 {
			continue
		}
		d.raw.Log(true, buf[:n])

		switch buf[0] {
		case tagButtons:
			if err := d.processButtons(buf[1:6], ctx); err != nil {
				return err
			}
		case tagPads:
			if attempt%padSampleEvery == 0 {
				if err := d.processPads(buf[1:], ctx); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
