// Package device defines the interfaces and errors shared by controller
// drivers.
package device

import (
	"errors"

	"github.com/maschinekit/maschine/colour"
	"github.com/maschinekit/maschine/event"
)

// Driver errors. Transport errors are passed through wrapped and can be
// unwrapped with errors.Is / errors.As.
var (
	// ErrInvalidReport means an input report did not contain the
	// expected amount of data. Decoding is all-or-nothing: a report that
	// fails validation never mutates driver state.
	ErrInvalidReport = errors.New("report is too small or not parsable")

	// ErrUnknownControl means the hardware returned a control the driver
	// does not recognise.
	ErrUnknownControl = errors.New("unexpected control returned from hardware device")
)

// Transport is the blocking HID connection a driver reads input reports
// from and writes output reports to. Implementations perform no internal
// retries and enforce no timeouts; callers needing bounded latency must
// impose them in the transport.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Controller is the common behaviour of grid controller drivers: an event
// source that also drives LEDs.
type Controller interface {
	event.Source

	// SetButtonLED sets the LED behind a button. Buttons without an LED
	// are a no-op.
	SetButtonLED(b event.Button, c colour.Colour)

	// SetPadLED sets the RGB LED behind a pad (0-15).
	SetPadLED(pad uint8, c colour.Colour)
}
