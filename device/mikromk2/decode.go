package mikromk2

import (
	"github.com/maschinekit/maschine/colour"
	"github.com/maschinekit/maschine/device"
	"github.com/maschinekit/maschine/event"
)

// processButtons decodes a button report payload: bytes 0-3 hold the
// button bitmask, byte 4 the encoder's cyclic 0-15 position. Events are
// emitted only on state transitions.
func (d *Driver) processButtons(buf []byte, ctx *event.Context) error {
	if len(buf) < 5 {
		return device.ErrInvalidReport
	}

	for slot := scanShift; slot < scanNone; slot++ {
		pressed := buf[slot>>3]&(1<<(slot%8)) != 0
		if pressed == d.buttonStates[slot] {
			continue
		}
		d.buttonStates[slot] = pressed

		if slot == scanShift {
			// Shift is a latched modifier, never an event. Its LED
			// tracks the key directly.
			d.shiftPressed = pressed
			c := colour.Black
			if pressed {
				c = colour.White
			}
			d.setLED(ledShift, c)
			continue
		}

		ctx.Add(event.ButtonChange{
			Button:  scanButtons[slot],
			Pressed: pressed,
			Shift:   d.shiftPressed,
		})
	}

	if value := buf[4]; value != d.encoderValue {
		// Forward (Down) on increment or on the 15 -> 0 wrap; the
		// explicit 0 -> 15 wrap and everything else is backward (Up).
		direction := event.Up
		if (d.encoderValue < value || (d.encoderValue == 0x0F && value == 0x00)) &&
			!(d.encoderValue == 0x00 && value == 0x0F) {
			direction = event.Down
		}
		d.encoderValue = value
		ctx.Add(event.EncoderChange{
			Encoder:   0,
			Direction: direction,
			Shift:     d.shiftPressed,
		})
	}

	return nil
}

// processPads decodes a pad-scan payload of sixteen two-byte channels.
// The raw 12-bit pressure always updates pad state; an event fires while
// the pad is pressed or on the latched press -> release transition, so a
// zero-velocity release is delivered exactly once.
func (d *Driver) processPads(buf []byte, ctx *event.Context) error {
	if len(buf) < 64 {
		return device.ErrInvalidReport
	}

	for i := 0; i < 2*padCount; i += 2 {
		low, high := buf[i], buf[i+1]
		pad := high >> 4
		value := uint16(high&0x0F)<<8 | uint16(low)
		pressed := value > padPressThreshold

		d.padsData[pad] = value
		if pressed || d.padsStatus[pad] {
			d.padsStatus[pad] = pressed
			var velocity uint8
			if pressed {
				velocity = uint8(value >> 4)
			}
			ctx.Add(event.PadChange{
				Pad:      pad,
				Velocity: velocity,
				Shift:    d.shiftPressed,
			})
		}
	}

	return nil
}
