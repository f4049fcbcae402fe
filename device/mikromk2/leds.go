package mikromk2

import (
	"github.com/maschinekit/maschine/colour"
	"github.com/maschinekit/maschine/event"
)

// SetButtonLED sets the LED behind a button. Buttons without an LED are a
// silent no-op.
func (d *Driver) SetButtonLED(b event.Button, c colour.Colour) {
	if slot, ok := buttonLEDs[b]; ok {
		d.setLED(slot, c)
	}
}

// SetPadLED sets the RGB LED behind a pad. Out-of-range pads are a silent
// no-op.
func (d *Driver) SetPadLED(pad uint8, c colour.Colour) {
	if int(pad) < len(padLEDs) {
		d.setLED(padLEDs[pad], c)
	}
}

// setLED stores a colour into the LED table. RGB slots take three bytes
// with each channel halved (the hardware caps brightness at 7 bits);
// monochrome slots take the 1-bit reduction. The table is marked dirty
// only when the stored bytes actually change.
func (d *Driver) setLED(slot uint8, c colour.Colour) {
	base := int(slot)

	if isRGBSlot(slot) {
		r, g, b := c.R>>1, c.G>>1, c.B>>1
		if r != d.leds[base] || g != d.leds[base+1] || b != d.leds[base+2] {
			d.ledsDirty = true
		}
		d.leds[base] = r
		d.leds[base+1] = g
		d.leds[base+2] = b
		return
	}

	m := c.As1Bit()
	if m != d.leds[base] {
		d.ledsDirty = true
	}
	d.leds[base] = m
}

// isRGBSlot reports whether a LED slot is RGB-capable: the Group slot and
// the sixteen pad slots.
func isRGBSlot(slot uint8) bool {
	return slot == ledGroup || (slot >= ledPad13 && slot <= ledPad04)
}
