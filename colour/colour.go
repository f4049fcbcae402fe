// Package colour defines the RGB colour model used by the LED mapper and
// by callers assigning button and pad colours.
package colour

import "math/rand/v2"

// Colour is an RGB triplet. LED slots that are not RGB-capable reduce it
// to a single byte with As1Bit.
type Colour struct {
	R, G, B uint8
}

// Named colours.
var (
	Black = Colour{}
	White = Colour{R: 0xFF, G: 0xFF, B: 0xFF}
	Red   = Colour{R: 0xFF}
	Green = Colour{G: 0xFF}
	Blue  = Colour{B: 0xFF}
)

// palette holds the six pure hues returned by RandomIndexed, preferred
// where visually distinct feedback colours matter more than arbitrary
// RGB noise.
var palette = [6]Colour{
	{R: 0xFF},
	{G: 0xFF},
	{B: 0xFF},
	{R: 0xFF, G: 0xFF},
	{G: 0xFF, B: 0xFF},
	{R: 0xFF, B: 0xFF},
}

// New returns a colour from its components.
func New(r, g, b uint8) Colour {
	return Colour{R: r, G: g, B: b}
}

// Random returns a uniformly random colour.
func Random() Colour {
	v := rand.Uint32()
	return Colour{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}

// RandomIndexed returns a random colour from the fixed six-hue palette.
func RandomIndexed() Colour {
	return palette[rand.IntN(len(palette))]
}

// FromUint24 unpacks a colour from its 24-bit form. R occupies the low
// byte.
func FromUint24(v uint32) Colour {
	return Colour{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
	}
}

// Uint24 packs the colour into a 24-bit value with R in the low byte.
func (c Colour) Uint24() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// As1Bit reduces the colour to monochrome: 0xFF if any channel is above
// half brightness, 0x00 otherwise.
func (c Colour) As1Bit() uint8 {
	if c.R > 0x7F || c.G > 0x7F || c.B > 0x7F {
		return 0xFF
	}
	return 0x00
}
