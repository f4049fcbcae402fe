package canvas

import (
	"fmt"

	"github.com/maschinekit/maschine/event"
)

// Pixel is the two-valued pixel type of a monochrome surface.
type Pixel uint8

const (
	PixelOff Pixel = iota
	PixelOn
)

// fillByte returns the buffer byte representing eight pixels of p.
func fillByte(p Pixel) byte {
	if p == PixelOn {
		return 0xFF
	}
	return 0x00
}

// Monochrome is a 1-bit-per-pixel Canvas. The width should be a multiple
// of eight for the banded layout to cover the surface exactly.
type Monochrome struct {
	width  int
	height int
	buffer []byte
	dirty  bool
}

var _ Canvas[Pixel] = (*Monochrome)(nil)

// NewMonochrome returns a cleared surface. It starts dirty so the first
// transmission always happens.
func NewMonochrome(width, height int) *Monochrome {
	return &Monochrome{
		width:  width,
		height: height,
		buffer: make([]byte, width*height/8),
		dirty:  true,
	}
}

// NewMonochromeFromBuffer returns a surface initialised from an existing
// buffer, which must be exactly width*height/8 bytes.
func NewMonochromeFromBuffer(width, height int, buffer []byte) (*Monochrome, error) {
	size := width * height / 8
	if len(buffer) != size {
		return nil, fmt.Errorf("buffer must be %d bytes, got %d", size, len(buffer))
	}
	c := NewMonochrome(width, height)
	copy(c.buffer, buffer)
	return c, nil
}

func (c *Monochrome) Width() int  { return c.width }
func (c *Monochrome) Height() int { return c.height }

func (c *Monochrome) DataSize() int { return len(c.buffer) }
func (c *Monochrome) Data() []byte  { return c.buffer }

func (c *Monochrome) IsDirty() bool   { return c.dirty }
func (c *Monochrome) ClearDirtyFlag() { c.dirty = false }

func (c *Monochrome) Fill(colour Pixel) {
	v := fillByte(colour)
	for i := range c.buffer {
		c.buffer[i] = v
	}
	c.dirty = true
}

func (c *Monochrome) FillRow(row int, colour Pixel) {
	c.FillRows(row, row+1, colour)
}

func (c *Monochrome) FillRows(start, end int, colour Pixel) {
	v := fillByte(colour)
	for i := start * c.width; i < end*c.width; i++ {
		c.buffer[i] = v
	}
	c.dirty = true
}

func (c *Monochrome) Invert() {
	for i := range c.buffer {
		c.buffer[i] = ^c.buffer[i]
	}
	c.dirty = true
}

func (c *Monochrome) InvertRow(row int) {
	c.InvertRowSlice(row, 0, c.width)
}

func (c *Monochrome) InvertRowSlice(row, startCol, endCol int) {
	start := row*c.width + startCol
	for i := start; i < start+(endCol-startCol); i++ {
		c.buffer[i] = ^c.buffer[i]
	}
	c.dirty = true
}

func (c *Monochrome) SetPixel(x, y int, colour Pixel) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}

	idx := c.width*(y>>3) + x
	if colour == PixelOn {
		c.buffer[idx] |= 1 << (y & 7)
	} else {
		c.buffer[idx] &^= 1 << (y & 7)
	}
	c.dirty = true
}

func (c *Monochrome) Pixel(x, y int) (Pixel, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return PixelOff, false
	}

	if c.buffer[c.width*(y>>3)+x]>>(y&7)&1 != 0 {
		return PixelOn, true
	}
	return PixelOff, true
}

func (c *Monochrome) CopyFrom(other Canvas[Pixel]) {
	c.buffer = append(c.buffer[:0], other.Data()...)
	c.dirty = true
}

func (c *Monochrome) Print(s string, row, col int, font *Font, colour Pixel) {
	for _, r := range s {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col += c.PrintChar(r, row, col, font, colour) + 1
	}
}

func (c *Monochrome) PrintChar(r rune, row, col int, font *Font, colour Pixel) int {
	if r < 0x20 || r > 0x7F {
		return 0
	}

	glyph := font[r-0x20]
	for i := 0; i < int(glyph.Width); i++ {
		idx := row*c.width + col + i
		if idx < 0 || idx >= len(c.buffer) {
			continue
		}
		// The top two bits of each band are reserved, so glyph columns
		// are shifted up by two pixels.
		b := glyph.Data[i] << 2
		if colour == PixelOff {
			b = ^b
		}
		c.buffer[idx] = b
	}
	c.dirty = true
	return int(glyph.Width)
}

func (c *Monochrome) VScrollRows(start, end int, direction event.Direction) {
	if start > end {
		start, end = end, start
	}
	lo := start * c.width
	hi := end * c.width

	switch direction {
	case event.Up:
		for i := hi - 1; i >= lo; i-- {
			c.buffer[i+c.width] = c.buffer[i]
		}
		for i := lo; i < lo+c.width; i++ {
			c.buffer[i] = 0
		}
	case event.Down:
		for i := lo; i < hi; i++ {
			c.buffer[i] = c.buffer[i+c.width]
		}
		for i := hi; i < hi+c.width; i++ {
			c.buffer[i] = 0
		}
	}
	c.dirty = true
}
