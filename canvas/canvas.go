// Package canvas provides a pixel-addressable raster abstraction for the
// device display, independent of the wire format used to transmit it.
//
// The buffer is laid out in bands: each byte holds a vertical slice of
// eight pixels, and row addressing throughout the package operates in
// band units (one row = 8 pixels of height).
package canvas

import "github.com/maschinekit/maschine/event"

// Glyph is a single font entry: the number of populated pixel columns and
// five vertical column bytes. Glyph data uses the low six bits of each
// column; the top two bits are reserved.
type Glyph struct {
	Width uint8
	Data  [5]uint8
}

// Font maps ASCII 0x20-0x7F to glyphs.
type Font [96]Glyph

// Canvas is a drawing surface parameterised by its pixel representation.
type Canvas[P any] interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// DataSize returns the backing buffer size in bytes.
	DataSize() int

	// Data returns the backing buffer, laid out for transmission.
	Data() []byte

	// IsDirty reports whether the surface changed since the dirty flag
	// was last cleared.
	IsDirty() bool

	// ClearDirtyFlag marks the surface as transmitted.
	ClearDirtyFlag()

	// Fill sets every pixel.
	Fill(colour P)

	// FillRow sets every pixel of one band row.
	FillRow(row int, colour P)

	// FillRows sets every pixel of the band rows in [start, end).
	FillRows(start, end int, colour P)

	// Invert flips every pixel.
	Invert()

	// InvertRow flips every pixel of one band row.
	InvertRow(row int)

	// InvertRowSlice flips the pixels of one band row between startCol
	// (inclusive) and endCol (exclusive).
	InvertRowSlice(row, startCol, endCol int)

	// SetPixel sets a single pixel. Out-of-range coordinates are
	// silently ignored.
	SetPixel(x, y int, colour P)

	// Pixel returns a single pixel. The second return value is false
	// for out-of-range coordinates.
	Pixel(x, y int) (P, bool)

	// CopyFrom replaces the buffer with the contents of another canvas
	// of the same pixel type.
	CopyFrom(other Canvas[P])

	// Print renders a string starting at the given band row and pixel
	// column. A newline resets the column and advances one row. There
	// is no wrapping or scrolling at the surface edges; overflow is the
	// caller's responsibility.
	Print(s string, row, col int, font *Font, colour P)

	// PrintChar renders one character and returns its advance width in
	// columns. Characters outside ASCII 0x20-0x7F render nothing and
	// return zero.
	PrintChar(r rune, row, col int, font *Font, colour P) int

	// VScrollRows shifts the band rows in [start, end) by one band in
	// the given direction, zero-filling the vacated edge.
	VScrollRows(start, end int, direction event.Direction)
}
