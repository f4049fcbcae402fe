// Package fontgen slices a pixel grid into font glyphs and emits them as
// Go source. Glyph artwork is drawn in black on white; a column belongs to
// a glyph only while the top pixel of its cell is pure black or white,
// which is how artists mark the used width inside a fixed cell.
package fontgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/maschinekit/maschine/internal/bitmap"
)

// Image is the subset of bitmap.Image the extractor reads.
type Image interface {
	Width() int
	Height() int
	Pixel(x, y int) bitmap.Colour
}

// Glyph is one extracted cell. Data holds one byte per populated column
// with bit 0 as the top pixel row.
type Glyph struct {
	Width int
	Data  []uint8
}

func extractGlyph(img Image, xOffset, yOffset, width, height int) Glyph {
	var data []uint8
	for x := xOffset; x < xOffset+width; x++ {
		top := img.Pixel(x, yOffset)
		if top != bitmap.Black && top != bitmap.White {
			continue
		}
		var column uint8
		for y := 0; y < height; y++ {
			if img.Pixel(x, yOffset+y) == bitmap.Black {
				column |= 1 << y
			}
		}
		data = append(data, column)
	}
	return Glyph{Width: len(data), Data: data}
}

// Extract walks the grid row by row and returns one glyph per full cell.
// Partial cells at the right and bottom edges are ignored.
func Extract(img Image, cellWidth, cellHeight int) []Glyph {
	var glyphs []Glyph
	for y := 0; y < img.Height()/cellHeight; y++ {
		for x := 0; x < img.Width()/cellWidth; x++ {
			glyphs = append(glyphs, extractGlyph(img, x*cellWidth, y*cellHeight, cellWidth, cellHeight))
		}
	}
	return glyphs
}

// WriteSource emits the glyphs as a Go source file declaring varName in
// package pkg. A 96-glyph table with 5-wide cells is emitted as a
// canvas.Font; any other shape gets an anonymous array type.
func WriteSource(w io.Writer, glyphs []Glyph, cellWidth int, pkg, varName string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by maschine fontgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	if len(glyphs) == 96 && cellWidth == 5 {
		fmt.Fprintf(&b, "import \"github.com/maschinekit/maschine/canvas\"\n\n")
		fmt.Fprintf(&b, "var %s = canvas.Font{\n", varName)
	} else {
		fmt.Fprintf(&b, "var %s = [%d]struct {\n", varName, len(glyphs))
		fmt.Fprintf(&b, "\tWidth uint8\n")
		fmt.Fprintf(&b, "\tData  [%d]uint8\n", cellWidth)
		fmt.Fprintf(&b, "}{\n")
	}

	for i, g := range glyphs {
		cols := make([]string, cellWidth)
		for c := range cols {
			cols[c] = "0"
			if c < len(g.Data) {
				cols[c] = fmt.Sprint(g.Data[c])
			}
		}
		fmt.Fprintf(&b, "\t{Width: %d, Data: [%d]uint8{%s}}, // %q\n",
			g.Width, cellWidth, strings.Join(cols, ", "), rune(0x20+i))
	}
	fmt.Fprintf(&b, "}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
