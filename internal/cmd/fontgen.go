package cmd

import (
	"fmt"
	"os"

	"github.com/maschinekit/maschine/internal/bitmap"
	"github.com/maschinekit/maschine/internal/fontgen"
)

// Fontgen converts a bitmap glyph grid into Go source for a font table.
// The expected input is a 160x30 pixel grid of 5x5 cells covering ASCII
// 0x20-0x7F, drawn black on white with unused columns marked in any other
// colour.
type Fontgen struct {
	File    string `arg:"" name:"file" help:"Bitmap file to convert" type:"existingfile"`
	Width   int    `help:"Glyph cell width in pixels" default:"5"`
	Height  int    `help:"Glyph cell height in pixels" default:"5"`
	Package string `help:"Package name for the generated source" default:"fonts"`
	Var     string `help:"Variable name for the generated table" default:"Generated"`
}

// Run is called by Kong when the fontgen command is executed.
func (f *Fontgen) Run() error {
	data, err := os.ReadFile(f.File)
	if err != nil {
		return err
	}
	img, err := bitmap.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", f.File, err)
	}

	glyphs := fontgen.Extract(img, f.Width, f.Height)
	if len(glyphs) == 0 {
		return fmt.Errorf("image %dx%d is smaller than one %dx%d cell",
			img.Width(), img.Height(), f.Width, f.Height)
	}
	return fontgen.WriteSource(os.Stdout, glyphs, f.Width, f.Package, f.Var)
}
