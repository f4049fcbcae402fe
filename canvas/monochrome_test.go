package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maschinekit/maschine/canvas"
	"github.com/maschinekit/maschine/event"
)

// testFont has a recognisable glyph for 'A' (index 0x21) and a two-column
// space so cursor advancement is easy to check.
func testFont() *canvas.Font {
	var f canvas.Font
	f[' '-0x20] = canvas.Glyph{Width: 2}
	f['A'-0x20] = canvas.Glyph{Width: 3, Data: [5]uint8{0x1E, 0x05, 0x1E}}
	f['!'-0x20] = canvas.Glyph{Width: 1, Data: [5]uint8{0x17}}
	return &f
}

func TestFillProducesFullBuffer(t *testing.T) {
	c := canvas.NewMonochrome(128, 64)
	assert.Equal(t, 128*64/8, c.DataSize())

	c.Fill(canvas.PixelOn)
	for _, b := range c.Data() {
		assert.Equal(t, byte(0xFF), b)
	}

	c.Fill(canvas.PixelOff)
	for _, b := range c.Data() {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestInvertIsAnInvolution(t *testing.T) {
	c := canvas.NewMonochrome(16, 16)
	c.SetPixel(3, 5, canvas.PixelOn)
	c.SetPixel(12, 11, canvas.PixelOn)

	original := append([]byte(nil), c.Data()...)
	c.Invert()
	assert.NotEqual(t, original, c.Data())
	c.Invert()
	assert.Equal(t, original, c.Data())
}

func TestSetPixelBandLayout(t *testing.T) {
	c := canvas.NewMonochrome(16, 16)

	// y=10 lands in band row 1, bit 2; x=5 is the column within the band.
	c.SetPixel(5, 10, canvas.PixelOn)
	assert.Equal(t, byte(1<<2), c.Data()[16+5])

	p, ok := c.Pixel(5, 10)
	assert.True(t, ok)
	assert.Equal(t, canvas.PixelOn, p)

	c.SetPixel(5, 10, canvas.PixelOff)
	p, ok = c.Pixel(5, 10)
	assert.True(t, ok)
	assert.Equal(t, canvas.PixelOff, p)
}

func TestPixelOutOfRange(t *testing.T) {
	c := canvas.NewMonochrome(16, 16)

	// Out-of-range writes are dropped, not applied or panicking.
	c.SetPixel(16, 0, canvas.PixelOn)
	c.SetPixel(0, 16, canvas.PixelOn)
	c.SetPixel(-1, 0, canvas.PixelOn)
	for _, b := range c.Data() {
		assert.Equal(t, byte(0), b)
	}

	_, ok := c.Pixel(16, 0)
	assert.False(t, ok)
	_, ok = c.Pixel(0, 16)
	assert.False(t, ok)
	_, ok = c.Pixel(-1, -1)
	assert.False(t, ok)
}

func TestDirtyFlagLifecycle(t *testing.T) {
	c := canvas.NewMonochrome(16, 16)
	assert.True(t, c.IsDirty(), "fresh canvas transmits once")

	c.ClearDirtyFlag()
	assert.False(t, c.IsDirty())

	c.SetPixel(0, 0, canvas.PixelOn)
	assert.True(t, c.IsDirty())

	c.ClearDirtyFlag()
	c.InvertRow(0)
	assert.True(t, c.IsDirty())

	c.ClearDirtyFlag()
	c.VScrollRows(0, 1, event.Down)
	assert.True(t, c.IsDirty())
}

func TestFillRows(t *testing.T) {
	c := canvas.NewMonochrome(16, 32) // 4 band rows
	c.FillRows(1, 3, canvas.PixelOn)

	data := c.Data()
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(0x00), data[i])
	}
	for i := 16; i < 48; i++ {
		assert.Equal(t, byte(0xFF), data[i])
	}
	for i := 48; i < 64; i++ {
		assert.Equal(t, byte(0x00), data[i])
	}
}

func TestInvertRowSlice(t *testing.T) {
	c := canvas.NewMonochrome(16, 16)
	c.InvertRowSlice(1, 4, 8)

	data := c.Data()
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(0x00), data[i], "row 0 untouched")
	}
	for i := 16; i < 32; i++ {
		if i >= 20 && i < 24 {
			assert.Equal(t, byte(0xFF), data[i])
		} else {
			assert.Equal(t, byte(0x00), data[i])
		}
	}
}

func TestPrintChar(t *testing.T) {
	font := testFont()
	c := canvas.NewMonochrome(16, 16)

	w := c.PrintChar('A', 1, 2, font, canvas.PixelOn)
	assert.Equal(t, 3, w)

	data := c.Data()
	// Glyph columns land in band row 1 shifted up two pixels.
	assert.Equal(t, byte(0x1E<<2), data[16+2])
	assert.Equal(t, byte(0x05<<2), data[16+3])
	assert.Equal(t, byte(0x1E<<2), data[16+4])
}

func TestPrintCharInverse(t *testing.T) {
	font := testFont()
	c := canvas.NewMonochrome(16, 16)

	c.PrintChar('!', 0, 0, font, canvas.PixelOff)
	assert.Equal(t, byte(^(uint8(0x17) << 2)), c.Data()[0])
}

func TestPrintCharUnsupportedRune(t *testing.T) {
	font := testFont()
	c := canvas.NewMonochrome(16, 16)

	assert.Equal(t, 0, c.PrintChar('\t', 0, 0, font, canvas.PixelOn))
	assert.Equal(t, 0, c.PrintChar(rune(0x80), 0, 0, font, canvas.PixelOn))
	for _, b := range c.Data() {
		assert.Equal(t, byte(0), b)
	}
}

func TestPrintAdvancesAndWraps(t *testing.T) {
	font := testFont()
	c := canvas.NewMonochrome(32, 16)

	c.Print("A\n!", 0, 0, font, canvas.PixelOn)

	data := c.Data()
	// 'A' on row 0 at column 0.
	assert.Equal(t, byte(0x1E<<2), data[0])
	assert.Equal(t, byte(0x05<<2), data[1])
	assert.Equal(t, byte(0x1E<<2), data[2])
	// Newline resets the column, '!' lands on row 1 column 0.
	assert.Equal(t, byte(0x17<<2), data[32])
}

func TestPrintSpacerColumn(t *testing.T) {
	font := testFont()
	c := canvas.NewMonochrome(32, 8)

	c.Print("!!", 0, 0, font, canvas.PixelOn)

	data := c.Data()
	assert.Equal(t, byte(0x17<<2), data[0])
	assert.Equal(t, byte(0x00), data[1], "one spacer column between glyphs")
	assert.Equal(t, byte(0x17<<2), data[2])
}

func TestVScrollRows(t *testing.T) {
	c := canvas.NewMonochrome(8, 32) // 4 band rows of 8 bytes
	c.FillRow(1, canvas.PixelOn)
	c.ClearDirtyFlag()

	// Up moves the marked row away from the top edge, zero-filling row 1.
	c.VScrollRows(1, 2, event.Up)
	data := c.Data()
	for i := 8; i < 16; i++ {
		assert.Equal(t, byte(0x00), data[i])
	}
	for i := 16; i < 24; i++ {
		assert.Equal(t, byte(0xFF), data[i])
	}

	// Down moves it back.
	c.VScrollRows(1, 2, event.Down)
	data = c.Data()
	for i := 8; i < 16; i++ {
		assert.Equal(t, byte(0xFF), data[i])
	}
	for i := 16; i < 24; i++ {
		assert.Equal(t, byte(0x00), data[i])
	}
}

func TestCopyFrom(t *testing.T) {
	src := canvas.NewMonochrome(16, 16)
	src.Fill(canvas.PixelOn)

	dst := canvas.NewMonochrome(16, 16)
	dst.ClearDirtyFlag()
	dst.CopyFrom(src)

	assert.Equal(t, src.Data(), dst.Data())
	assert.True(t, dst.IsDirty())
}

func TestNewMonochromeFromBuffer(t *testing.T) {
	buf := make([]byte, 16*16/8)
	buf[0] = 0xAA

	c, err := canvas.NewMonochromeFromBuffer(16, 16, buf)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), c.Data()[0])
	assert.True(t, c.IsDirty())

	_, err = canvas.NewMonochromeFromBuffer(16, 16, make([]byte, 3))
	assert.Error(t, err)
}
