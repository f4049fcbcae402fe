// Package bitmap is a cut-down Windows bitmap loader for the font
// converter. It supports uncompressed version-4-header images at 4, 8 and
// 24 bits per pixel, ignores the colour space information, and flips the
// pixel buffer so the origin is the top left.
package bitmap

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decoding errors. All are fatal; there is no recovery path.
var (
	ErrInvalidSignature       = errors.New("bitmap signature is invalid or unsupported")
	ErrUnsupportedVersion     = errors.New("invalid or unsupported bitmap format version")
	ErrUnsupportedCompression = errors.New("invalid or unsupported compression method")
	ErrUnsupportedBitDepth    = errors.New("invalid or unsupported bit depth")
	ErrTruncated              = errors.New("bitmap data is truncated")
)

const (
	signature = 0x4D42 // "BM"

	fileHeaderSize = 14
	dibV4Size      = 108
)

// Colour is one decoded pixel.
type Colour struct {
	R, G, B uint8
}

var (
	// Pure black and white mark glyph pixels in font grid bitmaps.
	Black = Colour{}
	White = Colour{R: 0xFF, G: 0xFF, B: 0xFF}
)

// Image is a decoded bitmap with top-left origin addressing.
type Image struct {
	width        int
	height       int
	bitsPerPixel int
	pixels       []Colour // file order: bottom row first
}

func (img *Image) Width() int        { return img.width }
func (img *Image) Height() int       { return img.height }
func (img *Image) BitsPerPixel() int { return img.bitsPerPixel }

// Pixel returns the pixel at (x, y) with the origin at the top left.
func (img *Image) Pixel(x, y int) Colour {
	return img.pixels[(img.height-y-1)*img.width+x]
}

func (img *Image) String() string {
	return fmt.Sprintf("Width: %d\nHeight: %d\nBitDepth: %dbpp", img.width, img.height, img.bitsPerPixel)
}

// reader tracks an offset into the raw file bytes.
type reader struct {
	data []byte
	off  int
}

func (r *reader) need(n int) error {
	if r.off+n > len(r.data) {
		return ErrTruncated
	}
	return nil
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

// Decode parses a whole bitmap file.
func Decode(data []byte) (*Image, error) {
	r := &reader{data: data}

	sig, err := r.u16()
	if err != nil {
		return nil, err
	}
	if sig != signature {
		return nil, ErrInvalidSignature
	}

	// Remainder of the file header: size, reserved, pixel data offset.
	if _, err := r.u32(); err != nil {
		return nil, err
	}
	if _, err := r.u32(); err != nil {
		return nil, err
	}
	pixelOffset, err := r.u32()
	if err != nil {
		return nil, err
	}

	headerSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	if headerSize != dibV4Size {
		return nil, ErrUnsupportedVersion
	}

	width, err := r.i32()
	if err != nil {
		return nil, err
	}
	height, err := r.i32()
	if err != nil {
		return nil, err
	}
	if _, err := r.u16(); err != nil { // planes
		return nil, err
	}
	bpp, err := r.u16()
	if err != nil {
		return nil, err
	}
	compression, err := r.u32()
	if err != nil {
		return nil, err
	}
	if compression != 0 {
		return nil, ErrUnsupportedCompression
	}
	if _, err := r.u32(); err != nil { // data size
		return nil, err
	}
	if _, err := r.u32(); err != nil { // x pixels per metre
		return nil, err
	}
	if _, err := r.u32(); err != nil { // y pixels per metre
		return nil, err
	}
	colourCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	if _, err := r.u32(); err != nil { // important colours
		return nil, err
	}

	img := &Image{
		width:        abs(int(width)),
		height:       abs(int(height)),
		bitsPerPixel: int(bpp),
	}

	var palette []Colour
	switch bpp {
	case 4, 8:
		// The colour table follows the full v4 header.
		n := int(colourCount)
		if n == 0 {
			n = 1 << bpp
		}
		palette, err = readPalette(data, fileHeaderSize+dibV4Size, n)
		if err != nil {
			return nil, err
		}
	case 24:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	if err := readPixelData(img, data, int(pixelOffset), palette); err != nil {
		return nil, err
	}
	return img, nil
}

func readPalette(data []byte, offset, count int) ([]Colour, error) {
	if offset+4*count > len(data) {
		return nil, ErrTruncated
	}
	palette := make([]Colour, count)
	for i := range palette {
		entry := data[offset+4*i:]
		palette[i] = Colour{R: entry[2], G: entry[1], B: entry[0]}
	}
	return palette, nil
}

// readPixelData fills the pixel buffer in file order (bottom row first).
// Rows are padded to four-byte boundaries.
func readPixelData(img *Image, data []byte, offset int, palette []Colour) error {
	rowSize := (img.bitsPerPixel*img.width + 31) / 32 * 4
	if offset < 0 || offset+rowSize*img.height > len(data) {
		return ErrTruncated
	}

	img.pixels = make([]Colour, 0, img.width*img.height)
	for y := 0; y < img.height; y++ {
		row := data[offset+y*rowSize:]
		for x := 0; x < img.width; x++ {
			switch img.bitsPerPixel {
			case 24:
				b, g, r := row[3*x], row[3*x+1], row[3*x+2]
				img.pixels = append(img.pixels, Colour{R: r, G: g, B: b})
			case 8:
				idx := int(row[x])
				if idx >= len(palette) {
					return ErrTruncated
				}
				img.pixels = append(img.pixels, palette[idx])
			case 4:
				idx := int(row[x/2])
				if x%2 == 0 {
					idx >>= 4
				} else {
					idx &= 0x0F
				}
				if idx >= len(palette) {
					return ErrTruncated
				}
				img.pixels = append(img.pixels, palette[idx])
			}
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
