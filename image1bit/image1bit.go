// Package image1bit provides a 1-bit monochrome image format packed into
// 64-bit words.
//
// Pixels are stored 64 per word, LSB-first: within a word, bit 0 is the
// leftmost pixel. Rows are word-aligned, so the stride is measured in words.
// This is the in-memory form of the word stream produced by package hexpack.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel: set (On) or clear (Off).
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA: white when set, black when clear.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion with a half-intensity threshold.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// WordLSB is a 1-bit image where pixels are packed into uint64 words,
// LSB-first, 64 pixels per word, row-major with word-aligned rows.
type WordLSB struct {
	Pix    []uint64        // Pixel data (64 pixels per word)
	Stride int             // Words per row
	Rect   image.Rectangle // Image bounds
}

// NewWordLSB creates a new WordLSB image with the specified bounds.
// The width must be a multiple of 64 (since rows are word-aligned).
func NewWordLSB(r image.Rectangle) *WordLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &WordLSB{Rect: r}
	}
	if w%64 != 0 {
		panic("image1bit: width must be a multiple of 64")
	}

	stride := w / 64
	return &WordLSB{
		Pix:    make([]uint64, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// FromWords adopts a packed word slice as a w-by-h image. The slice is
// truncated or zero-padded to the stride*h words the bounds require; when no
// padding is needed the slice is used directly, without copying.
func FromWords(words []uint64, w, h int) *WordLSB {
	if w%64 != 0 {
		panic("image1bit: width must be a multiple of 64")
	}

	stride := w / 64
	need := stride * h
	if len(words) > need {
		words = words[:need]
	} else if len(words) < need {
		padded := make([]uint64, need)
		copy(padded, words)
		words = padded
	}

	return &WordLSB{
		Pix:    words,
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// ColorModel returns the color model of the image.
func (p *WordLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *WordLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *WordLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Out-of-bounds pixels are Off.
func (p *WordLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, shift := p.pixOffset(x, y)
	return Bit(p.Pix[offset]>>shift&1 != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *WordLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *WordLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, shift := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= 1 << shift
	} else {
		p.Pix[offset] &^= 1 << shift
	}
}

// pixOffset returns the word offset and bit shift for the pixel at (x, y).
// Memory layout: each word holds 64 pixels, bit 0 being the leftmost.
func (p *WordLSB) pixOffset(x, y int) (offset int, shift uint) {
	x -= p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + x/64
	shift = uint(x % 64)
	return
}
