// Package image1bit provides a 1-bit monochrome image format packed into 64-bit words.
//
// Pixels are stored 64 per uint64 word, LSB-first: bit 0 of a word is the
// leftmost pixel of its 64-pixel run. Rows are word-aligned, so image widths
// must be multiples of 64 and the stride is measured in words rather than
// bytes.
//
// Memory layout example for a 64-pixel row with pixels 0, 2 and 63 set:
//
//	Pixels: 0  1  2  3  ...  63
//	Bits:   1  0  1  0  ...  1
//	Word:   0x8000000000000005
//
// This is exactly the layout produced by package hexpack, which packs raw
// RGB data into word streams. FromWords adopts such a stream directly as an
// image without reshuffling bits.
//
// This package provides:
//
// - Bit: a color type representing a monochrome pixel (On/Off)
// - BitModel: a color model converting standard Go colors to Bit
// - WordLSB: an image.Image implementation over packed words
//
// Example usage:
//
//	// Create a 512x256 image
//	img := image1bit.NewWordLSB(image.Rect(0, 0, 512, 256))
//
//	// Set a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Get a pixel
//	bit := img.BitAt(10, 20)
//	println(bit.String())  // Output: On
//
//	// Adopt a packed word stream
//	words, _ := hexpack.Parse(text)
//	tex := image1bit.FromWords(words, 512, 256)
package image1bit
