// Package hexpack converts raw RGB pixel data into packed 64-bit words and
// renders them as a comma-separated list of hexadecimal literals.
//
// Each consecutive byte triplet in the input is one pixel. A pixel maps to a
// single bit: 1 when its first channel is at full intensity (255), 0
// otherwise. Bits are inserted LSB-first, 64 per word, and the final partial
// word is flushed as-is. The textual form is "0x" followed by exactly 16
// uppercase hex digits per word, words joined by ", ".
package hexpack

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WordBits is the number of pixels packed into a single output word.
const WordBits = 64

// Pack converts raw RGB triplets into packed words. Bit i%64 of word i/64 is
// set when the first channel of pixel i equals 255. Trailing bytes beyond the
// last complete triplet are ignored. An empty input yields a nil slice.
func Pack(data []byte) []uint64 {
	numPixels := len(data) / 3
	if numPixels == 0 {
		return nil
	}

	words := make([]uint64, 0, (numPixels+WordBits-1)/WordBits)

	var bits uint64
	numBits := 0
	for i := 0; i < numPixels; i++ {
		if data[3*i] == 255 {
			bits |= 1 << numBits
		}
		numBits++
		if numBits == WordBits || i == numPixels-1 {
			words = append(words, bits)
			bits = 0
			numBits = 0
		}
	}

	return words
}

// Format renders words as "0x"-prefixed 16-digit uppercase hex literals
// joined by ", ". An empty slice yields an empty string.
func Format(words []uint64) string {
	var b strings.Builder
	b.Grow(len(words) * 20)

	for i, w := range words {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%016X", w)
	}

	return b.String()
}

// Encode packs data and writes the formatted word list to w.
func Encode(w io.Writer, data []byte) error {
	_, err := io.WriteString(w, Format(Pack(data)))
	return err
}

// Parse is the inverse of Format. It accepts a comma-separated list of
// "0x"-prefixed hexadecimal literals, tolerating surrounding whitespace and
// newlines between words. An empty (or all-whitespace) input yields a nil
// slice.
func Parse(s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	words := make([]uint64, 0, len(parts))
	for _, part := range parts {
		tok := strings.TrimSpace(part)
		rest, ok := strings.CutPrefix(tok, "0x")
		if !ok {
			return nil, fmt.Errorf("hexpack: word %q missing 0x prefix", tok)
		}
		w, err := strconv.ParseUint(rest, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("hexpack: invalid word %q: %w", tok, err)
		}
		words = append(words, w)
	}

	return words, nil
}

// Decode reads r to the end and parses the word list.
func Decode(r io.Reader) ([]uint64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(buf))
}
