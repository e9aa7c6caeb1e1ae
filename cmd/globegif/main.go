// Command globegif renders an animated rotating globe GIF from a packed
// 1-bit land mask.
//
// The texture file is the hexadecimal word list produced by tohex or
// imgpack. With -preview the animation is also played in the terminal as
// braille dots instead of opening the output in a viewer.
package main

import (
	"flag"
	"fmt"
	"image/gif"
	"log"
	"os"

	"github.com/kevin-cantwell/dotmatrix"

	"github.com/flavioheleno/globetrace"
	"github.com/flavioheleno/globetrace/hexpack"
	"github.com/flavioheleno/globetrace/image1bit"
)

var (
	texPath   = flag.String("texture", "data.txt", "Packed land mask file")
	texWidth  = flag.Int("texw", 512, "Texture width in pixels (multiple of 64)")
	texHeight = flag.Int("texh", 256, "Texture height in pixels")
	outPath   = flag.String("o", "globe.gif", "Output GIF file")
	width     = flag.Int("width", 500, "Frame width in pixels")
	height    = flag.Int("height", 500, "Frame height in pixels")
	frames    = flag.Int("frames", 200, "Number of frames in one rotation")
	delay     = flag.Int("delay", 3, "Per-frame delay in hundredths of a second")
	preview   = flag.Bool("preview", false, "Play the animation in the terminal")
)

func main() {
	flag.Parse()

	f, err := os.Open(*texPath)
	if err != nil {
		log.Fatalf("Failed to open texture: %v", err)
	}
	words, err := hexpack.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to parse texture: %v", err)
	}

	tex := image1bit.FromWords(words, *texWidth, *texHeight)

	r, err := globetrace.New(tex, &globetrace.Opts{W: *width, H: *height})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	g, err := r.Animate(*frames, *delay)
	if err != nil {
		log.Fatalf("Failed to render animation: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outPath, err)
	}
	if err := gif.EncodeAll(out, g); err != nil {
		out.Close()
		log.Fatalf("Failed to encode %s: %v", *outPath, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *outPath, err)
	}

	fmt.Printf("Wrote %d frames to %s\n", len(g.Image), *outPath)

	if *preview {
		enc := dotmatrix.NewGIFEncoder(dotmatrix.Config{Luminosity: 0.3})
		if err := enc.Encode(os.Stdout, g); err != nil {
			log.Fatalf("Failed to play preview: %v", err)
		}
	}
}
