// Command imgpack converts an image file into a packed land mask.
//
// The input (BMP, PNG, GIF or JPEG) is optionally resized to the texture
// dimensions, converted to grayscale, thresholded to 1-bit and written as
// the hexadecimal word list consumed by globegif. With -raw it writes the
// intermediate raw RGB triplets instead, the input format of tohex.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"github.com/kevin-cantwell/dotmatrix"
	"github.com/nfnt/resize"
	"github.com/sergeymakinen/go-bmp"

	_ "image/jpeg"
	_ "image/png"

	"github.com/flavioheleno/globetrace/hexpack"
)

var (
	outPath   = flag.String("o", "data.txt", "Output file")
	width     = flag.Int("width", 512, "Output width in pixels (0 keeps the source width)")
	height    = flag.Int("height", 256, "Output height in pixels (0 keeps the source height)")
	threshold = flag.Float64("threshold", 50, "Brightness cutoff in percent; brighter pixels become land")
	raw       = flag.Bool("raw", false, "Write raw RGB triplets instead of hex words")
	preview   = flag.Bool("preview", false, "Print the thresholded mask in the terminal")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: imgpack [flags] <image file>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	img, err := decode(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", flag.Arg(0), err)
	}

	if *width > 0 && *height > 0 {
		img = resize.Resize(uint(*width), uint(*height), img, resize.Lanczos3)
	}

	// Grayscale then threshold: land pixels end up at full intensity, so
	// the packer's first-channel test selects exactly them.
	g := gift.New(
		gift.Grayscale(),
		gift.Threshold(float32(*threshold)),
	)
	mask := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(mask, img)

	data := triplets(mask)

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outPath, err)
	}
	if *raw {
		_, err = out.Write(data)
	} else {
		err = hexpack.Encode(out, data)
	}
	if err != nil {
		out.Close()
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *outPath, err)
	}

	b := mask.Bounds()
	fmt.Printf("Packed %dx%d pixels into %s\n", b.Dx(), b.Dy(), *outPath)

	if *preview {
		if err := printMask(mask); err != nil {
			log.Fatalf("Failed to print preview: %v", err)
		}
	}
}

// decode reads an image file, dispatching BMP by extension and everything
// else through the registered stdlib decoders.
func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return bmp.Decode(f)
	}
	img, _, err := image.Decode(f)
	return img, err
}

// triplets flattens an image into the raw RGB byte sequence tohex reads.
func triplets(img image.Image) []byte {
	b := img.Bounds()
	data := make([]byte, 0, 3*b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			data = append(data, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}

	return data
}

// printMask renders the mask as braille dots via a single-frame GIF.
func printMask(img image.Image) error {
	b := img.Bounds()
	pal := image.NewPaletted(b, color.Palette{color.Black, color.White})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pal.Set(x, y, img.At(x, y))
		}
	}

	still := &gif.GIF{Image: []*image.Paletted{pal}, Delay: []int{0}}
	return dotmatrix.NewGIFEncoder(dotmatrix.Config{}).Encode(os.Stdout, still)
}
