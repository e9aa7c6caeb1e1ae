// Command globedisplay plays the rotating globe animation on an SSD1306
// OLED connected via SPI.
//
// Hardware Setup:
//
// Connect your SSD1306 display via SPI:
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        3.3V
//	D0/CLK     GPIO11 (SPI0 CLK)
//	D1/MOSI    GPIO10 (SPI0 MOSI)
//	DC         GPIO25 (configurable)
//	CS         GPIO8 (SPI0 CE0) or GND
//	RES        Optional reset GPIO
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/flavioheleno/globetrace"
	"github.com/flavioheleno/globetrace/hexpack"
	"github.com/flavioheleno/globetrace/image1bit"
	"github.com/flavioheleno/globetrace/ssd1306"
)

var (
	texPath   = flag.String("texture", "data.txt", "Packed land mask file")
	texWidth  = flag.Int("texw", 512, "Texture width in pixels (multiple of 64)")
	texHeight = flag.Int("texh", 256, "Texture height in pixels")
	spiBus    = flag.String("spi", "", "SPI bus name (empty for default)")
	dcPin     = flag.String("dc", "GPIO25", "Data/Command pin name")
	frames    = flag.Int("frames", 100, "Number of frames in one rotation")
	delay     = flag.Int("delay", 5, "Per-frame delay in hundredths of a second")
	rotated   = flag.Bool("rotated", false, "Rotate the display 180°")
)

func main() {
	flag.Parse()

	// Initialize periph.io
	if _, err := host.Init(); err != nil {
		log.Fatalf("Failed to initialize periph.io: %v", err)
	}

	// Open SPI bus
	b, err := spireg.Open(*spiBus)
	if err != nil {
		log.Fatalf("Failed to open SPI bus: %v", err)
	}
	defer b.Close()

	// Get DC GPIO pin
	pin := gpioreg.ByName(*dcPin)
	if pin == nil {
		log.Fatalf("GPIO pin %s not found", *dcPin)
	}

	// Create display device
	dev, err := ssd1306.NewSPI(b, pin, &ssd1306.Opts{
		W:       128,
		H:       64,
		Rotated: *rotated,
	})
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}
	defer dev.Halt()

	fmt.Printf("Display initialized: %v\n", dev)

	masks, err := renderMasks(dev.Bounds())
	if err != nil {
		log.Fatalf("Failed to render animation: %v", err)
	}

	fmt.Printf("Playing %d frames, Ctrl-C to stop\n", len(masks))
	for i := 0; ; i = (i + 1) % len(masks) {
		if err := dev.Draw(dev.Bounds(), masks[i], image.Point{}); err != nil {
			log.Fatalf("Failed to draw frame %d: %v", i, err)
		}
		time.Sleep(time.Duration(*delay) * 10 * time.Millisecond)
	}
}

// renderMasks renders the full rotation at display resolution and reduces
// each frame to 1-bit: land lit, ocean and background dark.
func renderMasks(bounds image.Rectangle) ([]*image1bit.WordLSB, error) {
	f, err := os.Open(*texPath)
	if err != nil {
		return nil, err
	}
	words, err := hexpack.Decode(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	tex := image1bit.FromWords(words, *texWidth, *texHeight)

	r, err := globetrace.New(tex, &globetrace.Opts{W: bounds.Dx(), H: bounds.Dy()})
	if err != nil {
		return nil, err
	}

	g, err := r.Animate(*frames, *delay)
	if err != nil {
		return nil, err
	}

	masks := make([]*image1bit.WordLSB, len(g.Image))
	for i, frame := range g.Image {
		mask := image1bit.NewWordLSB(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				// Palette indices 5-8 are the land shades.
				mask.SetBit(x, y, image1bit.Bit(frame.ColorIndexAt(x, y) >= 5))
			}
		}
		masks[i] = mask
	}

	return masks, nil
}
