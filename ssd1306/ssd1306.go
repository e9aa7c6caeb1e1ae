// Package ssd1306 controls a SSD1306 OLED display via SPI.
//
// The SSD1306 is a 1-bit monochrome OLED controller supporting up to 128x64
// pixels. Display RAM is organized in pages of 8 rows, each byte holding 8
// vertically stacked pixels with the least significant bit on top.
//
// See cmd/globedisplay for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/globetrace/image1bit"
)

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be a multiple of 64 and ≤128)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	// Rotation and COM wiring
	Rotated    bool // 180° rotation
	Sequential bool // Sequential COM pin configuration (common on 128x32 panels)

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect image.Rectangle

	// Pixel buffers
	buffer []byte             // Current frame, page-packed
	next   *image1bit.WordLSB // For lazy double buffering
	staged []byte             // Page-packed form of next

	// State
	halted bool
}

// NewSPI creates a new SSD1306 device connected via SPI.
//
// The SPI port is configured for 8MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (128x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	}

	if opts.W <= 0 || opts.W%64 != 0 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be a multiple of 64 and between 64 and 128")
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > 64 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 and between 8 and 64")
	}

	// Establish SPI connection. The SSD1306 supports Mode0 up to 10MHz;
	// 8MHz keeps a margin on long leads.
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:      c,
		dc:     dc,
		rst:    opts.RST,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		buffer: make([]byte, opts.W*opts.H/8),
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Remap settings: adjust for rotation and COM wiring
	segRemap, comScan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		segRemap = 0xA0
		comScan = 0xC0
	}
	comPins := byte(0x12)
	if opts.Sequential {
		comPins = 0x02
	}

	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,       // Start line 0
		0x8D, 0x14, // Enable internal charge pump
		0x20, 0x00, // Horizontal addressing mode
		segRemap, // Segment remap
		comScan,  // COM scan direction
		0xDA, comPins, // COM pins hardware configuration
		0x81, 0xCF, // Contrast
		0xD9, 0xF1, // Pre-charge period
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume display from RAM content
		0xA6, // Normal display mode
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.clearRAM(); err != nil {
		return err
	}

	// Turn display ON
	return d.sendCommand(0xAF)
}

// clearRAM clears all pixels in the display RAM.
func (d *Dev) clearRAM() error {
	commands := []byte{
		0x21, 0, byte(d.rect.Dx() - 1), // Column address
		0x22, 0, byte(d.rect.Dy()/8 - 1), // Page address
	}

	if err := d.sendCommands(commands); err != nil {
		return err
	}

	zeros := make([]byte, d.rect.Dx()*d.rect.Dy()/8)
	return d.sendData(zeros)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect writes page-packed pixel data to a rectangular region spanning
// columns x..x+width-1 and pages page..page+pages-1.
func (d *Dev) writeRect(x, page, width, pages int, data []byte) error {
	commands := []byte{
		0x21, byte(x), byte(x + width - 1), // Column address
		0x22, byte(page), byte(page + pages - 1), // Page address
	}

	if err := d.sendCommands(commands); err != nil {
		return err
	}

	return d.sendData(data)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes a raw page-packed frame to the display.
// The data must be exactly d.rect.Dx() * d.rect.Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display, transferring only the pages and
// columns that changed since the previous frame.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Lazy-initialize the double buffer
	if d.next == nil {
		d.next = image1bit.NewWordLSB(d.rect)
		d.staged = make([]byte, len(d.buffer))
	}

	// Draw source into our buffer and pack it into pages
	draw.Draw(d.next, dst, src, sp, draw.Src)
	packPages(d.next, d.staged)

	// Calculate minimal bounding box of changed bytes
	minCol, maxCol, minPage, maxPage := d.calculateDiff()
	if minCol > maxCol {
		// No changes
		return nil
	}

	// Extract changed region and write it out
	changed := d.extractRegion(minCol, maxCol, minPage, maxPage)
	if err := d.writeRect(minCol, minPage, maxCol-minCol+1, maxPage-minPage+1, changed); err != nil {
		return err
	}

	copy(d.buffer, d.staged)

	return nil
}

// packPages converts a WordLSB image into the SSD1306 page layout: one byte
// per column per 8-row page, LSB on top.
func packPages(img *image1bit.WordLSB, dst []byte) {
	w := img.Bounds().Dx()
	pages := img.Bounds().Dy() / 8

	for page := 0; page < pages; page++ {
		for x := 0; x < w; x++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				if img.BitAt(x, page*8+bit) {
					b |= 1 << bit
				}
			}
			dst[page*w+x] = b
		}
	}
}

// calculateDiff compares the current and staged page buffers to find the
// minimal changed region. Returns (minCol, maxCol, minPage, maxPage), with
// minCol > maxCol if nothing changed.
func (d *Dev) calculateDiff() (minCol, maxCol, minPage, maxPage int) {
	width := d.rect.Dx()
	pages := d.rect.Dy() / 8

	minPage = pages
	maxPage = -1
	minCol = width
	maxCol = -1

	for page := 0; page < pages; page++ {
		rowStart := page * width
		for x := 0; x < width; x++ {
			if d.buffer[rowStart+x] == d.staged[rowStart+x] {
				continue
			}
			if page < minPage {
				minPage = page
			}
			if page > maxPage {
				maxPage = page
			}
			if x < minCol {
				minCol = x
			}
			if x > maxCol {
				maxCol = x
			}
		}
	}

	return
}

// extractRegion extracts the staged page bytes for a rectangular region.
func (d *Dev) extractRegion(minCol, maxCol, minPage, maxPage int) []byte {
	width := maxCol - minCol + 1
	stride := d.rect.Dx()

	result := make([]byte, 0, width*(maxPage-minPage+1))
	for page := minPage; page <= maxPage; page++ {
		start := page*stride + minCol
		result = append(result, d.staged[start:start+width]...)
	}

	return result
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy()/8, pixels)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the horizontal scroll time interval between steps.
type ScrollSpeed byte

const (
	// Scroll intervals (in display frame periods)
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling on the display.
// startPage and endPage specify the scroll region in pages (8-row bands) and
// must be within the display height. If right is true, scrolls right;
// otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	pages := byte(d.rect.Dy() / 8)
	if startPage >= pages || endPage >= pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}

	// Select scroll direction command
	scrollCmd := byte(0x27) // Left
	if right {
		scrollCmd = 0x26 // Right
	}

	// Send scroll setup command
	return d.sendCommands([]byte{
		scrollCmd,
		0x00,        // Dummy byte (always 0x00)
		startPage,   // Start page
		byte(speed), // Scroll step interval
		endPage,     // End page
		0x00, 0xFF, // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops all scrolling and resets the display to normal operation.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommand(0x2E) // Deactivate scroll
}
