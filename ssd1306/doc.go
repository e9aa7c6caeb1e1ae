// Package ssd1306 controls a SSD1306 OLED display via SPI.
//
// The SSD1306 is a 1-bit monochrome OLED controller supporting up to 128×64
// pixels. This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1-bit monochrome (pixel on or off)
// - Display RAM organized in pages of 8 rows, one byte per column per page
// - Hardware scrolling support (horizontal)
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
// Connect the SSD1306 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	D0/CLK      → SPI Clock (SCLK)
//	D1/MOSI     → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	host.Init()
//
//	spiBus, _ := spireg.Open("")
//	dcPin := gpioreg.ByName("GPIO25")
//
//	dev, _ := ssd1306.NewSPI(spiBus, dcPin, &ssd1306.Opts{
//		W: 128,
//		H: 64,
//	})
//	defer dev.Halt()
//
//	img := image1bit.NewWordLSB(dev.Bounds())
//	img.SetBit(10, 20, image1bit.On)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Drawing Modes
//
// Write sends a raw page-packed frame (one byte per column per 8-row page,
// least significant bit on top) and is the fastest full-frame path:
//
//	pixels := make([]byte, 128*64/8) // 1024 bytes for 128×64
//	dev.Write(pixels)
//
// Draw renders any image.Image through the image1bit color model and only
// transfers the pages and columns that changed since the previous frame:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// # Hardware Reset Pin (Optional)
//
// If the display's RES pin is wired to a GPIO, provide it in Opts.RST and
// the driver performs a reset pulse during initialization. With a nil RST
// the driver relies on power-on reset.
//
// # Hardware Scrolling
//
//	// Scroll the whole display left, one step every 5 frames
//	dev.ScrollHorizontal(0, 7, ssd1306.Speed5Frames, false)
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// Scroll regions are specified in pages (8-row bands), matching the
// controller's addressing.
//
// # Display Resolution
//
// Width must be a multiple of 64 (the driver's word-aligned buffer) and
// ≤128. Height must be a multiple of 8 (page alignment) and ≤64. Common
// panels:
//
//	Opts{W: 128, H: 64} // most common
//	Opts{W: 128, H: 32} // usually needs Sequential: true
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
