// Package globetrace ray-traces an animated rotating globe from a packed
// 1-bit land mask.
//
// The project grew out of a two-step pipeline: pack an equirectangular earth
// map into 64-bit words (one bit per pixel, land or ocean), then ray-trace a
// spinning, lit sphere sampling that mask and write the frames out as an
// animated GIF.
//
// # Pipeline
//
// The packages compose as follows:
//
//	image file -> imgpack -> raw RGB triplets -> hexpack -> word list (data.txt)
//	word list -> image1bit.FromWords -> texture -> globetrace -> *gif.GIF
//
// hexpack implements the word codec: bit i%64 of word i/64 is set when the
// first channel of pixel i is at full intensity, and words are formatted as
// "0x"-prefixed 16-digit uppercase hex literals joined by ", ".
//
// image1bit wraps such a word stream as an image.Image without copying,
// 64 pixels per word, LSB-first.
//
// # Rendering
//
// Rendering is a single sphere traced per pixel:
//
//	words, _ := hexpack.Decode(f)
//	tex := image1bit.FromWords(words, 512, 256)
//
//	r, _ := globetrace.New(tex, &globetrace.Opts{W: 500, H: 500})
//	g, _ := r.Animate(200, 3)
//	gif.EncodeAll(out, g)
//
// Each frame is a 9-color paletted image: background, four ocean blues and
// four land greens picked by Lambertian brightness against a fixed light.
// The globe is tilted 23.4° and completes one full rotation over the
// animation.
//
// The camera sits at (0, 0, 2.2) looking down -Z at a unit sphere, with a
// 60° horizontal field of view by default. Brightness is computed in camera
// space before the normal is rotated into texture space, so the terminator
// stays fixed while the surface turns beneath it.
//
// # Hardware output
//
// The ssd1306 subpackage drives a 1-bit OLED over SPI and implements the
// display.Drawer interface from periph.io, so the animation can be played on
// a 128x64 panel; see cmd/globedisplay.
//
// # Commands
//
//   - cmd/tohex: image.data → data.txt, the fixed-name packer
//   - cmd/imgpack: arbitrary image file → raw triplets or word list
//   - cmd/globegif: word list → animated GIF (optional terminal preview)
//   - cmd/globedisplay: word list → SSD1306 OLED animation
package globetrace
