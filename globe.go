// Package globetrace renders an animated, ray-traced rotating globe from a
// 1-bit equirectangular land mask.
//
// The texture is an image1bit.WordLSB, typically parsed from the packed
// hexadecimal word list produced by package hexpack. Each frame is rendered
// into a 9-color paletted image: one background color plus four ocean and
// four land shades selected by Lambertian brightness.
package globetrace

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"math"

	"github.com/flavioheleno/globetrace/image1bit"
)

const (
	degToRad = math.Pi / 180

	// Palette indices: 0 is background, 1-4 ocean shades, 5-8 land shades.
	oceanBase = 1
	landBase  = 5

	// Number of brightness buckets per surface type.
	shades = 4
)

// Opts is the configuration for the globe renderer.
type Opts struct {
	W int // Frame width in pixels (default: 500)
	H int // Frame height in pixels (default: 500)

	FOV  float64 // Horizontal field of view in degrees (default: 60)
	Tilt float64 // Axial tilt in degrees (default: 23.4)
}

// Renderer ray-traces a rotating globe textured by a 1-bit land mask.
type Renderer struct {
	tex *image1bit.WordLSB

	rect image.Rectangle

	// Frustum geometry, derived from FOV and frame dimensions.
	tanFov2x  float64
	tanFov2y  float64
	pixelSize float64

	// Axial tilt, precomputed.
	cTilt, sTilt float64

	light Vec3
}

// New creates a renderer for the given land mask texture.
//
// opts can be nil to use defaults (500x500 frames, 60° FOV, 23.4° tilt).
func New(tex *image1bit.WordLSB, opts *Opts) (*Renderer, error) {
	if tex == nil {
		return nil, errors.New("globetrace: nil texture")
	}
	if tex.Bounds().Empty() {
		return nil, errors.New("globetrace: empty texture")
	}

	if opts == nil {
		opts = &Opts{}
	}
	w, h := opts.W, opts.H
	if w == 0 {
		w = 500
	}
	if h == 0 {
		h = 500
	}
	if w < 0 || h < 0 {
		return nil, errors.New("globetrace: frame dimensions must be positive")
	}

	fov := opts.FOV
	if fov == 0 {
		fov = 60
	}
	if fov <= 0 || fov >= 180 {
		return nil, errors.New("globetrace: FOV must be between 0 and 180 degrees")
	}

	tilt := opts.Tilt
	if tilt == 0 {
		tilt = 23.4
	}

	tanFov2x := math.Tan(fov / 2 * degToRad)

	r := &Renderer{
		tex:       tex,
		rect:      image.Rect(0, 0, w, h),
		tanFov2x:  tanFov2x,
		tanFov2y:  tanFov2x * float64(h) / float64(w),
		pixelSize: 2 * tanFov2x / float64(w),
		cTilt:     math.Cos(tilt * degToRad),
		sTilt:     math.Sin(tilt * degToRad),
		light:     Vec3{1, 0, -1}.Unit(),
	}

	return r, nil
}

// Bounds returns the frame bounds.
func (r *Renderer) Bounds() image.Rectangle {
	return r.rect
}

// Palette returns the 9-color globe palette: background, four ocean blues
// and four land greens ordered dark to bright.
func Palette() color.Palette {
	return color.Palette{
		color.RGBA{0, 0, 0, 255}, // Background
		// Ocean
		color.RGBA{0, 19, 88, 255},
		color.RGBA{0, 24, 132, 255},
		color.RGBA{0, 28, 169, 255},
		color.RGBA{0, 32, 207, 255},
		// Land
		color.RGBA{0, 82, 9, 255},
		color.RGBA{8, 133, 5, 255},
		color.RGBA{14, 169, 3, 255},
		color.RGBA{21, 210, 0, 255},
	}
}

// Frame renders the globe at elapsed time t out of a total animation length
// of total (one full rotation). Both are in seconds. The returned image uses
// Palette() and the renderer's bounds.
func (r *Renderer) Frame(t, total float64) *image.Paletted {
	dst := image.NewPaletted(r.rect, Palette())
	r.renderInto(dst, t, total)
	return dst
}

func (r *Renderer) renderInto(dst *image.Paletted, t, total float64) {
	// One full rotation over the animation, spinning westward.
	rot := -2 * math.Pi * t / total
	cRot := math.Cos(rot)
	sRot := math.Sin(rot)

	// Camera in front of the unit sphere at the origin.
	origin := Vec3{0, 0, 2.2}
	center := Vec3{}
	const radius = 1.0

	w, h := r.rect.Dx(), r.rect.Dy()
	texW := r.tex.Bounds().Dx()
	texH := r.tex.Bounds().Dy()

	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Ray through the pixel center on the near plane at z = 1.
			u := Vec3{
				-r.tanFov2x + r.pixelSize*(float64(x)+0.5),
				r.tanFov2y - r.pixelSize*(float64(y)+0.5),
				-1,
			}

			p, ok := raySphere(origin, u, center, radius)
			if !ok {
				dst.Pix[i] = 0
				i++
				continue
			}
			n := sphereNormal(center, radius, p)

			// Lambertian brightness bucket from the light source.
			bright := int(-n.Dot(r.light) * 6)
			if bright > shades-1 {
				bright = shades - 1
			} else if bright < 0 {
				bright = 0
			}

			// Rotate the normal instead of the sphere: tilt first, then
			// spin, then sample the land mask at the mapped coordinate.
			n = n.RotXY(r.cTilt, r.sTilt)
			n = n.RotZX(cRot, sRot)

			base := oceanBase
			if r.tex.BitAt(texCoordX(n, texW), texCoordY(n, texH)) {
				base = landBase
			}
			dst.Pix[i] = uint8(base + bright)
			i++
		}
	}
}

// Animate renders frames evenly spanning one full rotation and assembles
// them into an animated GIF. delay is the per-frame delay in hundredths of a
// second, as stored in the GIF file.
func (r *Renderer) Animate(frames, delay int) (*gif.GIF, error) {
	if frames <= 0 {
		return nil, errors.New("globetrace: frame count must be positive")
	}
	if delay <= 0 {
		return nil, errors.New("globetrace: frame delay must be positive")
	}

	timeIncr := 0.01 * float64(delay)
	total := timeIncr * float64(frames)

	g := &gif.GIF{
		Image: make([]*image.Paletted, 0, frames),
		Delay: make([]int, 0, frames),
	}
	for i := 0; i < frames; i++ {
		g.Image = append(g.Image, r.Frame(float64(i)*timeIncr, total))
		g.Delay = append(g.Delay, delay)
	}

	return g, nil
}

// texCoordX maps a sphere normal to a texture column via its longitude.
func texCoordX(n Vec3, width int) int {
	a := math.Atan2(n.X, n.Z)
	if a < 0 {
		a += 2 * math.Pi
	}

	x := int(a * float64(width) / (2 * math.Pi))
	if x < 0 {
		x = 0
	} else if x >= width {
		x = width - 1
	}

	return x
}

// texCoordY maps a sphere normal to a texture row via its latitude.
func texCoordY(n Vec3, height int) int {
	a := math.Asin(-n.Y) + math.Pi/2

	y := int(a * float64(height) / math.Pi)
	if y < 0 {
		y = 0
	} else if y >= height {
		y = height - 1
	}

	return y
}
