package globetrace

import (
	"bytes"
	"image"
	"math"
	"testing"

	"github.com/flavioheleno/globetrace/image1bit"
)

// allLand is a texture where every bit is set.
func allLand(w, h int) *image1bit.WordLSB {
	tex := image1bit.NewWordLSB(image.Rect(0, 0, w, h))
	for i := range tex.Pix {
		tex.Pix[i] = ^uint64(0)
	}
	return tex
}

func TestNewValidation(t *testing.T) {
	tex := image1bit.NewWordLSB(image.Rect(0, 0, 64, 32))

	tests := []struct {
		name    string
		tex     *image1bit.WordLSB
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", tex, nil, false},
		{"explicit dimensions", tex, &Opts{W: 100, H: 80}, false},
		{"nil texture", nil, nil, true},
		{"empty texture", image1bit.NewWordLSB(image.Rect(0, 0, 0, 0)), nil, true},
		{"negative width", tex, &Opts{W: -1, H: 10}, true},
		{"negative height", tex, &Opts{W: 10, H: -1}, true},
		{"negative FOV", tex, &Opts{FOV: -10}, true},
		{"FOV at 180", tex, &Opts{FOV: 180}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.tex, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	r, err := New(allLand(64, 32), nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := r.Bounds(); got != image.Rect(0, 0, 500, 500) {
		t.Errorf("Bounds() = %v, want (0,0)-(500,500)", got)
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	if len(p) != 9 {
		t.Fatalf("len(Palette()) = %d, want 9", len(p))
	}
	r, g, b, _ := p[0].RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Palette()[0] = (%x, %x, %x), want black", r, g, b)
	}
}

func TestFrameBackgroundCorners(t *testing.T) {
	r, err := New(allLand(64, 32), &Opts{W: 100, H: 100})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	frame := r.Frame(0, 1)

	// The globe is inscribed in the view; corners must stay background.
	for _, pt := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if idx := frame.ColorIndexAt(pt.X, pt.Y); idx != 0 {
			t.Errorf("corner (%d, %d) index = %d, want 0 (background)", pt.X, pt.Y, idx)
		}
	}
}

func TestFrameCenterHitsGlobe(t *testing.T) {
	r, err := New(allLand(64, 32), &Opts{W: 100, H: 100})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	frame := r.Frame(0, 1)

	if idx := frame.ColorIndexAt(50, 50); idx == 0 {
		t.Error("center pixel is background, want a globe surface index")
	}
}

func TestFrameLandOceanSelection(t *testing.T) {
	ocean := image1bit.NewWordLSB(image.Rect(0, 0, 64, 32))

	tests := []struct {
		name     string
		tex      *image1bit.WordLSB
		min, max uint8
	}{
		{"all ocean", ocean, 1, 4},
		{"all land", allLand(64, 32), 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.tex, &Opts{W: 60, H: 60})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			frame := r.Frame(0, 1)
			for i, idx := range frame.Pix {
				if idx == 0 {
					continue
				}
				if idx < tt.min || idx > tt.max {
					t.Fatalf("pixel %d index = %d, want in [%d, %d]", i, idx, tt.min, tt.max)
				}
			}
		})
	}
}

func TestFrameDeterministic(t *testing.T) {
	r, err := New(allLand(64, 32), &Opts{W: 60, H: 60})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a := r.Frame(0.25, 1)
	b := r.Frame(0.25, 1)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical render calls produced different frames")
	}
}

func TestFrameRotationChangesTexture(t *testing.T) {
	// Half the texture land, half ocean, so rotation must change pixels.
	tex := image1bit.NewWordLSB(image.Rect(0, 0, 128, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			tex.SetBit(x, y, image1bit.On)
		}
	}

	r, err := New(tex, &Opts{W: 60, H: 60})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a := r.Frame(0, 1)
	b := r.Frame(0.5, 1)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("half-rotation frame equals initial frame")
	}
}

func TestAnimate(t *testing.T) {
	r, err := New(allLand(64, 32), &Opts{W: 40, H: 40})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	g, err := r.Animate(5, 3)
	if err != nil {
		t.Fatalf("Animate() error: %v", err)
	}
	if len(g.Image) != 5 {
		t.Errorf("len(Image) = %d, want 5", len(g.Image))
	}
	if len(g.Delay) != 5 {
		t.Errorf("len(Delay) = %d, want 5", len(g.Delay))
	}
	for i, d := range g.Delay {
		if d != 3 {
			t.Errorf("Delay[%d] = %d, want 3", i, d)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (loop forever)", g.LoopCount)
	}
}

func TestAnimateValidation(t *testing.T) {
	r, err := New(allLand(64, 32), &Opts{W: 40, H: 40})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, err := r.Animate(0, 3); err == nil {
		t.Error("Animate(0, 3) did not return an error")
	}
	if _, err := r.Animate(10, 0); err == nil {
		t.Error("Animate(10, 0) did not return an error")
	}
}

func TestTexCoordX(t *testing.T) {
	tests := []struct {
		name  string
		n     Vec3
		width int
		want  int
	}{
		{"facing +Z", Vec3{0, 0, 1}, 512, 0},
		{"facing +X", Vec3{1, 0, 0}, 512, 128},
		{"facing -Z", Vec3{0, 0, -1}, 512, 256},
		{"facing -X", Vec3{-1, 0, 0}, 512, 384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texCoordX(tt.n, tt.width); got != tt.want {
				t.Errorf("texCoordX(%v, %d) = %d, want %d", tt.n, tt.width, got, tt.want)
			}
		})
	}
}

func TestTexCoordY(t *testing.T) {
	tests := []struct {
		name   string
		n      Vec3
		height int
		want   int
	}{
		{"north pole", Vec3{0, 1, 0}, 256, 0},
		{"equator", Vec3{0, 0, 1}, 256, 128},
		{"south pole clamped", Vec3{0, -1, 0}, 256, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texCoordY(tt.n, tt.height); got != tt.want {
				t.Errorf("texCoordY(%v, %d) = %d, want %d", tt.n, tt.height, got, tt.want)
			}
		})
	}
}

func TestTexCoordXWrapClamping(t *testing.T) {
	// A barely-negative longitude wraps to 2π exactly, which maps to the
	// width and must be clamped back to the last column.
	n := Vec3{math.Copysign(1e-300, -1), 0, 1}
	if got := texCoordX(n, 512); got != 511 {
		t.Errorf("texCoordX() = %d, want 511", got)
	}
}
