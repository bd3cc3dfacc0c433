package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
)

func TestOptimalSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, target int
		wantW, wantH int
	}{
		{name: "smaller than budget", w: 100, h: 100, target: 128, wantW: 100, wantH: 100},
		{name: "exactly on budget", w: 128, h: 128, target: 128, wantW: 128, wantH: 128},
		{name: "thin strip within budget", w: 10000, h: 1, target: 128, wantW: 10000, wantH: 1},
		{name: "full hd", w: 1920, h: 1080, target: 128, wantW: 15, wantH: 9},
		{name: "large square", w: 4000, h: 4000, target: 128, wantW: 4, wantH: 4},
		{name: "floored at one", w: 100000, h: 100000, target: 128, wantW: 1, wantH: 1},
		{name: "empty", w: 0, h: 0, target: 128, wantW: 0, wantH: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := OptimalSize(tt.w, tt.h, tt.target)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("OptimalSize(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.target, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeNeverUpscales(t *testing.T) {
	src := solid(10, 10, color.White)

	if got := Resize(src, 20, 20); got != image.Image(src) {
		t.Error("Resize() to a larger size should return the source unchanged")
	}

	got := Resize(src, 5, 4)
	if b := got.Bounds(); b.Dx() != 5 || b.Dy() != 4 {
		t.Errorf("Resize(5, 4) bounds = %v", b)
	}
}

func TestPrepare(t *testing.T) {
	green := color.NRGBA{G: 255, A: 255}

	small := Prepare(solid(20, 10, green), DefaultSize)
	if small.Width != 20 || small.Height != 10 || small.Len() != 200 {
		t.Errorf("Prepare() changed a small image to %dx%d", small.Width, small.Height)
	}

	large := Prepare(solid(400, 400, green), DefaultSize)
	w, h := OptimalSize(400, 400, DefaultSize)
	if large.Width != w || large.Height != h {
		t.Errorf("Prepare() = %dx%d, want %dx%d", large.Width, large.Height, w, h)
	}
	for _, p := range large.Pix {
		if p != 0xff00ff00 {
			t.Fatalf("Resampled solid image contains %s", p.HexAlpha())
		}
	}
}

func TestPixelBuffer(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	src.Set(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.Set(3, 4, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	buf := NewPixelBuffer(src)
	if buf.Width != 2 || buf.Height != 2 {
		t.Fatalf("Expected 2x2 buffer, got %dx%d", buf.Width, buf.Height)
	}
	if buf.Pix[0] != 0xff010203 || buf.Pix[3] != 0xff090807 {
		t.Errorf("Unexpected pixels: %v", buf.Pix)
	}
	if got := colour.FromColor(buf.At(1, 1)); got != 0xff090807 {
		t.Errorf("At(1, 1) = %s", got.HexAlpha())
	}
	if got := buf.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", got)
	}
}
