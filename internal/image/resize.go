package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DefaultSize is the default working-resolution budget passed to OptimalSize.
const DefaultSize = 128

// OptimalSize returns the working dimensions for a w x h image given a
// target size. The scale factor is target² / (w·h); images already within
// budget keep their dimensions, larger ones have each side multiplied by
// the scale factor, floored at 1.
func OptimalSize(w, h, target int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	scale := float64(target) * float64(target) / (float64(w) * float64(h))
	if scale > 1 {
		return w, h
	}
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))
	return nw, nh
}

// Resize resamples img to w x h with a Catmull-Rom filter. It never
// upscales: when the requested size is not smaller in either dimension img
// is returned unchanged.
func Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w >= b.Dx() && h >= b.Dy() {
		return img
	}
	w = min(w, b.Dx())
	h = min(h, b.Dy())

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Prepare downsizes img to its optimal working size and converts it to a
// PixelBuffer.
func Prepare(img image.Image, target int) *PixelBuffer {
	b := img.Bounds()
	w, h := OptimalSize(b.Dx(), b.Dy(), target)
	return NewPixelBuffer(Resize(img, w, h))
}
