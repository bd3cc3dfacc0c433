package image

import (
	"image"
	"image/color"

	"github.com/jmylchreest/tonal/internal/colour"
)

// PixelBuffer is a decoded image as a row-major grid of packed colours. It
// implements image.Image so it can be handed to any decoder-agnostic code.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []colour.ARGB
}

// NewPixelBuffer copies img into a PixelBuffer.
func NewPixelBuffer(img image.Image) *PixelBuffer {
	b := img.Bounds()
	buf := &PixelBuffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]colour.ARGB, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			buf.Pix = append(buf.Pix, colour.FromColor(img.At(x, y)))
		}
	}
	return buf
}

// Len returns the number of pixels.
func (b *PixelBuffer) Len() int { return len(b.Pix) }

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image.
func (b *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return color.NRGBA{}
	}
	return b.Pix[y*b.Width+x]
}
