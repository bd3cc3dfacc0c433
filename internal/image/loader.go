// Package image loads images from disk and prepares them for colour
// extraction.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"

	_ "golang.org/x/image/bmp" // Register BMP format
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

var (
	// ErrImageDecode is returned when a file cannot be read or decoded.
	ErrImageDecode = errors.New("failed to decode image")

	// ErrUnsupportedFormat is returned when the file is not a known image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrEmptyFrame is returned when a multi-frame image contains no frames.
	ErrEmptyFrame = errors.New("image has no readable frame")
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path. The format is detected from the
// file contents. Animated GIFs yield their first frame.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: image path cannot be empty", ErrImageDecode)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: image file not found: %s", ErrImageDecode, path)
		}
		return nil, fmt.Errorf("%w: failed to stat image file: %w", ErrImageDecode, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: path is a directory, not a file: %s", ErrImageDecode, path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image file: %w", ErrImageDecode, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode detects the format of r and decodes it.
func Decode(r io.ReadSeeker) (image.Image, error) {
	_, format, err := image.DecodeConfig(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	if format == "gif" {
		g, err := gif.DecodeAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w (format: gif): %w", ErrImageDecode, err)
		}
		return firstFrame(g)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %w", ErrImageDecode, format, err)
	}
	return img, nil
}

// firstFrame renders frame 0 of an animation onto the logical screen.
func firstFrame(g *gif.GIF) (image.Image, error) {
	if len(g.Image) == 0 {
		return nil, ErrEmptyFrame
	}
	frame := g.Image[0]

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 || frame.Bounds() == image.Rect(0, 0, w, h) {
		return frame, nil
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
	return canvas, nil
}
