package image

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", name, err)
	}
	return path
}

func writeGIF(t *testing.T, dir, name string, frames ...color.Color) string {
	t.Helper()
	anim := &gif.GIF{}
	for _, c := range frames {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{c})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 10)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		t.Fatalf("Failed to encode %s: %v", name, err)
	}
	return path
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{R: 255, A: 255}
	pngPath := writePNG(t, dir, "red.png", solid(8, 6, red))

	img, err := NewFileLoader().Load(pngPath)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", got.Dx(), got.Dy())
	}
	if got := colour.FromColor(img.At(3, 3)); got != 0xffff0000 {
		t.Errorf("Expected red pixel, got %s", got.HexAlpha())
	}
}

func TestFileLoaderGIFFirstFrame(t *testing.T) {
	dir := t.TempDir()
	path := writeGIF(t, dir, "anim.gif",
		color.RGBA{R: 0, G: 0, B: 255, A: 255},
		color.RGBA{R: 0, G: 255, B: 0, A: 255},
	)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got := colour.FromColor(img.At(1, 1)); got != 0xff0000ff {
		t.Errorf("Expected first (blue) frame, got %s", got.Hex())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	textPath := writeFile(t, dir, "notes.txt", []byte("hello world, not an image"))
	corruptPath := writeFile(t, dir, "broken.png", []byte("\x89PNG\r\n\x1a\ngarbage"))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "empty path", path: "", wantErr: ErrImageDecode},
		{name: "missing file", path: filepath.Join(dir, "missing.png"), wantErr: ErrImageDecode},
		{name: "directory", path: dir, wantErr: ErrImageDecode},
		{name: "unknown format", path: textPath, wantErr: ErrUnsupportedFormat},
		{name: "corrupt png", path: corruptPath, wantErr: ErrImageDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFirstFrameEmpty(t *testing.T) {
	if _, err := firstFrame(&gif.GIF{}); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("firstFrame() error = %v, want ErrEmptyFrame", err)
	}
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	only := writePNG(t, dir, "only.png", solid(2, 2, color.White))
	writeFile(t, dir, "readme.md", []byte("skip me"))

	got, err := ResolveImagePath(dir)
	if err != nil {
		t.Fatalf("ResolveImagePath() unexpected error: %v", err)
	}
	if got != only {
		t.Errorf("ResolveImagePath() = %q, want %q", got, only)
	}

	got, err = ResolveImagePath(only)
	if err != nil || got != only {
		t.Errorf("ResolveImagePath(file) = %q, %v", got, err)
	}

	empty := t.TempDir()
	if _, err := ResolveImagePath(empty); !errors.Is(err, ErrImageDecode) {
		t.Errorf("ResolveImagePath(empty dir) error = %v, want ErrImageDecode", err)
	}
}
