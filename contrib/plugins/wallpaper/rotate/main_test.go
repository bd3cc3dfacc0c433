package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRotatePluginResolve(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "dark", "night.webp"))

	p := newRotatePlugin(dir, 42)
	for range 10 {
		resp, err := p.Resolve(context.Background(), plugin.WallpaperRequest{})
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if base := filepath.Base(resp.Path); base != "a.png" && base != "b.jpg" {
			t.Errorf("Resolve picked %s", resp.Path)
		}
	}

	resp, err := p.Resolve(context.Background(), plugin.WallpaperRequest{Dark: true})
	if err != nil {
		t.Fatalf("Resolve dark error: %v", err)
	}
	if resp.Path != filepath.Join(dir, "dark", "night.webp") {
		t.Errorf("dark Resolve = %s", resp.Path)
	}
}

func TestRotatePluginSeeded(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.png", "2.png", "3.png", "4.png"} {
		touch(t, filepath.Join(dir, name))
	}

	a, b := newRotatePlugin(dir, 7), newRotatePlugin(dir, 7)
	for range 5 {
		ra, _ := a.Resolve(context.Background(), plugin.WallpaperRequest{})
		rb, _ := b.Resolve(context.Background(), plugin.WallpaperRequest{})
		if ra.Path != rb.Path {
			t.Fatalf("same seed picked %s and %s", ra.Path, rb.Path)
		}
	}
}

func TestRotatePluginErrors(t *testing.T) {
	p := newRotatePlugin(filepath.Join(t.TempDir(), "missing"), 1)
	if _, err := p.Resolve(context.Background(), plugin.WallpaperRequest{}); err == nil {
		t.Error("Resolve of a missing directory succeeded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRotatePlugin(t.TempDir(), 1).Resolve(ctx, plugin.WallpaperRequest{}); err == nil {
		t.Error("Resolve with a cancelled context succeeded")
	}
}

func TestWallpaperDir(t *testing.T) {
	t.Setenv("TONAL_WALLPAPER_DIR", "/srv/walls")
	if got := wallpaperDir(); got != "/srv/walls" {
		t.Errorf("wallpaperDir() = %s", got)
	}
	t.Setenv("TONAL_WALLPAPER_SEED", "99")
	if got := seed(); got != 99 {
		t.Errorf("seed() = %d", got)
	}
}
