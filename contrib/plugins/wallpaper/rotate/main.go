// rotate - Random wallpaper from a directory (tonal wallpaper plugin)
//
// Picks an image at random from a wallpaper directory, for setups where a
// rotation script sets the wallpaper and no desktop can be asked about it.
//
// The directory is $TONAL_WALLPAPER_DIR, defaulting to ~/Pictures/Wallpapers.
// Dark-mode requests use its "dark" subdirectory when that holds images.
// Set TONAL_WALLPAPER_SEED to make the choice reproducible.
//
// Build:
//   go build -o tonal-rotate ./contrib/plugins/wallpaper/rotate
//
// Usage:
//   tonal derive --image wallpaper --wallpaper-plugin ./tonal-rotate

package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	mathrand "math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/pkg/plugin"
)

// RotatePlugin implements plugin.WallpaperPlugin.
type RotatePlugin struct {
	dir string
	rng *mathrand.Rand
}

func newRotatePlugin(dir string, seed uint64) *RotatePlugin {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	// #nosec G404 -- wallpaper choice is not security sensitive
	return &RotatePlugin{dir: dir, rng: mathrand.New(mathrand.NewChaCha8(seedArray))}
}

// Resolve picks a wallpaper.
func (p *RotatePlugin) Resolve(ctx context.Context, req plugin.WallpaperRequest) (plugin.WallpaperResponse, error) {
	if err := ctx.Err(); err != nil {
		return plugin.WallpaperResponse{}, err
	}

	var images []string
	if req.Dark {
		images, _ = image.ScanDirectoryForImages(filepath.Join(p.dir, "dark"))
	}
	if len(images) == 0 {
		var err error
		images, err = image.ScanDirectoryForImages(p.dir)
		if err != nil {
			return plugin.WallpaperResponse{}, err
		}
	}

	return plugin.WallpaperResponse{Path: images[p.rng.IntN(len(images))]}, nil
}

// GetMetadata returns plugin metadata.
func (p *RotatePlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "rotate",
		Version:         "0.0.1",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Pick a random wallpaper from a directory",
	}
}

func wallpaperDir() string {
	if dir := os.Getenv("TONAL_WALLPAPER_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Wallpapers"
	}
	return filepath.Join(home, "Pictures", "Wallpapers")
}

func seed() uint64 {
	if s, err := strconv.ParseUint(os.Getenv("TONAL_WALLPAPER_SEED"), 10, 64); err == nil {
		return s
	}
	var randomBytes [8]byte
	if _, err := rand.Read(randomBytes[:]); err == nil {
		return binary.LittleEndian.Uint64(randomBytes[:])
	}
	return 0
}

func main() {
	p := newRotatePlugin(wallpaperDir(), seed())

	// Handle --plugin-info flag
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(p.GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	plugin.Serve(p)
}
