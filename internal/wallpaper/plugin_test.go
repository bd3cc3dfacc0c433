package wallpaper

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestPluginResolverMissingExecutable(t *testing.T) {
	r := NewPluginResolver(filepath.Join(t.TempDir(), "no-such-plugin"), nil)
	if _, err := r.Resolve(context.Background(), false); !errors.Is(err, ErrWallpaperUnavailable) {
		t.Fatalf("Resolve with a missing plugin error = %v, want ErrWallpaperUnavailable", err)
	}
}
