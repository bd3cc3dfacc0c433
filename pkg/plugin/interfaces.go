package plugin

import (
	"context"
)

// WallpaperPlugin is the interface wallpaper plugins implement.
type WallpaperPlugin interface {
	// Resolve returns the path of the wallpaper image currently in use.
	Resolve(ctx context.Context, req WallpaperRequest) (WallpaperResponse, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
