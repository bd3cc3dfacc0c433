package plugin

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// WallpaperRequest is sent by tonal when it needs the current wallpaper.
type WallpaperRequest struct {
	// Dark is set when a dark-mode wallpaper is preferred.
	Dark bool `json:"dark"`
	// Desktop is the first element of XDG_CURRENT_DESKTOP, if any.
	Desktop string `json:"desktop,omitempty"`
}

// WallpaperResponse carries the resolved wallpaper.
type WallpaperResponse struct {
	Path string `json:"path"`
}
