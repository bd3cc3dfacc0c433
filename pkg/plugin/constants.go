// Package plugin is the public API for tonal wallpaper plugins.
//
// A wallpaper plugin is a standalone executable that tells tonal which image
// is currently set as the desktop wallpaper. It is started by tonal and
// spoken to over go-plugin net/rpc:
//
//	func main() {
//		plugin.Serve(&myResolver{})
//	}
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// Name is the key wallpaper plugins are dispensed under.
const Name = "wallpaper"

// Handshake is the handshake configuration for go-plugin protocol.
// Plugins built against a different major protocol version are rejected.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  uint(CurrentVersion().Major),
	MagicCookieKey:   "TONAL_PLUGIN",
	MagicCookieValue: "tonal_wallpaper_resolver",
}

// PluginMap returns the plugin set served and dispensed by tonal. impl may
// be nil on the host side.
func PluginMap(impl WallpaperPlugin) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		Name: &WallpaperPluginRPC{Impl: impl},
	}
}

// Serve runs impl as a plugin. It blocks until the host disconnects.
func Serve(impl WallpaperPlugin) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
