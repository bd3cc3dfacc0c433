//go:build linux

package wallpaper

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/go-ps"
)

// Detect returns the resolver for the running desktop session.
func Detect() Resolver {
	return &sessionResolver{
		getenv:    os.Getenv,
		run:       runCommand,
		processes: ps.Processes,
		readFile:  os.ReadFile,
	}
}

// sessionResolver picks a strategy from XDG_CURRENT_DESKTOP.
type sessionResolver struct {
	getenv    func(string) string
	run       commandRunner
	processes processLister
	readFile  func(string) ([]byte, error)
}

func (r *sessionResolver) Resolve(ctx context.Context, dark bool) (string, error) {
	desktop := currentDesktop(r.getenv)
	switch desktop {
	case "KDE":
		return r.kde(ctx, dark)
	case "GNOME":
		return r.gsettings(ctx, "GNOME", "org.gnome.desktop.background", dark)
	case "Cinnamon", "X-Cinnamon":
		return r.gsettings(ctx, "Cinnamon", "org.cinnamon.desktop.background", dark)
	case "XFCE", "COSMIC":
		return "", fmt.Errorf("%w: %s wallpaper detection is not implemented", ErrWallpaperUnavailable, desktop)
	case "Hyprland", "sway", "river", "niri", "wlroots":
		return r.wallpaperDaemon(ctx, desktop)
	case "":
		return "", fmt.Errorf("%w: XDG_CURRENT_DESKTOP is not set", ErrUnsupportedDesktop)
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedDesktop, desktop)
	}
}

func (r *sessionResolver) kde(ctx context.Context, dark bool) (string, error) {
	out, err := r.run(ctx, "qdbus", "org.kde.plasmashell", "/PlasmaShell", "org.kde.PlasmaShell.wallpaper", "0")
	if err != nil {
		return "", fmt.Errorf("%w: KDE: qdbus: %v", ErrWallpaperUnavailable, err)
	}
	path, err := parseKDEImageSetting(out)
	if err != nil {
		return "", err
	}
	return kdeWallpaper(path, dark)
}

func (r *sessionResolver) gsettings(ctx context.Context, desktop, schema string, dark bool) (string, error) {
	get := func(key string) (string, error) {
		out, err := r.run(ctx, "gsettings", "get", schema, key)
		if err != nil {
			return "", fmt.Errorf("%w: %s: could not read setting %s: %v", ErrWallpaperUnavailable, desktop, key, err)
		}
		return parseGSettingsURI(out)
	}

	if dark {
		if path, err := get("picture-uri-dark"); err == nil {
			return path, nil
		}
	}
	return get("picture-uri")
}

// wallpaperDaemon asks whichever wallpaper daemon is running on a wlroots
// style compositor.
func (r *sessionResolver) wallpaperDaemon(ctx context.Context, desktop string) (string, error) {
	running, err := runningExecutables(r.processes)
	if err != nil {
		return "", fmt.Errorf("%w: %s: failed to get process list: %v", ErrWallpaperUnavailable, desktop, err)
	}

	if _, ok := running["swww-daemon"]; ok {
		if out, err := r.run(ctx, "swww", "query"); err == nil {
			if path, ok := parseSwwwQuery(out); ok {
				return path, nil
			}
		}
	}
	if _, ok := running["hyprpaper"]; ok {
		if out, err := r.run(ctx, "hyprctl", "hyprpaper", "listactive"); err == nil {
			if path, ok := parseHyprpaperActive(out); ok {
				return path, nil
			}
		}
	}
	if pid, ok := running["swaybg"]; ok {
		if data, err := r.readFile(fmt.Sprintf("/proc/%d/cmdline", pid)); err == nil {
			if path, ok := swaybgImage(splitCmdline(data)); ok {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s: no supported wallpaper daemon found (tried: swww, hyprpaper, swaybg)", ErrWallpaperUnavailable, desktop)
}
