package wallpaper

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// kdeImageExtensions are the formats KDE ships wallpaper packages in.
var kdeImageExtensions = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}

// parseKDEImageSetting extracts the "Image: " entry printed by
// org.kde.PlasmaShell.wallpaper.
func parseKDEImageSetting(out []byte) (string, error) {
	const prefix = "Image: "
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > len(prefix) && strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line[len(prefix):], "file://"), nil
		}
	}
	return "", fmt.Errorf("%w: KDE: no 'Image: ' line in plasmashell configuration", ErrWallpaperUnavailable)
}

// isKDEImageName reports whether name looks like "1920x1080.png".
func isKDEImageName(name string) bool {
	ext := filepath.Ext(name)
	if !containsFold(kdeImageExtensions, ext) {
		return false
	}
	w, h, ok := strings.Cut(strings.TrimSuffix(name, ext), "x")
	if !ok {
		return false
	}
	wn, err := strconv.Atoi(w)
	if err != nil || wn <= 0 {
		return false
	}
	hn, err := strconv.Atoi(h)
	return err == nil && hn > 0
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// findKDEImage returns the first sized image in dir, following symlinks.
func findKDEImage(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: KDE: %v", ErrWallpaperUnavailable, err)
	}

	for _, entry := range entries {
		if !isKDEImageName(entry.Name()) {
			continue
		}
		resolved, err := filepath.EvalSymlinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		info, err := os.Stat(resolved)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return resolved, nil
	}
	return "", fmt.Errorf("%w: KDE: no valid wallpaper found at %s", ErrWallpaperUnavailable, dir)
}

// kdeWallpaper resolves a plasmashell Image setting. Wallpaper packages are
// directories with contents/images and optionally contents/images_dark;
// plain files are returned as they are.
func kdeWallpaper(path string, dark bool) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: KDE: %v", ErrWallpaperUnavailable, err)
	}
	if info.Mode().IsRegular() {
		return path, nil
	}

	contents := filepath.Join(path, "contents")
	if info, err := os.Stat(contents); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: KDE: '%s' is not a directory", ErrWallpaperUnavailable, contents)
	}

	if dark {
		if img, err := findKDEImage(filepath.Join(contents, "images_dark")); err == nil {
			return img, nil
		}
	}
	return findKDEImage(filepath.Join(contents, "images"))
}

// parseGSettingsURI turns "'file:///path/to/img.jpg'" into a path.
func parseGSettingsURI(out []byte) (string, error) {
	value := strings.Trim(strings.TrimSpace(string(out)), "'\"")
	rest, ok := strings.CutPrefix(value, "file://")
	if !ok {
		return "", fmt.Errorf("%w: %q is not a file URI", ErrWallpaperUnavailable, value)
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrWallpaperUnavailable, value, err)
	}
	return path, nil
}

// parseSwwwQuery extracts the first displayed image from `swww query`.
func parseSwwwQuery(out []byte) (string, bool) {
	const marker = "image: "
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if _, path, ok := strings.Cut(scanner.Text(), marker); ok {
			if path = strings.TrimSpace(path); path != "" {
				return path, true
			}
		}
	}
	return "", false
}

// parseHyprpaperActive extracts the first wallpaper from
// `hyprctl hyprpaper listactive`, whose lines read "monitor = path".
func parseHyprpaperActive(out []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if _, path, ok := strings.Cut(scanner.Text(), " = "); ok {
			if path = strings.TrimSpace(path); path != "" {
				return path, true
			}
		}
	}
	return "", false
}

// swaybgImage returns the image argument of a swaybg command line.
func swaybgImage(args []string) (string, bool) {
	for i, arg := range args {
		switch {
		case (arg == "-i" || arg == "--image") && i+1 < len(args):
			return args[i+1], true
		case strings.HasPrefix(arg, "--image="):
			return strings.TrimPrefix(arg, "--image="), true
		}
	}
	return "", false
}

// splitCmdline splits the NUL separated contents of /proc/<pid>/cmdline.
func splitCmdline(data []byte) []string {
	data = bytes.TrimRight(data, "\x00")
	if len(data) == 0 {
		return nil
	}
	return strings.Split(string(data), "\x00")
}
