// Package wallpaper finds the image currently used as the desktop
// wallpaper.
package wallpaper

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/mitchellh/go-ps"
)

var (
	// ErrWallpaperUnavailable is returned when the desktop is recognised but
	// its wallpaper cannot be determined.
	ErrWallpaperUnavailable = errors.New("wallpaper unavailable")

	// ErrUnsupportedDesktop is returned for desktop environments without a
	// resolver.
	ErrUnsupportedDesktop = errors.New("unsupported desktop environment")

	// ErrUnsupportedPlatform is returned on operating systems without
	// wallpaper detection.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Resolver returns the path of the current wallpaper. Dark requests the
// dark-mode wallpaper where the desktop distinguishes one.
type Resolver interface {
	Resolve(ctx context.Context, dark bool) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, dark bool) (string, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, dark bool) (string, error) {
	return f(ctx, dark)
}

// commandRunner runs an external program and returns its standard output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// processLister lists running processes.
type processLister func() ([]ps.Process, error)

// runningExecutables returns the set of executable names of running
// processes, with one pid for each.
func runningExecutables(list processLister) (map[string]int, error) {
	processes, err := list()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(processes))
	for _, p := range processes {
		out[p.Executable()] = p.Pid()
	}
	return out, nil
}

// Desktop returns the first element of XDG_CURRENT_DESKTOP.
func Desktop() string {
	return currentDesktop(os.Getenv)
}

func currentDesktop(getenv func(string) string) string {
	first, _, _ := strings.Cut(getenv("XDG_CURRENT_DESKTOP"), ":")
	return strings.TrimSpace(first)
}
