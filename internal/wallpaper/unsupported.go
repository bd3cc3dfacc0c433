//go:build !linux

package wallpaper

import (
	"context"
	"fmt"
	"runtime"
)

// Detect returns a resolver that always fails: wallpaper detection is only
// implemented for Linux desktops.
func Detect() Resolver {
	return ResolverFunc(func(context.Context, bool) (string, error) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	})
}
