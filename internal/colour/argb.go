// Package colour provides the colour model used throughout tonal: packed ARGB
// values and the perceptual HCT (hue, chroma, tone) space built on CAM16.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a hex colour string cannot be parsed.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ARGB is a colour packed as 0xAARRGGBB, 8 bits per channel.
type ARGB uint32

// FromRGB returns an opaque colour from its red, green and blue channels.
func FromRGB(r, g, b uint8) ARGB {
	return FromARGB(0xff, r, g, b)
}

// FromARGB packs the four channels into an ARGB value.
func FromARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any color.Color to ARGB, undoing alpha premultiplication.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromARGB(n.A, n.R, n.G, n.B)
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque reports whether the alpha channel is fully opaque.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 0xff }

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// Hex returns the colour as a lowercase "#rrggbb" string. Alpha is dropped.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// HexAlpha returns the colour as a lowercase "#aarrggbb" string.
func (c ARGB) HexAlpha() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// String implements fmt.Stringer.
func (c ARGB) String() string {
	return c.Hex()
}

// ParseHex parses "#rgb", "#rrggbb" or "#aarrggbb" (the leading '#' is
// optional). Alpha defaults to fully opaque when omitted.
func ParseHex(s string) (ARGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHexDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	alpha := uint8(0xff)
	switch len(digits) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(digits[:2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		alpha = uint8(a)
		digits = digits[2:]
	default:
		return 0, fmt.Errorf("%w: %q (expected #rgb, #rrggbb or #aarrggbb)", ErrInvalidColorFormat, s)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
	}
	r, g, b := c.RGB255()
	return FromARGB(alpha, r, g, b), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants and tests.
func MustParseHex(s string) ARGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
