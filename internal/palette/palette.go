// Package palette holds named colour palettes: the caller's colours to be
// harmonized and the final output merged with scheme roles.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// ErrUnknownRole is returned when a dispatch entry names a role the scheme
// does not provide.
var ErrUnknownRole = errors.New("unknown scheme role")

// Palette maps colour names to colours.
type Palette map[string]colour.ARGB

// Parse converts a name to hex string mapping into a Palette.
func Parse(entries map[string]string) (Palette, error) {
	p := make(Palette, len(entries))
	for name, hex := range entries {
		c, err := colour.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
		p[name] = c
	}
	return p, nil
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Keys returns the colour names in sorted order.
func (p Palette) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Hex returns the palette as name to "#rrggbb" strings.
func (p Palette) Hex() map[string]string {
	out := make(map[string]string, len(p))
	for name, c := range p {
		out[name] = c.Hex()
	}
	return out
}

// MarshalJSON encodes the palette as an object of "#rrggbb" strings.
func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Hex())
}

// UnmarshalJSON decodes an object of hex colour strings.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	parsed, err := Parse(entries)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String returns one "name #rrggbb" line per colour, sorted by name.
func (p Palette) String() string {
	if len(p) == 0 {
		return "Empty palette"
	}

	width := 0
	for name := range p {
		width = max(width, len(name))
	}

	var b strings.Builder
	for _, name := range p.Keys() {
		fmt.Fprintf(&b, "%-*s %s\n", width, name, p[name].Hex())
	}
	return b.String()
}

// Compose adds every role colour to base, replacing caller entries with the
// same name. Nothing is removed. base is modified and returned; a nil base
// yields a new palette.
func Compose(base Palette, roles map[string]colour.ARGB) Palette {
	if base == nil {
		base = make(Palette, len(roles))
	}
	maps.Copy(base, roles)
	return base
}

// Dispatch sets p[name] to the colour of the named role for every entry in
// dispatch.
func Dispatch(p Palette, roles map[string]colour.ARGB, dispatch map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(dispatch)) {
		role := dispatch[name]
		c, ok := roles[role]
		if !ok {
			return fmt.Errorf("%w: %q (for %q)", ErrUnknownRole, role, name)
		}
		p[name] = c
	}
	return nil
}
