// Package scheme generates Material tonal colour schemes from a single
// source colour.
package scheme

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSchemeVariant is returned when a variant name is not recognised.
var ErrInvalidSchemeVariant = errors.New("invalid scheme variant")

// Variant selects how the tonal palettes are derived from the source colour.
type Variant int

const (
	// Monochrome is a greyscale scheme.
	Monochrome Variant = iota
	// Neutral is a near-greyscale scheme with a hint of the source hue.
	Neutral
	// TonalSpot is the default Material You scheme: calm, low chroma accents.
	TonalSpot
	// Vibrant uses maximum chroma for the primary palette.
	Vibrant
	// Expressive rotates the primary hue away from the source colour.
	Expressive
	// Fidelity keeps the source chroma so the primary closely matches it.
	Fidelity
	// Content is like Fidelity with an analogous tertiary colour.
	Content
	// Rainbow is a playful scheme with greyscale surfaces.
	Rainbow
	// FruitSalad is a playful scheme with rotated primary and secondary hues.
	FruitSalad
)

var variantNames = [...]string{
	Monochrome: "monochrome",
	Neutral:    "neutral",
	TonalSpot:  "tonal-spot",
	Vibrant:    "vibrant",
	Expressive: "expressive",
	Fidelity:   "fidelity",
	Content:    "content",
	Rainbow:    "rainbow",
	FruitSalad: "fruit-salad",
}

var variantDescriptions = [...]string{
	Monochrome: "greyscale",
	Neutral:    "near greyscale with a hint of the source hue",
	TonalSpot:  "calm, low chroma accents (default)",
	Vibrant:    "maximum chroma primary",
	Expressive: "primary hue rotated away from the source",
	Fidelity:   "primary keeps the source chroma",
	Content:    "like fidelity with an analogous tertiary",
	Rainbow:    "playful accents on greyscale surfaces",
	FruitSalad: "playful, rotated primary and secondary hues",
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

// VariantNames returns the accepted variant names.
func VariantNames() []string {
	return slices.Clone(variantNames[:])
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Description returns a one-line summary of the variant.
func (v Variant) Description() string {
	if v < 0 || int(v) >= len(variantDescriptions) {
		return ""
	}
	return variantDescriptions[v]
}

// ParseVariant returns the variant with the given name.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid variants: %v)", ErrInvalidSchemeVariant, name, variantNames)
}
