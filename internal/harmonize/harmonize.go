// Package harmonize shifts colours towards a key colour so that a caller's
// palette sits comfortably next to a generated scheme.
package harmonize

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

// Options configures Apply. Values are used as given; callers clamp them.
type Options struct {
	// Harmony is the fraction of the hue difference to rotate by, 0-1.
	Harmony float64
	// Threshold caps the rotation in degrees, 0-180.
	Threshold float64
	// Boost pushes tone away from the mid range, 0-1.
	Boost float64
	// Dark selects the boost direction: lighter when true, darker otherwise.
	Dark bool
}

// Harmonize rotates design's hue towards key along the shorter arc by
// min(difference*harmony, threshold) degrees. Chroma and tone are kept,
// alpha is not.
func Harmonize(design, key colour.ARGB, harmony, threshold float64) colour.ARGB {
	from := colour.HCTFromARGB(design)
	to := colour.HCTFromARGB(key)

	difference := colour.DifferenceDegrees(from.Hue(), to.Hue())
	rotation := min(difference*harmony, threshold)
	hue := colour.SanitizeDegrees(from.Hue() + rotation*colour.RotationDirection(from.Hue(), to.Hue()))

	return colour.NewHCT(hue, from.Chroma(), from.Tone()).ARGB()
}

// BoostChromaTone scales the chroma and tone of c by the given factors.
func BoostChromaTone(c colour.ARGB, chroma, tone float64) colour.ARGB {
	h := colour.HCTFromARGB(c)
	return colour.NewHCT(h.Hue(), h.Chroma()*chroma, h.Tone()*tone).ARGB()
}

// ToneFactor is the tone multiplier used for boost in the given mode.
func ToneFactor(boost float64, dark bool) float64 {
	if dark {
		return 1 + boost
	}
	return 1 - boost
}

// Color harmonizes c towards key and applies the foreground boost.
func Color(c, key colour.ARGB, opts Options) colour.ARGB {
	return BoostChromaTone(Harmonize(c, key, opts.Harmony, opts.Threshold), 1, ToneFactor(opts.Boost, opts.Dark))
}

// Apply replaces every colour in palette with its harmonized, boosted form.
// Results are always opaque; the alpha of a translucent entry is dropped.
func Apply(palette map[string]colour.ARGB, key colour.ARGB, opts Options) {
	for name, c := range palette {
		palette[name] = Color(c, key, opts)
	}
}
