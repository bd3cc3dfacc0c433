package scheme

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// DynamicScheme is a set of tonal palettes derived from a source colour for
// one variant, polarity and contrast level. Colours are resolved from it
// through DynamicColor roles.
type DynamicScheme struct {
	Source        colour.HCT
	Variant       Variant
	IsDark        bool
	ContrastLevel float64

	Primary        *TonalPalette
	Secondary      *TonalPalette
	Tertiary       *TonalPalette
	Neutral        *TonalPalette
	NeutralVariant *TonalPalette
	Error          *TonalPalette
}

// NewDynamicScheme builds the palettes for variant from source. The
// contrast level ranges from -1 (reduced) through 0 (standard) to 1 (high).
func NewDynamicScheme(source colour.HCT, variant Variant, isDark bool, contrastLevel float64) *DynamicScheme {
	s := &DynamicScheme{
		Source:        source,
		Variant:       variant,
		IsDark:        isDark,
		ContrastLevel: max(-1, min(1, contrastLevel)),
		Error:         NewTonalPalette(25, 84),
	}

	hue, chroma := source.Hue(), source.Chroma()
	switch variant {
	case Monochrome:
		s.Primary = NewTonalPalette(hue, 0)
		s.Secondary = NewTonalPalette(hue, 0)
		s.Tertiary = NewTonalPalette(hue, 0)
		s.Neutral = NewTonalPalette(hue, 0)
		s.NeutralVariant = NewTonalPalette(hue, 0)
	case Neutral:
		s.Primary = NewTonalPalette(hue, 12)
		s.Secondary = NewTonalPalette(hue, 8)
		s.Tertiary = NewTonalPalette(colour.SanitizeDegrees(hue+60), 16)
		s.Neutral = NewTonalPalette(hue, 2)
		s.NeutralVariant = NewTonalPalette(hue, 2)
	case Vibrant:
		s.Primary = NewTonalPalette(hue, 200)
		s.Secondary = NewTonalPalette(rotatedHue(hue, vibrantSecondaryRotations), 24)
		s.Tertiary = NewTonalPalette(rotatedHue(hue, vibrantTertiaryRotations), 32)
		s.Neutral = NewTonalPalette(hue, 10)
		s.NeutralVariant = NewTonalPalette(hue, 12)
	case Expressive:
		s.Primary = NewTonalPalette(colour.SanitizeDegrees(hue+240), 40)
		s.Secondary = NewTonalPalette(rotatedHue(hue, expressiveSecondaryRotations), 24)
		s.Tertiary = NewTonalPalette(rotatedHue(hue, expressiveTertiaryRotations), 32)
		s.Neutral = NewTonalPalette(colour.SanitizeDegrees(hue+15), 8)
		s.NeutralVariant = NewTonalPalette(colour.SanitizeDegrees(hue+15), 12)
	case Fidelity, Content:
		s.Primary = NewTonalPalette(hue, chroma)
		s.Secondary = NewTonalPalette(hue, math.Max(chroma-32, chroma*0.5))
		if variant == Fidelity {
			s.Tertiary = TonalPaletteFromHCT(FixIfDisliked(newTemperature(source).complement()))
		} else {
			s.Tertiary = TonalPaletteFromHCT(FixIfDisliked(newTemperature(source).analogous(3, 6)[2]))
		}
		s.Neutral = NewTonalPalette(hue, chroma/8)
		s.NeutralVariant = NewTonalPalette(hue, chroma/8+4)
	case Rainbow:
		s.Primary = NewTonalPalette(hue, 48)
		s.Secondary = NewTonalPalette(hue, 16)
		s.Tertiary = NewTonalPalette(colour.SanitizeDegrees(hue+60), 24)
		s.Neutral = NewTonalPalette(hue, 0)
		s.NeutralVariant = NewTonalPalette(hue, 0)
	case FruitSalad:
		s.Primary = NewTonalPalette(colour.SanitizeDegrees(hue-50), 48)
		s.Secondary = NewTonalPalette(colour.SanitizeDegrees(hue-50), 36)
		s.Tertiary = NewTonalPalette(hue, 36)
		s.Neutral = NewTonalPalette(hue, 10)
		s.NeutralVariant = NewTonalPalette(hue, 16)
	default: // TonalSpot
		s.Primary = NewTonalPalette(hue, 36)
		s.Secondary = NewTonalPalette(hue, 16)
		s.Tertiary = NewTonalPalette(colour.SanitizeDegrees(hue+60), 24)
		s.Neutral = NewTonalPalette(hue, 6)
		s.NeutralVariant = NewTonalPalette(hue, 8)
	}
	return s
}

// Hue breakpoints for the rotation tables below: a source hue in
// (rotationHues[i], rotationHues[i+1]) is rotated by table[i].
var rotationHues = []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}

var (
	vibrantSecondaryRotations    = []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations     = []float64{35, 30, 20, 25, 30, 35, 30, 25, 25}
	expressiveSecondaryRotations = []float64{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float64{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

func rotatedHue(sourceHue float64, rotations []float64) float64 {
	for i := 0; i < len(rotationHues)-1; i++ {
		if rotationHues[i] < sourceHue && sourceHue < rotationHues[i+1] {
			return colour.SanitizeDegrees(sourceHue + rotations[i])
		}
	}
	// Exactly on a breakpoint.
	return sourceHue
}

func (s *DynamicScheme) isFidelity() bool {
	return s.Variant == Fidelity || s.Variant == Content
}

func (s *DynamicScheme) isMonochrome() bool {
	return s.Variant == Monochrome
}

// pick returns dark when the scheme is dark and light otherwise.
func (s *DynamicScheme) pick(dark, light float64) float64 {
	if s.IsDark {
		return dark
	}
	return light
}
