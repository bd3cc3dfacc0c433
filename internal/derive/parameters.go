package derive

import (
	"math"

	"github.com/jmylchreest/tonal/internal/image"
)

// WallpaperSentinel, used as Parameters.Image, derives the palette from the
// current desktop wallpaper.
const WallpaperSentinel = "wallpaper"

// DefaultScheme is the variant used when Parameters.Scheme is empty.
const DefaultScheme = "tonal-spot"

// Parameters configures a single derivation.
type Parameters struct {
	// BasePalette holds the caller's colours, name to hex, to be harmonized.
	BasePalette map[string]string `json:"base_palette,omitempty" mapstructure:"palette"`
	// DarkMode selects the dark scheme and brightens instead of darkens
	// during the foreground boost.
	DarkMode bool `json:"dark_mode" mapstructure:"dark"`
	// Image is a file or directory path, or WallpaperSentinel. It takes
	// precedence over Color.
	Image string `json:"image,omitempty" mapstructure:"image"`
	// Color is a literal source colour in hex.
	Color string `json:"color,omitempty" mapstructure:"color"`
	// Scheme is one of the nine variant names.
	Scheme string `json:"scheme" mapstructure:"scheme"`
	// Harmony is the fraction of the hue difference to rotate by, 0-1.
	Harmony float64 `json:"harmony" mapstructure:"harmony"`
	// HarmonizeThreshold caps the hue rotation in degrees, 0-180.
	HarmonizeThreshold float64 `json:"harmonize_threshold" mapstructure:"harmonize_threshold"`
	// ForegroundBoost pushes harmonized tones away from the mid range, 0-1.
	ForegroundBoost float64 `json:"fg_boost" mapstructure:"fg_boost"`
	// Size is the working image size budget; see image.OptimalSize.
	Size int `json:"size" mapstructure:"size"`
	// Contrast is the scheme contrast level, -1 to 1.
	Contrast float64 `json:"contrast" mapstructure:"contrast"`
	// MaterialDispatch copies scheme roles into palette names, name to role.
	MaterialDispatch map[string]string `json:"material_dispatch,omitempty" mapstructure:"dispatch"`
	// Algorithm selects the quantizer for image sources.
	Algorithm string `json:"algorithm,omitempty" mapstructure:"algorithm"`
}

// DefaultParameters returns the parameters used by the command line when
// nothing is configured.
func DefaultParameters() Parameters {
	return Parameters{
		Scheme:             DefaultScheme,
		Harmony:            0.5,
		HarmonizeThreshold: 35,
		ForegroundBoost:    0.35,
		Size:               image.DefaultSize,
	}
}

// Clamped returns a copy of p with every tuning value forced into range.
// Out of range values are never an error.
func (p Parameters) Clamped() Parameters {
	p.Harmony = clamp(0, 1, p.Harmony)
	p.HarmonizeThreshold = clamp(0, 180, p.HarmonizeThreshold)
	p.ForegroundBoost = clamp(0, 1, p.ForegroundBoost)
	p.Contrast = clamp(-1, 1, p.Contrast)
	if p.Size <= 0 {
		p.Size = image.DefaultSize
	}
	if p.Scheme == "" {
		p.Scheme = DefaultScheme
	}
	return p
}

// clamp maps NaN to lo.
func clamp(lo, hi, v float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
