package scheme

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// DynamicColor is a colour role whose tone depends on the scheme: its
// polarity, contrast level and the tones of the roles it is drawn on.
type DynamicColor struct {
	Name string

	Palette      func(*DynamicScheme) *TonalPalette
	Tone         func(*DynamicScheme) float64
	IsBackground bool

	Background       func(*DynamicScheme) *DynamicColor
	SecondBackground func(*DynamicScheme) *DynamicColor
	Contrast         *ContrastCurve
	ToneDeltaPair    func(*DynamicScheme) *ToneDeltaPair
}

// ARGB resolves the role in s.
func (c *DynamicColor) ARGB(s *DynamicScheme) colour.ARGB {
	return c.HCT(s).ARGB()
}

// HCT resolves the role in s.
func (c *DynamicColor) HCT(s *DynamicScheme) colour.HCT {
	return c.Palette(s).HCT(c.GetTone(s))
}

// GetTone returns the tone of the role in s after contrast requirements
// against its backgrounds and tone-delta constraints are applied.
func (c *DynamicColor) GetTone(s *DynamicScheme) float64 {
	decreasingContrast := s.ContrastLevel < 0

	if c.ToneDeltaPair != nil {
		return c.pairedTone(s, c.ToneDeltaPair(s), decreasingContrast)
	}

	answer := c.Tone(s)
	if c.Background == nil {
		return answer
	}

	bgTone := c.Background(s).GetTone(s)
	desired := c.Contrast.Get(s.ContrastLevel)
	if colour.RatioOfTones(bgTone, answer) < desired || decreasingContrast {
		answer = ForegroundTone(bgTone, desired)
	}

	// Tones 50-59 are avoided for backgrounds: neither black nor white text
	// reaches 4.5:1 on them reliably.
	if c.IsBackground && 50 <= answer && answer < 60 {
		if colour.RatioOfTones(49, bgTone) >= desired {
			answer = 49
		} else {
			answer = 60
		}
	}

	if c.SecondBackground == nil {
		return answer
	}

	bgTone1 := c.Background(s).GetTone(s)
	bgTone2 := c.SecondBackground(s).GetTone(s)
	upper, lower := math.Max(bgTone1, bgTone2), math.Min(bgTone1, bgTone2)
	if colour.RatioOfTones(upper, answer) >= desired && colour.RatioOfTones(lower, answer) >= desired {
		return answer
	}

	lightOption := colour.Lighter(upper, desired)
	darkOption := colour.Darker(lower, desired)
	var available []float64
	if lightOption != -1 {
		available = append(available, lightOption)
	}
	if darkOption != -1 {
		available = append(available, darkOption)
	}

	if TonePrefersLightForeground(bgTone1) || TonePrefersLightForeground(bgTone2) {
		if lightOption < 0 {
			return 100
		}
		return lightOption
	}
	if len(available) == 1 {
		return available[0]
	}
	if darkOption < 0 {
		return 0
	}
	return darkOption
}

func (c *DynamicColor) pairedTone(s *DynamicScheme, pair *ToneDeltaPair, decreasingContrast bool) float64 {
	bgTone := c.Background(s).GetTone(s)

	aIsNearer := pair.Polarity == Nearer ||
		(pair.Polarity == Lighter && !s.IsDark) ||
		(pair.Polarity == Darker && s.IsDark)
	nearer, farther := pair.RoleA, pair.RoleB
	if !aIsNearer {
		nearer, farther = farther, nearer
	}
	amNearer := c.Name == nearer.Name
	expansion := -1.0
	if s.IsDark {
		expansion = 1.0
	}

	nContrast := nearer.Contrast.Get(s.ContrastLevel)
	fContrast := farther.Contrast.Get(s.ContrastLevel)

	nTone := nearer.Tone(s)
	if colour.RatioOfTones(bgTone, nTone) < nContrast || decreasingContrast {
		nTone = ForegroundTone(bgTone, nContrast)
	}
	fTone := farther.Tone(s)
	if colour.RatioOfTones(bgTone, fTone) < fContrast || decreasingContrast {
		fTone = ForegroundTone(bgTone, fContrast)
	}

	if (fTone-nTone)*expansion < pair.Delta {
		fTone = clamp(nTone + pair.Delta*expansion)
		if (fTone-nTone)*expansion < pair.Delta {
			nTone = clamp(fTone - pair.Delta*expansion)
		}
	}

	// Keep both roles out of the 50-59 band.
	if 50 <= nTone && nTone < 60 {
		nTone, fTone = avoidMidBand(fTone, pair.Delta, expansion)
	} else if 50 <= fTone && fTone < 60 {
		if pair.StayTogether {
			nTone, fTone = avoidMidBand(fTone, pair.Delta, expansion)
		} else if expansion > 0 {
			fTone = 60
		} else {
			fTone = 49
		}
	}

	if amNearer {
		return nTone
	}
	return fTone
}

func avoidMidBand(fTone, delta, expansion float64) (nearer, farther float64) {
	if expansion > 0 {
		return 60, math.Max(fTone, 60+delta*expansion)
	}
	return 49, math.Min(fTone, 49+delta*expansion)
}

func clamp(tone float64) float64 {
	return math.Max(0, math.Min(100, tone))
}

// ForegroundTone returns a tone that reaches ratio against bgTone,
// preferring light foregrounds on tones below 60.
func ForegroundTone(bgTone, ratio float64) float64 {
	lighterTone := colour.LighterUnsafe(bgTone, ratio)
	darkerTone := colour.DarkerUnsafe(bgTone, ratio)
	lighterRatio := colour.RatioOfTones(lighterTone, bgTone)
	darkerRatio := colour.RatioOfTones(darkerTone, bgTone)

	if TonePrefersLightForeground(bgTone) {
		negligible := math.Abs(lighterRatio-darkerRatio) < 0.1 && lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligible {
			return lighterTone
		}
		return darkerTone
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darkerTone
	}
	return lighterTone
}

// TonePrefersLightForeground reports whether text on tone should be light.
func TonePrefersLightForeground(tone float64) bool {
	return math.Round(tone) < 60
}
