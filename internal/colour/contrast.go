package colour

import "math"

// RatioOfTones returns the WCAG contrast ratio between two tones.
// Tones outside [0, 100] are clamped.
func RatioOfTones(a, b float64) float64 {
	a = clampFloat(0, 100, a)
	b = clampFloat(0, 100, b)
	return ratioOfYs(YFromLstar(a), YFromLstar(b))
}

func ratioOfYs(y1, y2 float64) float64 {
	lighter := math.Max(y1, y2)
	darker := math.Min(y1, y2)
	return (lighter + 5.0) / (darker + 5.0)
}

// Lighter returns a tone >= tone that reaches ratio against it, or -1 if no
// such tone exists.
func Lighter(tone, ratio float64) float64 {
	if tone < 0 || tone > 100 {
		return -1
	}
	darkY := YFromLstar(tone)
	lightY := ratio*(darkY+5.0) - 5.0
	realContrast := ratioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1
	}

	// Nudge past rounding so the rendered colour still meets the ratio.
	value := LstarFromY(lightY) + 0.4
	if value < 0 || value > 100 {
		return -1
	}
	return value
}

// Darker returns a tone <= tone that reaches ratio against it, or -1 if no
// such tone exists.
func Darker(tone, ratio float64) float64 {
	if tone < 0 || tone > 100 {
		return -1
	}
	lightY := YFromLstar(tone)
	darkY := (lightY+5.0)/ratio - 5.0
	realContrast := ratioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1
	}

	value := LstarFromY(darkY) - 0.4
	if value < 0 || value > 100 {
		return -1
	}
	return value
}

// LighterUnsafe is Lighter, falling back to white.
func LighterUnsafe(tone, ratio float64) float64 {
	if safe := Lighter(tone, ratio); safe >= 0 {
		return safe
	}
	return 100
}

// DarkerUnsafe is Darker, falling back to black.
func DarkerUnsafe(tone, ratio float64) float64 {
	if safe := Darker(tone, ratio); safe >= 0 {
		return safe
	}
	return 0
}
