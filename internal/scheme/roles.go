package scheme

import "math"

// Role pairs an output name with the dynamic colour that produces it.
type Role struct {
	Name  string
	Color *DynamicColor
}

// Contrast curves shared by many roles.
var (
	curveText        = ContrastCurve{4.5, 7, 11, 21}
	curveTextVariant = ContrastCurve{3, 4.5, 7, 11}
	curveAccent      = ContrastCurve{3, 4.5, 7, 7}
	curveContainer   = ContrastCurve{1, 1, 3, 4.5}
)

// Roles returns every scheme role in output order. Role names are
// kebab-case, e.g. "on-primary-container".
func Roles() []Role {
	return materialRoles
}

var materialRoles = newMaterialRoles()

// newMaterialRoles wires the 2021 Material colour roles. Roles
// refer to each other through closures over m, which keeps the graph out
// of package initialisation order.
func newMaterialRoles() []Role {
	type roles struct {
		background, onBackground                                                *DynamicColor
		surface, surfaceDim, surfaceBright                                      *DynamicColor
		surfaceContainerLowest, surfaceContainerLow, surfaceContainer           *DynamicColor
		surfaceContainerHigh, surfaceContainerHighest                           *DynamicColor
		onSurface, surfaceVariant, onSurfaceVariant                             *DynamicColor
		inverseSurface, inverseOnSurface, outline, outlineVariant               *DynamicColor
		shadow, scrim, surfaceTint                                              *DynamicColor
		primary, onPrimary, primaryContainer, onPrimaryContainer, inversePrimary *DynamicColor
		secondary, onSecondary, secondaryContainer, onSecondaryContainer        *DynamicColor
		tertiary, onTertiary, tertiaryContainer, onTertiaryContainer            *DynamicColor
		errorRole, onError, errorContainer, onErrorContainer                    *DynamicColor
		primaryFixed, primaryFixedDim, onPrimaryFixed, onPrimaryFixedVariant    *DynamicColor
		secondaryFixed, secondaryFixedDim                                       *DynamicColor
		onSecondaryFixed, onSecondaryFixedVariant                               *DynamicColor
		tertiaryFixed, tertiaryFixedDim, onTertiaryFixed, onTertiaryFixedVariant *DynamicColor
	}
	m := &roles{}

	primaryPalette := func(s *DynamicScheme) *TonalPalette { return s.Primary }
	secondaryPalette := func(s *DynamicScheme) *TonalPalette { return s.Secondary }
	tertiaryPalette := func(s *DynamicScheme) *TonalPalette { return s.Tertiary }
	neutralPalette := func(s *DynamicScheme) *TonalPalette { return s.Neutral }
	neutralVariantPalette := func(s *DynamicScheme) *TonalPalette { return s.NeutralVariant }
	errorPalette := func(s *DynamicScheme) *TonalPalette { return s.Error }

	fixed := func(tone float64) func(*DynamicScheme) float64 {
		return func(*DynamicScheme) float64 { return tone }
	}
	byPolarity := func(dark, light float64) func(*DynamicScheme) float64 {
		return func(s *DynamicScheme) float64 { return s.pick(dark, light) }
	}
	curved := func(dark, light ContrastCurve) func(*DynamicScheme) float64 {
		return func(s *DynamicScheme) float64 {
			if s.IsDark {
				return dark.Get(s.ContrastLevel)
			}
			return light.Get(s.ContrastLevel)
		}
	}
	constantCurve := func(t float64) ContrastCurve { return ContrastCurve{t, t, t, t} }

	highestSurface := func(s *DynamicScheme) *DynamicColor {
		if s.IsDark {
			return m.surfaceBright
		}
		return m.surfaceDim
	}
	on := func(c **DynamicColor) func(*DynamicScheme) *DynamicColor {
		return func(*DynamicScheme) *DynamicColor { return *c }
	}
	pair := func(a, b **DynamicColor, polarity TonePolarity, stayTogether bool) func(*DynamicScheme) *ToneDeltaPair {
		return func(*DynamicScheme) *ToneDeltaPair {
			return &ToneDeltaPair{RoleA: *a, RoleB: *b, Delta: 10, Polarity: polarity, StayTogether: stayTogether}
		}
	}
	curve := func(c ContrastCurve) *ContrastCurve { return &c }

	// Surfaces.
	m.background = &DynamicColor{Name: "background", Palette: neutralPalette, Tone: byPolarity(6, 98), IsBackground: true}
	m.onBackground = &DynamicColor{Name: "on-background", Palette: neutralPalette, Tone: byPolarity(90, 10),
		Background: on(&m.background), Contrast: curve(ContrastCurve{3, 3, 4.5, 7})}
	m.surface = &DynamicColor{Name: "surface", Palette: neutralPalette, Tone: byPolarity(6, 98), IsBackground: true}
	m.surfaceDim = &DynamicColor{Name: "surface-dim", Palette: neutralPalette, IsBackground: true,
		Tone: curved(constantCurve(6), ContrastCurve{87, 87, 80, 75})}
	m.surfaceBright = &DynamicColor{Name: "surface-bright", Palette: neutralPalette, IsBackground: true,
		Tone: curved(ContrastCurve{24, 24, 29, 34}, constantCurve(98))}
	m.surfaceContainerLowest = &DynamicColor{Name: "surface-container-lowest", Palette: neutralPalette, IsBackground: true,
		Tone: curved(ContrastCurve{4, 4, 2, 0}, constantCurve(100))}
	m.surfaceContainerLow = &DynamicColor{Name: "surface-container-low", Palette: neutralPalette, IsBackground: true,
		Tone: curved(ContrastCurve{10, 10, 11, 12}, ContrastCurve{96, 96, 96, 95})}
	m.surfaceContainer = &DynamicColor{Name: "surface-container", Palette: neutralPalette, IsBackground: true,
		Tone: curved(ContrastCurve{12, 12, 16, 20}, ContrastCurve{94, 94, 92, 90})}
	m.surfaceContainerHigh = &DynamicColor{Name: "surface-container-high", Palette: neutralPalette, IsBackground: true,
		Tone: curved(ContrastCurve{17, 17, 21, 25}, ContrastCurve{92, 92, 88, 85})}
	m.surfaceContainerHighest = &DynamicColor{Name: "surface-container-highest", Palette: neutralPalette, IsBackground: true,
		Tone: curved(ContrastCurve{22, 22, 26, 30}, ContrastCurve{90, 90, 84, 80})}
	m.onSurface = &DynamicColor{Name: "on-surface", Palette: neutralPalette, Tone: byPolarity(90, 10),
		Background: highestSurface, Contrast: curve(curveText)}
	m.surfaceVariant = &DynamicColor{Name: "surface-variant", Palette: neutralVariantPalette, Tone: byPolarity(30, 90), IsBackground: true}
	m.onSurfaceVariant = &DynamicColor{Name: "on-surface-variant", Palette: neutralVariantPalette, Tone: byPolarity(80, 30),
		Background: highestSurface, Contrast: curve(curveTextVariant)}
	m.inverseSurface = &DynamicColor{Name: "inverse-surface", Palette: neutralPalette, Tone: byPolarity(90, 20)}
	m.inverseOnSurface = &DynamicColor{Name: "inverse-on-surface", Palette: neutralPalette, Tone: byPolarity(20, 95),
		Background: on(&m.inverseSurface), Contrast: curve(curveText)}
	m.outline = &DynamicColor{Name: "outline", Palette: neutralVariantPalette, Tone: byPolarity(60, 50),
		Background: highestSurface, Contrast: curve(ContrastCurve{1.5, 3, 4.5, 7})}
	m.outlineVariant = &DynamicColor{Name: "outline-variant", Palette: neutralVariantPalette, Tone: byPolarity(30, 80),
		Background: highestSurface, Contrast: curve(curveContainer)}
	m.shadow = &DynamicColor{Name: "shadow", Palette: neutralPalette, Tone: fixed(0)}
	m.scrim = &DynamicColor{Name: "scrim", Palette: neutralPalette, Tone: fixed(0)}
	m.surfaceTint = &DynamicColor{Name: "surface-tint", Palette: primaryPalette, Tone: byPolarity(80, 40), IsBackground: true}

	// Primary.
	m.primary = &DynamicColor{Name: "primary", Palette: primaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float64 {
			if s.isMonochrome() {
				return s.pick(100, 0)
			}
			return s.pick(80, 40)
		},
		Background: highestSurface, Contrast: curve(curveAccent),
		ToneDeltaPair: pair(&m.primaryContainer, &m.primary, Nearer, false)}
	m.onPrimary = &DynamicColor{Name: "on-primary", Palette: primaryPalette,
		Tone: func(s *DynamicScheme) float64 {
			if s.isMonochrome() {
				return s.pick(10, 90)
			}
			return s.pick(20, 100)
		},
		Background: on(&m.primary), Contrast: curve(curveText)}
	m.primaryContainer = &DynamicColor{Name: "primary-container", Palette: primaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float64 {
			switch {
			case s.isFidelity():
				return s.Source.Tone()
			case s.isMonochrome():
				return s.pick(85, 25)
			default:
				return s.pick(30, 90)
			}
		},
		Background: highestSurface, Contrast: curve(curveContainer),
		ToneDeltaPair: pair(&m.primaryContainer, &m.primary, Nearer, false)}
	m.onPrimaryContainer = &DynamicColor{Name: "on-primary-container", Palette: primaryPalette,
		Tone: func(s *DynamicScheme) float64 {
			switch {
			case s.isFidelity():
				return ForegroundTone(m.primaryContainer.Tone(s), 4.5)
			case s.isMonochrome():
				return s.pick(0, 100)
			default:
				return s.pick(90, 10)
			}
		},
		Background: on(&m.primaryContainer), Contrast: curve(curveText)}
	m.inversePrimary = &DynamicColor{Name: "inverse-primary", Palette: primaryPalette, Tone: byPolarity(40, 80),
		Background: on(&m.inverseSurface), Contrast: curve(curveAccent)}

	// Secondary.
	m.secondary = &DynamicColor{Name: "secondary", Palette: secondaryPalette, Tone: byPolarity(80, 40), IsBackground: true,
		Background: highestSurface, Contrast: curve(curveAccent),
		ToneDeltaPair: pair(&m.secondaryContainer, &m.secondary, Nearer, false)}
	m.onSecondary = &DynamicColor{Name: "on-secondary", Palette: secondaryPalette,
		Tone: func(s *DynamicScheme) float64 {
			if s.isMonochrome() {
				return s.pick(10, 100)
			}
			return s.pick(20, 100)
		},
		Background: on(&m.secondary), Contrast: curve(curveText)}
	m.secondaryContainer = &DynamicColor{Name: "secondary-container", Palette: secondaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float64 {
			initial := s.pick(30, 90)
			switch {
			case s.isMonochrome():
				return s.pick(30, 85)
			case !s.isFidelity():
				return initial
			default:
				return findDesiredChromaByTone(s.Secondary.Hue(), s.Secondary.Chroma(), initial, !s.IsDark)
			}
		},
		Background: highestSurface, Contrast: curve(curveContainer),
		ToneDeltaPair: pair(&m.secondaryContainer, &m.secondary, Nearer, false)}
	m.onSecondaryContainer = &DynamicColor{Name: "on-secondary-container", Palette: secondaryPalette,
		Tone: func(s *DynamicScheme) float64 {
			if !s.isFidelity() {
				return s.pick(90, 10)
			}
			return ForegroundTone(m.secondaryContainer.Tone(s), 4.5)
		},
		Background: on(&m.secondaryContainer), Contrast: curve(curveText)}

	// Tertiary.
	m.tertiary = &DynamicColor{Name: "tertiary", Palette: tertiaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float64 {
			if s.isMonochrome() {
				return s.pick(90, 25)
			}
			return s.pick(80, 40)
		},
		Background: highestSurface, Contrast: curve(curveAccent),
		ToneDeltaPair: pair(&m.tertiaryContainer, &m.tertiary, Nearer, false)}
	m.onTertiary = &DynamicColor{Name: "on-tertiary", Palette: tertiaryPalette,
		Tone: func(s *DynamicScheme) float64 {
			if s.isMonochrome() {
				return s.pick(10, 90)
			}
			return s.pick(20, 100)
		},
		Background: on(&m.tertiary), Contrast: curve(curveText)}
	m.tertiaryContainer = &DynamicColor{Name: "tertiary-container", Palette: tertiaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float64 {
			switch {
			case s.isMonochrome():
				return s.pick(60, 49)
			case !s.isFidelity():
				return s.pick(30, 90)
			default:
				return FixIfDisliked(s.Tertiary.HCT(s.Source.Tone())).Tone()
			}
		},
		Background: highestSurface, Contrast: curve(curveContainer),
		ToneDeltaPair: pair(&m.tertiaryContainer, &m.tertiary, Nearer, false)}
	m.onTertiaryContainer = &DynamicColor{Name: "on-tertiary-container", Palette: tertiaryPalette,
		Tone: func(s *DynamicScheme) float64 {
			switch {
			case s.isMonochrome():
				return s.pick(0, 100)
			case !s.isFidelity():
				return s.pick(90, 10)
			default:
				return ForegroundTone(m.tertiaryContainer.Tone(s), 4.5)
			}
		},
		Background: on(&m.tertiaryContainer), Contrast: curve(curveText)}

	// Error.
	m.errorRole = &DynamicColor{Name: "error", Palette: errorPalette, Tone: byPolarity(80, 40), IsBackground: true,
		Background: highestSurface, Contrast: curve(curveAccent),
		ToneDeltaPair: pair(&m.errorContainer, &m.errorRole, Nearer, false)}
	m.onError = &DynamicColor{Name: "on-error", Palette: errorPalette, Tone: byPolarity(20, 100),
		Background: on(&m.errorRole), Contrast: curve(curveText)}
	m.errorContainer = &DynamicColor{Name: "error-container", Palette: errorPalette, Tone: byPolarity(30, 90), IsBackground: true,
		Background: highestSurface, Contrast: curve(curveContainer),
		ToneDeltaPair: pair(&m.errorContainer, &m.errorRole, Nearer, false)}
	m.onErrorContainer = &DynamicColor{Name: "on-error-container", Palette: errorPalette, Tone: byPolarity(90, 10),
		Background: on(&m.errorContainer), Contrast: curve(curveText)}

	// Fixed roles keep the same tone in light and dark schemes.
	mono := func(monochrome, other float64) func(*DynamicScheme) float64 {
		return func(s *DynamicScheme) float64 {
			if s.isMonochrome() {
				return monochrome
			}
			return other
		}
	}
	fixedRole := func(name string, palette func(*DynamicScheme) *TonalPalette, tone func(*DynamicScheme) float64, a, b **DynamicColor) *DynamicColor {
		return &DynamicColor{Name: name, Palette: palette, Tone: tone, IsBackground: true,
			Background: highestSurface, Contrast: curve(curveContainer),
			ToneDeltaPair: pair(a, b, Lighter, true)}
	}
	onFixed := func(name string, palette func(*DynamicScheme) *TonalPalette, tone func(*DynamicScheme) float64, dim, bright **DynamicColor, c ContrastCurve) *DynamicColor {
		return &DynamicColor{Name: name, Palette: palette, Tone: tone,
			Background: on(dim), SecondBackground: on(bright), Contrast: curve(c)}
	}

	m.primaryFixed = fixedRole("primary-fixed", primaryPalette, mono(40, 90), &m.primaryFixed, &m.primaryFixedDim)
	m.primaryFixedDim = fixedRole("primary-fixed-dim", primaryPalette, mono(30, 80), &m.primaryFixed, &m.primaryFixedDim)
	m.onPrimaryFixed = onFixed("on-primary-fixed", primaryPalette, mono(100, 10), &m.primaryFixedDim, &m.primaryFixed, curveText)
	m.onPrimaryFixedVariant = onFixed("on-primary-fixed-variant", primaryPalette, mono(90, 30), &m.primaryFixedDim, &m.primaryFixed, curveTextVariant)

	m.secondaryFixed = fixedRole("secondary-fixed", secondaryPalette, mono(80, 90), &m.secondaryFixed, &m.secondaryFixedDim)
	m.secondaryFixedDim = fixedRole("secondary-fixed-dim", secondaryPalette, mono(70, 80), &m.secondaryFixed, &m.secondaryFixedDim)
	m.onSecondaryFixed = onFixed("on-secondary-fixed", secondaryPalette, fixed(10), &m.secondaryFixedDim, &m.secondaryFixed, curveText)
	m.onSecondaryFixedVariant = onFixed("on-secondary-fixed-variant", secondaryPalette, mono(25, 30), &m.secondaryFixedDim, &m.secondaryFixed, curveTextVariant)

	m.tertiaryFixed = fixedRole("tertiary-fixed", tertiaryPalette, mono(40, 90), &m.tertiaryFixed, &m.tertiaryFixedDim)
	m.tertiaryFixedDim = fixedRole("tertiary-fixed-dim", tertiaryPalette, mono(30, 80), &m.tertiaryFixed, &m.tertiaryFixedDim)
	m.onTertiaryFixed = onFixed("on-tertiary-fixed", tertiaryPalette, mono(100, 10), &m.tertiaryFixedDim, &m.tertiaryFixed, curveText)
	m.onTertiaryFixedVariant = onFixed("on-tertiary-fixed-variant", tertiaryPalette, mono(90, 30), &m.tertiaryFixedDim, &m.tertiaryFixed, curveTextVariant)

	ordered := []*DynamicColor{
		m.primary, m.onPrimary, m.primaryContainer, m.onPrimaryContainer, m.inversePrimary,
		m.secondary, m.onSecondary, m.secondaryContainer, m.onSecondaryContainer,
		m.tertiary, m.onTertiary, m.tertiaryContainer, m.onTertiaryContainer,
		m.errorRole, m.onError, m.errorContainer, m.onErrorContainer,
		m.background, m.onBackground, m.surface, m.onSurface, m.surfaceVariant, m.onSurfaceVariant,
		m.surfaceDim, m.surfaceBright, m.surfaceContainerLowest, m.surfaceContainerLow,
		m.surfaceContainer, m.surfaceContainerHigh, m.surfaceContainerHighest,
		m.inverseSurface, m.inverseOnSurface, m.outline, m.outlineVariant, m.shadow, m.scrim, m.surfaceTint,
		m.primaryFixed, m.primaryFixedDim, m.onPrimaryFixed, m.onPrimaryFixedVariant,
		m.secondaryFixed, m.secondaryFixedDim, m.onSecondaryFixed, m.onSecondaryFixedVariant,
		m.tertiaryFixed, m.tertiaryFixedDim, m.onTertiaryFixed, m.onTertiaryFixedVariant,
	}
	out := make([]Role, len(ordered))
	for i, c := range ordered {
		out[i] = Role{Name: c.Name, Color: c}
	}
	return out
}

// findDesiredChromaByTone walks tone away from the starting tone until the
// palette can produce a chroma close to the requested one.
func findDesiredChromaByTone(hue, chroma, tone float64, byDecreasingTone bool) float64 {
	answer := tone
	closest := NewTonalPalette(hue, chroma).HCT(tone)
	if closest.Chroma() >= chroma {
		return answer
	}

	step := 1.0
	if byDecreasingTone {
		step = -1.0
	}
	peak := closest.Chroma()
	for closest.Chroma() < chroma {
		answer += step
		candidate := NewTonalPalette(hue, chroma).HCT(answer)
		if peak > candidate.Chroma() {
			break
		}
		if math.Abs(candidate.Chroma()-chroma) < 0.4 {
			break
		}
		if math.Abs(candidate.Chroma()-chroma) < math.Abs(closest.Chroma()-chroma) {
			closest = candidate
		}
		peak = math.Max(peak, candidate.Chroma())
	}
	return answer
}
