package scheme

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

// ARGB resolves the role in s.
func (r Role) ARGB(s *DynamicScheme) colour.ARGB {
	return r.Color.ARGB(s)
}

// RoleColors maps kebab-case role names to resolved colours.
type RoleColors map[string]colour.ARGB

// Theme is the light and dark scheme generated from one source colour.
type Theme struct {
	Source   colour.ARGB
	Variant  Variant
	KeyColor colour.ARGB
	Light    RoleColors
	Dark     RoleColors
}

// Roles returns the dark scheme when dark is true and the light one otherwise.
func (t Theme) Roles(dark bool) RoleColors {
	if dark {
		return t.Dark
	}
	return t.Light
}

// Generator builds a Theme from a source colour.
type Generator interface {
	Generate(source colour.ARGB, variant Variant) Theme
}

// MaterialGenerator generates themes with the Material dynamic colour
// roles at a fixed contrast level.
type MaterialGenerator struct {
	// ContrastLevel ranges from -1 (reduced) to 1 (high); 0 is standard.
	ContrastLevel float64
}

// Generate implements Generator.
func (g MaterialGenerator) Generate(source colour.ARGB, variant Variant) Theme {
	hct := colour.HCTFromARGB(source)
	light := NewDynamicScheme(hct, variant, false, g.ContrastLevel)
	dark := NewDynamicScheme(hct, variant, true, g.ContrastLevel)

	return Theme{
		Source:   source,
		Variant:  variant,
		KeyColor: light.Primary.KeyColor().ARGB(),
		Light:    light.Roles(),
		Dark:     dark.Roles(),
	}
}

// Generate builds a standard-contrast theme.
func Generate(source colour.ARGB, variant Variant) Theme {
	return MaterialGenerator{}.Generate(source, variant)
}

// Roles resolves every role in the scheme.
func (s *DynamicScheme) Roles() RoleColors {
	roles := Roles()
	out := make(RoleColors, len(roles))
	for _, r := range roles {
		out[r.Name] = r.ARGB(s)
	}
	return out
}
