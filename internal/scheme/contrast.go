package scheme

// ContrastCurve gives the contrast ratio a colour needs against its
// background at each contrast level.
type ContrastCurve struct {
	Low    float64 // contrast level -1
	Normal float64 // contrast level 0
	Medium float64 // contrast level 0.5
	High   float64 // contrast level 1
}

// Get interpolates the ratio for a contrast level in [-1, 1].
func (c ContrastCurve) Get(level float64) float64 {
	switch {
	case level <= -1:
		return c.Low
	case level < 0:
		return lerp(c.Low, c.Normal, level+1)
	case level < 0.5:
		return lerp(c.Normal, c.Medium, level/0.5)
	case level < 1:
		return lerp(c.Medium, c.High, (level-0.5)/0.5)
	default:
		return c.High
	}
}

func lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// TonePolarity says which role of a ToneDeltaPair sits closer to the
// background.
type TonePolarity int

const (
	// Darker puts RoleA on the darker side.
	Darker TonePolarity = iota
	// Lighter puts RoleA on the lighter side.
	Lighter
	// Nearer puts RoleA nearer to the background.
	Nearer
	// Farther puts RoleA farther from the background.
	Farther
)

// ToneDeltaPair constrains two roles to stay at least Delta tones apart,
// for example a container and the accent drawn on top of it.
type ToneDeltaPair struct {
	RoleA        *DynamicColor
	RoleB        *DynamicColor
	Delta        float64
	Polarity     TonePolarity
	StayTogether bool
}
