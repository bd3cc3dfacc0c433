package scheme

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tonal/internal/colour"
)

// temperature computes colour-theory relationships (complements and
// analogous colours) based on the perceived warmth of colours at the
// input's chroma and tone.
type temperature struct {
	input colour.HCT

	// byHue holds the input's chroma and tone at every integer hue, 0-360.
	byHue []colour.HCT
	// temps holds the raw temperature of each entry of byHue and, at the
	// last index, of the input.
	temps []float64

	coldest, warmest int // indexes into byHue
}

func newTemperature(input colour.HCT) *temperature {
	t := &temperature{input: input}
	for hue := 0; hue <= 360; hue++ {
		h := colour.NewHCT(float64(hue), input.Chroma(), input.Tone())
		t.byHue = append(t.byHue, h)
		t.temps = append(t.temps, rawTemperature(h))
	}
	t.temps = append(t.temps, rawTemperature(input))

	for i := range t.byHue {
		if t.temps[i] < t.temps[t.coldest] {
			t.coldest = i
		}
		if t.temps[i] > t.temps[t.warmest] {
			t.warmest = i
		}
	}
	return t
}

// rawTemperature is the Ou, Woodcock and Wright warmth estimate, in
// roughly [-0.5, 1.0].
func rawTemperature(h colour.HCT) float64 {
	c := h.ARGB()
	_, a, b := colorful.Color{
		R: float64(c.Red()) / 255.0,
		G: float64(c.Green()) / 255.0,
		B: float64(c.Blue()) / 255.0,
	}.Lab()
	a, b = a*100, b*100

	hue := colour.SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)
	chroma := math.Hypot(a, b)
	return -0.5 + 0.02*math.Pow(chroma, 1.07)*math.Cos(colour.SanitizeDegrees(hue-50)*math.Pi/180)
}

func (t *temperature) relative(temp float64) float64 {
	span := t.temps[t.warmest] - t.temps[t.coldest]
	if span == 0 {
		return 0.5
	}
	return (temp - t.temps[t.coldest]) / span
}

func (t *temperature) atHue(hue int) (colour.HCT, float64) {
	i := colour.SanitizeDegreesInt(hue)
	return t.byHue[i], t.temps[i]
}

func isBetween(angle, a, b float64) bool {
	if a < b {
		return a <= angle && angle <= b
	}
	return a <= angle || angle <= b
}

// complement returns the colour whose relative temperature is the opposite
// of the input's, searching the arc from the warmest to the coldest hue
// that does not contain the input.
func (t *temperature) complement() colour.HCT {
	coldestHue := t.byHue[t.coldest].Hue()
	warmestHue := t.byHue[t.warmest].Hue()
	coldestTemp := t.temps[t.coldest]
	span := t.temps[t.warmest] - coldestTemp

	startHue, endHue := coldestHue, warmestHue
	if isBetween(t.input.Hue(), coldestHue, warmestHue) {
		startHue, endHue = warmestHue, coldestHue
	}

	answer, _ := t.atHue(int(math.Round(t.input.Hue())))
	target := 1 - t.relative(t.temps[len(t.temps)-1])
	smallestError := 1000.0
	for addend := 0.0; addend <= 360; addend++ {
		hue := colour.SanitizeDegrees(startHue + addend)
		if !isBetween(hue, startHue, endHue) {
			continue
		}
		candidate, temp := t.atHue(int(math.Round(hue)))
		relative := 0.5
		if span != 0 {
			relative = (temp - coldestTemp) / span
		}
		if e := math.Abs(target - relative); e < smallestError {
			smallestError = e
			answer = candidate
		}
	}
	return answer
}

// analogous returns count colours around the input, spaced so that the
// temperature steps between them are even across divisions slices of the
// colour wheel. The input sits in the middle of the result.
func (t *temperature) analogous(count, divisions int) []colour.HCT {
	startHue := int(math.Round(t.input.Hue()))
	startHCT, startTemp := t.atHue(startHue)

	totalDelta := 0.0
	last := startTemp
	for i := range 360 {
		_, temp := t.atHue(startHue + i)
		totalDelta += math.Abs(temp - last)
		last = temp
	}

	step := totalDelta / float64(divisions)
	all := []colour.HCT{startHCT}
	accumulated := 0.0
	last = startTemp
	for addend := 1; len(all) < divisions; addend++ {
		h, temp := t.atHue(startHue + addend)
		accumulated += math.Abs(temp - last)

		desired := float64(len(all)) * step
		indexAddend := 1
		for accumulated >= desired && len(all) < divisions {
			all = append(all, h)
			desired = float64(len(all)+indexAddend) * step
			indexAddend++
		}
		last = temp

		if addend >= 360 {
			for len(all) < divisions {
				all = append(all, h)
			}
			break
		}
	}

	wrap := func(i int) int {
		n := len(all)
		return ((i % n) + n) % n
	}

	answers := []colour.HCT{t.input}
	increase := (count - 1) / 2
	for i := 1; i <= increase; i++ {
		answers = slices.Insert(answers, 0, all[wrap(-i)])
	}
	decrease := count - increase - 1
	for i := 1; i <= decrease; i++ {
		answers = append(answers, all[wrap(i)])
	}
	return answers
}
