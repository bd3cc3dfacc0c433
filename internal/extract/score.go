package extract

import (
	"cmp"
	"math"
	"slices"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/quantize"
)

const (
	targetChroma            = 48.0 // A1 chroma
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// ScoreOptions tunes Score.
type ScoreOptions struct {
	// Desired is the maximum number of colours returned.
	Desired int
	// Filter drops colours with too little chroma or hue population.
	Filter bool
}

// DefaultScoreOptions returns the options used for key colour extraction.
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{Desired: 4, Filter: true}
}

type scored struct {
	argb       colour.ARGB
	hct        colour.HCT
	population int
	score      float64
}

// Score ranks quantized colours by their suitability as a theme source.
// A colour scores well when its hue, together with the hues within 15
// degrees of it, covers a large share of the image and its chroma is close
// to 48. Near-grey colours and colours whose hue neighbourhood covers 1% or
// less of the image are filtered out. The result is de-duplicated so that
// hues are far apart, relaxing the minimum separation from 90 to 15 degrees
// until opts.Desired colours are found.
//
// Ties are broken by population (descending) and then by ARGB value
// (ascending), so identical input always yields identical output. The
// result is empty when nothing survives the filters.
func Score(populations quantize.Result, opts ScoreOptions) []colour.ARGB {
	if opts.Desired <= 0 {
		opts.Desired = DefaultScoreOptions().Desired
	}

	argbs := make([]colour.ARGB, 0, len(populations))
	for c := range populations {
		argbs = append(argbs, c)
	}
	slices.Sort(argbs)

	var huePopulation [360]int
	populationSum := 0
	candidates := make([]scored, 0, len(argbs))
	for _, c := range argbs {
		hct := colour.HCTFromARGB(c)
		n := populations[c]
		candidates = append(candidates, scored{argb: c, hct: hct, population: n})
		huePopulation[int(math.Floor(hct.Hue()))%360] += n
		populationSum += n
	}
	if populationSum <= 0 {
		return nil
	}

	var excited [360]float64
	for hue, n := range huePopulation {
		proportion := float64(n) / float64(populationSum)
		for i := hue - 14; i < hue+16; i++ {
			excited[colour.SanitizeDegreesInt(i)] += proportion
		}
	}

	ranked := candidates[:0]
	for _, c := range candidates {
		proportion := excited[colour.SanitizeDegreesInt(int(math.Round(c.hct.Hue())))]
		if opts.Filter && (c.hct.Chroma() < cutoffChroma || proportion <= cutoffExcitedProportion) {
			continue
		}
		chromaWeight := weightChromaAbove
		if c.hct.Chroma() < targetChroma {
			chromaWeight = weightChromaBelow
		}
		c.score = proportion*100*weightProportion + (c.hct.Chroma()-targetChroma)*chromaWeight
		ranked = append(ranked, c)
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.population, a.population); c != 0 {
			return c
		}
		return cmp.Compare(a.argb, b.argb)
	})

	var chosen []scored
	for separation := 90; separation >= 15; separation-- {
		chosen = chosen[:0]
		for _, c := range ranked {
			if !slices.ContainsFunc(chosen, func(o scored) bool {
				return colour.DifferenceDegrees(c.hct.Hue(), o.hct.Hue()) < float64(separation)
			}) {
				chosen = append(chosen, c)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	out := make([]colour.ARGB, len(chosen))
	for i, c := range chosen {
		out[i] = c.argb
	}
	return out
}
