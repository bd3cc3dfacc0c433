package scheme

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// TonalPalette is the set of colours that share a hue and chroma and differ
// only in tone.
type TonalPalette struct {
	hue      float64
	chroma   float64
	keyColor colour.HCT
	cache    map[int]colour.ARGB
}

// NewTonalPalette returns the palette for hue and chroma. Its key colour is
// the tone closest to 50 that can reach the requested chroma.
func NewTonalPalette(hue, chroma float64) *TonalPalette {
	return &TonalPalette{
		hue:      hue,
		chroma:   chroma,
		keyColor: keyColor(hue, chroma),
		cache:    make(map[int]colour.ARGB),
	}
}

// TonalPaletteFromHCT returns the palette with the hue and chroma of h,
// using h itself as the key colour.
func TonalPaletteFromHCT(h colour.HCT) *TonalPalette {
	return &TonalPalette{
		hue:      h.Hue(),
		chroma:   h.Chroma(),
		keyColor: h,
		cache:    make(map[int]colour.ARGB),
	}
}

// Hue returns the palette hue.
func (p *TonalPalette) Hue() float64 { return p.hue }

// Chroma returns the requested palette chroma.
func (p *TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor returns the palette's representative colour.
func (p *TonalPalette) KeyColor() colour.HCT { return p.keyColor }

// Tone returns the palette colour at an integer tone, cached.
func (p *TonalPalette) Tone(tone int) colour.ARGB {
	if c, ok := p.cache[tone]; ok {
		return c
	}
	c := colour.NewHCT(p.hue, p.chroma, float64(tone)).ARGB()
	p.cache[tone] = c
	return c
}

// HCT returns the palette colour at an arbitrary tone.
func (p *TonalPalette) HCT(tone float64) colour.HCT {
	return colour.NewHCT(p.hue, p.chroma, tone)
}

const maxChromaValue = 200.0

// keyColor searches for the tone, nearest to 50, at which the requested
// chroma is reachable. When no tone reaches it, the tone with the highest
// achievable chroma is used.
func keyColor(hue, requestedChroma float64) colour.HCT {
	const (
		pivotTone = 50
		toneStep  = 1
		epsilon   = 0.01
	)

	maxChroma := make(map[int]float64)
	chromaAt := func(tone int) float64 {
		if c, ok := maxChroma[tone]; ok {
			return c
		}
		c := colour.NewHCT(hue, maxChromaValue, float64(tone)).Chroma()
		maxChroma[tone] = c
		return c
	}

	lower, upper := 0, 100
	for lower < upper {
		mid := (lower + upper) / 2
		ascending := chromaAt(mid) < chromaAt(mid+toneStep)
		sufficient := chromaAt(mid) >= requestedChroma-epsilon

		if sufficient {
			// Narrow towards the pivot.
			if math.Abs(float64(lower-pivotTone)) < math.Abs(float64(upper-pivotTone)) {
				upper = mid
			} else {
				if lower == mid {
					return colour.NewHCT(hue, requestedChroma, float64(lower))
				}
				lower = mid
			}
		} else if ascending {
			lower = mid + toneStep
		} else {
			upper = mid
		}
	}
	return colour.NewHCT(hue, requestedChroma, float64(lower))
}
