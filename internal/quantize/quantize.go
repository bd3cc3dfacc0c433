// Package quantize reduces the colours of an image to a small set of
// representative colours, each weighted by the number of pixels it stands
// for.
//
// Celebi (Wu box cutting refined by weighted k-means in L*a*b*) is the
// default and is fully deterministic. KMeans, Dominant and Prominent wrap
// third-party clustering libraries and are available as alternatives.
package quantize

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Result maps each representative colour to its pixel population.
type Result map[colour.ARGB]int

// Map counts the occurrences of every opaque colour in pixels.
func Map(pixels []colour.ARGB) Result {
	counts := make(Result)
	for _, p := range pixels {
		if !p.IsOpaque() {
			continue
		}
		counts[p]++
	}
	return counts
}

func opaque(pixels []colour.ARGB) []colour.ARGB {
	out := make([]colour.ARGB, 0, len(pixels))
	for _, p := range pixels {
		if p.IsOpaque() {
			out = append(out, p)
		}
	}
	return out
}

// labPoint is a colour in CIE L*a*b* with L* in [0, 100].
type labPoint [3]float64

func toLab(c colour.ARGB) labPoint {
	l, a, b := colorful.Color{
		R: float64(c.Red()) / 255.0,
		G: float64(c.Green()) / 255.0,
		B: float64(c.Blue()) / 255.0,
	}.Lab()
	return labPoint{l * 100, a * 100, b * 100}
}

func fromLab(p labPoint) colour.ARGB {
	r, g, b := colorful.Lab(p[0]/100, p[1]/100, p[2]/100).Clamped().RGB255()
	return colour.FromRGB(r, g, b)
}

// distance is the squared euclidean distance between two Lab points.
func (p labPoint) distance(o labPoint) float64 {
	dl := p[0] - o[0]
	da := p[1] - o[1]
	db := p[2] - o[2]
	return dl*dl + da*da + db*db
}
