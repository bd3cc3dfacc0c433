package scheme

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// IsDisliked reports whether h is a dark yellow-green ("bile"), which is
// widely perceived as unpleasant.
func IsDisliked(h colour.HCT) bool {
	hue := math.Round(h.Hue())
	return hue >= 90 && hue <= 111 && math.Round(h.Chroma()) > 16 && math.Round(h.Tone()) < 65
}

// FixIfDisliked lightens a disliked colour to tone 70 and returns other
// colours unchanged.
func FixIfDisliked(h colour.HCT) colour.HCT {
	if IsDisliked(h) {
		return colour.NewHCT(h.Hue(), h.Chroma(), 70)
	}
	return h
}
