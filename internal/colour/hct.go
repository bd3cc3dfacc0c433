package colour

import "fmt"

// HCT is a colour in the hue, chroma, tone space: CAM16 hue and chroma
// paired with CIE L* as tone. Values are immutable; the With* methods return
// new colours.
//
// Hue is in [0, 360). Chroma is >= 0 with a maximum that depends on hue and
// tone. Tone is in [0, 100].
type HCT struct {
	hue    float64
	chroma float64
	tone   float64
	argb   ARGB
}

// NewHCT returns the colour closest to the requested coordinates that lies
// inside the sRGB gamut. Chroma is reduced when needed; hue and tone are
// kept.
func NewHCT(hue, chroma, tone float64) HCT {
	return HCTFromARGB(solveToARGB(hue, chroma, tone))
}

// HCTFromARGB converts a packed colour to HCT. Alpha is ignored.
func HCTFromARGB(c ARGB) HCT {
	cam := CAM16FromARGB(c)
	return HCT{
		hue:    cam.Hue,
		chroma: cam.Chroma,
		tone:   LstarFromARGB(c),
		argb:   c,
	}
}

// Hue returns the hue in degrees.
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the chroma.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the tone (L*).
func (h HCT) Tone() float64 { return h.tone }

// ARGB returns the packed sRGB colour.
func (h HCT) ARGB() ARGB { return h.argb }

// WithHue returns a copy with a different hue.
func (h HCT) WithHue(hue float64) HCT {
	return NewHCT(hue, h.chroma, h.tone)
}

// WithChroma returns a copy with a different chroma.
func (h HCT) WithChroma(chroma float64) HCT {
	return NewHCT(h.hue, chroma, h.tone)
}

// WithTone returns a copy with a different tone.
func (h HCT) WithTone(tone float64) HCT {
	return NewHCT(h.hue, h.chroma, tone)
}

// String implements fmt.Stringer.
func (h HCT) String() string {
	return fmt.Sprintf("HCT(%.1f, %.1f, %.1f) %s", h.hue, h.chroma, h.tone, h.argb.Hex())
}
