package colour

// BlendUCS interpolates between two colours in CAM16-UCS. amount 0 returns
// from, 1 returns to.
func BlendUCS(from, to ARGB, amount float64) ARGB {
	fromCam := CAM16FromARGB(from)
	toCam := CAM16FromARGB(to)

	jstar := fromCam.Jstar + (toCam.Jstar-fromCam.Jstar)*amount
	astar := fromCam.Astar + (toCam.Astar-fromCam.Astar)*amount
	bstar := fromCam.Bstar + (toCam.Bstar-fromCam.Bstar)*amount
	return CAM16FromUCS(jstar, astar, bstar).ARGB()
}

// BlendHue moves the hue of from towards to by amount while keeping from's
// chroma and tone. The hue travels along the shorter arc.
func BlendHue(from, to ARGB, amount float64) ARGB {
	ucs := CAM16FromARGB(BlendUCS(from, to, amount))
	fromCam := CAM16FromARGB(from)
	return NewHCT(ucs.Hue, fromCam.Chroma, LstarFromARGB(from)).ARGB()
}
