package colour

import "math"

// CAM16 is a colour appearance model. Its hue and chroma are the H and C of
// HCT; the UCS coordinates (Jstar, Astar, Bstar) give a perceptually uniform
// space suitable for distances and interpolation.
type CAM16 struct {
	Hue    float64
	Chroma float64
	J      float64
	Q      float64
	M      float64
	S      float64
	Jstar  float64
	Astar  float64
	Bstar  float64
}

// CAM16FromARGB returns the CAM16 appearance of a colour under the default
// viewing conditions.
func CAM16FromARGB(c ARGB) CAM16 {
	xyz := xyzFromARGB(c)
	return cam16FromXYZ(xyz[0], xyz[1], xyz[2], defaultViewingConditions)
}

func cam16FromXYZ(x, y, z float64, vc ViewingConditions) CAM16 {
	cone := mulVec([3]float64{x, y, z}, matrices.m16)

	var adapted [3]float64
	for i := range adapted {
		d := vc.RgbD[i] * cone[i]
		af := math.Pow(vc.Fl*math.Abs(d)/100.0, 0.42)
		adapted[i] = signum(d) * 400.0 * af / (af + 27.13)
	}
	rA, gA, bA := adapted[0], adapted[1], adapted[2]

	a := (11.0*rA + -12.0*gA + bA) / 11.0
	b := (rA + gA - 2.0*bA) / 9.0
	u := (20.0*rA + 20.0*gA + 21.0*bA) / 20.0
	p2 := (40.0*rA + 20.0*gA + bA) / 20.0

	hue := SanitizeDegrees(math.Atan2(b, a) * 180.0 / math.Pi)
	hueRadians := hue * math.Pi / 180.0

	ac := p2 * vc.Nbb
	j := 100.0 * math.Pow(ac/vc.Aw, vc.C*vc.Z)
	q := 4.0 / vc.C * math.Sqrt(j/100.0) * (vc.Aw + 4.0) * vc.FlRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime = hue + 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180.0+2.0) + 3.8)
	p1 := 50000.0 / 13.0 * eHue * vc.Nc * vc.Ncb
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(1.64-math.Pow(0.29, vc.N), 0.73) * math.Pow(t, 0.9)

	chroma := alpha * math.Sqrt(j/100.0)
	m := chroma * vc.FlRoot
	s := 50.0 * math.Sqrt(alpha*vc.C/(vc.Aw+4.0))

	jstar, astar, bstar := ucs(j, m, hueRadians)
	return CAM16{
		Hue:    hue,
		Chroma: chroma,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  astar,
		Bstar:  bstar,
	}
}

// CAM16FromJCH builds a CAM16 from lightness J, chroma C and hue H.
func CAM16FromJCH(j, c, h float64) CAM16 {
	vc := defaultViewingConditions
	q := 4.0 / vc.C * math.Sqrt(j/100.0) * (vc.Aw + 4.0) * vc.FlRoot
	m := c * vc.FlRoot

	var s float64
	if j > 0 {
		alpha := c / math.Sqrt(j/100.0)
		s = 50.0 * math.Sqrt(alpha*vc.C/(vc.Aw+4.0))
	}

	hueRadians := h * math.Pi / 180.0
	jstar, astar, bstar := ucs(j, m, hueRadians)
	return CAM16{
		Hue:    h,
		Chroma: c,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		Jstar:  jstar,
		Astar:  astar,
		Bstar:  bstar,
	}
}

// CAM16FromUCS builds a CAM16 from CAM16-UCS coordinates.
func CAM16FromUCS(jstar, astar, bstar float64) CAM16 {
	m := math.Hypot(astar, bstar)
	bigM := (math.Exp(m*0.0228) - 1.0) / 0.0228
	c := bigM / defaultViewingConditions.FlRoot
	h := SanitizeDegrees(math.Atan2(bstar, astar) * 180.0 / math.Pi)
	j := jstar / (1.0 - (jstar-100.0)*0.007)
	return CAM16FromJCH(j, c, h)
}

// Distance returns the CAM16-UCS colour difference between two colours.
func (c CAM16) Distance(other CAM16) float64 {
	dJ := c.Jstar - other.Jstar
	dA := c.Astar - other.Astar
	dB := c.Bstar - other.Bstar
	return 1.41 * math.Pow(math.Sqrt(dJ*dJ+dA*dA+dB*dB), 0.63)
}

// ARGB converts the appearance back to sRGB under the default viewing
// conditions.
func (c CAM16) ARGB() ARGB {
	return c.viewed(defaultViewingConditions)
}

func (c CAM16) viewed(vc ViewingConditions) ARGB {
	var alpha float64
	if c.Chroma != 0 && c.J != 0 {
		alpha = c.Chroma / math.Sqrt(c.J/100.0)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vc.N), 0.73), 1.0/0.9)
	hRad := c.Hue * math.Pi / 180.0

	eHue := 0.25 * (math.Cos(hRad+2.0) + 3.8)
	ac := vc.Aw * math.Pow(c.J/100.0, 1.0/vc.C/vc.Z)
	p1 := eHue * (50000.0 / 13.0) * vc.Nc * vc.Ncb
	p2 := ac / vc.Nbb

	hSin, hCos := math.Sin(hRad), math.Cos(hRad)
	gamma := 23.0 * (p2 + 0.305) * t / (23.0*p1 + 11.0*t*hCos + 108.0*t*hSin)
	a := gamma * hCos
	b := gamma * hSin

	adapted := [3]float64{
		(460.0*p2 + 451.0*a + 288.0*b) / 1403.0,
		(460.0*p2 - 891.0*a - 261.0*b) / 1403.0,
		(460.0*p2 - 220.0*a - 6300.0*b) / 1403.0,
	}

	var cone [3]float64
	for i, v := range adapted {
		base := math.Max(0, 27.13*math.Abs(v)/(400.0-math.Abs(v)))
		cone[i] = signum(v) * (100.0 / vc.Fl) * math.Pow(base, 1.0/0.42) / vc.RgbD[i]
	}

	xyz := mulVec(cone, matrices.m16Inverse)
	return argbFromXYZ(xyz[0], xyz[1], xyz[2])
}

func ucs(j, m, hueRadians float64) (jstar, astar, bstar float64) {
	jstar = (1.0 + 100.0*0.007) * j / (1.0 + 0.007*j)
	mstar := 1.0 / 0.0228 * math.Log1p(0.0228*m)
	return jstar, mstar * math.Cos(hueRadians), mstar * math.Sin(hueRadians)
}
