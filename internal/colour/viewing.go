package colour

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ViewingConditions describes the environment a colour is seen in, as
// required by CAM16. Only the default conditions are used by tonal: a D65
// white point, an adapting luminance of 200/pi * Y(L*=50) / 100, a mid-grey
// background and an average surround.
type ViewingConditions struct {
	N      float64
	Aw     float64
	Nbb    float64
	Ncb    float64
	C      float64
	Nc     float64
	RgbD   [3]float64
	Fl     float64
	FlRoot float64
	Z      float64
}

// CAM16 cone response matrix and its companions. The solver matrices fold
// the cone response, discounting and luminance adaptation into a single
// linear step and are derived once from the default viewing conditions.
var (
	defaultViewingConditions = newViewingConditions(whitePointD65, 200.0/math.Pi*YFromLstar(50)/100.0, 50.0, 2.0, false)

	matrices = newColourMatrices(defaultViewingConditions)
)

type colourMatrices struct {
	srgbToXYZ                [3][3]float64
	xyzToSRGB                [3][3]float64
	m16                      [3][3]float64
	m16Inverse               [3][3]float64
	scaledDiscountFromLinrgb [3][3]float64
	linrgbFromScaledDiscount [3][3]float64
}

var (
	srgbToXYZ = [3][3]float64{
		{0.41233895, 0.35762064, 0.18051042},
		{0.2126, 0.7152, 0.0722},
		{0.01932141, 0.11916382, 0.95034478},
	}
	m16 = [3][3]float64{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}
	yFromLinrgb = [3]float64{0.2126, 0.7152, 0.0722}
)

func newViewingConditions(whitePoint [3]float64, adaptingLuminance, backgroundLstar, surround float64, discountingIlluminant bool) ViewingConditions {
	rgbW := mulVec(whitePoint, m16)

	f := 0.8 + surround/10.0
	var c float64
	if f >= 0.9 {
		c = lerp(0.59, 0.69, (f-0.9)*10.0)
	} else {
		c = lerp(0.525, 0.59, (f-0.8)*10.0)
	}

	d := 1.0
	if !discountingIlluminant {
		d = f * (1.0 - (1.0/3.6)*math.Exp((-adaptingLuminance-42.0)/92.0))
	}
	d = clampFloat(0, 1, d)

	var rgbD [3]float64
	for i := range rgbD {
		rgbD[i] = d*(100.0/rgbW[i]) + 1.0 - d
	}

	k := 1.0 / (5.0*adaptingLuminance + 1.0)
	k4 := k * k * k * k
	k4F := 1.0 - k4
	fl := k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5.0*adaptingLuminance)
	n := YFromLstar(backgroundLstar) / whitePoint[1]
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)

	var rgbA [3]float64
	for i := range rgbA {
		factor := math.Pow(fl*rgbD[i]*rgbW[i]/100.0, 0.42)
		rgbA[i] = 400.0 * factor / (factor + 27.13)
	}
	aw := (2.0*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * nbb

	return ViewingConditions{
		N:      n,
		Aw:     aw,
		Nbb:    nbb,
		Ncb:    nbb,
		C:      c,
		Nc:     f,
		RgbD:   rgbD,
		Fl:     fl,
		FlRoot: math.Pow(fl, 0.25),
		Z:      z,
	}
}

func newColourMatrices(vc ViewingConditions) colourMatrices {
	toXYZ := denseFrom(srgbToXYZ)
	cone := denseFrom(m16)

	discount := mat.NewDiagDense(3, []float64{
		vc.RgbD[0] * vc.Fl / 100.0,
		vc.RgbD[1] * vc.Fl / 100.0,
		vc.RgbD[2] * vc.Fl / 100.0,
	})

	var coneFromLinrgb, scaled mat.Dense
	coneFromLinrgb.Mul(cone, toXYZ)
	scaled.Mul(discount, &coneFromLinrgb)

	return colourMatrices{
		srgbToXYZ:                srgbToXYZ,
		xyzToSRGB:                arrayFrom(mustInverse(toXYZ)),
		m16:                      m16,
		m16Inverse:               arrayFrom(mustInverse(cone)),
		scaledDiscountFromLinrgb: arrayFrom(&scaled),
		linrgbFromScaledDiscount: arrayFrom(mustInverse(&scaled)),
	}
}

func denseFrom(m [3][3]float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func arrayFrom(m mat.Matrix) [3][3]float64 {
	var out [3][3]float64
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// mustInverse panics because every matrix passed in is a fixed, well
// conditioned colour space transform.
func mustInverse(m mat.Matrix) *mat.Dense {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		panic("colour: singular colour matrix: " + err.Error())
	}
	return &inv
}

func lerp(start, stop, amount float64) float64 {
	return (1.0-amount)*start + amount*stop
}
