package colour

import "math"

// criticalPlanes[i] is the linear RGB value (0-100) that delinearizes to
// i + 0.5, i.e. the boundary between two adjacent 8-bit sRGB levels.
var criticalPlanes = func() [255]float64 {
	var planes [255]float64
	for i := range planes {
		normalized := (float64(i) + 0.5) / 255.0
		if normalized <= 0.040449936 {
			planes[i] = normalized / 12.92 * 100.0
		} else {
			planes[i] = math.Pow((normalized+0.055)/1.055, 2.4) * 100.0
		}
	}
	return planes
}()

// solveToARGB finds the sRGB colour with the requested HCT coordinates,
// reducing chroma when the request lies outside the sRGB gamut. Hue and
// tone are preserved.
func solveToARGB(hueDegrees, chroma, lstar float64) ARGB {
	if chroma < 0.0001 || lstar < 0.0001 || lstar > 99.9999 {
		return ARGBFromLstar(lstar)
	}
	hueDegrees = SanitizeDegrees(hueDegrees)
	hueRadians := hueDegrees / 180.0 * math.Pi
	y := YFromLstar(lstar)

	if exact, ok := findResultByJ(hueRadians, chroma, y); ok {
		return exact
	}
	return argbFromLinrgb(bisectToLimit(y, hueRadians))
}

// findResultByJ iterates on CAM16 lightness J until the resulting colour
// has the requested Y. It fails when the colour is out of gamut.
func findResultByJ(hueRadians, chroma, y float64) (ARGB, bool) {
	vc := defaultViewingConditions

	j := math.Sqrt(y) * 11.0
	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vc.N), 0.73)
	eHue := 0.25 * (math.Cos(hueRadians+2.0) + 3.8)
	p1 := eHue * (50000.0 / 13.0) * vc.Nc * vc.Ncb
	hSin, hCos := math.Sin(hueRadians), math.Cos(hueRadians)

	for round := range 5 {
		jNormalized := j / 100.0
		var alpha float64
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNormalized)
		}
		t := math.Pow(alpha*tInnerCoeff, 1.0/0.9)
		ac := vc.Aw * math.Pow(jNormalized, 1.0/vc.C/vc.Z)
		p2 := ac / vc.Nbb
		gamma := 23.0 * (p2 + 0.305) * t / (23.0*p1 + 11*t*hCos + 108.0*t*hSin)
		a := gamma * hCos
		b := gamma * hSin

		rA := (460.0*p2 + 451.0*a + 288.0*b) / 1403.0
		gA := (460.0*p2 - 891.0*a - 261.0*b) / 1403.0
		bA := (460.0*p2 - 220.0*a - 6300.0*b) / 1403.0

		scaled := [3]float64{
			inverseChromaticAdaptation(rA),
			inverseChromaticAdaptation(gA),
			inverseChromaticAdaptation(bA),
		}
		linrgb := mulVec(scaled, matrices.linrgbFromScaledDiscount)
		if linrgb[0] < 0 || linrgb[1] < 0 || linrgb[2] < 0 {
			return 0, false
		}

		fnj := yFromLinrgb[0]*linrgb[0] + yFromLinrgb[1]*linrgb[1] + yFromLinrgb[2]*linrgb[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return 0, false
			}
			return argbFromLinrgb(linrgb), true
		}
		// Newton step; the derivative of Y with respect to sqrt(J) is
		// approximately 2 * Y / sqrt(J).
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}

func chromaticAdaptation(component float64) float64 {
	af := math.Pow(math.Abs(component), 0.42)
	return signum(component) * 400.0 * af / (af + 27.13)
}

func inverseChromaticAdaptation(adapted float64) float64 {
	abs := math.Abs(adapted)
	base := math.Max(0, 27.13*abs/(400.0-abs))
	return signum(adapted) * math.Pow(base, 1.0/0.42)
}

func hueOf(linrgb [3]float64) float64 {
	scaled := mulVec(linrgb, matrices.scaledDiscountFromLinrgb)
	rA := chromaticAdaptation(scaled[0])
	gA := chromaticAdaptation(scaled[1])
	bA := chromaticAdaptation(scaled[2])
	a := (11.0*rA + -12.0*gA + bA) / 11.0
	b := (rA + gA - 2.0*bA) / 9.0
	return math.Atan2(b, a)
}

func sanitizeRadians(angle float64) float64 {
	return math.Mod(angle+math.Pi*8, math.Pi*2)
}

func areInCyclicOrder(a, b, c float64) bool {
	return sanitizeRadians(b-a) < sanitizeRadians(c-a)
}

func trueDelinearized(component float64) float64 {
	normalized := component / 100.0
	var v float64
	if normalized <= 0.0031308 {
		v = normalized * 12.92
	} else {
		v = 1.055*math.Pow(normalized, 1.0/2.4) - 0.055
	}
	return v * 255.0
}

func isBounded(x float64) bool {
	return 0.0 <= x && x <= 100.0
}

// nthVertex returns the nth of the 12 candidate points where the plane of
// constant Y intersects the edges of the linear RGB cube, or ok=false when
// that intersection lies outside the cube.
func nthVertex(y float64, n int) ([3]float64, bool) {
	kR, kG, kB := yFromLinrgb[0], yFromLinrgb[1], yFromLinrgb[2]
	coordA := 100.0
	if n%4 <= 1 {
		coordA = 0.0
	}
	coordB := 100.0
	if n%2 == 0 {
		coordB = 0.0
	}

	switch {
	case n < 4:
		g, b := coordA, coordB
		r := (y - g*kG - b*kB) / kR
		return [3]float64{r, g, b}, isBounded(r)
	case n < 8:
		b, r := coordA, coordB
		g := (y - r*kR - b*kB) / kG
		return [3]float64{r, g, b}, isBounded(g)
	default:
		r, g := coordA, coordB
		b := (y - r*kR - g*kG) / kB
		return [3]float64{r, g, b}, isBounded(b)
	}
}

func bisectToSegment(y, targetHue float64) (left, right [3]float64) {
	var leftHue, rightHue float64
	initialized := false
	uncut := true

	for n := range 12 {
		mid, ok := nthVertex(y, n)
		if !ok {
			continue
		}
		midHue := hueOf(mid)
		if !initialized {
			left, right = mid, mid
			leftHue, rightHue = midHue, midHue
			initialized = true
			continue
		}
		if uncut || areInCyclicOrder(leftHue, midHue, rightHue) {
			uncut = false
			if areInCyclicOrder(leftHue, targetHue, midHue) {
				right, rightHue = mid, midHue
			} else {
				left, leftHue = mid, midHue
			}
		}
	}
	return left, right
}

func midpoint(a, b [3]float64) [3]float64 {
	return [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

func setCoordinate(source [3]float64, coordinate float64, target [3]float64, axis int) [3]float64 {
	t := (coordinate - source[axis]) / (target[axis] - source[axis])
	return [3]float64{
		source[0] + (target[0]-source[0])*t,
		source[1] + (target[1]-source[1])*t,
		source[2] + (target[2]-source[2])*t,
	}
}

// bisectToLimit finds the colour on the gamut boundary with the given Y and
// hue by bisecting along the critical planes of each RGB axis.
func bisectToLimit(y, targetHue float64) [3]float64 {
	left, right := bisectToSegment(y, targetHue)
	leftHue := hueOf(left)

	for axis := range 3 {
		if left[axis] == right[axis] {
			continue
		}
		var lPlane, rPlane int
		if left[axis] < right[axis] {
			lPlane = int(math.Floor(trueDelinearized(left[axis]) - 0.5))
			rPlane = int(math.Ceil(trueDelinearized(right[axis]) - 0.5))
		} else {
			lPlane = int(math.Ceil(trueDelinearized(left[axis]) - 0.5))
			rPlane = int(math.Floor(trueDelinearized(right[axis]) - 0.5))
		}

		for range 8 {
			if abs(rPlane-lPlane) <= 1 {
				break
			}
			mPlane := int(math.Floor(float64(lPlane+rPlane) / 2.0))
			mid := setCoordinate(left, criticalPlanes[clampInt(0, len(criticalPlanes)-1, mPlane)], right, axis)
			midHue := hueOf(mid)
			if areInCyclicOrder(leftHue, targetHue, midHue) {
				right = mid
				rPlane = mPlane
			} else {
				left = mid
				leftHue = midHue
				lPlane = mPlane
			}
		}
	}
	return midpoint(left, right)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
