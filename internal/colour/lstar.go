package colour

import "math"

// D65 reference white in XYZ, scaled so Y = 100.
var whitePointD65 = [3]float64{95.047, 100.0, 108.883}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// linearized converts an 8-bit gamma-encoded sRGB component into linear
// RGB on a 0-100 scale.
func linearized(component uint8) float64 {
	normalized := float64(component) / 255.0
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100.0
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100.0
}

// delinearized converts a linear RGB component on a 0-100 scale into an
// 8-bit gamma-encoded sRGB component.
func delinearized(linear float64) uint8 {
	normalized := linear / 100.0
	var v float64
	if normalized <= 0.0031308 {
		v = normalized * 12.92
	} else {
		v = 1.055*math.Pow(normalized, 1.0/2.4) - 0.055
	}
	return uint8(clampInt(0, 255, int(math.Round(v*255.0))))
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labInvf(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// YFromLstar converts an L* value (0-100) to relative luminance Y (0-100).
func YFromLstar(lstar float64) float64 {
	return 100.0 * labInvf((lstar+16.0)/116.0)
}

// LstarFromY converts relative luminance Y (0-100) to L* (0-100).
func LstarFromY(y float64) float64 {
	return labF(y/100.0)*116.0 - 16.0
}

// LstarFromARGB returns the L* (tone) of a colour.
func LstarFromARGB(c ARGB) float64 {
	return LstarFromY(xyzFromARGB(c)[1])
}

// ARGBFromLstar returns the grey with the given L*.
func ARGBFromLstar(lstar float64) ARGB {
	component := delinearized(YFromLstar(lstar))
	return FromRGB(component, component, component)
}

func xyzFromARGB(c ARGB) [3]float64 {
	return mulVec([3]float64{
		linearized(c.Red()),
		linearized(c.Green()),
		linearized(c.Blue()),
	}, matrices.srgbToXYZ)
}

func argbFromXYZ(x, y, z float64) ARGB {
	return argbFromLinrgb(mulVec([3]float64{x, y, z}, matrices.xyzToSRGB))
}

func argbFromLinrgb(linrgb [3]float64) ARGB {
	return FromRGB(delinearized(linrgb[0]), delinearized(linrgb[1]), delinearized(linrgb[2]))
}
