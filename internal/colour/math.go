package colour

import "math"

// SanitizeDegrees normalises an angle into [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegreesInt normalises an integer angle into [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// DifferenceDegrees returns the distance between two hues along the
// shorter arc of the colour wheel, in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// RotationDirection returns +1 when rotating from -> to in increasing hue
// is the shorter path, and -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

func signum(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v == 0:
		return 0
	default:
		return 1
	}
}

func clampFloat(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(lo, hi, v int) int {
	return max(lo, min(hi, v))
}

func mulVec(row [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		row[0]*m[0][0] + row[1]*m[0][1] + row[2]*m[0][2],
		row[0]*m[1][0] + row[1]*m[1][1] + row[2]*m[1][2],
		row[0]*m[2][0] + row[1]*m[2][1] + row[2]*m[2][2],
	}
}
