package hct

import "math"

// Signum returns -1, 0 or 1 for negative, zero and positive numbers.
func Signum(num float64) float64 {
	switch {
	case num < 0:
		return -1
	case num == 0:
		return 0
	default:
		return 1
	}
}

// Lerp linearly interpolates from start to stop by amount.
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// ClampInt clamps input to [min, max].
func ClampInt(lo, hi, input int) int {
	return max(lo, min(hi, input))
}

// Clamp clamps input to [lo, hi].
func Clamp(lo, hi, input float64) float64 {
	if input < lo {
		return lo
	}
	if input > hi {
		return hi
	}
	return input
}

// SanitizeDegreesInt wraps degrees into [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegrees wraps degrees into [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// RotationDirection returns 1 if the shortest rotation from one angle to the
// other is clockwise (increasing), -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// DifferenceDegrees is the angular distance between two angles, in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// Round rounds to the nearest integer, halves towards positive infinity.
// Tone thresholds (49, 60, ...) are defined against this rounding.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func matrixMultiply(row [3]float64, m [3][3]float64) [3]float64 {
	return [3]float64{
		row[0]*m[0][0] + row[1]*m[0][1] + row[2]*m[0][2],
		row[0]*m[1][0] + row[1]*m[1][1] + row[2]*m[1][2],
		row[0]*m[2][0] + row[1]*m[2][1] + row[2]*m[2][2],
	}
}
