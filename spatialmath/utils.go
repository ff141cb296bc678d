package spatialmath

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngDeg normalizes an angle in degrees to [0, 360).
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod(ang, 360)+360, 360)
}

// AngleDiffDeg returns the closest difference between two angles in degrees.
// The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return 180 - math.Abs(math.Abs(a1-a2)-180)
}
