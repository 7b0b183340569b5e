package vmath

import "math"

const (
	Pi  = math.Pi
	Tau = 2 * math.Pi
)

// NormalizeAngle wraps an angle to (-Pi, Pi]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a <= -Pi {
		a += Tau
	} else if a > Pi {
		a -= Tau
	}
	return a
}

// AngleDiff returns the signed shortest rotation from a to b, in (-Pi, Pi]
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs linear interpolation between a and b
// t is in [0, 1] where 0 returns a, 1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns absolute value
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Magnitude returns the length of vector (x, y)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Normalize scales (x, y) to unit length
// Returns (0, 0) for the zero vector
func Normalize(x, y float64) (float64, float64) {
	m := Magnitude(x, y)
	if m == 0 {
		return 0, 0
	}
	return x / m, y / m
}
