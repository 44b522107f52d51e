package core

import "math"

// SolveQuadratic returns the real roots of a·t² + b·t + c = 0 in ascending
// order. ok is false for a negative discriminant or a degenerate a.
func SolveQuadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	if a == 0 {
		return 0, 0, false
	}
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(discriminant)
	t0 = (-b - sqrtD) / (2 * a)
	t1 = (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
