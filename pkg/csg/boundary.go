// Package csg evaluates constructive solid geometry along rays. Solids
// report every crossing of a ray with their surface as interval
// boundaries; boolean nodes merge the boundaries of their operands.
package csg

import (
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// BoundaryType tells whether a ray enters or leaves a solid at a boundary
type BoundaryType int

const (
	Start BoundaryType = iota
	End
)

func (b BoundaryType) String() string {
	if b == Start {
		return "START"
	}
	return "END"
}

// IntervalBoundary is one crossing of a ray with the surface of a solid.
// Hit is nil for the ±∞ sentinels of unbounded solids.
type IntervalBoundary struct {
	T    float64
	Type BoundaryType
	Hit  *core.HitRecord
}

// Solid is implemented by leaves, boolean nodes and instances. Boundary
// lists are sorted by T, alternate Start/End starting with Start, and have
// even length.
type Solid interface {
	intervalBoundaries(ray core.Ray) []IntervalBoundary
	// bounds returns a conservative box; unbounded directions are infinite
	bounds() core.AABB
}

// everywhere is the boundary list of a ray that never leaves the solid
func everywhere() []IntervalBoundary {
	return []IntervalBoundary{
		{T: math.Inf(-1), Type: Start},
		{T: math.Inf(1), Type: End},
	}
}

// linearBoundaries classifies the ray against the solid b·t + c ≤ 0
func linearBoundaries(b, c float64, surface func(t float64) *core.HitRecord) []IntervalBoundary {
	if b == 0 {
		if c <= 0 {
			return everywhere()
		}
		return nil
	}

	t := -c / b
	// b is direction·gradient, so its sign is the sign of direction·normal
	if b > 0 {
		return []IntervalBoundary{
			{T: math.Inf(-1), Type: Start},
			{T: t, Type: End, Hit: surface(t)},
		}
	}
	return []IntervalBoundary{
		{T: t, Type: Start, Hit: surface(t)},
		{T: math.Inf(1), Type: End},
	}
}

// quadricBoundaries classifies the ray against the solid a·t² + b·t + c ≤ 0.
// The leading coefficient decides whether the solid lies between the roots
// or outside them. With a > 0, f' is negative at the near root and positive
// at the far one, matching the sign of direction·normal at each.
func quadricBoundaries(a, b, c float64, surface func(t float64) *core.HitRecord) []IntervalBoundary {
	if a == 0 {
		return linearBoundaries(b, c, surface)
	}

	t0, t1, ok := core.SolveQuadratic(a, b, c)
	if !ok {
		if a < 0 {
			return everywhere()
		}
		return nil
	}

	if a > 0 {
		return []IntervalBoundary{
			{T: t0, Type: Start, Hit: surface(t0)},
			{T: t1, Type: End, Hit: surface(t1)},
		}
	}

	// Two-sided: inside before t0 and again after t1
	return []IntervalBoundary{
		{T: math.Inf(-1), Type: Start},
		{T: t0, Type: End, Hit: surface(t0)},
		{T: t1, Type: Start, Hit: surface(t1)},
		{T: math.Inf(1), Type: End},
	}
}
