package material

import (
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// ColorSource provides spatially-varying reflectance
type ColorSource interface {
	// Evaluate returns the color for a hit; u, v come from the surface
	// parameterization and point is the world-space position
	Evaluate(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor is a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checkerboard alternates two colors over the surface parameterization
type Checkerboard struct {
	Even, Odd core.Vec3
	Checks    float64 // Number of checks per unit of u and v
}

// NewCheckerboard creates a checkerboard with the given number of checks per unit
func NewCheckerboard(even, odd core.Vec3, checks float64) *Checkerboard {
	return &Checkerboard{Even: even, Odd: odd, Checks: checks}
}

// Evaluate picks the color of the check containing (u, v)
func (c *Checkerboard) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	checkU := int(math.Floor(u * c.Checks))
	checkV := int(math.Floor(v * c.Checks))
	if (checkU+checkV)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
