package core

// DefaultRayEpsilon is the offset applied to rays spawned from a surface
const DefaultRayEpsilon = 1e-4

// Ray represents a ray with an origin, a direction and a recursion depth.
// Rays are values; nothing in the intersection engine mutates one after construction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Depth     int // Number of bounces that produced this ray
}

// NewRay creates a new primary ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayWithDepth creates a ray carrying a recursion depth
func NewRayWithDepth(origin, direction Vec3, depth int) Ray {
	return Ray{Origin: origin, Direction: direction, Depth: depth}
}

// NewEpsilonRay creates a ray whose origin is pushed eps along the
// normalized direction, so that it does not re-hit the surface it starts on.
func NewEpsilonRay(origin, direction Vec3, depth int, eps float64) Ray {
	offset := direction.Normalize().Multiply(eps)
	return Ray{Origin: origin.Add(offset), Direction: direction, Depth: depth}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
