package geometry

import (
	"fmt"
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %f", radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Intersect returns the nearest intersection in front of the ray origin
func (s *Sphere) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.LengthSquared()
	b := 2 * oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	t0, t1, ok := core.SolveQuadratic(a, b, c)
	if !ok {
		return nil, false
	}

	// Prefer the near root, fall back to the far one when the origin is inside
	t := t0
	if t <= 0 {
		t = t1
		if t <= 0 {
			return nil, false
		}
	}

	point := ray.At(t)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit := core.NewHitRecord(ray, t, outwardNormal, s, s.Material)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// sphereUV maps a unit vector to longitude/latitude texture coordinates
func sphereUV(n core.Vec3) (u, v float64) {
	u = 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi)
	v = 0.5 - math.Asin(max(-1, min(1, n.Y)))/math.Pi
	return u, v
}
