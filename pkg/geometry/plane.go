package geometry

import (
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Plane is the infinite plane Normal·x + D = 0
type Plane struct {
	Normal   core.Vec3 // Unit normal
	D        float64   // Signed offset: the plane passes through -D·Normal
	Material core.Material
}

// NewPlane creates a plane from a normal and offset. The normal is normalized
// and D rescaled so the plane stays the same.
func NewPlane(normal core.Vec3, d float64, material core.Material) *Plane {
	length := normal.Length()
	return &Plane{
		Normal:   normal.Multiply(1 / length),
		D:        d / length,
		Material: material,
	}
}

// NewPlaneThroughPoint creates the plane through point with the given normal
func NewPlaneThroughPoint(point, normal core.Vec3, material core.Material) *Plane {
	n := normal.Normalize()
	return &Plane{Normal: n, D: -n.Dot(point), Material: material}
}

// Intersect tests the ray against the plane
func (p *Plane) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never cross the plane
	if denominator == 0 {
		return nil, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.D) / denominator
	if t <= 0 || math.IsNaN(t) {
		return nil, false
	}

	hit := core.NewHitRecord(ray, t, p.Normal, p, p.Material)
	hit.U, hit.V = planeUV(hit.Position, p.Normal)
	return hit, true
}

// BoundingBox returns an unbounded box; acceleration structures keep such
// primitives outside their spatial subdivision.
func (p *Plane) BoundingBox() core.AABB {
	return core.InfiniteAABB()
}

// planeUV projects a point onto two tangent directions of the plane
func planeUV(point, normal core.Vec3) (u, v float64) {
	var helper core.Vec3
	if math.Abs(normal.X) > 0.9 {
		helper = core.NewVec3(0, 1, 0)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}
	tangent := helper.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)
	return point.Dot(tangent), point.Dot(bitangent)
}
