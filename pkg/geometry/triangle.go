package geometry

import (
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached normal vector
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Intersect tests the ray against the triangle
func (t *Triangle) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	tHit, u, v, ok := intersectTriangle(ray, t.V0, t.V1, t.V2)
	if !ok {
		return nil, false
	}

	hit := core.NewHitRecord(ray, tHit, t.normal, t, t.Material)
	hit.U, hit.V = u, v
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal (counter-clockwise winding)
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// intersectTriangle implements the Möller-Trumbore test. u and v are the
// barycentric weights of v1 and v2.
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (t, u, v float64, ok bool) {
	const epsilon = 1e-12

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	t = f * edge2.Dot(q)
	if t <= 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
