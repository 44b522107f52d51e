package geometry

import (
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Rectangle is the parallelogram Corner + s·Edge1 + t·Edge2, s,t in [0,1]
type Rectangle struct {
	Corner   core.Vec3
	Edge1    core.Vec3
	Edge2    core.Vec3
	Material core.Material

	plane *Plane
}

// NewRectangle creates a rectangle; its normal is Edge1 × Edge2
func NewRectangle(corner, edge1, edge2 core.Vec3, material core.Material) *Rectangle {
	return &Rectangle{
		Corner:   corner,
		Edge1:    edge1,
		Edge2:    edge2,
		Material: material,
		plane:    NewPlaneThroughPoint(corner, edge1.Cross(edge2), material),
	}
}

// Intersect hits the supporting plane and keeps points inside both edges
func (r *Rectangle) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	hit, ok := r.plane.Intersect(ray)
	if !ok {
		return nil, false
	}

	local := hit.Position.Subtract(r.Corner)
	s := local.Dot(r.Edge1) / r.Edge1.LengthSquared()
	t := local.Dot(r.Edge2) / r.Edge2.LengthSquared()
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return nil, false
	}

	hit.Primitive = r
	hit.U, hit.V = s, t
	return hit, true
}

// BoundingBox returns the box around the four corners
func (r *Rectangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		r.Corner,
		r.Corner.Add(r.Edge1),
		r.Corner.Add(r.Edge2),
		r.Corner.Add(r.Edge1).Add(r.Edge2),
	)
}

// Normal returns the unit normal of the rectangle
func (r *Rectangle) Normal() core.Vec3 {
	return r.plane.Normal
}
