package csg

import (
	"fmt"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Plane is the half-space Normal·x + D ≤ 0. Normal points out of the solid.
type Plane struct {
	Normal   core.Vec3
	D        float64
	Material core.Material
}

// NewPlane creates a half-space; the normal is normalized and D rescaled
func NewPlane(normal core.Vec3, d float64, material core.Material) *Plane {
	length := normal.Length()
	return &Plane{
		Normal:   normal.Multiply(1 / length),
		D:        d / length,
		Material: material,
	}
}

func (p *Plane) intervalBoundaries(ray core.Ray) []IntervalBoundary {
	return linearBoundaries(
		p.Normal.Dot(ray.Direction),
		p.Normal.Dot(ray.Origin)+p.D,
		func(t float64) *core.HitRecord {
			return core.NewHitRecord(ray, t, p.Normal, nil, p.Material)
		},
	)
}

// bounds clips one axis when the normal is axis aligned
func (p *Plane) bounds() core.AABB {
	box := core.InfiniteAABB()
	for axis := 0; axis < 3; axis++ {
		n := p.Normal.Axis(axis)
		if n == 0 || p.Normal.Axis((axis+1)%3) != 0 || p.Normal.Axis((axis+2)%3) != 0 {
			continue
		}
		limit := -p.D / n
		if n > 0 {
			box.Max = box.Max.WithAxis(axis, limit)
		} else {
			box.Min = box.Min.WithAxis(axis, limit)
		}
	}
	return box
}

// Sphere is a solid ball
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a solid ball
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("csg: sphere radius must be positive, got %g", radius)
	}
	return &Sphere{Center: center, Radius: radius, Material: material}, nil
}

func (s *Sphere) intervalBoundaries(ray core.Ray) []IntervalBoundary {
	oc := ray.Origin.Subtract(s.Center)
	return quadricBoundaries(
		ray.Direction.LengthSquared(),
		2*oc.Dot(ray.Direction),
		oc.LengthSquared()-s.Radius*s.Radius,
		func(t float64) *core.HitRecord {
			normal := ray.At(t).Subtract(s.Center).Multiply(1 / s.Radius)
			return core.NewHitRecord(ray, t, normal, nil, s.Material)
		},
	)
}

func (s *Sphere) bounds() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Cylinder is an infinite solid cylinder parallel to the z axis
type Cylinder struct {
	Center   core.Vec3 // Only x and y are used
	Radius   float64
	Material core.Material
}

// NewCylinder creates an infinite cylinder around the vertical line through center
func NewCylinder(center core.Vec3, radius float64, material core.Material) (*Cylinder, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("csg: cylinder radius must be positive, got %g", radius)
	}
	return &Cylinder{Center: center, Radius: radius, Material: material}, nil
}

func (c *Cylinder) intervalBoundaries(ray core.Ray) []IntervalBoundary {
	ox, oy := ray.Origin.X-c.Center.X, ray.Origin.Y-c.Center.Y
	dx, dy := ray.Direction.X, ray.Direction.Y
	return quadricBoundaries(
		dx*dx+dy*dy,
		2*(ox*dx+oy*dy),
		ox*ox+oy*oy-c.Radius*c.Radius,
		func(t float64) *core.HitRecord {
			p := ray.At(t)
			normal := core.NewVec3(p.X-c.Center.X, p.Y-c.Center.Y, 0).Normalize()
			return core.NewHitRecord(ray, t, normal, nil, c.Material)
		},
	)
}

func (c *Cylinder) bounds() core.AABB {
	box := core.InfiniteAABB()
	box.Min.X, box.Max.X = c.Center.X-c.Radius, c.Center.X+c.Radius
	box.Min.Y, box.Max.Y = c.Center.Y-c.Radius, c.Center.Y+c.Radius
	return box
}

// TwoSidedCone is the infinite double cone x² + y² ≤ z² around Apex, with
// one nappe opening up the z axis and one down.
type TwoSidedCone struct {
	Apex     core.Vec3
	Material core.Material
}

// NewTwoSidedCone creates a double cone with its tip at apex
func NewTwoSidedCone(apex core.Vec3, material core.Material) *TwoSidedCone {
	return &TwoSidedCone{Apex: apex, Material: material}
}

func (c *TwoSidedCone) intervalBoundaries(ray core.Ray) []IntervalBoundary {
	o := ray.Origin.Subtract(c.Apex)
	d := ray.Direction
	return quadricBoundaries(
		d.X*d.X+d.Y*d.Y-d.Z*d.Z,
		2*(o.X*d.X+o.Y*d.Y-o.Z*d.Z),
		o.X*o.X+o.Y*o.Y-o.Z*o.Z,
		func(t float64) *core.HitRecord {
			p := ray.At(t).Subtract(c.Apex)
			normal := core.NewVec3(p.X, p.Y, -p.Z).Normalize()
			return core.NewHitRecord(ray, t, normal, nil, c.Material)
		},
	)
}

func (c *TwoSidedCone) bounds() core.AABB {
	return core.InfiniteAABB()
}
