package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularTransform is returned when a placement matrix cannot be inverted
var ErrSingularTransform = errors.New("core: transform matrix is singular")

// singularThreshold is the smallest determinant accepted for a placement matrix
const singularThreshold = 1e-12

// Transform is an immutable object-to-world placement together with the
// matrices needed to move rays into object space and hits back out.
type Transform struct {
	toWorld  mgl64.Mat4 // object -> world
	toObject mgl64.Mat4 // world -> object
	normals  mgl64.Mat4 // transpose of toObject, applied to normals
}

// NewTransform builds a Transform from an object-to-world matrix
func NewTransform(objectToWorld mgl64.Mat4) (Transform, error) {
	if math.Abs(objectToWorld.Det()) < singularThreshold {
		return Transform{}, ErrSingularTransform
	}
	inverse := objectToWorld.Inv()
	return Transform{
		toWorld:  objectToWorld,
		toObject: inverse,
		normals:  inverse.Transpose(),
	}, nil
}

// IdentityTransform returns the transform that leaves everything in place
func IdentityTransform() Transform {
	identity := mgl64.Ident4()
	return Transform{toWorld: identity, toObject: identity, normals: identity}
}

// Matrix returns the object-to-world matrix
func (t Transform) Matrix() mgl64.Mat4 {
	return t.toWorld
}

// Compose returns the transform that applies inner first and then t
func (t Transform) Compose(inner Transform) Transform {
	toObject := inner.toObject.Mul4(t.toObject)
	return Transform{
		toWorld:  t.toWorld.Mul4(inner.toWorld),
		toObject: toObject,
		normals:  toObject.Transpose(),
	}
}

// Point maps an object-space point to world space
func (t Transform) Point(p Vec3) Vec3 {
	return mulPoint(t.toWorld, p)
}

// Vector maps an object-space direction to world space
func (t Transform) Vector(v Vec3) Vec3 {
	return mulVector(t.toWorld, v)
}

// Normal maps an object-space normal to world space using the inverse
// transpose, so non-uniform scales keep normals perpendicular to the surface.
func (t Transform) Normal(n Vec3) Vec3 {
	return mulVector(t.normals, n).Normalize()
}

// InversePoint maps a world-space point to object space
func (t Transform) InversePoint(p Vec3) Vec3 {
	return mulPoint(t.toObject, p)
}

// InverseVector maps a world-space direction to object space
func (t Transform) InverseVector(v Vec3) Vec3 {
	return mulVector(t.toObject, v)
}

// RayToObject maps a world-space ray into object space. The direction is
// not renormalized, so ray parameters agree in both spaces.
func (t Transform) RayToObject(ray Ray) Ray {
	return Ray{
		Origin:    t.InversePoint(ray.Origin),
		Direction: t.InverseVector(ray.Direction),
		Depth:     ray.Depth,
	}
}

// HitToWorld returns a copy of an object-space hit expressed in world space.
// worldRay is the ray before it was mapped with RayToObject.
func (t Transform) HitToWorld(hit *HitRecord, worldRay Ray) *HitRecord {
	world := *hit
	world.Position = t.Point(hit.Position)
	world.Normal = t.Normal(hit.Normal)
	world.W = t.Vector(hit.W).Normalize()
	world.FrontFace = worldRay.Direction.Dot(world.Normal) < 0
	return &world
}

// Box returns the world-space box enclosing the transformed object box
func (t Transform) Box(box AABB) AABB {
	if box.IsEmpty() {
		return box
	}
	if !box.IsFinite() {
		return InfiniteAABB()
	}
	world := EmptyAABB()
	for _, corner := range box.Corners() {
		p := t.Point(corner)
		world.Min = world.Min.Min(p)
		world.Max = world.Max.Max(p)
	}
	return world
}

func mulPoint(m mgl64.Mat4, p Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if r[3] != 1 && r[3] != 0 {
		return NewVec3(r[0]/r[3], r[1]/r[3], r[2]/r[3])
	}
	return NewVec3(r[0], r[1], r[2])
}

func mulVector(m mgl64.Mat4, v Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return NewVec3(r[0], r[1], r[2])
}
