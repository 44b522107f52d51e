package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Instance places an intersectable in the world with a transform. Queries
// map the ray into object space and the hit back out; no state is kept
// between queries, so instances may share their object and nest freely.
type Instance struct {
	object    core.Intersectable
	transform core.Transform
	bbox      core.AABB
}

// NewInstance wraps object with the given object-to-world matrix
func NewInstance(object core.Intersectable, objectToWorld mgl64.Mat4) (*Instance, error) {
	transform, err := core.NewTransform(objectToWorld)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	return NewInstanceWithTransform(object, transform), nil
}

// NewInstanceWithTransform wraps object with an already built transform
func NewInstanceWithTransform(object core.Intersectable, transform core.Transform) *Instance {
	return &Instance{
		object:    object,
		transform: transform,
		bbox:      transform.Box(object.BoundingBox()),
	}
}

// Intersect maps the ray into object space, intersects, and maps the hit back
func (i *Instance) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	hit, ok := i.object.Intersect(i.transform.RayToObject(ray))
	if !ok {
		return nil, false
	}
	world := i.transform.HitToWorld(hit, ray)
	// Shared objects hit through different placements must stay distinguishable
	world.Primitive = i
	return world, true
}

// BoundingBox returns the world-space box of the placed object
func (i *Instance) BoundingBox() core.AABB {
	return i.bbox
}

// Object returns the wrapped intersectable
func (i *Instance) Object() core.Intersectable {
	return i.object
}

// Transform returns the placement of the instance
func (i *Instance) Transform() core.Transform {
	return i.transform
}
