package csg

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Instance places a solid with a transform. Boundaries are computed in
// object space and every hit is mapped back to world space; t values are
// shared by both spaces because ray directions are not renormalized.
type Instance struct {
	solid     Solid
	transform core.Transform
}

// NewInstance places solid with the given object-to-world matrix
func NewInstance(solid Solid, objectToWorld mgl64.Mat4) (*Instance, error) {
	transform, err := core.NewTransform(objectToWorld)
	if err != nil {
		return nil, fmt.Errorf("csg instance: %w", err)
	}
	return &Instance{solid: solid, transform: transform}, nil
}

// NewInstanceWithTransform places solid with an already built transform
func NewInstanceWithTransform(solid Solid, transform core.Transform) *Instance {
	return &Instance{solid: solid, transform: transform}
}

func (i *Instance) intervalBoundaries(ray core.Ray) []IntervalBoundary {
	boundaries := i.solid.intervalBoundaries(i.transform.RayToObject(ray))
	for k := range boundaries {
		if boundaries[k].Hit != nil {
			boundaries[k].Hit = i.transform.HitToWorld(boundaries[k].Hit, ray)
		}
	}
	return boundaries
}

func (i *Instance) bounds() core.AABB {
	return i.transform.Box(i.solid.bounds())
}
