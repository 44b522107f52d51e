package csg

import (
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Primitive exposes a solid as a core.Intersectable so it can be placed in
// lists and acceleration structures.
type Primitive struct {
	solid Solid
	bbox  core.AABB
}

// NewPrimitive wraps solid with the box derived from its operands. Solids
// built from unbounded leaves get infinite extents along those directions.
func NewPrimitive(solid Solid) *Primitive {
	return &Primitive{solid: solid, bbox: solid.bounds()}
}

// NewBoundedPrimitive wraps solid with a caller supplied box, for solids
// such as a dodecahedron whose extent cannot be derived from their planes.
// The box is clipped to the derived one.
func NewBoundedPrimitive(solid Solid, box core.AABB) *Primitive {
	return &Primitive{solid: solid, bbox: box.Intersection(solid.bounds())}
}

// Intersect returns the first boundary in front of the ray where it enters the solid
func (p *Primitive) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	if _, _, ok := p.bbox.Intersect(ray); !ok {
		return nil, false
	}
	boundaries := p.solid.intervalBoundaries(ray)
	for k, b := range boundaries {
		if b.Type != Start || !(b.T > 0) || b.Hit == nil {
			continue
		}
		// Zero-length intervals have no volume
		if k+1 < len(boundaries) && coincident(boundaries[k+1].T, b.T) {
			continue
		}
		hit := *b.Hit
		hit.Primitive = p
		return &hit, true
	}
	return nil, false
}

// BoundingBox returns the box used by acceleration structures
func (p *Primitive) BoundingBox() core.AABB {
	return p.bbox
}

// Solid returns the wrapped solid
func (p *Primitive) Solid() Solid {
	return p.solid
}
