package geometry

import (
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// List is a flat aggregate that tests every primitive on each query. It is
// the reference intersector accelerators are checked against.
type List struct {
	primitives []core.Intersectable
	bbox       core.AABB
}

// NewList creates a list holding the given primitives
func NewList(primitives ...core.Intersectable) *List {
	l := &List{bbox: core.EmptyAABB()}
	for _, p := range primitives {
		l.Add(p)
	}
	return l
}

// Add appends a primitive. Lists are built during scene setup only.
func (l *List) Add(primitive core.Intersectable) {
	l.primitives = append(l.primitives, primitive)
	l.bbox = l.bbox.Union(primitive.BoundingBox())
}

// AddAll appends every primitive of an aggregate
func (l *List) AddAll(aggregate core.Aggregate) {
	for _, p := range aggregate.Primitives() {
		l.Add(p)
	}
}

// Primitives returns the stored primitives
func (l *List) Primitives() []core.Intersectable {
	return l.primitives
}

// Len returns the number of primitives
func (l *List) Len() int {
	return len(l.primitives)
}

// Intersect returns the nearest hit over all primitives
func (l *List) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	return nearestHit(l.primitives, ray)
}

// BoundingBox returns the union of all primitive boxes
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}

// nearestHit keeps the smallest positive t over a linear scan
func nearestHit(primitives []core.Intersectable, ray core.Ray) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for _, p := range primitives {
		if hit, ok := p.Intersect(ray); ok && hit.T > 0 {
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}
	return closest, closest != nil
}
