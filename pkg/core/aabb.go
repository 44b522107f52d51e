package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the empty box. It is the identity of Union and
// overlaps nothing.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// InfiniteAABB returns a box covering all of space, used by unbounded primitives
func InfiniteAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(-inf, -inf, -inf),
		Max: NewVec3(inf, inf, inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.Min = box.Min.Min(point)
		box.Max = box.Max.Max(point)
	}
	return box
}

// IsEmpty reports whether min > max on any axis
func (aabb AABB) IsEmpty() bool {
	return aabb.Min.X > aabb.Max.X ||
		aabb.Min.Y > aabb.Max.Y ||
		aabb.Min.Z > aabb.Max.Z
}

// IsFinite reports whether every bound is a finite number
func (aabb AABB) IsFinite() bool {
	for axis := 0; axis < 3; axis++ {
		if math.IsInf(aabb.Min.Axis(axis), 0) || math.IsInf(aabb.Max.Axis(axis), 0) {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Intersection returns the box shared by both boxes, which may be empty
func (aabb AABB) Intersection(other AABB) AABB {
	return AABB{Min: aabb.Min.Max(other.Min), Max: aabb.Max.Min(other.Max)}
}

// Overlaps reports whether the two boxes share at least one point. Touching
// faces count as overlap.
func (aabb AABB) Overlaps(other AABB) bool {
	if aabb.IsEmpty() || other.IsEmpty() {
		return false
	}
	return aabb.Min.X <= other.Max.X && other.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= other.Max.Y && other.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= other.Max.Z && other.Min.Z <= aabb.Max.Z
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Intersect clips the ray against the box using the slab method and returns
// the parametric interval inside the box. ok is false when the per-axis
// intervals are disjoint or the box lies entirely behind the ray origin.
func (aabb AABB) Intersect(ray Ray) (tMin, tMax float64, ok bool) {
	if aabb.IsEmpty() {
		return 0, 0, false
	}

	tMin = math.Inf(-1)
	tMax = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to this slab: either always inside it or never
		if direction == 0 {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return 0, 0, false
		}
	}

	if tMax < 0 {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Split cuts the box with the plane perpendicular to axis at pos. above
// holds the part with coordinates >= pos, below the part with coordinates <= pos.
func (aabb AABB) Split(axis int, pos float64) (above, below AABB) {
	above = AABB{Min: aabb.Min.WithAxis(axis, pos), Max: aabb.Max}
	below = AABB{Min: aabb.Min, Max: aabb.Max.WithAxis(axis, pos)}
	return above, below
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		corner := aabb.Min
		if i&1 != 0 {
			corner.X = aabb.Max.X
		}
		if i&2 != 0 {
			corner.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			corner.Z = aabb.Max.Z
		}
		corners[i] = corner
	}
	return corners
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
