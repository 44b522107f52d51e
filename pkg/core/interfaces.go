package core

// Intersectable is implemented by everything a ray can hit: simple shapes,
// meshes, CSG solids, instances and acceleration structures.
type Intersectable interface {
	// Intersect returns the nearest hit with t > 0, or false when the ray
	// misses. It must not mutate the receiver.
	Intersect(ray Ray) (*HitRecord, bool)
	BoundingBox() AABB
}

// Material is the shading collaborator carried through hit records
type Material interface {
	// EvaluateBRDF returns the reflectance for light arriving along wIn and
	// leaving along wOut at the hit point.
	EvaluateBRDF(hit *HitRecord, wOut, wIn Vec3) Vec3
}

// Aggregate is implemented by intersectables made of other intersectables
type Aggregate interface {
	Intersectable
	Primitives() []Intersectable
}
