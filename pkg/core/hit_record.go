package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64       // Parameter t along the ray
	Position  Vec3          // World-space point of intersection
	Normal    Vec3          // Unit geometric normal, pointing out of the surface
	W         Vec3          // Unit direction back towards the ray origin
	FrontFace bool          // Whether the ray arrived from the side Normal points to
	Primitive Intersectable // Primitive that was hit
	Material  Material      // Material of the hit primitive
	U, V      float64       // Surface parameterization
	P         float64       // Density, only set when the record was sampled on a light
}

// NewHitRecord fills in the fields every primitive computes the same way:
// the position along the ray, the outgoing direction and the face flag.
func NewHitRecord(ray Ray, t float64, outwardNormal Vec3, primitive Intersectable, material Material) *HitRecord {
	return &HitRecord{
		T:         t,
		Position:  ray.At(t),
		Normal:    outwardNormal,
		W:         ray.Direction.Negate().Normalize(),
		FrontFace: ray.Direction.Dot(outwardNormal) < 0,
		Primitive: primitive,
		Material:  material,
	}
}

// ShadingNormal returns the normal flipped to face the incoming ray
func (h *HitRecord) ShadingNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// SpawnRay creates a secondary ray leaving the hit point, offset by eps
// along its direction so it cannot report the surface it starts on.
func (h *HitRecord) SpawnRay(direction Vec3, depth int, eps float64) Ray {
	return NewEpsilonRay(h.Position, direction, depth, eps)
}

// Valid reports whether the record lies strictly in front of the ray origin
func (h *HitRecord) Valid() bool {
	return h != nil && h.T > 0
}
