// Package material holds the shading collaborators carried by hit records
package material

import (
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Diffuse is a Lambertian reflector
type Diffuse struct {
	Albedo ColorSource // Diffuse reflectance in [0,1]
}

// NewDiffuse creates a diffuse material with a solid reflectance
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo)}
}

// NewTexturedDiffuse creates a diffuse material with spatially-varying reflectance
func NewTexturedDiffuse(albedo ColorSource) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// EvaluateBRDF returns albedo / π; the BRDF does not depend on the directions
func (d *Diffuse) EvaluateBRDF(hit *core.HitRecord, wOut, wIn core.Vec3) core.Vec3 {
	return d.Albedo.Evaluate(hit.U, hit.V, hit.Position).Multiply(1.0 / math.Pi)
}
