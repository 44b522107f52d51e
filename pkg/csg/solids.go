package csg

import (
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// NewUnitCylinder returns the radius one cylinder around the z axis,
// capped at z = 0 and z = 1.
func NewUnitCylinder(material core.Material) Solid {
	side := &Cylinder{Radius: 1, Material: material}
	top := NewPlane(core.NewVec3(0, 0, 1), -1, material)
	bottom := NewPlane(core.NewVec3(0, 0, -1), 0, material)
	return NewNode(NewNode(side, top, OpIntersect), bottom, OpIntersect)
}

// NewUnitCube returns the axis-aligned cube of side one centered at the origin
func NewUnitCube(material core.Material) Solid {
	faces := make([]Solid, 0, 6)
	for axis := 0; axis < 3; axis++ {
		n := core.Vec3{}.WithAxis(axis, 1)
		faces = append(faces,
			NewPlane(n, -0.5, material),
			NewPlane(n.Negate(), -0.5, material),
		)
	}
	return Combine(OpIntersect, faces...)
}

// NewDodecahedron returns the regular dodecahedron centered at the origin
// whose faces lie at distance one from the center. Two faces are
// perpendicular to the y axis.
func NewDodecahedron(material core.Material) Solid {
	// Angle between the polar face normals and the five around them
	polar := math.Atan(2)
	faces := make([]Solid, 0, 12)

	faces = append(faces, NewPlane(core.NewVec3(0, -1, 0), -1, material))
	for i := 0; i < 5; i++ {
		theta := float64(i) * 2 * math.Pi / 5
		n := core.NewVec3(math.Sin(theta)*math.Sin(polar), -math.Cos(polar), math.Cos(theta)*math.Sin(polar))
		faces = append(faces, NewPlane(n, -1, material))
	}

	faces = append(faces, NewPlane(core.NewVec3(0, 1, 0), -1, material))
	for i := 0; i < 5; i++ {
		theta := (float64(i) + 0.5) * 2 * math.Pi / 5
		n := core.NewVec3(math.Sin(theta)*math.Sin(polar), math.Cos(polar), math.Cos(theta)*math.Sin(polar))
		faces = append(faces, NewPlane(n, -1, material))
	}

	return Combine(OpIntersect, faces...)
}

// DodecahedronCircumradius is the distance from the center of the
// NewDodecahedron solid to its vertices
var DodecahedronCircumradius = math.Sqrt(3) * math.Tan(math.Pi/5)

// NewLens returns the intersection of two spheres of the given radius whose
// centers lie on the x axis, separation apart and symmetric about the origin.
func NewLens(radius, separation float64, material core.Material) (Solid, error) {
	left, err := NewSphere(core.NewVec3(-separation/2, 0, 0), radius, material)
	if err != nil {
		return nil, err
	}
	right, err := NewSphere(core.NewVec3(separation/2, 0, 0), radius, material)
	if err != nil {
		return nil, err
	}
	return NewNode(left, right, OpIntersect), nil
}
