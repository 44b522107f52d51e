package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/csg"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/material"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/renderer"
)

var skyBlue = core.NewVec3(0.5, 0.7, 1.0)

// place wraps a solid in a transform and adapts it for the tree
func place(solid csg.Solid, objectToWorld mgl64.Mat4) (*csg.Primitive, error) {
	instance, err := csg.NewInstance(solid, objectToWorld)
	if err != nil {
		return nil, err
	}
	return csg.NewPrimitive(instance), nil
}

// NewCSGPrimitivesScene shows the composite solids built from half-spaces,
// with a rippled sphere in front
func NewCSGPrimitivesScene(options Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:    core.NewVec3(0, 3, 9),
			LookAt: core.NewVec3(0, 0.75, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		},
		Background: skyBlue,
	}

	// Unit cylinder standing on the floor, its z axis turned to y
	cylinder, err := place(
		csg.NewUnitCylinder(material.NewDiffuse(core.NewVec3(0.8, 0.3, 0.3))),
		mgl64.Translate3D(-3, 0, 0).Mul4(mgl64.Scale3D(0.75, 1.5, 0.75)).Mul4(mgl64.HomogRotate3DX(-math.Pi/2)),
	)
	if err != nil {
		return nil, err
	}

	cube, err := place(
		csg.NewUnitCube(material.NewTexturedDiffuse(material.NewCheckerboard(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.4, 0.8), 4))),
		mgl64.Translate3D(0, 0.75, 0).Mul4(mgl64.HomogRotate3DY(math.Pi/6)).Mul4(mgl64.Scale3D(1.5, 1.5, 1.5)),
	)
	if err != nil {
		return nil, err
	}

	// Double cone |z| <= 1 clipped by two half-spaces
	coneMaterial := material.NewDiffuse(core.NewVec3(0.3, 0.8, 0.3))
	doubleCone := csg.Combine(csg.OpIntersect,
		csg.NewTwoSidedCone(core.NewVec3(0, 0, 0), coneMaterial),
		csg.NewPlane(core.NewVec3(0, 0, 1), -1, coneMaterial),
		csg.NewPlane(core.NewVec3(0, 0, -1), -1, coneMaterial),
	)
	cone, err := place(doubleCone,
		mgl64.Translate3D(3, 0.75, 0).Mul4(mgl64.Scale3D(0.75, 0.75, 0.75)).Mul4(mgl64.HomogRotate3DX(-math.Pi/2)),
	)
	if err != nil {
		return nil, err
	}

	ball, err := geometry.NewSphere(core.NewVec3(-1.5, 0.5, 2), 0.5, material.NewDiffuse(core.NewVec3(0.8, 0.7, 0.3)))
	if err != nil {
		return nil, err
	}
	rippled := geometry.NewBumpy(ball, geometry.WaveNormalMap{Frequency: 12, Amplitude: 0.004})

	s.Add(cylinder, cube, cone, rippled, NewGroundPlane(0))
	return s, nil
}

// NewCSGBooleanScene shows the four boolean combinations of two spheres
// side by side. The left operand is red and the right operand blue, so the
// colors show which operand each visible surface comes from.
func NewCSGBooleanScene(options Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:    core.NewVec3(0, 2.5, 11),
			LookAt: core.NewVec3(0, 1, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		},
		Background: skyBlue,
	}

	red := material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2))
	blue := material.NewDiffuse(core.NewVec3(0.2, 0.3, 0.8))

	combinations := []struct {
		x           float64
		op          csg.Operation
		leftIsFirst bool
	}{
		{-4.5, csg.OpUnion, true},
		{-1.5, csg.OpIntersect, true},
		{1.5, csg.OpSubtract, true},
		{4.5, csg.OpSubtract, false},
	}

	for _, c := range combinations {
		a, err := csg.NewSphere(core.NewVec3(-0.4, 0, 0), 1, red)
		if err != nil {
			return nil, err
		}
		b, err := csg.NewSphere(core.NewVec3(0.4, 0, 0.3), 1, blue)
		if err != nil {
			return nil, err
		}

		var solid csg.Solid = csg.NewNode(a, b, c.op)
		if !c.leftIsFirst {
			solid = csg.NewNode(b, a, c.op)
		}

		p, err := place(solid, mgl64.Translate3D(c.x, 1.2, 0))
		if err != nil {
			return nil, err
		}
		s.Add(p)
	}

	s.Add(NewGroundPlane(0))
	return s, nil
}

// NewDodecahedronScene shows the twelve-plane dodecahedron next to a copy
// with a spherical cavity cut through its faces
func NewDodecahedronScene(options Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:    core.NewVec3(0, 3, 8),
			LookAt: core.NewVec3(0, 1, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		},
		Background: skyBlue,
	}

	gold := material.NewDiffuse(core.NewVec3(0.9, 0.7, 0.2))
	solid, err := place(csg.NewDodecahedron(gold),
		mgl64.Translate3D(-1.6, csg.DodecahedronCircumradius, 0).Mul4(mgl64.HomogRotate3DY(math.Pi/5)))
	if err != nil {
		return nil, err
	}

	cavity, err := csg.NewSphere(core.NewVec3(0, 0, 0), 1.15, material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9)))
	if err != nil {
		return nil, err
	}
	hollow, err := place(csg.NewNode(csg.NewDodecahedron(gold), cavity, csg.OpSubtract),
		mgl64.Translate3D(1.6, csg.DodecahedronCircumradius, 0).Mul4(mgl64.HomogRotate3DY(-math.Pi/7)))
	if err != nil {
		return nil, err
	}

	// Checkered backdrop standing behind both solids, leaning back slightly
	checks := material.NewCheckerboard(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.3, 0.3, 0.3), 8)
	panel := geometry.NewRectangle(core.NewVec3(-3, 0, 0), core.NewVec3(6, 0, 0), core.NewVec3(0, 3.5, 0), material.NewTexturedDiffuse(checks))
	backdrop, err := geometry.NewInstance(panel, mgl64.Translate3D(0, 0, -2.5).Mul4(mgl64.HomogRotate3DX(-0.15)))
	if err != nil {
		return nil, err
	}

	s.Add(solid, hollow, backdrop, NewGroundPlane(0))
	return s, nil
}
