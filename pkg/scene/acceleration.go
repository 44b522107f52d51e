package scene

import (
	"math"
	"math/rand"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/loaders"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/material"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/renderer"
)

// defaultSDFCells is the marching cubes resolution of the sdf-mesh scene
const defaultSDFCells = 64

// NewAccelerationScene loads options.MeshPath, or generates a field of
// spheres and triangles when no path is given
func NewAccelerationScene(options Options) (*Scene, error) {
	if options.MeshPath != "" {
		return newMeshFileScene(options.MeshPath)
	}

	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:    core.NewVec3(0, 9, 16),
			LookAt: core.NewVec3(0, 0, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   45,
		},
		Background: skyBlue,
	}

	random := rand.New(rand.NewSource(42))
	const gridSize = 12
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			center := core.NewVec3(float64(i)-gridSize/2+0.5, 0.35, float64(j)-gridSize/2+0.5)
			albedo := core.NewVec3(float64(i)/gridSize, 0.5, float64(j)/gridSize)
			sphere, err := geometry.NewSphere(center, 0.3+0.1*random.Float64(), material.NewDiffuse(albedo))
			if err != nil {
				return nil, err
			}
			s.Add(sphere)
		}
	}

	triangleMaterial := material.NewDiffuse(core.NewVec3(0.9, 0.6, 0.2))
	for i := 0; i < 300; i++ {
		center := core.NewVec3(random.Float64()*12-6, 1.5+random.Float64()*3, random.Float64()*12-6)
		corner := func() core.Vec3 {
			return center.Add(core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).Multiply(0.8))
		}
		s.Add(geometry.NewTriangle(corner(), corner(), corner(), triangleMaterial))
	}

	s.Add(NewGroundPlane(-0.05))
	return s, nil
}

// newMeshFileScene frames a loaded mesh from the front and slightly above
func newMeshFileScene(path string) (*Scene, error) {
	mesh, err := loaders.LoadMesh(path, material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8)))
	if err != nil {
		return nil, err
	}

	box := mesh.BoundingBox()
	center := box.Center()
	radius := math.Max(box.Size().Length()/2, 1e-3)

	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:    center.Add(core.NewVec3(0, 0.4, 1).Normalize().Multiply(2.6 * radius)),
			LookAt: center,
			Up:     core.NewVec3(0, 1, 0),
			VFov:   45,
		},
		Background: skyBlue,
	}
	s.Add(mesh)
	return s, nil
}

// NewSDFMeshScene tessellates the classic CSG part, a rounded box
// intersected with a sphere and drilled along all three axes, and renders
// the triangles through the tree
func NewSDFMeshScene(options Options) (*Scene, error) {
	cells := options.SDFCells
	if cells <= 0 {
		cells = defaultSDFCells
	}

	part, err := drilledBlock()
	if err != nil {
		return nil, err
	}
	mesh, err := loaders.TessellateSDF(part, cells, material.NewDiffuse(core.NewVec3(0.7, 0.75, 0.8)))
	if err != nil {
		return nil, err
	}

	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Eye:    core.NewVec3(3.5, 2.5, 4.5),
			LookAt: core.NewVec3(0, 0, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40,
		},
		Background: skyBlue,
	}
	s.Add(mesh, NewGroundPlane(-1.5))
	return s, nil
}

func drilledBlock() (sdf.SDF3, error) {
	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 2}, 0.1)
	if err != nil {
		return nil, err
	}
	ball, err := sdf.Sphere3D(1.3)
	if err != nil {
		return nil, err
	}
	drill, err := sdf.Cylinder3D(3, 0.55, 0)
	if err != nil {
		return nil, err
	}

	holes := sdf.Union3D(
		drill,
		sdf.Transform3D(drill, sdf.RotateX(math.Pi/2)),
		sdf.Transform3D(drill, sdf.RotateY(math.Pi/2)),
	)
	return sdf.Difference3D(sdf.Intersect3D(box, ball), holes), nil
}
