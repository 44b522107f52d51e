package loaders

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
)

// degenerateArea is twice the smallest triangle area kept from marching cubes
const degenerateArea = 1e-12

// TessellateSDF runs uniform marching cubes over a signed distance function
// and returns the surface as a mesh with per-vertex face normals. cells is
// the number of cells along the longest side of the SDF's bounding box.
func TessellateSDF(s sdf.SDF3, cells int, material core.Material) (*geometry.Mesh, error) {
	if s == nil {
		return nil, fmt.Errorf("tessellate: nil sdf")
	}
	if cells <= 0 {
		return nil, fmt.Errorf("tessellate: cells must be positive, got %d", cells)
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	vertices := make([]core.Vec3, 0, len(triangles)*3)
	normals := make([]core.Vec3, 0, len(triangles)*3)
	indices := make([]int, 0, len(triangles)*3)
	skipped := 0

	for _, tri := range triangles {
		var corners [3]core.Vec3
		for j := 0; j < 3; j++ {
			corners[j] = core.NewVec3(tri[j].X, tri[j].Y, tri[j].Z)
		}
		cross := corners[1].Subtract(corners[0]).Cross(corners[2].Subtract(corners[0]))
		if cross.Length() < degenerateArea {
			skipped++
			continue
		}

		normal := cross.Normalize()
		for j := 0; j < 3; j++ {
			indices = append(indices, len(vertices))
			vertices = append(vertices, corners[j])
			normals = append(normals, normal)
		}
	}

	logger.Infof("tessellated sdf with %d cells: %d triangles, %d degenerate skipped", cells, len(indices)/3, skipped)
	return geometry.NewMesh(vertices, normals, indices, material)
}
