package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)

	tests := []struct {
		name      string
		ray       core.Ray
		hit       bool
		expectedT float64
	}{
		{"inside", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)), true, 1},
		{"outside hypotenuse", core.NewRay(core.NewVec3(0.75, 0.75, 1), core.NewVec3(0, 0, -1)), false, 0},
		{"from behind", core.NewRay(core.NewVec3(0.25, 0.25, -2), core.NewVec3(0, 0, 1)), true, 2},
		{"in plane", core.NewRay(core.NewVec3(-1, 0.25, 0), core.NewVec3(1, 0, 0)), false, 0},
		{"behind origin", core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Intersect(tt.ray)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if ok && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}

	if !tri.Normal().Equals(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected counter-clockwise normal (0,0,1), got %v", tri.Normal())
	}
}

func quadMesh(t *testing.T, normals []core.Vec3) *Mesh {
	t.Helper()
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	mesh, err := NewMesh(vertices, normals, []int{0, 1, 2, 0, 2, 3}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return mesh
}

func TestMesh_Intersect(t *testing.T) {
	mesh := quadMesh(t, nil)

	if mesh.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}

	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.2, 0.8, 3), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit on the mesh")
	}
	tri, isTriangle := hit.Primitive.(*MeshTriangle)
	if !isTriangle {
		t.Fatalf("Expected *MeshTriangle primitive, got %T", hit.Primitive)
	}
	if tri.Index() != 1 {
		t.Errorf("Expected second triangle, got %d", tri.Index())
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}

	box := mesh.BoundingBox()
	if box.Min != core.NewVec3(0, 0, 0) || box.Max != core.NewVec3(1, 1, 0) {
		t.Errorf("Unexpected mesh bounds %v", box)
	}
}

func TestMesh_InterpolatedNormals(t *testing.T) {
	tilted := core.NewVec3(0, 1, 1)
	up := core.NewVec3(0, 0, 1)
	mesh := quadMesh(t, []core.Vec3{up, up, tilted, tilted})

	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.9, 0.1, 1), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
	if hit.Normal.Y <= 0 || hit.Normal.Y >= hit.Normal.Z {
		t.Errorf("Expected normal blended slightly towards +y, got %v", hit.Normal)
	}
}

func TestMesh_TexCoords(t *testing.T) {
	mesh := quadMesh(t, nil)
	if err := mesh.SetTexCoords([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.U-0.25) > 1e-9 || math.Abs(hit.V-0.75) > 1e-9 {
		t.Errorf("Expected uv (0.25,0.75), got (%f,%f)", hit.U, hit.V)
	}

	if err := mesh.SetTexCoords([][2]float64{{0, 0}}); !errors.Is(err, ErrBadMeshIndices) {
		t.Errorf("Expected ErrBadMeshIndices, got %v", err)
	}
}

func TestNewMesh_Errors(t *testing.T) {
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}

	tests := []struct {
		name    string
		normals []core.Vec3
		indices []int
	}{
		{"not a multiple of three", nil, []int{0, 1}},
		{"out of range", nil, []int{0, 1, 3}},
		{"negative", nil, []int{0, -1, 2}},
		{"normal count", []core.Vec3{core.NewVec3(0, 0, 1)}, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMesh(vertices, tt.normals, tt.indices, nil)
			if !errors.Is(err, ErrBadMeshIndices) {
				t.Errorf("Expected ErrBadMeshIndices, got %v", err)
			}
		})
	}
}
