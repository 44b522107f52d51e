package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/accel"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"csg-boolean", "Csg Boolean"},
		{"sdf_mesh", "Sdf Mesh"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	expected := []string{"acceleration", "csg-boolean", "csg-primitives", "dodecahedron", "sdf-mesh"}

	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(scenes))
	}
	for i, id := range expected {
		if scenes[i].ID != id {
			t.Errorf("Expected scene %d to be %q, got %q", i, id, scenes[i].ID)
		}
		if scenes[i].Description == "" {
			t.Errorf("Expected scene %q to have a description", scenes[i].ID)
		}
	}

	groups := ListGroups()
	if len(groups) != 2 || groups[0].Name != "Acceleration" || groups[1].Name != "CSG" {
		t.Fatalf("Expected groups [Acceleration CSG], got %+v", groups)
	}
	if len(groups[0].Scenes) != 2 || len(groups[1].Scenes) != 3 {
		t.Errorf("Expected 2 and 3 scenes per group, got %d and %d", len(groups[0].Scenes), len(groups[1].Scenes))
	}
}

func TestNew_UnknownScene(t *testing.T) {
	if _, err := New("cornell-box", Options{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNew_BuiltinScenes(t *testing.T) {
	options := Options{SDFCells: 16, Accel: accel.Options{Axis: accel.Longest}}

	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID, options)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name != info.ID {
				t.Errorf("Expected name %q, got %q", info.ID, s.Name)
			}
			if s.GetPrimitiveCount() == 0 || s.GetRoot() == nil {
				t.Fatalf("Expected a preprocessed scene, got %d primitives", s.GetPrimitiveCount())
			}
			if s.Tree.Options().Axis != accel.Longest {
				t.Errorf("Expected the accel options to reach the tree, got %v", s.Tree.Options().Axis)
			}

			camera, err := renderer.NewCamera(s.GetCameraConfig())
			if err != nil {
				t.Fatalf("Unexpected camera error: %v", err)
			}
			if _, ok := s.GetRoot().Intersect(camera.GetRay(0.5, 0.5)); !ok {
				t.Error("Expected the center ray to hit the scene")
			}

			stats, err := s.Stats()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if stats.Primitives+stats.Unbounded != s.GetPrimitiveCount() {
				t.Errorf("Expected %d primitives in stats, got %d + %d unbounded", s.GetPrimitiveCount(), stats.Primitives, stats.Unbounded)
			}
		})
	}
}

func TestNew_AccelerationFromMeshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 0 0 1\nf 1 3 2\nf 1 2 4\nf 1 4 3\nf 2 3 4\n"
	if err := os.WriteFile(path, []byte(obj), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	s, err := New("acceleration", Options{MeshPath: path})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.GetPrimitiveCount() != 4 {
		t.Errorf("Expected 4 triangles, got %d", s.GetPrimitiveCount())
	}

	camera, err := renderer.NewCamera(s.GetCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected camera error: %v", err)
	}
	if _, ok := s.GetRoot().Intersect(camera.GetRay(0.5, 0.5)); !ok {
		t.Error("Expected the center ray to hit the mesh")
	}

	if _, err := New("acceleration", Options{MeshPath: filepath.Join(t.TempDir(), "missing.obj")}); err == nil {
		t.Error("Expected an error for a missing mesh file")
	}
}

func TestScene_AddFlattensAggregates(t *testing.T) {
	mesh, err := geometry.NewMesh(
		[]core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0)},
		nil, []int{0, 1, 2, 1, 3, 2}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s := &Scene{Name: "flat"}
	s.Add(mesh, NewGroundPlane(-1))
	if s.GetPrimitiveCount() != 3 {
		t.Errorf("Expected 3 primitives, got %d", s.GetPrimitiveCount())
	}

	if _, err := s.Stats(); !errors.Is(err, ErrNotPreprocessed) {
		t.Errorf("Expected ErrNotPreprocessed, got %v", err)
	}
	if s.GetRoot() != nil {
		t.Error("Expected no root before preprocessing")
	}
	if err := (&Scene{Name: "empty"}).Preprocess(); err == nil {
		t.Error("Expected an error preprocessing an empty scene")
	}
}
