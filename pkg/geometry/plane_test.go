package geometry

import (
	"math"
	"testing"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	// y = -1
	plane := NewPlane(core.NewVec3(0, 2, 0), 2, nil)

	tests := []struct {
		name      string
		ray       core.Ray
		hit       bool
		expectedT float64
		front     bool
	}{
		{"from above", core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), true, 6, true},
		{"from below", core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)), true, 2, false},
		{"pointing away", core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)), false, 0, false},
		{"parallel", core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0)), false, 0, false},
		{"origin on plane", core.NewRay(core.NewVec3(3, -1, 0), core.NewVec3(0, -1, 0)), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := plane.Intersect(tt.ray)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.front {
				t.Errorf("Expected front face %t, got %t", tt.front, hit.FrontFace)
			}
			if !hit.Normal.Equals(core.NewVec3(0, 1, 0), 1e-12) {
				t.Errorf("Expected normalized normal, got %v", hit.Normal)
			}
		})
	}
}

func TestPlane_Unbounded(t *testing.T) {
	plane := NewPlaneThroughPoint(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 1), nil)
	if plane.BoundingBox().IsFinite() {
		t.Error("Expected an unbounded box for a plane")
	}
	if math.Abs(plane.D+2) > 1e-12 {
		t.Errorf("Expected D=-2, got %f", plane.D)
	}
}

func TestRectangle_Intersect(t *testing.T) {
	rect := NewRectangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), nil)

	tests := []struct {
		name  string
		x, y  float64
		hit   bool
		u, v  float64
	}{
		{"center", 1, 0.5, true, 0.5, 0.5},
		{"corner", 0.001, 0.001, true, 0.0005, 0.001},
		{"outside edge1", 2.5, 0.5, false, 0, 0},
		{"outside edge2", 1, -0.1, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := rect.Intersect(core.NewRay(core.NewVec3(tt.x, tt.y, 3), core.NewVec3(0, 0, -1)))
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.U-tt.u) > 1e-9 || math.Abs(hit.V-tt.v) > 1e-9 {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.u, tt.v, hit.U, hit.V)
			}
			if hit.Primitive != rect {
				t.Error("Expected hit to reference the rectangle")
			}
		})
	}

	box := rect.BoundingBox()
	if box.Min != core.NewVec3(0, 0, 0) || box.Max != core.NewVec3(2, 1, 0) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}
