package geometry

import (
	"math"
	"testing"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return s
}

func TestSphere_UnitSphereScenario(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if !hit.Position.Equals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected position (0,0,1), got %v", hit.Position)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Primitive != sphere {
		t.Error("Expected hit to reference the sphere")
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		hit       bool
		expectedT float64
		front     bool
	}{
		{"miss", core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), false, 0, false},
		{"behind", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1), false, 0, false},
		{"from inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true, 1, false},
		{"unnormalized direction", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -2), true, 2, true},
		{"glancing", core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1), true, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if tt.name != "glancing" && hit.FrontFace != tt.front {
				t.Errorf("Expected front face %t, got %t", tt.front, hit.FrontFace)
			}
		})
	}
}

func TestSphere_SelfIntersectionAvoided(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	hit, ok := sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected primary hit")
	}

	// Reflected ray leaves the surface and must not report it again
	reflected := hit.SpawnRay(hit.Normal, 1, core.DefaultRayEpsilon)
	if again, ok := sphere.Intersect(reflected); ok {
		t.Errorf("Expected reflected ray to escape, got hit at t=%g", again.T)
	}

	// Refracted ray continues inside and must find the far side, not t≈0
	refracted := hit.SpawnRay(core.NewVec3(0, 0, -1), 1, core.DefaultRayEpsilon)
	far, ok := sphere.Intersect(refracted)
	if !ok {
		t.Fatal("Expected refracted ray to hit the far side")
	}
	if math.Abs(far.T-(2-core.DefaultRayEpsilon)) > 1e-9 {
		t.Errorf("Expected far hit at t≈2, got t=%f", far.T)
	}
}

func TestSphere_Idempotent(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0.3, -0.2, 0.1), 1.3)
	ray := core.NewRay(core.NewVec3(0.1, 0.7, 4), core.NewVec3(-0.05, -0.1, -1))

	first, ok1 := sphere.Intersect(ray)
	second, ok2 := sphere.Intersect(ray)
	if !ok1 || !ok2 {
		t.Fatal("Expected both queries to hit")
	}
	if *first != *second {
		t.Errorf("Expected identical records, got %+v and %+v", first, second)
	}
}

func TestSphere_InvalidRadius(t *testing.T) {
	if _, err := NewSphere(core.NewVec3(0, 0, 0), 0, nil); err == nil {
		t.Error("Expected error for zero radius")
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(1, 2, 3), 2)
	box := sphere.BoundingBox()
	if box.Min != core.NewVec3(-1, 0, 1) || box.Max != core.NewVec3(3, 4, 5) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}
