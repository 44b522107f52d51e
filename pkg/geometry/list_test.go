package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

func TestList_NearestHit(t *testing.T) {
	near := mustSphere(t, core.NewVec3(0, 0, -3), 1)
	far := mustSphere(t, core.NewVec3(0, 0, -10), 1)
	floor := NewPlane(core.NewVec3(0, 1, 0), 5, nil)

	list := NewList(far, floor, near)
	if list.Len() != 3 {
		t.Fatalf("Expected 3 primitives, got %d", list.Len())
	}

	hit, ok := list.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Primitive != near {
		t.Errorf("Expected nearest sphere, got %T at t=%f", hit.Primitive, hit.T)
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}

	hit, ok = list.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)))
	if !ok || hit.Primitive != floor {
		t.Errorf("Expected floor hit, got ok=%t", ok)
	}

	if _, ok := list.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))); ok {
		t.Error("Expected miss straight up")
	}
}

func TestList_Empty(t *testing.T) {
	list := NewList()
	if _, ok := list.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))); ok {
		t.Error("Expected empty list to miss")
	}
	if !list.BoundingBox().IsEmpty() {
		t.Errorf("Expected empty bounds, got %v", list.BoundingBox())
	}
}

func TestList_AddAll(t *testing.T) {
	list := NewList()
	list.AddAll(quadMesh(t, nil))
	if list.Len() != 2 {
		t.Errorf("Expected 2 triangles after AddAll, got %d", list.Len())
	}
}

func TestInstance_TranslatedSphere(t *testing.T) {
	unit := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	instance, err := NewInstance(unit, mgl64.Translate3D(5, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, ok := instance.Intersect(core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit on translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if !hit.Position.Equals(core.NewVec3(5, 0, 1), 1e-9) {
		t.Errorf("Expected world position (5,0,1), got %v", hit.Position)
	}
	if hit.Primitive != instance {
		t.Errorf("Expected the instance as hit primitive, got %T", hit.Primitive)
	}

	if _, ok := instance.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected the original location to be empty")
	}

	box := instance.BoundingBox()
	if !box.Min.Equals(core.NewVec3(4, -1, -1), 1e-9) || !box.Max.Equals(core.NewVec3(6, 1, 1), 1e-9) {
		t.Errorf("Unexpected instance bounds %v", box)
	}
}

func TestInstance_SharedObjectHits(t *testing.T) {
	unit := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	left, err := NewInstance(unit, mgl64.Translate3D(-3, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	right, err := NewInstance(unit, mgl64.Translate3D(3, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	list := NewList(left, right)
	tests := []struct {
		name     string
		origin   core.Vec3
		expected *Instance
	}{
		{"left placement", core.NewVec3(-3, 0, 5), left},
		{"right placement", core.NewVec3(3, 0, 5), right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := list.Intersect(core.NewRay(tt.origin, core.NewVec3(0, 0, -1)))
			if !ok {
				t.Fatal("Expected hit")
			}
			if hit.Primitive != tt.expected {
				t.Errorf("Expected hit attributed to %p, got %p", tt.expected, hit.Primitive)
			}
		})
	}
}

func TestInstance_NonUniformScaleNormal(t *testing.T) {
	unit := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	// Ellipsoid with semi-axes 2, 1, 1
	instance, err := NewInstance(unit, mgl64.Scale3D(2, 1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	dir := core.NewVec3(-1, 0, -1)
	// Aim at the ellipsoid point (sqrt2, 0, sqrt(1/2))
	target := core.NewVec3(math.Sqrt2, 0, math.Sqrt(0.5))
	hit, ok := instance.Intersect(core.NewRay(target.Subtract(dir.Multiply(3)), dir))
	if !ok {
		t.Fatal("Expected hit on ellipsoid")
	}
	if !hit.Position.Equals(target, 1e-9) {
		t.Fatalf("Expected position %v, got %v", target, hit.Position)
	}

	// Gradient of x²/4 + y² + z² is (x/2, 0, 2z)
	expected := core.NewVec3(target.X/2, 0, 2*target.Z).Normalize()
	if !hit.Normal.Equals(expected, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expected, hit.Normal)
	}
}

func TestInstance_SingularMatrix(t *testing.T) {
	unit := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	_, err := NewInstance(unit, mgl64.Scale3D(1, 0, 1))
	if !errors.Is(err, core.ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
}
