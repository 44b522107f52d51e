package core

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransform_Singular(t *testing.T) {
	_, err := NewTransform(mgl64.Scale3D(1, 0, 1))
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DY(0.7)).Mul4(mgl64.Scale3D(2, 1, 0.5))
	tr, err := NewTransform(m)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := NewVec3(0.3, -1.2, 4)
	if got := tr.InversePoint(tr.Point(p)); !got.Equals(p, 1e-9) {
		t.Errorf("Expected %v, got %v", p, got)
	}
	v := NewVec3(1, 1, -2)
	if got := tr.InverseVector(tr.Vector(v)); !got.Equals(v, 1e-9) {
		t.Errorf("Expected %v, got %v", v, got)
	}
}

func TestTransform_NormalUnderNonUniformScale(t *testing.T) {
	tr, err := NewTransform(mgl64.Scale3D(4, 1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Plane x + y = 0 has normal (1,1,0)/sqrt2; after scaling x by 4 the
	// plane becomes x/4 + y = 0 whose normal is (1,4,0) normalized.
	n := tr.Normal(NewVec3(1, 1, 0).Normalize())
	expected := NewVec3(1, 4, 0).Normalize()
	if !n.Equals(expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, n)
	}

	tangent := tr.Vector(NewVec3(1, -1, 0))
	if math.Abs(tangent.Dot(n)) > 1e-9 {
		t.Errorf("Expected transformed normal to stay perpendicular, dot=%f", tangent.Dot(n))
	}
}

func TestTransform_RayParameterPreserved(t *testing.T) {
	tr, err := NewTransform(mgl64.Translate3D(0, 0, -3).Mul4(mgl64.Scale3D(2, 2, 2)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	world := NewRay(NewVec3(1, 2, 5), NewVec3(0.2, -0.1, -1))
	object := tr.RayToObject(world)
	for _, param := range []float64{0, 0.5, 3, 10} {
		got := tr.Point(object.At(param))
		if !got.Equals(world.At(param), 1e-9) {
			t.Errorf("Expected point at t=%f to be %v, got %v", param, world.At(param), got)
		}
	}
}

func TestTransform_Compose(t *testing.T) {
	outer, _ := NewTransform(mgl64.Translate3D(5, 0, 0))
	inner, _ := NewTransform(mgl64.Scale3D(2, 2, 2))
	composed := outer.Compose(inner)

	p := NewVec3(1, 1, 1)
	if got := composed.Point(p); !got.Equals(NewVec3(7, 2, 2), 1e-12) {
		t.Errorf("Expected (7,2,2), got %v", got)
	}
	if got := composed.InversePoint(NewVec3(7, 2, 2)); !got.Equals(p, 1e-12) {
		t.Errorf("Expected %v, got %v", p, got)
	}
}

func TestTransform_Box(t *testing.T) {
	tr, _ := NewTransform(mgl64.HomogRotate3DZ(math.Pi / 4))
	box := tr.Box(NewAABB(NewVec3(-1, -1, 0), NewVec3(1, 1, 1)))
	s := math.Sqrt2
	if !box.Min.Equals(NewVec3(-s, -s, 0), 1e-9) || !box.Max.Equals(NewVec3(s, s, 1), 1e-9) {
		t.Errorf("Unexpected rotated box %v", box)
	}

	if tr.Box(InfiniteAABB()).IsFinite() {
		t.Error("Expected infinite box to stay infinite")
	}
}
