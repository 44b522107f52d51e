package core

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		ok      bool
		t0, t1  float64
	}{
		{"two roots", 1, -3, 2, true, 1, 2},
		{"negative leading coefficient", -1, 3, -2, true, 1, 2},
		{"double root", 1, -2, 1, true, 1, 1},
		{"no real roots", 1, 0, 1, false, 0, 0},
		{"degenerate", 0, 1, 1, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := SolveQuadratic(tt.a, tt.b, tt.c)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%t, got %t", tt.ok, ok)
			}
			if !ok {
				return
			}
			if math.Abs(t0-tt.t0) > 1e-12 || math.Abs(t1-tt.t1) > 1e-12 {
				t.Errorf("Expected roots (%f,%f), got (%f,%f)", tt.t0, tt.t1, t0, t1)
			}
		})
	}
}
