package geometry

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

func TestBumpy_PerturbsNormal(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	s := math.Sqrt(0.5)

	tests := []struct {
		name     string
		normals  NormalMap
		expected core.Vec3
	}{
		{
			name:     "tilted towards the tangent",
			normals:  NormalMapFunc(func(u, v float64) core.Vec3 { return core.NewVec3(1, 0, 1) }),
			expected: core.NewVec3(s, 0, s),
		},
		{
			name:     "tilted towards the bitangent",
			normals:  NormalMapFunc(func(u, v float64) core.Vec3 { return core.NewVec3(0, -1, 1) }),
			expected: core.NewVec3(0, -s, s),
		},
		{
			name:     "flat ripple",
			normals:  WaveNormalMap{Frequency: 4, Amplitude: 0},
			expected: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1)
			bumpy := NewBumpy(sphere, tt.normals)

			hit, ok := bumpy.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit")
			}
			plain, _ := sphere.Intersect(ray)
			if hit.T != plain.T || !hit.Position.Equals(plain.Position, 0) {
				t.Errorf("Expected t=%f at %v, got t=%f at %v", plain.T, plain.Position, hit.T, hit.Position)
			}
			if !hit.Normal.Equals(tt.expected, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expected, hit.Normal)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
			}
			if hit.Primitive != bumpy {
				t.Errorf("Expected the bumpy wrapper as hit primitive, got %T", hit.Primitive)
			}
			if bumpy.BoundingBox() != sphere.BoundingBox() {
				t.Errorf("Expected bounds %v, got %v", sphere.BoundingBox(), bumpy.BoundingBox())
			}
		})
	}

	miss := NewBumpy(mustSphere(t, core.NewVec3(0, 0, 0), 1), WaveNormalMap{Frequency: 1, Amplitude: 1})
	if _, ok := miss.Intersect(core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected miss to pass through")
	}
}

func TestWaveNormalMap_Ripples(t *testing.T) {
	m := WaveNormalMap{Frequency: 1, Amplitude: 0.1}

	// Crest of the height field is flat
	if n := m.NormalAt(0.25, 0.25); !n.Equals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected flat normal at the crest, got %v", n)
	}
	// Between crests the field slopes along u
	n := m.NormalAt(0, 0.25)
	if n.X >= 0 || math.Abs(n.Y) > 1e-9 {
		t.Errorf("Expected a normal leaning towards -u, got %v", n)
	}
}

func TestLoadNormalMap(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 128, G: 128, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 128, B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "normals.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	file.Close()

	m, err := LoadNormalMap(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		u        float64
		expected core.Vec3
	}{
		{0, core.NewVec3(0, 0, 1)},
		{1, core.NewVec3(1, 0, 1)},
		{0.5, core.NewVec3(0.5, 0, 1)},
		{-3, core.NewVec3(0, 0, 1)},
	}
	for _, tt := range tests {
		if got := m.NormalAt(tt.u, 0.5); !got.Equals(tt.expected, 0.01) {
			t.Errorf("Expected %v at u=%f, got %v", tt.expected, tt.u, got)
		}
	}

	if _, err := LoadNormalMap(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
