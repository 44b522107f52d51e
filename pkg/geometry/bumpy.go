package geometry

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// NormalMap supplies a tangent-space normal for surface coordinates (u,v).
// Z points along the unperturbed surface normal.
type NormalMap interface {
	NormalAt(u, v float64) core.Vec3
}

// NormalMapFunc adapts a plain function to a NormalMap
type NormalMapFunc func(u, v float64) core.Vec3

// NormalAt calls f(u, v)
func (f NormalMapFunc) NormalAt(u, v float64) core.Vec3 {
	return f(u, v)
}

// Bumpy wraps an intersectable and replaces the normal of every hit with
// one read from a normal map. Hit distances and bounds are unchanged.
type Bumpy struct {
	object  core.Intersectable
	normals NormalMap
}

// NewBumpy wraps object with the given normal map
func NewBumpy(object core.Intersectable, normals NormalMap) *Bumpy {
	return &Bumpy{object: object, normals: normals}
}

// Intersect forwards to the wrapped object and perturbs the normal in the
// local frame of the hit
func (b *Bumpy) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	hit, ok := b.object.Intersect(ray)
	if !ok {
		return nil, false
	}

	tangent, bitangent := tangentFrame(hit.Normal)
	local := b.normals.NormalAt(hit.U, hit.V)
	perturbed := tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(hit.Normal.Multiply(local.Z))
	if perturbed.LengthSquared() > 0 {
		hit.Normal = perturbed.Normalize()
	}
	hit.Primitive = b
	return hit, true
}

// BoundingBox returns the box of the wrapped object
func (b *Bumpy) BoundingBox() core.AABB {
	return b.object.BoundingBox()
}

// tangentFrame completes the unit vector n to a right-handed orthonormal frame
func tangentFrame(n core.Vec3) (tangent, bitangent core.Vec3) {
	up := core.NewVec3(0, 1, 0)
	if math.Abs(n.Y) > 0.9 {
		up = core.NewVec3(1, 0, 0)
	}
	tangent = up.Cross(n).Normalize()
	bitangent = n.Cross(tangent)
	return tangent, bitangent
}

// ImageNormalMap decodes tangent-space normals from the RGB channels of an
// image, each mapped from [0,1] to [-1,1]. Lookups interpolate bilinearly.
type ImageNormalMap struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageNormalMap wraps an already decoded image
func NewImageNormalMap(img image.Image) *ImageNormalMap {
	return &ImageNormalMap{img: img, bounds: img.Bounds()}
}

// LoadNormalMap reads a PNG or BMP normal map from path
func LoadNormalMap(path string) (*ImageNormalMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open normal map: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode normal map %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("normal map %s is empty", path)
	}
	return NewImageNormalMap(img), nil
}

// NormalAt samples the map; u runs left to right and v bottom to top
func (m *ImageNormalMap) NormalAt(u, v float64) core.Vec3 {
	w, h := m.bounds.Dx(), m.bounds.Dy()
	x := clamp01(u) * float64(w-1)
	y := (1 - clamp01(v)) * float64(h-1)

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := min(x0+1, w-1), min(y0+1, h-1)
	fx, fy := x-float64(x0), y-float64(y0)

	top := m.texel(x0, y0).Multiply(1 - fx).Add(m.texel(x1, y0).Multiply(fx))
	bottom := m.texel(x0, y1).Multiply(1 - fx).Add(m.texel(x1, y1).Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

func (m *ImageNormalMap) texel(x, y int) core.Vec3 {
	c := color.NRGBAModel.Convert(m.img.At(m.bounds.Min.X+x, m.bounds.Min.Y+y)).(color.NRGBA)
	return core.NewVec3(
		2*float64(c.R)/255-1,
		2*float64(c.G)/255-1,
		2*float64(c.B)/255-1,
	)
}

// WaveNormalMap is a procedural ripple: the height field
// Amplitude·sin(2π·Frequency·u)·sin(2π·Frequency·v) seen as normals
type WaveNormalMap struct {
	Frequency float64
	Amplitude float64
}

// NormalAt returns the normal of the height field at (u,v)
func (m WaveNormalMap) NormalAt(u, v float64) core.Vec3 {
	k := 2 * math.Pi * m.Frequency
	dhdu := m.Amplitude * k * math.Cos(k*u) * math.Sin(k*v)
	dhdv := m.Amplitude * k * math.Sin(k*u) * math.Cos(k*v)
	return core.NewVec3(-dhdu, -dhdv, 1).Normalize()
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
