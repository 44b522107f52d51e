package renderer

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// ErrDegenerateCamera is returned when the view direction is zero or parallel to up
var ErrDegenerateCamera = errors.New("renderer: degenerate camera orientation")

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Eye         core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VFov        float64 // Vertical field of view in degrees
	AspectRatio float64 // Width divided by height
}

// Camera generates primary rays for a pinhole camera
type Camera struct {
	eye        core.Vec3
	toWorld    core.Transform // camera space -> world space
	halfWidth  float64
	halfHeight float64
}

// NewCamera builds the camera basis from the config. Camera space looks down
// -z with +y up, as produced by mgl64.LookAtV.
func NewCamera(config CameraConfig) (*Camera, error) {
	forward := config.LookAt.Subtract(config.Eye)
	if forward.Cross(config.Up).Length() < 1e-12 {
		return nil, ErrDegenerateCamera
	}

	view := mgl64.LookAtV(toMgl(config.Eye), toMgl(config.LookAt), toMgl(config.Up))
	toWorld, err := core.NewTransform(view.Inv())
	if err != nil {
		return nil, err
	}

	aspect := config.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}
	vfov := config.VFov
	if vfov <= 0 || vfov >= 180 {
		vfov = 60
	}
	halfHeight := math.Tan(vfov * math.Pi / 360)

	return &Camera{
		eye:        config.Eye,
		toWorld:    toWorld,
		halfWidth:  aspect * halfHeight,
		halfHeight: halfHeight,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower left corner of the image.
func (c *Camera) GetRay(s, t float64) core.Ray {
	local := core.NewVec3((2*s-1)*c.halfWidth, (2*t-1)*c.halfHeight, -1)
	return core.NewRay(c.eye, c.toWorld.Vector(local).Normalize())
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.toWorld.Vector(core.NewVec3(0, 0, -1)).Normalize()
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
