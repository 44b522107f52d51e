// Package scene assembles the builtin scenes and the acceleration structure
// they are rendered through.
package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/accel"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/log"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/material"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/renderer"
)

var logger = log.New("scene")

// ErrNotPreprocessed is returned when a scene is queried before Preprocess
var ErrNotPreprocessed = errors.New("scene: acceleration structure not built")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	Background   core.Vec3
	Primitives   []core.Intersectable // Objects in the scene
	AccelOptions accel.Options
	Tree         *accel.Tree // Acceleration structure for ray-object intersection
}

// NewGroundPlane creates the y = height floor with a grid material
func NewGroundPlane(height float64) *geometry.Plane {
	grid := material.NewXYZGrid(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8), 0.02, core.NewVec3(0, 0, 0))
	return geometry.NewPlane(core.NewVec3(0, 1, 0), -height, grid)
}

// Add appends primitives to the scene. Aggregates such as meshes are
// expanded so the tree can partition their parts individually.
func (s *Scene) Add(primitives ...core.Intersectable) {
	for _, p := range primitives {
		if aggregate, ok := p.(core.Aggregate); ok {
			s.Add(aggregate.Primitives()...)
			continue
		}
		s.Primitives = append(s.Primitives, p)
	}
}

// Preprocess builds the BSP tree over the scene's primitives
func (s *Scene) Preprocess() error {
	if len(s.Primitives) == 0 {
		return fmt.Errorf("scene %q has no primitives", s.Name)
	}

	start := time.Now()
	s.Tree = accel.Build(s.Primitives, s.AccelOptions)
	logger.Infof("scene %q: %d primitives preprocessed in %v", s.Name, len(s.Primitives), time.Since(start))
	return nil
}

// GetRoot returns the tree built by Preprocess
func (s *Scene) GetRoot() core.Intersectable {
	if s.Tree == nil {
		return nil
	}
	return s.Tree
}

// GetCameraConfig returns the camera the scene was composed for
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetBackground returns the color of rays that leave the scene
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// Stats returns the statistics of the scene's tree
func (s *Scene) Stats() (accel.Stats, error) {
	if s.Tree == nil {
		return accel.Stats{}, ErrNotPreprocessed
	}
	return s.Tree.Stats(), nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}
