package renderer

import (
	"time"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// RenderStats contains statistics about one render
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Number of primary rays traced
	Hits         int           // Primary rays that hit the scene
	Tiles        int           // Number of tiles processed
	Duration     time.Duration // Wall clock time of the render
}

// Misses returns the number of primary rays that left the scene
func (s RenderStats) Misses() int {
	return s.TotalSamples - s.Hits
}

// HitRatio returns the fraction of primary rays that hit something
func (s RenderStats) HitRatio() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalSamples)
}

func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Hits += other.Hits
	s.Tiles += other.Tiles
}

// PixelStats accumulates the samples of one pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
