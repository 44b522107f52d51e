package material

import (
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// XYZGrid is a white diffuse surface overlaid with the lines of a world-space
// grid, useful for judging the shape and placement of geometry.
type XYZGrid struct {
	LineColor core.Vec3
	TileColor core.Vec3
	Thickness float64   // Line half-width in world units
	Shift     core.Vec3 // Offset of the lines from the integer lattice
	Scale     float64   // Grid spacing in world units
}

// NewXYZGrid creates a grid with unit spacing
func NewXYZGrid(lineColor, tileColor core.Vec3, thickness float64, shift core.Vec3) *XYZGrid {
	return &XYZGrid{LineColor: lineColor, TileColor: tileColor, Thickness: thickness, Shift: shift, Scale: 1}
}

// EvaluateBRDF returns the line or tile color divided by π
func (g *XYZGrid) EvaluateBRDF(hit *core.HitRecord, wOut, wIn core.Vec3) core.Vec3 {
	scale := g.Scale
	if scale <= 0 {
		scale = 1
	}
	p := hit.Position.Add(g.Shift).Multiply(1 / scale)
	thickness := g.Thickness / scale

	for axis := 0; axis < 3; axis++ {
		c := p.Axis(axis)
		if math.Abs(c-math.Round(c)) < thickness {
			return g.LineColor.Multiply(1 / math.Pi)
		}
	}
	return g.TileColor.Multiply(1 / math.Pi)
}
