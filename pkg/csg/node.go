package csg

import (
	"fmt"
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// Operation is the boolean operator of a Node
type Operation int

const (
	OpUnion Operation = iota
	OpIntersect
	OpSubtract // left minus right
)

func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "UNION"
	case OpIntersect:
		return "INTERSECT"
	case OpSubtract:
		return "SUBTRACT"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// inside is the truth table of the operator
func (op Operation) inside(insideLeft, insideRight bool) bool {
	switch op {
	case OpUnion:
		return insideLeft || insideRight
	case OpIntersect:
		return insideLeft && insideRight
	default:
		return insideLeft && !insideRight
	}
}

// Node combines two solids with a boolean operator
type Node struct {
	left, right Solid
	op          Operation
}

// NewNode creates the boolean combination of left and right
func NewNode(left, right Solid, op Operation) *Node {
	return &Node{left: left, right: right, op: op}
}

// Combine folds solids into a balanced tree of nodes sharing one operator.
// Subtract folds as solids[0] minus everything else. It returns nil for no solids.
func Combine(op Operation, solids ...Solid) Solid {
	switch len(solids) {
	case 0:
		return nil
	case 1:
		return solids[0]
	}
	if op == OpSubtract {
		return NewNode(solids[0], Combine(OpUnion, solids[1:]...), OpSubtract)
	}
	half := len(solids) / 2
	return NewNode(Combine(op, solids[:half]...), Combine(op, solids[half:]...), op)
}

// Operation returns the operator of the node
func (n *Node) Operation() Operation {
	return n.op
}

// intervalBoundaries merges both operand lists by t and sweeps them once,
// tracking whether the ray is inside each operand. Boundaries of both
// operands at the same t are consumed together, so a boundary is emitted
// only when the combined inside state differs across that t.
func (n *Node) intervalBoundaries(ray core.Ray) []IntervalBoundary {
	left := n.left.intervalBoundaries(ray)
	right := n.right.intervalBoundaries(ray)
	if len(left) == 0 && len(right) == 0 {
		return nil
	}

	merged := make([]IntervalBoundary, 0, len(left)+len(right))
	insideLeft, insideRight, inside := false, false, false

	i, j := 0, 0
	for i < len(left) || j < len(right) {
		t := math.Inf(1)
		if i < len(left) {
			t = left[i].T
		}
		if j < len(right) && right[j].T < t {
			t = right[j].T
		}

		var fromLeft, fromRight *IntervalBoundary
		for ; i < len(left) && coincident(left[i].T, t); i++ {
			fromLeft = &left[i]
			insideLeft = left[i].Type == Start
		}
		for ; j < len(right) && coincident(right[j].T, t); j++ {
			fromRight = &right[j]
			insideRight = right[j].Type == Start
		}

		now := n.op.inside(insideLeft, insideRight)
		if now == inside {
			continue
		}
		inside = now

		b := n.contributing(fromLeft, fromRight, now)
		b.Type = End
		if now {
			b.Type = Start
		}
		merged = append(merged, b)
	}

	return merged
}

// coincidenceTolerance is the relative distance below which two
// boundaries are treated as the same crossing
const coincidenceTolerance = 1e-9

func coincident(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= coincidenceTolerance*math.Max(1, math.Abs(a))
}

// contributing picks the operand boundary whose surface bounds the result
// at a coincident t. The subtrahend's surface bounds the result from the
// other side, so its hit is flipped.
func (n *Node) contributing(fromLeft, fromRight *IntervalBoundary, start bool) IntervalBoundary {
	if fromLeft != nil && (fromRight == nil || (fromLeft.Type == Start) == start) {
		return *fromLeft
	}
	b := *fromRight
	if n.op == OpSubtract {
		b.Hit = flipped(b.Hit)
	}
	return b
}

func (n *Node) bounds() core.AABB {
	switch n.op {
	case OpUnion:
		return n.left.bounds().Union(n.right.bounds())
	case OpIntersect:
		return n.left.bounds().Intersection(n.right.bounds())
	default:
		return n.left.bounds()
	}
}

// flipped returns a copy of hit with the normal reversed
func flipped(hit *core.HitRecord) *core.HitRecord {
	if hit == nil {
		return nil
	}
	reversed := *hit
	reversed.Normal = hit.Normal.Negate()
	reversed.FrontFace = !hit.FrontFace
	return &reversed
}
