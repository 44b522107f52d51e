package accel

import (
	"fmt"
	"math"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/log"
)

// SplitAxis selects how the split axis of a node is chosen
type SplitAxis int

const (
	// Cyclic cycles x, y, z with depth
	Cyclic SplitAxis = iota
	// Longest splits the longest extent of the node box
	Longest
)

func (a SplitAxis) String() string {
	switch a {
	case Cyclic:
		return "cyclic"
	case Longest:
		return "longest"
	default:
		return fmt.Sprintf("SplitAxis(%d)", int(a))
	}
}

// ParseSplitAxis converts a policy name as accepted on the command line
func ParseSplitAxis(name string) (SplitAxis, error) {
	switch name {
	case "", "cyclic":
		return Cyclic, nil
	case "longest":
		return Longest, nil
	default:
		return Cyclic, fmt.Errorf("accel: unknown split axis policy %q", name)
	}
}

// DefaultMinPrimitives is the primitive count below which a node becomes a leaf
const DefaultMinPrimitives = 5

// Options configure tree construction. Zero values select the defaults.
type Options struct {
	MaxDepth      int // Zero selects DefaultMaxDepth of the primitive count
	MinPrimitives int
	Axis          SplitAxis
	Logger        log.Logger
}

// DefaultMaxDepth returns ⌊8 + 1.3·ln n⌋, the depth limit used for n primitives
func DefaultMaxDepth(n int) int {
	if n < 1 {
		return 8
	}
	return int(8 + 1.3*math.Log(float64(n)))
}

func (o Options) withDefaults(n int) Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth(n)
	}
	if o.MinPrimitives <= 0 {
		o.MinPrimitives = DefaultMinPrimitives
	}
	if o.Logger == nil {
		o.Logger = logger
	}
	return o
}
