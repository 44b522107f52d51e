// Package accel implements a binary space partitioning tree over
// intersectables. The tree is built once and is safe for concurrent queries.
package accel

import (
	"math"
	"time"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/log"
)

var logger = log.New("accel")

// splitEpsilon is the distance to a split plane below which the child boxes
// are tested directly instead of trusting the plane arithmetic
const splitEpsilon = 1e-9

// node is either a leaf holding indices into the primitive arena or an
// internal node split by an axis-aligned plane.
type node struct {
	box   core.AABB
	axis  int
	split float64
	depth int

	above, below *node // Coordinates >= split, <= split

	leaf  bool
	items []int
}

// Tree is a BSP tree over a set of primitives. Primitives straddling a split
// plane are referenced from both children. Unbounded primitives such as
// planes cannot be partitioned and are tested on every query.
type Tree struct {
	primitives []core.Intersectable
	unbounded  []int
	root       *node
	bbox       core.AABB
	options    Options
	buildTime  time.Duration
}

// stackEntry is a deferred subtree with the ray interval that reaches it
type stackEntry struct {
	node       *node
	tMin, tMax float64
}

// Build constructs the tree over primitives. The slice is copied; the
// primitives themselves are shared with the caller.
func Build(primitives []core.Intersectable, options Options) *Tree {
	start := time.Now()

	tree := &Tree{
		primitives: make([]core.Intersectable, len(primitives)),
		bbox:       core.EmptyAABB(),
	}
	copy(tree.primitives, primitives)

	rootBox := core.EmptyAABB()
	bounded := make([]int, 0, len(primitives))
	for i, p := range tree.primitives {
		box := p.BoundingBox()
		tree.bbox = tree.bbox.Union(box)
		if !box.IsFinite() {
			tree.unbounded = append(tree.unbounded, i)
			continue
		}
		rootBox = rootBox.Union(box)
		bounded = append(bounded, i)
	}

	tree.options = options.withDefaults(len(bounded))
	tree.options.Logger.Infof("building BSP tree over %d primitives (%d unbounded), max depth %d",
		len(bounded), len(tree.unbounded), tree.options.MaxDepth)

	if len(bounded) > 0 {
		firstAxis := 0
		if tree.options.Axis == Longest {
			firstAxis = rootBox.LongestAxis()
		}
		tree.root = tree.construct(rootBox, bounded, firstAxis, 0)
	}

	tree.buildTime = time.Since(start)
	tree.options.Logger.Infof("BSP tree built in %s", tree.buildTime)
	if stats := tree.Stats(); stats.Nodes > 0 {
		tree.options.Logger.Debugf("BSP tree: %d nodes, %d leaves, depth %d, %.2f primitives per leaf, duplication %.2f",
			stats.Nodes, stats.Leaves, stats.MaxDepth, stats.AverageLeafSize, stats.DuplicationFactor)
	}

	return tree
}

func (t *Tree) construct(box core.AABB, items []int, axis, depth int) *node {
	n := &node{box: box, axis: axis, depth: depth}

	if depth > t.options.MaxDepth || len(items) < t.options.MinPrimitives {
		n.leaf = true
		n.items = items
		return n
	}

	n.split = box.Center().Axis(axis)
	aboveBox, belowBox := box.Split(axis, n.split)

	var aboveItems, belowItems []int
	for _, i := range items {
		primitiveBox := t.primitives[i].BoundingBox()
		if primitiveBox.Overlaps(aboveBox) {
			aboveItems = append(aboveItems, i)
		}
		if primitiveBox.Overlaps(belowBox) {
			belowItems = append(belowItems, i)
		}
	}

	n.above = t.construct(aboveBox, aboveItems, t.nextAxis(aboveBox, axis), depth+1)
	n.below = t.construct(belowBox, belowItems, t.nextAxis(belowBox, axis), depth+1)
	return n
}

func (t *Tree) nextAxis(box core.AABB, axis int) int {
	if t.options.Axis == Longest {
		return box.LongestAxis()
	}
	return (axis + 1) % 3
}

// Intersect returns the nearest hit with t > 0 over all primitives
func (t *Tree) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	var nearest *core.HitRecord
	isect := math.Inf(1)

	for _, i := range t.unbounded {
		if hit, ok := t.primitives[i].Intersect(ray); ok && hit.T > 0 && hit.T < isect {
			isect = hit.T
			nearest = hit
		}
	}

	if t.root == nil {
		return nearest, nearest != nil
	}
	tMin, tMax, ok := t.root.box.Intersect(ray)
	if !ok {
		return nearest, nearest != nil
	}
	tMin = math.Max(tMin, 0)

	var buf [64]stackEntry
	stack := buf[:0]
	current := t.root

	for current != nil {
		// Nothing in the remaining intervals can be closer
		if isect < tMin {
			break
		}

		if !current.leaf {
			near, far := current.orderChildren(ray)
			origin := ray.Origin.Axis(current.axis)
			direction := ray.Direction.Axis(current.axis)

			if direction == 0 {
				current = near
				continue
			}

			tSplit := (current.split - origin) / direction
			switch {
			case math.IsNaN(tSplit) || math.Abs(tSplit) < splitEpsilon:
				nearMin, nearMax, nearOk := clip(near.box, ray, tMin, tMax)
				farMin, farMax, farOk := clip(far.box, ray, tMin, tMax)
				switch {
				case nearOk && farOk:
					stack = append(stack, stackEntry{far, farMin, farMax})
					current, tMin, tMax = near, nearMin, nearMax
				case nearOk:
					current, tMin, tMax = near, nearMin, nearMax
				case farOk:
					current, tMin, tMax = far, farMin, farMax
				default:
					current = nil
				}
			case tSplit > tMax || tSplit < 0:
				current = near
			case tSplit < tMin:
				current = far
			default:
				stack = append(stack, stackEntry{far, tSplit, tMax})
				current = near
				tMax = tSplit
			}

			if current != nil {
				continue
			}
		} else {
			for _, i := range current.items {
				if hit, ok := t.primitives[i].Intersect(ray); ok && hit.T > 0 && hit.T < isect {
					isect = hit.T
					nearest = hit
				}
			}
		}

		if len(stack) == 0 {
			break
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current, tMin, tMax = top.node, top.tMin, top.tMax
	}

	return nearest, nearest != nil
}

// orderChildren returns the child on the ray origin's side of the split
// plane first. An origin on the plane belongs to the side the ray heads into.
func (n *node) orderChildren(ray core.Ray) (near, far *node) {
	origin := ray.Origin.Axis(n.axis)
	if origin < n.split || (origin == n.split && ray.Direction.Axis(n.axis) < 0) {
		return n.below, n.above
	}
	return n.above, n.below
}

// clip intersects the ray with box and restricts the result to [tMin, tMax]
func clip(box core.AABB, ray core.Ray, tMin, tMax float64) (float64, float64, bool) {
	t0, t1, ok := box.Intersect(ray)
	if !ok {
		return 0, 0, false
	}
	t0, t1 = math.Max(t0, tMin), math.Min(t1, tMax)
	return t0, t1, t0 <= t1
}

// BoundingBox returns the union of all primitive boxes, infinite when the
// tree holds unbounded primitives
func (t *Tree) BoundingBox() core.AABB {
	return t.bbox
}

// Primitives returns the primitive arena the leaves index into
func (t *Tree) Primitives() []core.Intersectable {
	return t.primitives
}

// Options returns the options the tree was built with, defaults filled in
func (t *Tree) Options() Options {
	return t.options
}
