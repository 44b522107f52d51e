package accel

import "time"

// Stats describes the shape of a built tree
type Stats struct {
	Primitives        int // Primitives partitioned by the tree
	Unbounded         int // Primitives tested on every query
	Nodes             int
	Leaves            int
	EmptyLeaves       int
	MaxDepth          int // Deepest leaf reached
	DepthLimit        int // Configured maximum depth
	References        int // Leaf entries, counting duplicates
	AverageLeafSize   float64
	DuplicationFactor float64 // References per partitioned primitive
	BuildTime         time.Duration
}

// Stats walks the tree and collects its statistics
func (t *Tree) Stats() Stats {
	stats := Stats{
		Primitives: len(t.primitives) - len(t.unbounded),
		Unbounded:  len(t.unbounded),
		DepthLimit: t.options.MaxDepth,
		BuildTime:  t.buildTime,
	}
	if t.root == nil {
		return stats
	}

	collectStats(t.root, &stats)

	if stats.Leaves > 0 {
		stats.AverageLeafSize = float64(stats.References) / float64(stats.Leaves)
	}
	if stats.Primitives > 0 {
		stats.DuplicationFactor = float64(stats.References) / float64(stats.Primitives)
	}
	return stats
}

func collectStats(n *node, stats *Stats) {
	stats.Nodes++
	if n.depth > stats.MaxDepth {
		stats.MaxDepth = n.depth
	}

	if n.leaf {
		stats.Leaves++
		stats.References += len(n.items)
		if len(n.items) == 0 {
			stats.EmptyLeaves++
		}
		return
	}

	collectStats(n.above, stats)
	collectStats(n.below, stats)
}
