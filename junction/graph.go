package junction

import (
	"github.com/katalvlaran/longhike/gridgraph"
)

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.Nodes) }

// Weight returns the corridor length from i to j, or 0 if there is no edge
// or either index is out of range.
func (g *Graph) Weight(i, j int) int {
	if i < 0 || j < 0 || i >= len(g.Nodes) || j >= len(g.Nodes) {
		return 0
	}

	return g.Dist[i][j]
}

// IndexOf returns the node index located at c.
func (g *Graph) IndexOf(c gridgraph.Cell) (int, bool) {
	for _, n := range g.Nodes {
		if n.Cell == c {
			return n.Index, true
		}
	}

	return -1, false
}

// Edges lists every edge once, ordered by source node then adjacency order.
// For an undirected graph only the From < To orientation is returned.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, n := range g.Nodes {
		for _, j := range n.Adjacent {
			if !g.Directed && j < n.Index {
				continue
			}
			out = append(out, Edge{From: n.Index, To: j, Weight: g.Dist[n.Index][j]})
		}
	}

	return out
}

// PathLength sums the weights along path. It returns -1 if two consecutive
// nodes are not adjacent.
func (g *Graph) PathLength(path []int) int {
	total := 0
	for k := 1; k < len(path); k++ {
		w := g.Weight(path[k-1], path[k])
		if w == 0 {
			return -1
		}
		total += w
	}

	return total
}
