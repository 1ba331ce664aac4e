package junction

import (
	"github.com/katalvlaran/longhike/gridgraph"
)

// compressor holds the inputs shared by the corridor walks.
type compressor struct {
	nm    *gridgraph.NeighborMap
	grid  *gridgraph.Grid
	index map[gridgraph.Cell]int // node cell -> node index
}

// Compress builds the junction graph of nm.
//
// Steps:
//  1. Node selection: start, finish, then each other cell of degree ≥ 3.
//  2. For every node and every neighbour of its cell, walk the corridor with
//     findFork starting at one step.
//  3. Record an edge to the node the walk ends on, skipping dead ends and
//     self-loops; repeated discoveries keep the larger weight.
//
// The resulting graph is directed iff the grid keeps slopes.
func Compress(nm *gridgraph.NeighborMap) (*Graph, error) {
	if nm == nil {
		return nil, ErrNilNeighborMap
	}
	grid := nm.Grid()
	c := &compressor{nm: nm, grid: grid, index: make(map[gridgraph.Cell]int)}

	// 1. Nodes in discovery order, start and finish pinned to 0 and 1
	start, finish := grid.Start(), grid.Finish()
	nodes := []Node{{Index: StartIndex, Cell: start}, {Index: FinishIndex, Cell: finish}}
	c.index[start], c.index[finish] = StartIndex, FinishIndex
	for _, cell := range nm.Cells() {
		if cell == start || cell == finish || nm.Degree(cell) < 3 {
			continue
		}
		c.index[cell] = len(nodes)
		nodes = append(nodes, Node{Index: len(nodes), Cell: cell})
	}

	g := &Graph{Nodes: nodes, Directed: grid.KeepSlopes}
	g.Dist = make([][]int, len(nodes))
	for i := range g.Dist {
		g.Dist[i] = make([]int, len(nodes))
	}

	// 2–3. Walk every corridor leaving every node
	for i := range g.Nodes {
		from := g.Nodes[i].Cell
		for _, nb := range nm.Neighbors(from) {
			dest, steps, ok := c.findFork(from, nb, 1)
			if !ok {
				continue // dead end or blocked slope
			}
			j := c.index[dest]
			if j == i {
				continue // corridor loops back
			}
			g.connect(i, j, steps)
		}
	}

	return g, nil
}

// findFork walks from prev onto cur and onwards along the corridor until it
// reaches a node. It returns the node cell and the number of steps taken, or
// ok=false if the corridor dead-ends or a slope forbids a step.
func (c *compressor) findFork(prev, cur gridgraph.Cell, steps int) (gridgraph.Cell, int, bool) {
	for {
		if !c.grid.CanStep(prev, cur) {
			return cur, steps, false
		}
		if _, isNode := c.index[cur]; isNode {
			return cur, steps, true
		}
		nbs := c.nm.Neighbors(cur)
		if len(nbs) < 2 {
			return cur, steps, false
		}
		next := nbs[0]
		if next == prev {
			next = nbs[1]
		}
		prev, cur = cur, next
		steps++
	}
}

// connect records a corridor of length w from node i to node j. The link is
// added on first discovery only; the weight is raised to the larger value.
func (g *Graph) connect(i, j, w int) {
	if g.Dist[i][j] == 0 {
		g.Nodes[i].Adjacent = append(g.Nodes[i].Adjacent, j)
		if !g.Directed {
			g.Nodes[j].Adjacent = append(g.Nodes[j].Adjacent, i)
		}
	}
	if w > g.Dist[i][j] {
		g.Dist[i][j] = w
		if !g.Directed {
			g.Dist[j][i] = w
		}
	}
}
