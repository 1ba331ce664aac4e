package gridgraph

// BuildNeighbors sweeps g once in increasing (y, x) order. For each open cell
// it examines only the cell above and the cell to the left; an open neighbour
// is linked in both directions. The right and lower edges are discovered when
// those cells are swept, so every undirected edge is inserted exactly once.
//
// Time:   O(W·H).
// Memory: O(W·H) for the slot table.
func BuildNeighbors(g *Grid) *NeighborMap {
	total := g.Width * g.Height
	nm := &NeighborMap{
		grid:    g,
		present: make([]bool, total),
		lists:   make([][]Cell, total),
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cur := Cell{x, y}
			if !g.IsOpen(cur) {
				continue
			}
			nm.present[g.index(x, y)] = true
			for _, d := range [2]Cell{Up, Left} {
				prev := cur.Add(d)
				if !g.IsOpen(prev) {
					continue
				}
				nm.link(cur, prev)
			}
		}
	}

	return nm
}

// link inserts the undirected edge a–b.
func (nm *NeighborMap) link(a, b Cell) {
	ia, ib := nm.grid.index(a.X, a.Y), nm.grid.index(b.X, b.Y)
	nm.lists[ia] = append(nm.lists[ia], b)
	nm.lists[ib] = append(nm.lists[ib], a)
}

// Grid returns the grid the map was built from.
func (nm *NeighborMap) Grid() *Grid { return nm.grid }

// Contains reports whether c is an open cell of the map.
func (nm *NeighborMap) Contains(c Cell) bool {
	return nm.grid.InBounds(c) && nm.present[nm.grid.index(c.X, c.Y)]
}

// Neighbors returns the open neighbours of c, or nil if c is not in the map.
// The returned slice must not be modified.
func (nm *NeighborMap) Neighbors(c Cell) []Cell {
	if !nm.Contains(c) {
		return nil
	}

	return nm.lists[nm.grid.index(c.X, c.Y)]
}

// Degree returns the number of open neighbours of c.
func (nm *NeighborMap) Degree(c Cell) int {
	return len(nm.Neighbors(c))
}

// Cells returns every cell of the map in row-major order.
func (nm *NeighborMap) Cells() []Cell {
	out := make([]Cell, 0, len(nm.present))
	for i, ok := range nm.present {
		if ok {
			out = append(out, nm.grid.Coordinate(i))
		}
	}

	return out
}
