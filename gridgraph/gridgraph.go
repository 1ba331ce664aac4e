package gridgraph

// Parse validates rows and builds a Grid. Rows must be non-empty and of equal
// length, contain only wall, floor or slope markers, and leave both the start
// (1,0) and the finish (Width-2,Height-1) open. Unless opts.KeepSlopes is set,
// every slope marker is normalized to floor.
// Complexity: O(W×H) time and memory.
func Parse(rows []string, opts ParseOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, malformed(-1, -1, ErrEmptyGrid)
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, malformed(y, -1, ErrNonRectangular)
		}
	}
	if w < 3 || h < 2 {
		return nil, malformed(-1, -1, ErrGridTooSmall)
	}

	g := &Grid{
		Width:      w,
		Height:     h,
		KeepSlopes: opts.KeepSlopes,
		open:       make([]bool, w*h),
		slope:      make([]byte, w*h),
	}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			c := row[x]
			switch c {
			case Wall:
			case Floor:
				g.open[g.index(x, y)] = true
			case SlopeUp, SlopeRight, SlopeDown, SlopeLeft:
				g.open[g.index(x, y)] = true
				if opts.KeepSlopes {
					g.slope[g.index(x, y)] = c
				}
			default:
				return nil, malformed(y, x, ErrInvalidCell)
			}
		}
	}

	if s := g.Start(); !g.IsOpen(s) {
		return nil, malformed(s.Y, s.X, ErrStartBlocked)
	}
	if f := g.Finish(); !g.IsOpen(f) {
		return nil, malformed(f.Y, f.X, ErrFinishBlocked)
	}

	return g, nil
}

// Start returns the fixed start cell (1,0).
func (g *Grid) Start() Cell { return Cell{1, 0} }

// Finish returns the fixed finish cell (Width-2,Height-1).
func (g *Grid) Finish() Cell { return Cell{g.Width - 2, g.Height - 1} }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsOpen reports whether c is inside the grid and not a wall.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.open[g.index(c.X, c.Y)]
}

// CanStep reports whether a walker on open cell from may move to the
// adjacent open cell to. With slopes kept, a slope may only be left in its
// own direction and never entered against it; otherwise every step between
// open cells is allowed.
func (g *Grid) CanStep(from, to Cell) bool {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return false
	}
	if !g.KeepSlopes {
		return true
	}
	d := to.Sub(from)
	if s := g.slope[g.index(from.X, from.Y)]; s != 0 && slopeDir[s] != d {
		return false
	}
	if s := g.slope[g.index(to.X, to.Y)]; s != 0 && slopeDir[s] == (Cell{-d.X, -d.Y}) {
		return false
	}

	return true
}

// Rows renders the grid back to text. Normalized slopes come back as floor.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	buf := make([]byte, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.index(x, y)
			switch {
			case !g.open[i]:
				buf[x] = Wall
			case g.slope[i] != 0:
				buf[x] = g.slope[i]
			default:
				buf[x] = Floor
			}
		}
		out[y] = string(buf)
	}

	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{idx % g.Width, idx / g.Width}
}
