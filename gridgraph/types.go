package gridgraph

// Cell markers understood by Parse.
const (
	Wall       byte = '#'
	Floor      byte = '.'
	SlopeUp    byte = '^'
	SlopeRight byte = '>'
	SlopeDown  byte = 'v'
	SlopeLeft  byte = '<'
)

// Cell is a grid coordinate. It is a lookup key only.
type Cell struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell { return Cell{c.X + d.X, c.Y + d.Y} }

// Sub returns the offset from d to c.
func (c Cell) Sub(d Cell) Cell { return Cell{c.X - d.X, c.Y - d.Y} }

// Four-directional unit offsets.
var (
	Up    = Cell{0, -1}
	Right = Cell{1, 0}
	Down  = Cell{0, 1}
	Left  = Cell{-1, 0}
)

// slopeDir maps a slope marker to the only direction it can be left by.
var slopeDir = map[byte]Cell{
	SlopeUp:    Up,
	SlopeRight: Right,
	SlopeDown:  Down,
	SlopeLeft:  Left,
}

// ParseOptions contains tunable parameters for Parse.
type ParseOptions struct {
	// KeepSlopes keeps slope markers one-way. When false (the default)
	// every slope is ordinary open floor.
	KeepSlopes bool
}

// DefaultParseOptions returns ParseOptions with slopes treated as floor.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{KeepSlopes: false}
}

// Grid is an immutable maze. open[y*Width+x] marks traversable cells and
// slope[y*Width+x] holds the direction marker of a kept slope (0 otherwise).
type Grid struct {
	Width, Height int
	KeepSlopes    bool
	open          []bool
	slope         []byte
}

// NeighborMap lists the open four-directional neighbours of every open cell.
// It is a flat row-major slot table; present[i] reports whether slot i
// belongs to an open cell. An edge (a,b) is stored in both lists or neither.
type NeighborMap struct {
	grid    *Grid
	present []bool
	lists   [][]Cell
}
