package junction

import (
	"errors"

	"github.com/katalvlaran/longhike/gridgraph"
)

// Fixed node indices.
const (
	StartIndex  = 0
	FinishIndex = 1
)

var (
	// ErrNilNeighborMap is returned when Compress receives a nil map.
	ErrNilNeighborMap = errors.New("junction: neighbor map is nil")
)

// Node is a decision point of the reduced graph.
type Node struct {
	Index    int            // dense index into Graph.Nodes
	Cell     gridgraph.Cell // location in the maze
	Adjacent []int          // indices of nodes reachable by one corridor
}

// Graph is the reduced maze. Dist[i][j] is the corridor length from node i
// to node j, or 0 when they are not adjacent. It is immutable once built.
type Graph struct {
	Nodes    []Node
	Dist     [][]int
	Directed bool
}

// Edge is one corridor of the reduced graph.
type Edge struct {
	From, To int
	Weight   int
}
