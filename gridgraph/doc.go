// Package gridgraph treats a 2D maze of walls, floor and slopes as a graph
// of open cells, ready to be compressed into a junction graph.
//
// What:
//
//   - Parse validates raw rows and builds an immutable Grid with a fixed
//     start (1,0) and finish (Width-2, Height-1).
//   - Slope markers (^ > v <) are plain floor unless ParseOptions.KeepSlopes
//     is set, in which case Grid.CanStep enforces their direction.
//   - BuildNeighbors sweeps the grid once and produces a NeighborMap holding
//     every open cell's four-directional open neighbours.
//   - NeighborMap.Reachable answers whether two cells share a component.
//
// Why:
//
//   - Long mazes are mostly corridors; the junction compressor only needs the
//     degree of each cell and the neighbour lists to walk them.
//
// Complexity:
//
//   - Parse:          O(W×H) time and memory.
//   - BuildNeighbors: O(W×H) time, O(W×H) memory (flat slot table, d ≤ 4).
//   - Reachable:      O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooSmall:   start and finish would coincide.
//   - ErrInvalidCell:    a byte that is neither wall, floor nor slope.
//   - ErrStartBlocked:   the start cell is a wall.
//   - ErrFinishBlocked:  the finish cell is a wall.
//
// Every parse failure is returned as *MalformedGridError, which unwraps to
// one of the sentinels above.
package gridgraph
