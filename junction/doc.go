// Package junction compresses a maze's neighbour map into a small weighted
// graph whose nodes are the start, the finish and every junction.
//
// What:
//
//   - Compress selects nodes (start = index 0, finish = index 1, then cells
//     with three or more open neighbours in row-major order), walks every
//     corridor leaving each node and records the step count as edge weight.
//   - Corridors that dead-end or return to their own node contribute no edge.
//   - When two corridors join the same pair of nodes only the longer weight
//     is kept, and the adjacency link is added once.
//
// Why:
//
//   - A 141×141 maze collapses to a few dozen nodes, which makes exhaustive
//     longest-path search over simple paths feasible.
//
// Key Types:
//
//   - Node:  Index, Cell and Adjacent (indices into Graph.Nodes, not pointers).
//   - Graph: Nodes, the N×N Dist matrix (0 = no edge) and Directed.
//
// The graph is undirected (Dist symmetric) unless the grid keeps slopes, in
// which case a corridor yields an edge only in the directions it can be
// walked.
//
// Complexity:
//
//   - Compress: O(W×H + N²) time, O(N²) memory for N nodes; every open cell
//     is walked at most twice per incident node.
//
// Errors:
//
//   - ErrNilNeighborMap: Compress was given a nil map.
package junction
