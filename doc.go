// Package longhike finds the longest scenic hike through a maze: the longest
// simple path, in grid steps, from the start cell in the top row to the
// finish cell in the bottom row.
//
// What:
//
//	A pipeline of four stages, each consuming only the previous one's output:
//		• gridgraph.Parse          rows → immutable Grid (slopes as floor by default)
//		• gridgraph.BuildNeighbors Grid → NeighborMap of open cells
//		• junction.Compress        NeighborMap → weighted junction Graph
//		• hike.Longest             Graph → longest simple path start → finish
//
// Why:
//
//	Mazes are mostly corridors. Collapsing every corridor into one weighted
//	edge leaves a graph of a few dozen junctions, small enough to enumerate
//	every simple path exhaustively.
//
// Quick ASCII example:
//
//	#.#####
//	#.....#
//	#.###.#
//	#.....#
//	#####.#
//
// Two junctions at (1,1) and (5,3) are joined by two 6-step corridors; the
// longest hike is 1 + 6 + 1 = 8.
//
// Subpackages:
//
//	gridgraph/  parsing, slopes, neighbour map, reachability
//	junction/   corridor compression into a junction graph
//	hike/       backtracking longest-path search
//	render/     DOT / SVG rendering of the junction graph
//
// The longhike command (cmd/longhike) wraps Solve with file/stdin input,
// TOML configuration and graph export.
package longhike
