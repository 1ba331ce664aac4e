package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/longhike/gridgraph"
)

// ExampleBuildNeighbors shows degrees on a small maze with junctions at
// (1,1) and (3,3).
//
//	#.###
//	#...#
//	#.#.#
//	#...#
//	###.#
func ExampleBuildNeighbors() {
	rows := []string{
		"#.###",
		"#...#",
		"#.#.#",
		"#...#",
		"###.#",
	}
	g, err := gridgraph.Parse(rows, gridgraph.DefaultParseOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nm := gridgraph.BuildNeighbors(g)

	for _, c := range []gridgraph.Cell{g.Start(), {X: 1, Y: 1}, {X: 3, Y: 3}, g.Finish()} {
		fmt.Printf("(%d,%d) degree %d\n", c.X, c.Y, nm.Degree(c))
	}

	// Output:
	// (1,0) degree 1
	// (1,1) degree 3
	// (3,3) degree 3
	// (3,4) degree 1
}
