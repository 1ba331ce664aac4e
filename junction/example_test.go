package junction_test

import (
	"fmt"

	"github.com/katalvlaran/longhike/gridgraph"
	"github.com/katalvlaran/longhike/junction"
)

// ExampleCompress reduces a maze with two junctions joined by a short and a
// long corridor. Only the longer corridor (10 steps) survives.
//
//	#.#######
//	#.....###
//	#.###.###
//	#.....###
//	#.#######
//	#.......#
//	#######.#
func ExampleCompress() {
	rows := []string{
		"#.#######",
		"#.....###",
		"#.###.###",
		"#.....###",
		"#.#######",
		"#.......#",
		"#######.#",
	}
	grid, _ := gridgraph.Parse(rows, gridgraph.DefaultParseOptions())
	g, err := junction.Compress(gridgraph.BuildNeighbors(grid))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, n := range g.Nodes {
		fmt.Printf("node %d at (%d,%d)\n", n.Index, n.Cell.X, n.Cell.Y)
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d–%d: %d\n", e.From, e.To, e.Weight)
	}

	// Output:
	// node 0 at (1,0)
	// node 1 at (7,6)
	// node 2 at (1,1)
	// node 3 at (1,3)
	// 0–2: 1
	// 1–3: 9
	// 2–3: 10
}
