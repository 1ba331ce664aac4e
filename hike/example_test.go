package hike_test

import (
	"fmt"

	"github.com/katalvlaran/longhike/gridgraph"
	"github.com/katalvlaran/longhike/hike"
	"github.com/katalvlaran/longhike/junction"
)

// ExampleLongest searches a maze whose two junctions are joined by corridors
// of 5 and 9 steps. The 9-step corridor is taken; the pair is used once.
func ExampleLongest() {
	rows := []string{
		"#.######",
		"#....###",
		"#.##.###",
		"#.##...#",
		"#.##.#.#",
		"#....#.#",
		"######.#",
	}
	grid, _ := gridgraph.Parse(rows, gridgraph.DefaultParseOptions())
	g, _ := junction.Compress(gridgraph.BuildNeighbors(grid))

	res, err := hike.Longest(g, junction.StartIndex, junction.FinishIndex, hike.WithPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("length:", res.Length)
	for _, i := range res.Path {
		c := g.Nodes[i].Cell
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()

	// Output:
	// length: 15
	// (1,0) (1,1) (4,3) (6,6)
}
