package longhike_test

import (
	"fmt"

	"github.com/katalvlaran/longhike"
)

// ExampleSolve runs the whole pipeline on a maze with two equal corridors
// between its junctions.
func ExampleSolve() {
	rows := []string{
		"#.#####",
		"#.....#",
		"#.###.#",
		"#.....#",
		"#####.#",
	}
	res, err := longhike.Solve(rows, longhike.WithRoute())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("longest hike:", res.Length)
	fmt.Println("junctions:", res.Graph.Len()-2)
	fmt.Println("route:", res.Route)

	// Output:
	// longest hike: 8
	// junctions: 2
	// route: [{1 0} {1 1} {5 3} {5 4}]
}
