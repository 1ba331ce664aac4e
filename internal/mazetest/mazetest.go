// Package mazetest holds maze fixtures shared by the package tests.
// Expected values are noted next to each fixture; weights are grid steps.
package mazetest

// Sample is the 23×23 reference maze. Longest hike: 154 with slopes as
// floor, 94 with slopes kept. It has seven junctions.
var Sample = []string{
	"#.#####################",
	"#.......#########...###",
	"#######.#########.#.###",
	"###.....#.>.>.###.#.###",
	"###v#####.#v#.###.#.###",
	"###.>...#.#.#.....#...#",
	"###v###.#.#.#########.#",
	"###...#.#.#.......#...#",
	"#####.#.#.#######.#.###",
	"#.....#.#.#.......#...#",
	"#.#####.#.#.#########v#",
	"#.#...#...#...###...>.#",
	"#.#.#v#######v###.###v#",
	"#...#.>.#...>.>.#.###.#",
	"#####v#.#.###v#.#.###.#",
	"#.....#...#...#.#.#...#",
	"#.#########.###.#.#.###",
	"#...###...#...#...#.###",
	"###.###.#.###v#####v###",
	"#...#...#.#.>.>.#.>.###",
	"#.###.###.#.###.#.#v###",
	"#.....###...###...#...#",
	"#####################.#",
}

// Straight is a single corridor of 5 steps with no junction.
var Straight = []string{
	"#.###",
	"#.###",
	"#...#",
	"###.#",
}

// Loop has junctions at (1,1) and (1,3) joined by corridors of 2 and 10
// steps; the lower junction reaches the finish in 9. Longest hike: 20.
var Loop = []string{
	"#.#######",
	"#.....###",
	"#.###.###",
	"#.....###",
	"#.#######",
	"#.......#",
	"#######.#",
}

// Parallel has junctions at (1,1) and (4,3) joined by corridors of 5 and 9
// steps; the second junction reaches the finish in 5. Longest hike: 15.
var Parallel = []string{
	"#.######",
	"#....###",
	"#.##.###",
	"#.##...#",
	"#.##.#.#",
	"#....#.#",
	"######.#",
}

// Isolated has a finish that cannot be reached from the start.
var Isolated = []string{
	"#.#####",
	"#.#...#",
	"#.#.#.#",
	"#.###.#",
	"###...#",
	"#####.#",
}

// Sloped has junctions at (1,1) and (7,6). The upper corridor is 11 steps,
// the lower one 15 but starts with an up-slope. Longest hike: 19 with slopes
// as floor, 15 with slopes kept.
var Sloped = []string{
	"#.#######",
	"#.......#",
	"#^#####.#",
	"#.#####.#",
	"#.#####.#",
	"#.#####.#",
	"#...#...#",
	"###.#.#.#",
	"###...#.#",
	"#######.#",
}

// SelfLoop has one junction at (3,3) whose 8-step corridor leads back to
// itself. Start to junction is 5 steps, junction to finish 7. Longest hike: 12.
var SelfLoop = []string{
	"#.#######",
	"#.#...###",
	"#.#.#.###",
	"#.....###",
	"###.#####",
	"###.....#",
	"#######.#",
}
