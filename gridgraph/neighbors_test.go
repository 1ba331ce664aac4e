package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhike/internal/mazetest"
)

func mustNeighbors(t testing.TB, rows []string) *NeighborMap {
	t.Helper()
	g, err := Parse(rows, DefaultParseOptions())
	require.NoError(t, err)

	return BuildNeighbors(g)
}

// TestBuildNeighbors_Symmetric checks that every edge appears in both lists
// and that each degree equals the number of open four-directional cells.
func TestBuildNeighbors_Symmetric(t *testing.T) {
	nm := mustNeighbors(t, mazetest.Sample)
	g := nm.Grid()

	edges := 0
	for _, c := range nm.Cells() {
		want := 0
		for _, d := range []Cell{Up, Right, Down, Left} {
			if g.IsOpen(c.Add(d)) {
				want++
			}
		}
		assert.Equal(t, want, nm.Degree(c), "degree of %v", c)

		for _, n := range nm.Neighbors(c) {
			assert.Contains(t, nm.Neighbors(n), c, "edge %v–%v is one-sided", c, n)
			edges++
		}
	}
	assert.Equal(t, 216, edges/2)
	assert.Len(t, nm.Cells(), 213)
}

// TestBuildNeighbors_Junctions lists the cells of degree three or more.
func TestBuildNeighbors_Junctions(t *testing.T) {
	nm := mustNeighbors(t, mazetest.Sample)

	var junctions, deadEnds []Cell
	for _, c := range nm.Cells() {
		switch d := nm.Degree(c); {
		case d >= 3:
			junctions = append(junctions, c)
		case d == 1:
			deadEnds = append(deadEnds, c)
		}
	}
	assert.Equal(t, []Cell{{11, 3}, {3, 5}, {21, 11}, {5, 13}, {13, 13}, {13, 19}, {19, 19}}, junctions)
	assert.Equal(t, []Cell{{1, 0}, {21, 22}}, deadEnds)
}

// TestNeighborMap_Absent verifies lookups for walls and out-of-range cells.
func TestNeighborMap_Absent(t *testing.T) {
	nm := mustNeighbors(t, mazetest.Straight)

	for _, c := range []Cell{{0, 0}, {-1, 2}, {9, 9}} {
		assert.False(t, nm.Contains(c))
		assert.Nil(t, nm.Neighbors(c))
		assert.Zero(t, nm.Degree(c))
	}
	assert.Equal(t, []Cell{{1, 1}}, nm.Neighbors(Cell{1, 0}))
	assert.ElementsMatch(t, []Cell{{1, 1}, {2, 2}}, nm.Neighbors(Cell{1, 2}))
}

// TestBuildNeighbors_IgnoresSlopeDirection shows the map is undirected even
// when slopes are kept.
func TestBuildNeighbors_IgnoresSlopeDirection(t *testing.T) {
	g, err := Parse([]string{"#.###", "#<..#", "###.#"}, ParseOptions{KeepSlopes: true})
	require.NoError(t, err)
	nm := BuildNeighbors(g)

	assert.ElementsMatch(t, []Cell{{1, 0}, {2, 1}}, nm.Neighbors(Cell{1, 1}))
	assert.Equal(t, 2, nm.Degree(Cell{2, 1}))
}
