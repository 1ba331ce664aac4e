package junction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/longhike/gridgraph"
	"github.com/katalvlaran/longhike/internal/mazetest"
	"github.com/katalvlaran/longhike/junction"
)

func TestGraph_Weight_OutOfRange(t *testing.T) {
	g := compress(t, mazetest.Straight, false)

	assert.Zero(t, g.Weight(-1, 0))
	assert.Zero(t, g.Weight(0, 2))
	assert.Zero(t, g.Weight(0, 0))
}

func TestGraph_IndexOf(t *testing.T) {
	g := compress(t, mazetest.Loop, false)

	i, ok := g.IndexOf(gridgraph.Cell{X: 1, Y: 3})
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = g.IndexOf(gridgraph.Cell{X: 2, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestGraph_Edges(t *testing.T) {
	g := compress(t, mazetest.Loop, false)

	assert.Equal(t, []junction.Edge{
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 9},
		{From: 2, To: 3, Weight: 10},
	}, g.Edges())

	directed := compress(t, mazetest.Straight, true)
	assert.Equal(t, []junction.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 0, Weight: 5},
	}, directed.Edges())
}

func TestGraph_PathLength(t *testing.T) {
	g := compress(t, mazetest.Loop, false)

	assert.Equal(t, 20, g.PathLength([]int{0, 2, 3, 1}))
	assert.Equal(t, 0, g.PathLength([]int{0}))
	assert.Equal(t, -1, g.PathLength([]int{0, 3}))
}
