package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/longhike/gridgraph"
)

// lattice builds an n×n maze whose open cells form a grid of corridors with
// a junction every other cell.
func lattice(n int) []string {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		var b strings.Builder
		for x := 0; x < n; x++ {
			switch {
			case x == 0 || x == n-1 || y == 0 || y == n-1:
				b.WriteByte('#')
			case x%2 == 1 || y%2 == 1:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		rows[y] = b.String()
	}
	top, bottom := []byte(rows[0]), []byte(rows[n-1])
	top[1], bottom[n-2] = '.', '.'
	rows[0], rows[n-1] = string(top), string(bottom)

	return rows
}

// BenchmarkBuildNeighbors measures the adjacency sweep on a 141×141 lattice.
// Complexity: O(W×H).
func BenchmarkBuildNeighbors(b *testing.B) {
	g, err := gridgraph.Parse(lattice(141), gridgraph.DefaultParseOptions())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.BuildNeighbors(g)
	}
}
