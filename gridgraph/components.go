package gridgraph

// Reachable reports whether b can be reached from a over the map's
// undirected edges. Slope directions are not considered.
// Returns false if either cell is not in the map.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and the queue.
func (nm *NeighborMap) Reachable(a, b Cell) bool {
	if !nm.Contains(a) || !nm.Contains(b) {
		return false
	}
	g := nm.grid
	seen := make([]bool, len(nm.present))
	target := g.index(b.X, b.Y)

	// BFS over slot indices
	queue := []int{g.index(a.X, a.Y)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return true
		}
		for _, v := range nm.lists[u] {
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return false
}
