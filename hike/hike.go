package hike

import (
	"fmt"

	"github.com/katalvlaran/longhike/junction"
)

// Searcher runs longest-path searches over one graph. Its visited set is
// allocated once and toggled in stack order by the recursion.
type Searcher struct {
	graph   *junction.Graph
	opts    Options
	visited []bool
	calls   int
}

// NewSearcher prepares a searcher for g.
func NewSearcher(g *junction.Graph, opts ...Option) *Searcher {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s := &Searcher{graph: g, opts: o}
	if g != nil {
		s.visited = make([]bool, g.Len())
	}

	return s
}

// Hike returns the longest simple path length from → to, 0 when from == to,
// or NoPath when no path exists. Invalid indices and hook errors also yield
// NoPath; use Search to tell them apart.
func (s *Searcher) Hike(from, to int) int {
	length, _, err := s.Search(from, to)
	if err != nil {
		return NoPath
	}

	return length
}

// Search is Hike with the best path (when recording) and any error.
func (s *Searcher) Search(from, to int) (int, []int, error) {
	if s.graph == nil {
		return NoPath, nil, ErrGraphNil
	}
	n := s.graph.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return NoPath, nil, fmt.Errorf("%w: from=%d to=%d nodes=%d", ErrNodeIndex, from, to, n)
	}
	s.calls = 0

	return s.recurse(from, to)
}

// Visited returns a copy of the visited set.
func (s *Searcher) Visited() []bool {
	out := make([]bool, len(s.visited))
	copy(out, s.visited)

	return out
}

// Calls reports the frames entered by the last search.
func (s *Searcher) Calls() int { return s.calls }

// recurse is one frame of the backtracking search.
func (s *Searcher) recurse(from, to int) (int, []int, error) {
	s.calls++
	if s.opts.OnVisit != nil {
		if err := s.opts.OnVisit(from); err != nil {
			return NoPath, nil, fmt.Errorf("hike: OnVisit hook for node %d: %w", from, err)
		}
	}
	if from == to {
		return 0, s.tail(to), nil
	}

	s.visited[from] = true
	defer func() { s.visited[from] = false }()

	best := NoPath
	var bestPath []int
	for _, a := range s.graph.Nodes[from].Adjacent {
		if s.visited[a] {
			continue
		}
		remain, sub, err := s.recurse(a, to)
		if err != nil {
			return NoPath, nil, err
		}
		if remain == NoPath {
			continue
		}
		if total := s.graph.Dist[from][a] + remain; total > best {
			best = total
			if s.opts.RecordPath {
				bestPath = append([]int{from}, sub...)
			}
		}
	}

	return best, bestPath, nil
}

// tail starts a recorded path at the destination.
func (s *Searcher) tail(to int) []int {
	if !s.opts.RecordPath {
		return nil
	}

	return []int{to}
}

// Longest searches g for the longest simple path from → to.
// It returns ErrNoPath when the destination is unreachable.
func Longest(g *junction.Graph, from, to int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := NewSearcher(g, opts...)
	length, path, err := s.Search(from, to)
	if err != nil {
		return nil, err
	}
	if length == NoPath {
		return nil, ErrNoPath
	}

	return &Result{Length: length, Path: path, Calls: s.calls}, nil
}
