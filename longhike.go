package longhike

import (
	"fmt"

	"github.com/katalvlaran/longhike/gridgraph"
	"github.com/katalvlaran/longhike/hike"
	"github.com/katalvlaran/longhike/junction"
)

// Option configures Solve.
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// KeepSlopes makes slope markers one-way.
	KeepSlopes bool

	// Route keeps the junction cells of the best path in Result.Route.
	Route bool

	// OnVisit is passed to the search as hike.WithOnVisit.
	OnVisit func(index int) error
}

// DefaultOptions returns Options with slopes as floor and no route.
func DefaultOptions() Options {
	return Options{}
}

// WithSlopes returns an Option that keeps slope directions.
func WithSlopes() Option {
	return func(o *Options) { o.KeepSlopes = true }
}

// WithRoute returns an Option that records the best route.
func WithRoute() Option {
	return func(o *Options) { o.Route = true }
}

// WithOnVisit returns an Option that installs a search hook.
func WithOnVisit(fn func(index int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result is the outcome of Solve.
type Result struct {
	// Length is the longest hike in steps.
	Length int

	// Route lists the node cells along the best hike (start, junctions,
	// finish). Nil unless WithRoute was given.
	Route []gridgraph.Cell

	// Path holds the node indices matching Route.
	Path []int

	// Graph is the junction graph that was searched.
	Graph *junction.Graph

	// Calls counts search frames.
	Calls int
}

// Solve runs the whole pipeline on rows. It returns a *gridgraph.MalformedGridError
// for bad input and hike.ErrNoPath when the finish cannot be reached.
func Solve(rows []string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	grid, err := gridgraph.Parse(rows, gridgraph.ParseOptions{KeepSlopes: o.KeepSlopes})
	if err != nil {
		return nil, fmt.Errorf("longhike: parse: %w", err)
	}
	nm := gridgraph.BuildNeighbors(grid)
	if !nm.Reachable(grid.Start(), grid.Finish()) {
		return nil, hike.ErrNoPath
	}

	g, err := junction.Compress(nm)
	if err != nil {
		return nil, fmt.Errorf("longhike: compress: %w", err)
	}

	var hopts []hike.Option
	if o.Route {
		hopts = append(hopts, hike.WithPath())
	}
	if o.OnVisit != nil {
		hopts = append(hopts, hike.WithOnVisit(o.OnVisit))
	}
	res, err := hike.Longest(g, junction.StartIndex, junction.FinishIndex, hopts...)
	if err != nil {
		return nil, fmt.Errorf("longhike: search: %w", err)
	}

	out := &Result{Length: res.Length, Path: res.Path, Graph: g, Calls: res.Calls}
	for _, i := range res.Path {
		out.Route = append(out.Route, g.Nodes[i].Cell)
	}

	return out, nil
}
