package hike

import (
	"errors"
)

// NoPath is returned by Hike when no simple path reaches the destination.
const NoPath = -1

var (
	// ErrGraphNil is returned when the searcher has no graph.
	ErrGraphNil = errors.New("hike: graph is nil")

	// ErrNodeIndex indicates a from or to index outside the graph.
	ErrNodeIndex = errors.New("hike: node index out of range")

	// ErrNoPath indicates the destination cannot be reached by any simple path.
	ErrNoPath = errors.New("hike: no path between start and finish")
)

// Option configures optional behavior of the search.
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// OnVisit, if non-nil, is invoked on entry to every search frame with the
	// frame's node index. Returning an error aborts the search.
	OnVisit func(index int) error

	// RecordPath keeps the node sequence of the best path in Result.Path.
	RecordPath bool
}

// DefaultOptions returns Options with no hook and no path recording.
func DefaultOptions() Options {
	return Options{
		OnVisit:    nil,
		RecordPath: false,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(index int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithPath returns an Option that records the best path.
func WithPath() Option {
	return func(o *Options) {
		o.RecordPath = true
	}
}

// Result captures the outcome of a search.
type Result struct {
	// Length is the total weight of the longest simple path.
	Length int

	// Path lists node indices from source to destination. It is nil unless
	// WithPath was given.
	Path []int

	// Calls counts search frames entered, a measure of the work done.
	Calls int
}
