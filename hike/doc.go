// Package hike finds the longest simple path between two nodes of a
// junction.Graph by exhaustive depth-first backtracking.
//
// What:
//
//   - Searcher.Hike(from, to): the maximum total weight over all simple paths
//     from → to, or NoPath (-1) when every branch dead-ends.
//   - Longest(g, from, to, opts...): validated entry point returning a Result
//     and ErrNoPath instead of the sentinel.
//   - Each node is marked visited on entry to its frame and unmarked before
//     the frame returns on every exit path, so the visited set is clean
//     between top-level calls.
//
// Options:
//
//   - WithPath()      record the node sequence of the best path.
//   - WithOnVisit(fn) pre-order hook called for every frame; an error aborts
//     the search and is returned wrapped.
//
// Complexity:
//
//   - Time:   exponential in the number of nodes (all simple paths are
//     enumerated); junction graphs of a few dozen nodes finish in seconds.
//   - Memory: O(N) for the visited set and recursion stack, plus O(N) per
//     frame when recording the path.
//
// A Searcher is single-threaded and must not be shared between goroutines.
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
//   - ErrNodeIndex  from or to is not a node index
//   - ErrNoPath     to cannot be reached from from (Longest only)
//   - hook errors   propagated from OnVisit
package hike
