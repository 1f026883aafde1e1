// Package dijkstra defines the result type and sentinel errors for the
// unit-weight single-source search over a core.Graph.
//
// Per-run state (distance, predecessor, visited) lives in arrays indexed by
// the graph's arena index, owned by one Result. Nothing is written to the
// graph, so concurrent searches over an unchanging graph are independent.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrVertexNotFound if the source vertex does not exist in the graph.
package dijkstra

import (
	"errors"
	"math"

	"github.com/smulvey2/Graph/core"
)

// Sentinel errors returned by Search.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

const (
	// Infinity is the distance of a vertex the search never reached.
	Infinity = math.MaxInt

	// NoPredecessor marks the source and every unreached vertex.
	NoPredecessor = -1
)

// Result is the scratch state of one completed single-source run.
//
// Dist, Prev and Visited are parallel arrays of length g.Cap(), indexed by
// arena index. Tombstoned slots keep their defaults.
type Result struct {
	g *core.Graph

	// Source is the arena index the run started from.
	Source int

	// Dist[i] is the edge count from Source to i, or Infinity.
	Dist []int

	// Prev[i] is the predecessor of i on the chosen shortest path, or NoPredecessor.
	Prev []int

	// Visited[i] reports whether i was popped from the frontier.
	Visited []bool
}

// newResult allocates default state: unvisited, Infinity, NoPredecessor.
func newResult(g *core.Graph, source int) *Result {
	n := g.Cap()
	r := &Result{
		g:       g,
		Source:  source,
		Dist:    make([]int, n),
		Prev:    make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		r.Dist[i] = Infinity
		r.Prev[i] = NoPredecessor
	}

	return r
}

// Reset returns every slot to its default so the arrays can be reused for
// a run from source.
func (r *Result) Reset(source int) {
	for i := range r.Dist {
		r.Dist[i] = Infinity
		r.Prev[i] = NoPredecessor
		r.Visited[i] = false
	}
	r.Source = source
}

// Distance returns the edge count from the source to word, or Infinity if
// word is unknown or unreached.
func (r *Result) Distance(word string) int {
	idx, err := r.g.Index(word)
	if err != nil || idx >= len(r.Dist) {
		return Infinity
	}

	return r.Dist[idx]
}
