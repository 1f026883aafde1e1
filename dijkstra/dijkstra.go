// Package dijkstra implements Dijkstra's shortest-path algorithm specialized
// to unit edge weights on a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized once; each relaxation may push one heap entry.
//   - Space: O(V + E) for the per-run arrays and the lazy heap.
//
// Notes on implementation choices:
//
//   - Frontier ordering is (distance, word): equal distances pop in
//     lexicographic word order, which fixes which predecessor wins.
//   - Relaxation uses strict ">" so a tie never overwrites an earlier
//     assignment.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"

	"github.com/smulvey2/Graph/core"
)

// Search runs a single-source search from the vertex named source and
// returns its per-run state.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
func Search(g *core.Graph, source string) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	idx, err := g.Index(source)
	if err != nil {
		return nil, ErrVertexNotFound
	}

	r := &runner{g: g, res: newResult(g, idx)}
	r.run()

	return r.res, nil
}

// SearchInto reruns the search from arena index source reusing res, which
// must have been produced by Search on the same, unchanged graph.
// The arrays are reset first.
func SearchInto(res *Result, source int) {
	res.Reset(source)
	r := &runner{g: res.g, res: res}
	r.run()
}

// runner holds the mutable state for a single execution.
type runner struct {
	g   *core.Graph
	res *Result
	pq  nodePQ
}

// run seeds the source at distance 0 and drains the frontier.
func (r *runner) run() {
	src := r.res.Source
	r.res.Dist[src] = 0
	r.pq = make(nodePQ, 0, len(r.res.Dist))
	heap.Push(&r.pq, &nodeItem{idx: src, word: r.g.Word(src), dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Stale heap entry.
		if r.res.Visited[u] {
			continue
		}
		r.res.Visited[u] = true
		r.relax(u)
	}
}

// relax offers dist[u]+1 to every unvisited neighbor of u.
func (r *runner) relax(u int) {
	next := r.res.Dist[u] + 1
	for _, v := range r.g.NeighborIndices(u) {
		if r.res.Visited[v] {
			continue
		}
		if r.res.Dist[v] > next {
			r.res.Dist[v] = next
			r.res.Prev[v] = u
			heap.Push(&r.pq, &nodeItem{idx: v, word: r.g.Word(v), dist: next})
		}
	}
}

// nodeItem is a frontier entry.
type nodeItem struct {
	idx  int    // arena index
	word string // tie-break key
	dist int    // tentative distance when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, word).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then word.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].word < pq[j].word
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
