// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, NeighborIndices).
// Determinism:
//   - Neighbors() and NeighborIDs() yield IDs sorted lex asc.
//   - NeighborIndices() returns arena indices sorted asc.

package core

import (
	"iter"
	"slices"
	"sort"
)

// Neighbors returns a lazy sequence over the IDs adjacent to id.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID, ErrVertexNotFound).
//   - Stage 2: Snapshot and sort neighbor IDs.
//   - Stage 3: Return an iter.Seq that yields the snapshot.
//
// Behavior highlights:
//   - The snapshot is taken at call time; later mutations do not affect an
//     already returned sequence.
//   - The sequence may be ranged over more than once.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the vertex degree.
func (g *Graph) Neighbors(id string) (iter.Seq[string], error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	return slices.Values(ids), nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	idx, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adj[idx]))
	var nb int
	for nb = range g.adj[idx] {
		out = append(out, g.words[nb])
	}
	sort.Strings(out)

	return out, nil
}

// NeighborIndices returns the arena indices adjacent to slot idx in
// ascending order, or nil for an invalid or removed slot.
// Search algorithms use it to stay in index space.
func (g *Graph) NeighborIndices(idx int) []int {
	if idx < 0 || idx >= len(g.adj) || g.adj[idx] == nil {
		return nil
	}
	out := make([]int, 0, len(g.adj[idx]))
	var nb int
	for nb = range g.adj[idx] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out
}
