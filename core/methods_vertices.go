// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Arena indices are assigned in insertion order and never reused.
package core

import "sort"

// AddVertex inserts a new vertex for id.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Reject an ID that is already present (ErrVertexExists).
//   - Stage 3: Append the word to the arena and allocate its adjacency set.
//
// Behavior highlights:
//   - Not idempotent: a duplicate add fails and leaves the graph untouched.
//
// Returns:
//   - string: the inserted ID on success, "" on failure.
//   - error: nil on success; otherwise a sentinel.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyVertexID
	}
	if _, exists := g.index[id]; exists {
		return "", ErrVertexExists
	}

	idx := len(g.words)
	g.words = append(g.words, id)
	g.adj = append(g.adj, make(map[int]struct{}))
	g.index[id] = idx

	return id, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.index[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and presence.
//   - Stage 2: Detach the vertex from each neighbor's adjacency set.
//   - Stage 3: Tombstone the arena slot and drop the ID from the index.
//
// Behavior highlights:
//   - No neighbor lists the removed vertex afterwards.
//   - The arena slot stays allocated, so the indices of other vertices are stable.
//
// Returns:
//   - string: the removed ID on success, "" on failure.
//   - error: ErrEmptyVertexID or ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyVertexID
	}
	idx, ok := g.index[id]
	if !ok {
		return "", ErrVertexNotFound
	}

	var nb int
	for nb = range g.adj[idx] {
		delete(g.adj[nb], idx)
		g.edgeCount--
	}
	g.adj[idx] = nil
	g.words[idx] = ""
	delete(g.index, id)

	return id, nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.index))
	var id string
	for id = range g.index {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return len(g.index) }

// Cap returns the arena size, i.e. one past the largest index ever assigned.
// Algorithms size their per-run state arrays with it.
func (g *Graph) Cap() int { return len(g.words) }

// Index returns the arena index of id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) Index(id string) (int, error) {
	idx, ok := g.index[id]
	if !ok {
		return -1, ErrVertexNotFound
	}

	return idx, nil
}

// Word returns the ID stored at arena index idx, or "" for an out-of-range
// or removed slot.
func (g *Graph) Word(idx int) string {
	if idx < 0 || idx >= len(g.words) {
		return ""
	}

	return g.words[idx]
}
