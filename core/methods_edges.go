// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/IsAdjacent/EdgeCount.
//
// Every edge is stored in both endpoint sets; the helpers below always
// touch both sides so the reciprocity invariant holds after each call.
package core

// endpoints resolves both IDs to arena indices, enforcing presence and
// irreflexivity. Shared by all pair operations.
func (g *Graph) endpoints(from, to string) (int, int, error) {
	if from == "" || to == "" {
		return -1, -1, ErrEmptyVertexID
	}
	fi, ok := g.index[from]
	if !ok {
		return -1, -1, ErrVertexNotFound
	}
	ti, ok := g.index[to]
	if !ok {
		return -1, -1, ErrVertexNotFound
	}
	if fi == ti {
		return -1, -1, ErrLoopNotAllowed
	}

	return fi, ti, nil
}

// AddEdge connects two existing vertices with an undirected edge.
//
// Steps:
//  1. Resolve endpoints (ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed).
//  2. Reject an existing edge in either direction (ErrEdgeExists).
//  3. Insert both directions.
//
// Unlike a multigraph, vertices are never auto-created here.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	fi, ti, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	_, fwd := g.adj[fi][ti]
	_, back := g.adj[ti][fi]
	if fwd || back {
		return ErrEdgeExists
	}

	g.adj[fi][ti] = struct{}{}
	g.adj[ti][fi] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge between from and to.
//
// Steps:
//  1. Resolve endpoints.
//  2. Both directions must be present, else ErrEdgeNotFound.
//  3. Delete both directions.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	fi, ti, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	_, fwd := g.adj[fi][ti]
	_, back := g.adj[ti][fi]
	if !fwd || !back {
		return ErrEdgeNotFound
	}

	delete(g.adj[fi], ti)
	delete(g.adj[ti], fi)
	g.edgeCount--

	return nil
}

// IsAdjacent reports whether from and to share an edge, checked in both
// directions. Any invalid input (missing vertex, empty ID, from == to)
// yields false.
// Complexity: O(1).
func (g *Graph) IsAdjacent(from, to string) bool {
	fi, ti, err := g.endpoints(from, to)
	if err != nil {
		return false
	}
	_, fwd := g.adj[fi][ti]
	_, back := g.adj[ti][fi]

	return fwd && back
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }
