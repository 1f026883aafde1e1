// Package core defines the word Graph type and the sentinel errors
// returned by the graph ADT.
//
// This file declares Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexExists    - vertex is already present.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeExists      - edge between the pair is already present.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - both endpoints name the same vertex.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates an attempt to add a vertex that is already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeExists indicates an attempt to add a second edge between the same pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the graph is irreflexive.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected, unweighted graph without loops or parallel edges.
//
// Vertices are words in a flat arena (words) and adjacency is a per-slot set
// of arena indices, so there are no pointer cycles between vertices.
// A removed vertex leaves an empty-string tombstone in the arena; empty IDs
// are rejected on insert, so a tombstone never collides with a live word.
//
// Graph has no internal synchronization. Confine it to one goroutine or
// guard it externally.
type Graph struct {
	// index maps vertex ID → arena slot.
	index map[string]int

	// words is the arena; "" marks a removed slot.
	words []string

	// adj[i] holds the arena indices adjacent to slot i.
	adj []map[int]struct{}

	// edgeCount counts undirected edges (each pair once).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
