// Package core provides the undirected, unweighted word Graph used to build
// word ladders.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: every edge is stored in both endpoint sets.
//   - Unweighted: an edge is just a pair.
//   - Irreflexive: AddEdge(v, v) → ErrLoopNotAllowed.
//   - Simple: a second AddEdge between the same pair → ErrEdgeExists.
//
// Storage:
//
//	words    []string           // flat arena, "" = removed slot
//	index    map[string]int     // ID → slot
//	adj      []map[int]struct{} // slot → adjacent slots
//
// Slots are assigned in insertion order and never reused; RemoveVertex leaves
// a tombstone so indices held elsewhere (registries, search state arrays)
// never shift.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) (string, error)    // O(1)
//	RemoveVertex(id string) (string, error) // O(deg(v))
//	HasVertex(id string) bool               // O(1)
//	Vertices() []string                     // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string) error          // O(1)
//	RemoveEdge(from, to string) error       // O(1)
//	IsAdjacent(from, to string) bool        // O(1)
//
//	// Neighborhood
//	Neighbors(id string) (iter.Seq[string], error)
//	NeighborIDs(id string) ([]string, error)
//	NeighborIndices(idx int) []int
//
// Misuse (missing vertex, duplicate add, self pair, absent edge) is reported
// through the sentinel errors in types.go and never panics.
//
// Concurrency:
//
//	Graph is not safe for concurrent use; callers confine it to one goroutine
//	or guard it externally.
package core
