// Package dijkstra provides the single-source shortest-path search used to
// precompute word ladders.
//
// Overview:
//
//   - Search(g, source) runs Dijkstra with every edge costing 1 and returns
//     a Result holding distances, predecessors and visited flags indexed by
//     the graph's arena index.
//   - Result.PathTo(target) walks predecessor links back to the source and
//     returns the words source→target.
//   - SearchInto(res, source) reruns from another source, resetting and
//     reusing the arrays of a previous Result.
//
// Determinism:
//
//	The frontier pops by (distance, word). Together with strict relaxation
//	this fixes one shortest path per pair; it is not necessarily the
//	lexicographically smallest path.
//
// Conventions:
//
//   - Unreached vertices keep Dist == Infinity and Prev == NoPredecessor.
//   - PathTo(source) is empty: a single-vertex path is treated as no path.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptySource, ErrVertexNotFound.
//
// Thread safety:
//
//   - Search only reads g. Synchronize externally if g is mutated
//     concurrently.
package dijkstra
