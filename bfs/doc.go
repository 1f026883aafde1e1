// Package bfs walks a core.Graph breadth-first, one level at a time.
//
// What
//
//   - BFS returns a Tree: discovery Order, Depth per word, Parent links,
//     and PathTo for the tree path back to the start.
//   - WithMaxDepth bounds the walk ("every word within k edits").
//   - WithOnLevel hands each finished level to the caller.
//   - WithContext lets a caller abandon a long walk.
//   - Components(ctx, g) partitions the graph into ladder islands.
//
// Determinism
//
//	core.NeighborIDs returns words sorted ascending and each level is
//	expanded in discovery order, so the walk is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E), plus O(deg log deg) per vertex for neighbor sorting
//   - Memory: O(V)
//
// Usage
//
//	tree, err := bfs.BFS(g, "COLD",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnLevel(func(depth int, words []string) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil       nil graph.
//   - ErrStartNotFound  start word absent.
//   - ErrNegativeDepth  WithMaxDepth(d) with d < 0.
//   - ctx.Err()         context done before a level.
//   - Wrapped errors returned by the WithOnLevel hook.
package bfs
