package bfs

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/smulvey2/Graph/core"
)

// BFS walks g level by level from start and returns the BFS tree.
//
// Neighbors are expanded in the sorted order core.NeighborIDs returns, so
// Order and Parent are reproducible. On any error the partial tree is
// discarded.
func BFS(g *core.Graph, start string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	t := newTree(g.VertexCount())
	t.reach(start, 0, "")
	level := []string{start}
	for depth := 0; len(level) > 0; depth++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		if err := o.onLevel(depth, slices.Clone(level)); err != nil {
			return nil, fmt.Errorf("bfs: level %d: %w", depth, err)
		}
		if o.maxDepth > 0 && depth == o.maxDepth {
			break
		}
		next, err := expand(g, t, level, depth+1)
		if err != nil {
			return nil, err
		}
		level = next
	}

	return t, nil
}

// expand reaches every unseen neighbor of level at depth and returns them.
func expand(g *core.Graph, t *Tree, level []string, depth int) ([]string, error) {
	var next []string
	for _, w := range level {
		nbrs, err := g.NeighborIDs(w)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", w, err)
		}
		for _, n := range nbrs {
			if _, seen := t.Depth[n]; seen {
				continue
			}
			t.reach(n, depth, w)
			next = append(next, n)
		}
	}

	return next, nil
}

// Components splits g into its connected islands. Each island is sorted
// and islands are ordered by their smallest word.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	out := [][]string{}
	// Vertices() is sorted, so each island is entered through its smallest word.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		t, err := BFS(g, v, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		island := slices.Clone(t.Order)
		for _, w := range island {
			seen[w] = true
		}
		sort.Strings(island)
		out = append(out, island)
	}

	return out, nil
}
