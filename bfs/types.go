package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start word is not in the graph.
	ErrStartNotFound = errors.New("bfs: start word not in graph")

	// ErrNegativeDepth is returned when WithMaxDepth gets d < 0.
	ErrNegativeDepth = errors.New("bfs: negative depth limit")
)

// Option tunes a walk. A bad option is remembered and reported by BFS.
type Option func(*walkOptions)

type walkOptions struct {
	ctx      context.Context
	maxDepth int // 0 = unlimited
	onLevel  func(depth int, words []string) error
	err      error
}

func defaultOptions() walkOptions {
	return walkOptions{
		ctx:     context.Background(),
		onLevel: func(int, []string) error { return nil },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done. The
// context is checked before every level.
func WithContext(ctx context.Context) Option {
	return func(o *walkOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth stops the walk after depth d. Zero means no limit; a
// negative d makes BFS fail with ErrNegativeDepth.
func WithMaxDepth(d int) Option {
	return func(o *walkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %d", ErrNegativeDepth, d)
			return
		}
		o.maxDepth = d
	}
}

// WithOnLevel calls fn once per depth, start word first at depth 0, with the
// words first reached at that depth in discovery order. fn owns the slice.
// A non-nil error ends the walk and is returned wrapped.
func WithOnLevel(fn func(depth int, words []string) error) Option {
	return func(o *walkOptions) {
		if fn != nil {
			o.onLevel = fn
		}
	}
}

// Tree is the BFS tree rooted at the start word.
type Tree struct {
	// Order lists reached words in discovery order, start first.
	Order []string
	// Depth maps each reached word to its step count from the start.
	Depth map[string]int
	// Parent maps each reached word except the start to its predecessor.
	Parent map[string]string
}

func newTree(capacity int) *Tree {
	return &Tree{
		Order:  make([]string, 0, capacity),
		Depth:  make(map[string]int, capacity),
		Parent: make(map[string]string, capacity),
	}
}

func (t *Tree) reach(word string, depth int, parent string) {
	t.Order = append(t.Order, word)
	t.Depth[word] = depth
	if depth > 0 {
		t.Parent[word] = parent
	}
}

// PathTo returns the tree path from the start word to word, both included,
// or nil if word was not reached.
func (t *Tree) PathTo(word string) []string {
	d, ok := t.Depth[word]
	if !ok {
		return nil
	}
	path := make([]string, d+1)
	for cur := word; d >= 0; d-- {
		path[d] = cur
		cur = t.Parent[cur]
	}

	return path
}
