package ladder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/smulvey2/Graph/bfs"
	"github.com/smulvey2/Graph/core"
	"github.com/smulvey2/Graph/dijkstra"
	"github.com/smulvey2/Graph/words"
)

const (
	// PopulateFailed is returned by Populate when the word source cannot be read.
	PopulateFailed = -1

	// NoDistance is returned by ShortestDistance when there is no distance to report.
	NoDistance = -1
)

// Sentinel errors returned by Processor queries.
var (
	// ErrEmptyWord indicates a query word that is empty after trimming.
	ErrEmptyWord = errors.New("ladder: word is empty")

	// ErrSameWord indicates both query words normalize to the same word.
	ErrSameWord = errors.New("ladder: words are identical")

	// ErrWordNotFound indicates a query word that is not in the graph.
	ErrWordNotFound = errors.New("ladder: word not found")

	// ErrNoPath indicates the two words are not connected.
	ErrNoPath = errors.New("ladder: no path between words")

	// ErrStale indicates the graph changed after the last precomputation.
	ErrStale = errors.New("ladder: paths not precomputed for current graph")
)

// Processor owns the word graph, its vertex registry and the precomputed
// path matrix, and answers shortest-path queries.
//
// A Processor is not safe for concurrent use.
type Processor struct {
	graph    *core.Graph
	registry *Registry
	paths    *PathMatrix

	// version counts structural changes; computed is the version the
	// current matrix was built for.
	version  uint64
	computed uint64

	deferred bool
	log      *slog.Logger
	metrics  *Metrics
}

// Stats is a snapshot of Processor sizes.
type Stats struct {
	Vertices   int
	Edges      int
	Generation uint64
	Current    bool
}

// New returns an empty Processor.
func New(opts ...Option) *Processor {
	p := &Processor{
		graph:    core.NewGraph(),
		registry: NewRegistry(),
		paths:    NewPathMatrix(0),
		log:      discardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = NewMetrics(nil)
	}

	return p
}

// Populate loads the word file at path and returns the number of words
// added, or PopulateFailed if the file cannot be read. Each call extends
// the existing graph.
func (p *Processor) Populate(path string) int {
	n, err := p.PopulateFrom(words.File(path))
	if err != nil {
		return PopulateFailed
	}

	return n
}

// PopulateFrom materializes src, then adds every new word. If src fails
// the graph is left untouched and PopulateFailed is returned with the
// source error.
func (p *Processor) PopulateFrom(src words.Source) (int, error) {
	ws, err := src.Words()
	if err != nil {
		p.metrics.LoadFailures.Inc()
		p.log.Error("word source failed", slog.Any("error", err))
		return PopulateFailed, fmt.Errorf("ladder: populate: %w", err)
	}

	start := time.Now()
	added := 0
	for _, w := range ws {
		if p.AddWord(w) {
			added++
		}
	}
	if p.deferred && p.computed != p.version {
		p.Precompute()
	}
	p.log.Info("graph populated",
		slog.Int("read", len(ws)),
		slog.Int("added", added),
		slog.Int("vertices", p.graph.VertexCount()),
		slog.Int("edges", p.graph.EdgeCount()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return added, nil
}

// AddWord inserts one word: it registers the vertex, connects it to every
// registered word one edit away and, unless precompute is deferred,
// rebuilds all paths at the new size. It reports whether the word was new.
// In deferred mode the matrix keeps its old size until Precompute, and
// queries report ErrStale meanwhile.
//
// Rebuilding after every insertion costs O(V · (V+E) log V) per word, so a
// full load is super-linear in V; WithDeferredPrecompute batches it.
func (p *Processor) AddWord(w string) bool {
	w = words.Normalize(w)
	if w == "" {
		return false
	}
	if p.graph.HasVertex(w) {
		p.metrics.DuplicatesSkipped.Inc()
		p.log.Debug("duplicate word skipped", slog.String("word", w))
		return false
	}

	if _, err := p.graph.AddVertex(w); err != nil {
		panic(fmt.Sprintf("ladder: add vertex %q: %v", w, err))
	}
	if _, ok := p.registry.Append(w); !ok {
		panic(fmt.Sprintf("ladder: %q registered but not in graph", w))
	}
	for i := 0; i < p.registry.Len(); i++ {
		other := p.registry.At(i)
		if other == w || !words.IsLadderStep(w, other) {
			continue
		}
		if err := p.graph.AddEdge(w, other); err != nil {
			panic(fmt.Sprintf("ladder: add edge %q-%q: %v", w, other, err))
		}
	}
	p.version++
	p.metrics.WordsAdded.Inc()

	if !p.deferred {
		p.Precompute()
	}

	return true
}

// Precompute rebuilds the full path matrix at V×V: one search per
// registered word, filling cells (i, j) and (j, i) for every j ≥ i. The new
// matrix replaces the old one only once complete.
func (p *Processor) Precompute() {
	start := time.Now()
	n := p.registry.Len()
	if n != p.graph.VertexCount() || n < p.paths.Size() {
		panic(fmt.Sprintf("ladder: size mismatch: registry=%d graph=%d matrix=%d",
			n, p.graph.VertexCount(), p.paths.Size()))
	}

	m := NewPathMatrix(n)
	var res *dijkstra.Result
	for i := 0; i < n; i++ {
		src := p.registry.At(i)
		if res == nil {
			var err error
			if res, err = dijkstra.Search(p.graph, src); err != nil {
				panic(fmt.Sprintf("ladder: search from %q: %v", src, err))
			}
		} else {
			idx, err := p.graph.Index(src)
			if err != nil {
				panic(fmt.Sprintf("ladder: registered word %q missing from graph", src))
			}
			dijkstra.SearchInto(res, idx)
		}
		for j := i; j < n; j++ {
			m.SetPair(i, j, res.PathTo(p.registry.At(j)))
		}
	}

	p.paths = m
	p.computed = p.version
	elapsed := time.Since(start)
	p.metrics.Precomputations.Inc()
	p.metrics.PrecomputeSeconds.Observe(elapsed.Seconds())
	p.log.Debug("paths precomputed",
		slog.Int("vertices", n),
		slog.Uint64("generation", p.computed),
		slog.Duration("elapsed", elapsed),
	)
}

// ShortestPath returns the words on a shortest ladder from w1 to w2, both
// inclusive, w1 first. Inputs are trimmed and uppercased.
//
// Contract:
//   - fewer than two words loaded: empty path, nil error;
//   - either word empty after trimming: nil, ErrEmptyWord;
//   - both words equal: nil, ErrSameWord;
//   - either word unknown: nil, ErrWordNotFound;
//   - graph changed since the last Precompute: nil, ErrStale;
//   - otherwise the precomputed path, empty if the words are not connected.
func (p *Processor) ShortestPath(w1, w2 string) ([]string, error) {
	if p.registry.Len() < 2 {
		return []string{}, nil
	}
	w1, w2 = words.Normalize(w1), words.Normalize(w2)
	if w1 == "" || w2 == "" {
		return nil, ErrEmptyWord
	}
	if w1 == w2 {
		return nil, ErrSameWord
	}
	i, ok := p.registry.Index(w1)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, w1)
	}
	j, ok := p.registry.Index(w2)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, w2)
	}
	if p.computed != p.version {
		return nil, ErrStale
	}

	cell := p.paths.At(i, j)
	out := make([]string, len(cell))
	copy(out, cell)

	return out, nil
}

// ShortestDistance returns the number of steps on the shortest ladder from
// w1 to w2. On any lookup failure it returns NoDistance and the error from
// ShortestPath; when no path exists it returns NoDistance and ErrNoPath.
func (p *Processor) ShortestDistance(w1, w2 string) (int, error) {
	path, err := p.ShortestPath(w1, w2)
	if err != nil {
		return NoDistance, err
	}
	if len(path) == 0 {
		return NoDistance, ErrNoPath
	}

	return len(path) - 1, nil
}

// Neighborhood returns the words within depth steps of word, excluding the
// word itself, nearest first and alphabetical within a distance.
// depth 0 means unlimited. The walk stops early if ctx is done.
func (p *Processor) Neighborhood(ctx context.Context, word string, depth int) ([]string, error) {
	word = words.Normalize(word)
	if word == "" {
		return nil, ErrEmptyWord
	}
	if !p.graph.HasVertex(word) {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}

	out := []string{}
	collect := func(d int, ring []string) error {
		if d > 0 {
			sort.Strings(ring)
			out = append(out, ring...)
		}
		return nil
	}
	_, err := bfs.BFS(p.graph, word,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(depth),
		bfs.WithOnLevel(collect),
	)
	if err != nil {
		return nil, fmt.Errorf("ladder: neighborhood of %q: %w", word, err)
	}

	return out, nil
}

// Components returns the connected islands of the word graph; see
// bfs.Components for ordering. It fails only when ctx is done.
func (p *Processor) Components(ctx context.Context) ([][]string, error) {
	comps, err := bfs.Components(ctx, p.graph)
	if err != nil {
		return nil, fmt.Errorf("ladder: components: %w", err)
	}

	return comps, nil
}

// Words returns all words in insertion order.
func (p *Processor) Words() []string { return p.registry.Words() }

// Graph exposes the underlying graph for read-only inspection.
// Mutating it desynchronizes the registry and matrix.
func (p *Processor) Graph() *core.Graph { return p.graph }

// Stats reports sizes and whether the matrix matches the graph.
func (p *Processor) Stats() Stats {
	return Stats{
		Vertices:   p.graph.VertexCount(),
		Edges:      p.graph.EdgeCount(),
		Generation: p.computed,
		Current:    p.computed == p.version,
	}
}
