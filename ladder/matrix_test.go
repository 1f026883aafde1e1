package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathMatrix_SetPairStoresReverse(t *testing.T) {
	m := NewPathMatrix(3)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []string{}, m.At(2, 1))

	m.SetPair(0, 2, []string{"A", "B", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, m.At(0, 2))
	assert.Equal(t, []string{"C", "B", "A"}, m.At(2, 0))

	m.SetPair(1, 1, []string{})
	assert.Empty(t, m.At(1, 1))
}

func TestPathMatrix_Panics(t *testing.T) {
	assert.Panics(t, func() { NewPathMatrix(-1) })
	m := NewPathMatrix(1)
	assert.Panics(t, func() { m.At(1, 0) })
	assert.Panics(t, func() { m.SetPair(0, -1, nil) })
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	i, ok := r.Append("CAT")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = r.Append("HAT")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = r.Append("CAT")
	assert.False(t, ok)
	assert.Equal(t, 0, i)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "HAT", r.At(1))
	_, ok = r.Index("RAT")
	assert.False(t, ok)

	ws := r.Words()
	ws[0] = "XXX"
	assert.Equal(t, []string{"CAT", "HAT"}, r.Words())
}

func TestPrecompute_SizeMismatchPanics(t *testing.T) {
	p := New()
	p.AddWord("CAT")
	p.registry.Append("ORPHAN")
	assert.Panics(t, p.Precompute)
}

// TestDeferredLoad_MatrixUntouchedUntilPrecompute checks that batched
// inserts never reallocate the matrix; only Precompute sizes it.
func TestDeferredLoad_MatrixUntouchedUntilPrecompute(t *testing.T) {
	p := New(WithDeferredPrecompute())
	before := p.paths
	for _, w := range []string{"CAT", "HAT", "HEAT", "WHEAT", "KIT"} {
		require.True(t, p.AddWord(w))
		assert.Same(t, before, p.paths, "matrix reallocated while adding %s", w)
	}
	assert.Equal(t, 0, p.paths.Size())

	p.Precompute()
	assert.Equal(t, 5, p.paths.Size())
	assert.Equal(t, []string{"CAT", "HAT", "HEAT", "WHEAT"}, p.paths.At(0, 3))

	// A second batch reuses the same rule: the 5×5 matrix stays until the
	// next rebuild.
	sized := p.paths
	require.True(t, p.AddWord("NEAT"))
	assert.Same(t, sized, p.paths)
	p.Precompute()
	assert.Equal(t, 6, p.paths.Size())
}

// TestEagerLoad_OneMatrixPerInsert checks eager mode builds exactly one
// fresh matrix per word, at the new size.
func TestEagerLoad_OneMatrixPerInsert(t *testing.T) {
	p := New()
	for i, w := range []string{"CAT", "HAT", "RAT"} {
		prev := p.paths
		require.True(t, p.AddWord(w))
		assert.NotSame(t, prev, p.paths)
		assert.Equal(t, i+1, p.paths.Size())
	}
}
