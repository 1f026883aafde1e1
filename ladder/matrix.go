package ladder

import "fmt"

// PathMatrix is a square table of word paths indexed by registry position.
// Cell (i, j) holds the path from word i to word j, both inclusive, or an
// empty path when there is none or i == j.
//
// Storage is a flat row-major slice of n*n cells.
type PathMatrix struct {
	n     int
	cells [][]string
}

// NewPathMatrix allocates an n×n matrix of empty paths.
func NewPathMatrix(n int) *PathMatrix {
	if n < 0 {
		panic(fmt.Sprintf("ladder: negative matrix size %d", n))
	}
	m := &PathMatrix{n: n, cells: make([][]string, n*n)}
	for i := range m.cells {
		m.cells[i] = []string{}
	}

	return m
}

// Size returns the row (and column) count.
func (m *PathMatrix) Size() int { return m.n }

func (m *PathMatrix) offset(i, j int) int {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		panic(fmt.Sprintf("ladder: matrix index (%d,%d) out of range for size %d", i, j, m.n))
	}

	return i*m.n + j
}

// At returns cell (i, j). The returned slice is shared; callers copy
// before handing it out.
func (m *PathMatrix) At(i, j int) []string { return m.cells[m.offset(i, j)] }

// SetPair stores path in (i, j) and its reverse in (j, i).
func (m *PathMatrix) SetPair(i, j int, path []string) {
	m.cells[m.offset(i, j)] = path
	if i == j {
		return
	}
	rev := make([]string, len(path))
	for k, w := range path {
		rev[len(path)-1-k] = w
	}
	m.cells[m.offset(j, i)] = rev
}
