package ladder

// Registry is the append-only, insertion-ordered list of words that keys
// the path matrix. A word's position never changes once assigned.
type Registry struct {
	words []string
	pos   map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pos: make(map[string]int)}
}

// Append registers word at the next position and returns it. A word that
// is already registered keeps its position and ok is false.
func (r *Registry) Append(word string) (idx int, ok bool) {
	if i, exists := r.pos[word]; exists {
		return i, false
	}
	idx = len(r.words)
	r.words = append(r.words, word)
	r.pos[word] = idx

	return idx, true
}

// Index returns the position of word.
func (r *Registry) Index(word string) (int, bool) {
	i, ok := r.pos[word]
	return i, ok
}

// At returns the word at position i. It panics if i is out of range.
func (r *Registry) At(i int) string { return r.words[i] }

// Len returns the number of registered words.
func (r *Registry) Len() int { return len(r.words) }

// Words returns a copy of the registered words in insertion order.
func (r *Registry) Words() []string {
	out := make([]string, len(r.words))
	copy(out, r.words)

	return out
}
