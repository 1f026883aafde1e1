// Package words holds the word-level pieces of the ladder: the one-edit
// adjacency predicate and the Source abstraction that turns a plain-text,
// one-word-per-line resource into normalized words.
//
// Adjacency
//
//	IsAdjacent(a, b)   // substitution, insertion or deletion of one rune
//	IsLadderStep(a, b) // IsAdjacent and a != b
//
// IsAdjacent keeps two long-standing quirks that callers rely on:
//
//   - identical equal-length words are reported adjacent;
//   - the one-longer case is a greedy backward alignment, not a full
//     edit-distance check, so e.g. "BBA" and "AB" are reported adjacent.
//
// Sources
//
//	File(path)  // os.Open + bufio.Scanner
//	Reader(r)   // any io.Reader
//	Slice(ws…)  // in-memory list
//
// Every Source trims, uppercases and drops empty lines; failures wrap ErrSource.
package words
