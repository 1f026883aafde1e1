// Package graph is an in-memory word ladder: a dictionary turned into a
// graph where two words are linked when one edit turns one into the other,
// with every shortest ladder precomputed for constant-time lookup.
//
// 🚀 What is in here?
//
//	core/           undirected, unweighted Graph keyed by word
//	words/          one-edit predicate and dictionary sources
//	dijkstra/       unit-weight single-source search
//	bfs/            hop-limited neighborhoods and connected components
//	ladder/         Processor: population, path matrix, queries, metrics
//	cmd/wordladder  cobra CLI over a Processor
//
// ✨ Quick example:
//
//	p := ladder.New()
//	p.Populate("words.txt")          // CAT RAT HAT HEAT NEAT WHEAT
//	path, _ := p.ShortestPath("cat", "wheat")
//	// [CAT HAT HEAT WHEAT]
//
// Adjacency between words of equal length is a Hamming distance of at most
// one; words whose lengths differ by one are compared by a greedy backward
// alignment (see words.IsAdjacent for its exact behavior).
//
// Words are trimmed and uppercased on the way in, so queries are
// case-insensitive. A Processor is single-goroutine; wrap it if you need
// concurrent access.
package graph
