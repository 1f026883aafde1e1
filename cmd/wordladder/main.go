// Command wordladder answers word-ladder queries over a dictionary file.
//
// Usage:
//
//	wordladder [flags] <command> [args]
//
// Commands:
//
//	path W1 W2       shortest ladder from W1 to W2
//	distance W1 W2   number of steps on that ladder
//	neighbors W      words within --depth steps of W
//	islands          connected groups of words
//	stats            graph sizes
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
