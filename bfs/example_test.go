package bfs_test

import (
	"context"
	"fmt"

	"github.com/smulvey2/Graph/bfs"
)

// ExampleBFS_neighborhood lists every word within two steps of COLD.
func ExampleBFS_neighborhood() {
	g := graphOf(
		[2]string{"COLD", "CORD"},
		[2]string{"COLD", "BOLD"},
		[2]string{"CORD", "CARD"},
		[2]string{"CARD", "WARD"},
	)

	tree, err := bfs.BFS(g, "COLD", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range tree.Order {
		fmt.Println(tree.Depth[w], w)
	}
	fmt.Println(tree.PathTo("CARD"))
	// Output:
	// 0 COLD
	// 1 BOLD
	// 1 CORD
	// 2 CARD
	// [COLD CORD CARD]
}

// ExampleComponents shows ladder islands.
func ExampleComponents() {
	g := graphOf([2]string{"CAT", "COT"}, [2]string{"DOG", "DIG"})
	_, _ = g.AddVertex("ZEBRA")

	comps, _ := bfs.Components(context.Background(), g)
	fmt.Println(comps)
	// Output: [[CAT COT] [DIG DOG] [ZEBRA]]
}
