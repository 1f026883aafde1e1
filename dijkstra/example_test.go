// Package dijkstra_test provides examples demonstrating the unit-weight search.
// Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/smulvey2/Graph/core"
	"github.com/smulvey2/Graph/dijkstra"
)

// ExampleSearch builds the ladder COLD—CORD—CARD—WARD—WARM and walks it.
func ExampleSearch() {
	g := core.NewGraph()
	ladder := []string{"COLD", "CORD", "CARD", "WARD", "WARM"}
	for _, w := range ladder {
		_, _ = g.AddVertex(w)
	}
	for i := 1; i < len(ladder); i++ {
		_ = g.AddEdge(ladder[i-1], ladder[i])
	}

	res, err := dijkstra.Search(g, "COLD")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.PathTo("WARM"), res.Distance("WARM"))
	// Output: [COLD CORD CARD WARD WARM] 4
}
