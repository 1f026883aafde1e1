package ladder_test

import (
	"fmt"

	"github.com/smulvey2/Graph/ladder"
	"github.com/smulvey2/Graph/words"
)

// ExampleProcessor loads a tiny dictionary and queries one ladder.
func ExampleProcessor() {
	p := ladder.New()
	n, err := p.PopulateFrom(words.Slice("cat", "hat", "heat", "wheat", "kit"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("added:", n)

	path, _ := p.ShortestPath("cat", "wheat")
	fmt.Println(path)

	d, _ := p.ShortestDistance("wheat", "cat")
	fmt.Println("steps:", d)

	_, err = p.ShortestDistance("cat", "kit")
	fmt.Println(err)

	// Output:
	// added: 5
	// [CAT HAT HEAT WHEAT]
	// steps: 3
	// ladder: no path between words
}
