package mazefmt_test

import (
	"fmt"

	"github.com/katalvlaran/mazebeaver/bfs"
	"github.com/katalvlaran/mazebeaver/mazefmt"
)

// ExampleParse shows the round trip from text to a solved path and back.
func ExampleParse() {
	m, err := mazefmt.Parse("normal: W0->N0, N0->W1; nx: (none); ny: (none)", 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := bfs.Solve(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Length)
	fmt.Println(mazefmt.PrintPath(res.Path))
	// Output:
	// 2
	// (0,1,E0) -> (1,1,N0) -> (0,1,E1)
}

// ExamplePrint shows the deterministic emission order.
func ExamplePrint() {
	m, _ := mazefmt.ParseAuto("nx: E0->E1; normal: W0->S1, E0->N1")
	fmt.Println(mazefmt.Print(m))
	// Output:
	// normal: E0->N1, W0->S1; nx: E0->E1; ny: (none)
}
