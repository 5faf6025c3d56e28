package quiz_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazebeaver/mazefmt"
	"github.com/katalvlaran/mazebeaver/quiz"
)

// ExampleExhaustive finds the lexicographically first single-port maze
// whose start and goal are directly connected.
func ExampleExhaustive() {
	best, err := quiz.Exhaustive(context.Background(),
		quiz.WithNterm(2),
		quiz.WithPortBudget(0, 4),
		quiz.WithLengthCap(1),
		quiz.WithLogger(discard{}),
	)
	if err != nil || best == nil {
		fmt.Println("no maze found")
		return
	}

	fmt.Println(best.Length)
	fmt.Println(mazefmt.Print(best.Maze))
	// Output:
	// 1
	// normal: W0->W1; nx: (none); ny: (none)
}
