package bfs

import (
	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
)

// Solve runs breadth-first search on m from canon.Start to canon.Goal.
// Returns Result{Found:false, Length:-1} when no path exists — an expected
// result, not an error. A non-nil error is returned only if opts.ctx is
// cancelled mid-search.
func Solve(m *maze.Maze, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if m.N < 2 {
		return Result{Found: false, Length: -1}, nil
	}

	parent := canon.NewStateMap[canon.State](1024)
	parent.Set(canon.Start, canon.Start)
	queue := make([]canon.State, 0, 1024)
	queue = append(queue, canon.Start)

	buf := make([]canon.State, 0, canon.MaxFanOut(m.N))
	found := false

	for qi := 0; qi < len(queue); qi++ {
		select {
		case <-o.ctx.Done():
			return Result{}, o.ctx.Err()
		default:
		}

		cur := queue[qi]
		if cur == canon.Goal {
			found = true
			break
		}

		buf = canon.Neighbors(m, cur, buf)
		for _, nb := range buf {
			if _, seen := parent.Get(nb); !seen {
				parent.Set(nb, cur)
				queue = append(queue, nb)
			}
		}
	}

	if !found {
		return Result{Found: false, Length: -1}, nil
	}

	path := reconstruct(parent, canon.Goal)
	res := Result{Found: true, Length: len(path) - 1}
	if !o.lengthOnly {
		res.Path = path
	}

	return res, nil
}

// reconstruct walks parent links from goal back to canon.Start, returning
// the path in Start->Goal order.
func reconstruct(parent *canon.StateMap[canon.State], goal canon.State) []canon.State {
	path := []canon.State{goal}
	cur := goal
	for cur != canon.Start {
		p, _ := parent.Get(cur)
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
