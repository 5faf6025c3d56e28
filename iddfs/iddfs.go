package iddfs

import (
	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
)

// engine holds one solve's state across depth-limit iterations. A dedicated
// struct (instead of closures threading six parameters) keeps the recursion
// signature small and the hot-path state predictable.
type engine struct {
	m     *maze.Maze
	tt    *canon.StateMap[int] // state -> shallowest depth this iteration
	path  []canon.State        // current recursion stack, path[0] == Start
	nbufs [][]canon.State      // per-depth neighbor buffers, reused
}

// dfs runs depth-limited DFS from s at the given depth. Returns true the
// moment Goal is reached; e.path then holds the full Start->Goal path.
func (e *engine) dfs(s canon.State, depth, limit int) bool {
	if s == canon.Goal {
		return true
	}
	if depth == limit {
		return false
	}

	// Each recursion level owns its buffer: a shared one would be
	// clobbered by the recursive Neighbors call mid-iteration.
	for len(e.nbufs) <= depth {
		e.nbufs = append(e.nbufs, make([]canon.State, 0, canon.MaxFanOut(e.m.N)))
	}
	nbs := canon.Neighbors(e.m, s, e.nbufs[depth])
	e.nbufs[depth] = nbs

	for _, nb := range nbs {
		// Admission rule: unseen, or previously reached only deeper.
		if rec, ok := e.tt.Get(nb); ok && rec <= depth+1 {
			continue
		}
		e.tt.Set(nb, depth+1)
		e.path = append(e.path, nb)
		if e.dfs(nb, depth+1, limit) {
			return true
		}
		e.path = e.path[:len(e.path)-1]
	}

	return false
}

// Solve runs iterative-deepening DFS on m from canon.Start to canon.Goal.
// Returns Result{Found:false, Length:-1} when no path exists within the
// depth ceiling — an expected result, not an error. A non-nil error is
// returned only if opts' context is cancelled between iterations.
func Solve(m *maze.Maze, opts ...Option) (Result, error) {
	return SolveFrom(m, 0, opts...)
}

// SolveFrom is Solve with the outer loop warm-started at lowerBound.
// Intended for top-down port-deletion search: removing a port from a maze
// whose shortest path was L cannot decrease the shortest path, so depth
// limits below L are provably empty. A lowerBound <= 0 is identical to
// Solve.
func SolveFrom(m *maze.Maze, lowerBound int, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	noPath := Result{Found: false, Length: -1}
	if m.N < 2 {
		return noPath, nil
	}
	if lowerBound < 0 {
		lowerBound = 0
	}

	e := &engine{
		m:    m,
		tt:   canon.NewStateMap[int](1024),
		path: make([]canon.State, 0, 64),
	}

	prevCount := -1
	for limit := lowerBound; limit <= o.ceiling; limit++ {
		select {
		case <-o.ctx.Done():
			return Result{}, o.ctx.Err()
		default:
		}

		// Fresh table per depth limit: a state's shallowest depth at
		// L=10 says nothing about L=11. Re-seed Start at depth 0.
		e.tt.Reset()
		e.tt.Set(canon.Start, 0)
		e.path = append(e.path[:0], canon.Start)

		if e.dfs(canon.Start, 0, limit) {
			res := Result{Found: true, Length: len(e.path) - 1}
			if !o.lengthOnly {
				res.Path = append([]canon.State(nil), e.path...)
			}
			return res, nil
		}

		// If the table stopped growing, the whole reachable space fits
		// under the current limit and Goal is simply not in it.
		if e.tt.Len() == prevCount {
			return noPath, nil
		}
		prevCount = e.tt.Len()
	}

	return noPath, nil
}
