package quiz

import (
	"context"

	"github.com/katalvlaran/mazebeaver/bfs"
	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/iddfs"
	"github.com/katalvlaran/mazebeaver/maze"
	"github.com/katalvlaran/mazebeaver/normalize"
)

// Candidates returns every flat port index that is not a normal-block
// self-loop, in ascending order. Self-loop ports can never contribute to a
// path, so all three strategies draw from this list.
func Candidates(n int) []int {
	total := maze.NormalLen(n) + 2*maze.EdgeLen(n)
	out := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !normalize.IsSelfLoop(n, i) {
			out = append(out, i)
		}
	}
	return out
}

// searcher is the state shared by the three strategies: the working maze,
// the resolved options, and the running best record.
type searcher struct {
	o    options
	m    *maze.Maze
	cand []int
	best *Best
}

func newSearcher(opts []Option) (*searcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := maze.New(o.nterm)
	if err != nil {
		return nil, err
	}

	s := &searcher{o: o, m: m, cand: Candidates(o.nterm)}
	if o.kMax < 0 || o.kMax > len(s.cand) {
		s.o.kMax = len(s.cand)
	}
	if s.o.kMin < 0 {
		s.o.kMin = 0
	}
	if s.o.kMin > s.o.kMax {
		s.o.kMin = s.o.kMax
	}

	return s, nil
}

// solveLen scores the working maze: shortest-path length, or -1 for no
// path. lower warm-starts the IDDFS outer loop; BFS ignores it. The search
// context is threaded through so cancellation can abort a solve stuck on
// an infinite goal-free reachable set; an aborted solve scores -1 and the
// caller's loop observes the cancellation at its next poll.
func (s *searcher) solveLen(ctx context.Context, lower int) int {
	if s.o.useBFS {
		res, err := bfs.Solve(s.m, bfs.WithLengthOnly(), bfs.WithContext(ctx))
		if err != nil {
			return -1
		}
		return res.Length
	}
	res, err := iddfs.SolveFrom(s.m, lower, iddfs.WithLengthOnly(), iddfs.WithContext(ctx), s.ceilingOpt())
	if err != nil {
		return -1
	}
	return res.Length
}

func (s *searcher) ceilingOpt() iddfs.Option {
	if s.o.ceiling > 0 {
		return iddfs.WithDepthCeiling(s.o.ceiling)
	}
	return iddfs.WithDepthCeiling(iddfs.DefaultDepthCeiling)
}

// recordBest clones the working maze into the best slot and recomputes the
// full path, then announces it on the side channel.
func (s *searcher) recordBest(length int) {
	var path []canon.State
	if s.o.useBFS {
		res, _ := bfs.Solve(s.m)
		path = res.Path
	} else {
		res, _ := iddfs.SolveFrom(s.m, length, s.ceilingOpt())
		path = res.Path
	}
	s.best = &Best{Maze: s.m.Clone(), Length: length, Path: path}
	s.o.logger.Logf("quiz: new best: length=%d", length)
}

// capReached reports whether the length cap (if any) has been met.
func (s *searcher) capReached() bool {
	return s.o.lengthCap > 0 && s.best != nil && s.best.Length >= s.o.lengthCap
}

// cancelled polls ctx between iterations; cancellation is cooperative and
// returns the best found so far, never an error.
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
