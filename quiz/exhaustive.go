package quiz

import (
	"context"

	"github.com/katalvlaran/mazebeaver/normalize"
)

// progressEvery is the combination count between progress log lines.
const progressEvery = 10000

// Exhaustive enumerates every k-subset of the candidate ports for each
// k in the configured port budget, prunes non-canonical and abstractly
// unreachable mazes, solves the rest, and returns the best record found.
// A nil *Best means no enumerated maze had a valid path. Cancellation via
// ctx returns the best so far.
func Exhaustive(ctx context.Context, opts ...Option) (*Best, error) {
	s, err := newSearcher(opts)
	if err != nil {
		return nil, err
	}

	var evaluated, solved, prunedNorm, prunedAbs uint64

	logProgress := func() {
		best := -1
		if s.best != nil {
			best = s.best.Length
		}
		s.o.logger.Logf(
			"quiz: exhaustive: evaluated=%d solved=%d pruned_norm=%d pruned_abstract=%d best=%d",
			evaluated, solved, prunedNorm, prunedAbs, best)
	}

	for k := s.o.kMin; k <= s.o.kMax; k++ {
		done, err := s.exhaustK(ctx, k, func() {
			evaluated++
			if evaluated%progressEvery == 0 {
				logProgress()
			}
		}, &solved, &prunedNorm, &prunedAbs)
		if err != nil {
			return s.best, err
		}
		if done {
			break
		}
	}

	logProgress()
	return s.best, nil
}

// exhaustK walks all k-combinations of s.cand in lexicographic order.
// Returns done=true when the search should stop (cap reached or
// cancellation).
func (s *searcher) exhaustK(ctx context.Context, k int, tick func(), solved, prunedNorm, prunedAbs *uint64) (bool, error) {
	c := len(s.cand)
	if k > c {
		return false, nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if cancelled(ctx) {
			return true, nil
		}
		tick()

		s.m.Clear()
		for _, pos := range idx {
			s.m.SetFlat(s.cand[pos], true)
		}

		switch {
		case !normalize.IsNormalized(s.m):
			// The canonical twin is enumerated in its own slot.
			*prunedNorm++
		case !normalize.AbstractReachable(s.m):
			*prunedAbs++
		default:
			*solved++
			if l := s.solveLen(ctx, 0); l >= 0 && (s.best == nil || l > s.best.Length) {
				s.recordBest(l)
				if s.capReached() {
					return true, nil
				}
			}
		}

		// Standard next-combination: bump the rightmost bumpable
		// position, reset the suffix.
		i := k - 1
		for i >= 0 && idx[i] == c-k+i {
			i--
		}
		if i < 0 {
			return false, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
