package quiz

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/mazebeaver/normalize"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0, so
// default runs are reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. Seed 0 maps to
// defaultSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Random samples candidate port sets of random size in the configured port
// budget until ctx is cancelled or the length cap is reached, and returns
// the best record found. No normalization prune is applied: random samples
// do not systematically duplicate canonical twins the way exhaustive
// enumeration does.
func Random(ctx context.Context, opts ...Option) (*Best, error) {
	s, err := newSearcher(opts)
	if err != nil {
		return nil, err
	}

	rng := rngFromSeed(s.o.seed)

	// The scratch array stays a permutation of the candidate list across
	// iterations; a partial Fisher-Yates to depth k over any permutation
	// still selects a uniform k-subset.
	scratch := make([]int, len(s.cand))
	copy(scratch, s.cand)

	var sampled, solved uint64
	for !cancelled(ctx) {
		k := s.o.kMin
		if s.o.kMax > s.o.kMin {
			k += rng.Intn(s.o.kMax - s.o.kMin + 1)
		}

		for i := 0; i < k; i++ {
			j := i + rng.Intn(len(scratch)-i)
			scratch[i], scratch[j] = scratch[j], scratch[i]
		}

		s.m.Clear()
		for _, flat := range scratch[:k] {
			s.m.SetFlat(flat, true)
		}

		sampled++
		if sampled%progressEvery == 0 {
			best := -1
			if s.best != nil {
				best = s.best.Length
			}
			s.o.logger.Logf("quiz: random: sampled=%d solved=%d best=%d", sampled, solved, best)
		}

		if !normalize.AbstractReachable(s.m) {
			continue
		}
		solved++
		if l := s.solveLen(ctx, 0); l >= 0 && (s.best == nil || l > s.best.Length) {
			s.recordBest(l)
			if s.capReached() {
				break
			}
		}
	}

	return s.best, nil
}
