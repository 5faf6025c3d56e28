package quiz

import (
	"context"

	"github.com/katalvlaran/mazebeaver/normalize"
)

// PMax is the number of priority-stack buckets in the top-down search: the
// fully-connected root waits in stacks[1], and each child of a maze whose
// shortest path is L waits in stacks[min(L, PMax-1)].
const PMax = 1000

// TopDown starts from the fully-connected candidate maze and walks the
// lattice of one-port deletions. Deleting a port can never shorten the
// shortest path, so the walk climbs toward longer paths; a bucketed stack
// array explores children of long-path mazes first, and a seen set of
// normalized port vectors collapses symmetric twins. Returns the best
// record found; nil when not even the fully-connected maze has a path.
// Cancellation via ctx returns the best so far.
func TopDown(ctx context.Context, opts ...Option) (*Best, error) {
	s, err := newSearcher(opts)
	if err != nil {
		return nil, err
	}

	stacks := make([][][]byte, PMax)
	seen := newByteSet(1 << 12)

	// Fully-connected start: every candidate port active.
	for _, flat := range s.cand {
		s.m.SetFlat(flat, true)
	}
	root := normalize.Normalize(s.m).Flat()
	seen.Insert(root)
	stacks[1] = append(stacks[1], root)

	var popped uint64
	for !cancelled(ctx) {
		h := highestNonEmpty(stacks)
		if h < 0 {
			break
		}
		top := len(stacks[h]) - 1
		d := stacks[h][top]
		stacks[h] = stacks[h][:top]

		if err := s.m.Load(d); err != nil {
			return s.best, err
		}

		popped++
		if popped%progressEvery == 0 {
			best := -1
			if s.best != nil {
				best = s.best.Length
			}
			s.o.logger.Logf("quiz: topdown: popped=%d seen=%d best=%d", popped, seen.Len(), best)
		}

		l := s.solveLen(ctx, h)
		if l < 0 {
			continue
		}
		if s.best == nil || l > s.best.Length {
			s.recordBest(l)
			if s.capReached() {
				break
			}
		}

		// Children: every single-port deletion, normalized, deduped,
		// and abstract-reachability filtered before being enqueued.
		bucket := l
		if bucket >= PMax {
			bucket = PMax - 1
		}
		for i, on := range d {
			if on == 0 {
				continue
			}
			s.m.SetFlat(i, false)
			child := normalize.Normalize(s.m)
			s.m.SetFlat(i, true)

			key := child.Flat()
			if seen.Contains(key) || !normalize.AbstractReachable(child) {
				continue
			}
			seen.Insert(key)
			stacks[bucket] = append(stacks[bucket], key)
		}
	}

	return s.best, nil
}

// highestNonEmpty returns the largest bucket index with a waiting entry,
// or -1 when every stack is empty.
func highestNonEmpty(stacks [][][]byte) int {
	for h := len(stacks) - 1; h >= 0; h-- {
		if len(stacks[h]) > 0 {
			return h
		}
	}
	return -1
}
