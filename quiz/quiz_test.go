package quiz_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/mazebeaver/maze"
	"github.com/katalvlaran/mazebeaver/normalize"
	"github.com/katalvlaran/mazebeaver/quiz"
	"github.com/stretchr/testify/require"
)

// discard silences search logging in tests.
type discard struct{}

func (discard) Logf(string, ...any) {}

func TestCandidates_ExcludesSelfLoops(t *testing.T) {
	n := 2
	cand := quiz.Candidates(n)
	total := maze.NormalLen(n) + 2*maze.EdgeLen(n)

	// 4N normal self-loops are excluded, nothing else.
	require.Len(t, cand, total-4*n)
	for _, flat := range cand {
		require.False(t, normalize.IsSelfLoop(n, flat))
	}
}

// TestExhaustive_SmallCase: N=2 with a small port budget completes, finds
// at least a direct length-1 maze, and the winner is its own normalization.
func TestExhaustive_SmallCase(t *testing.T) {
	best, err := quiz.Exhaustive(context.Background(),
		quiz.WithNterm(2),
		quiz.WithPortBudget(0, 2),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.GreaterOrEqual(t, best.Length, 1)
	require.True(t, normalize.IsNormalized(best.Maze))
	require.Len(t, best.Path, best.Length+1)
}

// TestExhaustive_LengthCap stops as soon as a maze of the cap length is
// found; the single direct nx port suffices for cap 1.
func TestExhaustive_LengthCap(t *testing.T) {
	best, err := quiz.Exhaustive(context.Background(),
		quiz.WithNterm(2),
		quiz.WithPortBudget(0, 4),
		quiz.WithLengthCap(1),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Equal(t, 1, best.Length)
}

// TestExhaustive_EmptyBudget: k=0 only enumerates the empty maze, which
// has no path, so the search returns the normal nil-best result.
func TestExhaustive_EmptyBudget(t *testing.T) {
	best, err := quiz.Exhaustive(context.Background(),
		quiz.WithNterm(2),
		quiz.WithPortBudget(0, 0),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.Nil(t, best)
}

func TestExhaustive_InvalidNterm(t *testing.T) {
	_, err := quiz.Exhaustive(context.Background(), quiz.WithNterm(1))
	require.ErrorIs(t, err, maze.ErrInvalidNterm)
}

// TestRandom_FindsDirectPort: with a length cap of 1, random sampling
// terminates on its own as soon as any path-bearing maze is drawn.
func TestRandom_FindsDirectPort(t *testing.T) {
	best, err := quiz.Random(context.Background(),
		quiz.WithNterm(2),
		quiz.WithPortBudget(1, 6),
		quiz.WithSeed(7),
		quiz.WithLengthCap(1),
		quiz.WithDepthCeiling(50),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.GreaterOrEqual(t, best.Length, 1)
}

// TestRandom_Cancellation: an already-expired context still returns
// cleanly with whatever was found (nothing, here).
func TestRandom_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	best, err := quiz.Random(ctx,
		quiz.WithNterm(2),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.Nil(t, best)
}

// TestRandom_Deterministic: same seed, same cap, same best maze.
func TestRandom_Deterministic(t *testing.T) {
	run := func() *quiz.Best {
		best, err := quiz.Random(context.Background(),
			quiz.WithNterm(2),
			quiz.WithPortBudget(1, 6),
			quiz.WithSeed(99),
			quiz.WithLengthCap(1),
			quiz.WithDepthCeiling(50),
			quiz.WithLogger(discard{}),
		)
		require.NoError(t, err)
		require.NotNil(t, best)
		return best
	}

	a, b := run(), run()
	require.Equal(t, a.Length, b.Length)
	require.Equal(t, a.Maze.Flat(), b.Maze.Flat())
}

// TestTopDown_SmallCase: the deletion walk on N=2 terminates (the lattice
// under normalization is finite) and its best at least matches the
// fully-connected maze's length-1 path.
func TestTopDown_SmallCase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	best, err := quiz.TopDown(ctx,
		quiz.WithNterm(2),
		quiz.WithLengthCap(3),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.GreaterOrEqual(t, best.Length, 1)
	require.Len(t, best.Path, best.Length+1)
}

// TestTopDown_BFSVariant exercises the solver switch on the same walk.
func TestTopDown_BFSVariant(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	best, err := quiz.TopDown(ctx,
		quiz.WithNterm(2),
		quiz.WithBFS(),
		quiz.WithLengthCap(2),
		quiz.WithLogger(discard{}),
	)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.GreaterOrEqual(t, best.Length, 1)
}
