package canon_test

import (
	"testing"

	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
	"github.com/stretchr/testify/require"
)

func TestKindAt(t *testing.T) {
	require.Equal(t, canon.KindInvalid, canon.KindAt(0, 0))
	require.Equal(t, canon.KindNormal, canon.KindAt(1, 1))
	require.Equal(t, canon.KindNX, canon.KindAt(0, 1))
	require.Equal(t, canon.KindNY, canon.KindAt(1, 0))
	require.Equal(t, canon.KindInvalid, canon.KindAt(-1, 1))
}

// TestNeighbors_TrivialNXPath: the direct nx port E0->E1 at the start's
// own nx block gives a single-step neighbor.
func TestNeighbors_TrivialNXPath(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNX(0, 1, true)

	buf := canon.Neighbors(m, canon.Start, make([]canon.State, 0, canon.MaxFanOut(m.N)))
	require.Contains(t, buf, canon.Goal)
}

// TestNeighbors_NormalBlockWtoE exercises the W→E canonicalization
// identity: a port sourced at W[0] of the normal block (1,1) is reached
// by traversing from the nx block's own E[0] terminal (canonical state
// (0,1,E,0), i.e. Start), and its E[1] destination stays at the normal
// block (1,1) as (1,1,E,1).
func TestNeighbors_NormalBlockWtoE(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	// normal block (1,1): W0 -> E1
	m.SetNormal(maze.DirW, 0, maze.DirE, 1, true)

	buf := canon.Neighbors(m, canon.Start, make([]canon.State, 0, canon.MaxFanOut(m.N)))
	// W[0] at (1,1) IS canon.Start's physical point, so this port is sourced
	// exactly at Start and its destination E[1] at (1,1) folds to (1,1,E,1).
	require.Contains(t, buf, canon.State{X: 1, Y: 1, Dir: maze.DirE, I: 1})
}

// TestNeighbors_UnreachableGoal: a normal port E0->N0 is never sourced at
// a state reachable from the start.
func TestNeighbors_UnreachableGoal(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNormal(maze.DirE, 0, maze.DirN, 0, true)

	buf := canon.Neighbors(m, canon.Start, nil)
	require.Empty(t, buf)
}

// TestNeighbors_NeverNegative checks invariant I5/I2: the enumerator never
// yields a state with a negative coordinate, for every fully-connected
// maze at small N and every state near the origin.
func TestNeighbors_NeverNegative(t *testing.T) {
	const n = 2
	m, err := maze.New(n)
	require.NoError(t, err)
	for i := range m.Normal {
		m.Normal[i] = 1
	}
	for i := range m.NX {
		m.NX[i] = 1
	}
	for i := range m.NY {
		m.NY[i] = 1
	}
	// undo self-loops the dense edge tables never encode anyway; Normal's
	// self-loops are legal slots but excluded from candidate sets elsewhere,
	// not from the enumerator itself, so leave them set here.

	for x := 0; x <= 2; x++ {
		for y := 0; y <= 2; y++ {
			if canon.KindAt(x, y) == canon.KindInvalid {
				continue
			}
			for _, d := range []maze.Dir{maze.DirE, maze.DirN} {
				for i := 0; i < n; i++ {
					s := canon.State{X: x, Y: y, Dir: d, I: i}
					for _, nb := range canon.Neighbors(m, s, nil) {
						require.GreaterOrEqual(t, nb.X, 0)
						require.GreaterOrEqual(t, nb.Y, 0)
					}
				}
			}
		}
	}
}

func TestNeighbors_EdgeBlockSelfLoopExcluded(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNX(0, 1, true)

	buf := canon.Neighbors(m, canon.State{X: 0, Y: 1, Dir: maze.DirE, I: 0}, nil)
	for _, s := range buf {
		require.NotEqual(t, canon.State{X: 0, Y: 1, Dir: maze.DirE, I: 0}, s)
	}
}
