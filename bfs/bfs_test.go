package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mazebeaver/bfs"
	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
	"github.com/stretchr/testify/require"
)

// TestSolve_TrivialNXPath: the single direct nx port yields length 1.
func TestSolve_TrivialNXPath(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNX(0, 1, true)

	res, err := bfs.Solve(m)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 1, res.Length)
	require.Equal(t, []canon.State{canon.Start, canon.Goal}, res.Path)
}

// TestSolve_NoPath: a maze whose single port never feeds the goal.
func TestSolve_NoPath(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNormal(maze.DirE, 0, maze.DirN, 0, true)

	res, err := bfs.Solve(m)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, -1, res.Length)
}

// TestSolve_AllPortsOff covers nterm=2 with no ports active at all.
func TestSolve_AllPortsOff(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)

	res, err := bfs.Solve(m)
	require.NoError(t, err)
	require.False(t, res.Found)
}

func TestSolve_LengthOnly_OmitsPath(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNX(0, 1, true)

	res, err := bfs.Solve(m, bfs.WithLengthOnly())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Nil(t, res.Path)
}

// TestSolve_PathShape checks the endpoints, length accounting, and
// in-bounds coordinates of a found path on a multi-hop maze.
func TestSolve_PathShape(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetNormal(maze.DirW, 0, maze.DirN, 0, true)
	m.SetNormal(maze.DirN, 0, maze.DirW, 1, true)

	res, err := bfs.Solve(m)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, canon.Start, res.Path[0])
	require.Equal(t, canon.Goal, res.Path[len(res.Path)-1])
	require.Equal(t, len(res.Path)-1, res.Length)
	for _, s := range res.Path {
		require.GreaterOrEqual(t, s.X, 0)
		require.GreaterOrEqual(t, s.Y, 0)
	}
}

func TestSolve_ContextCancellation(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	for i := range m.Normal {
		m.Normal[i] = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bfs.Solve(m, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
