package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazebeaver/maze"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidNterm(t *testing.T) {
	_, err := maze.New(1)
	require.ErrorIs(t, err, maze.ErrInvalidNterm)
}

func TestNew_PortCount(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{2, (4*2)*(4*2) + 2*2*1},
		{3, (4*3)*(4*3) + 2*3*2},
		{5, (4*5)*(4*5) + 2*5*4},
	}
	for _, c := range cases {
		m, err := maze.New(c.n)
		require.NoError(t, err)
		require.Equal(t, c.want, m.PortCount())
	}
}

func TestNormalGetSet_RoundTrip(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)

	require.False(t, m.GetNormal(maze.DirE, 0, maze.DirN, 1))
	m.SetNormal(maze.DirE, 0, maze.DirN, 1, true)
	require.True(t, m.GetNormal(maze.DirE, 0, maze.DirN, 1))
	// unrelated slot unaffected
	require.False(t, m.GetNormal(maze.DirN, 1, maze.DirE, 0))

	m.SetNormal(maze.DirE, 0, maze.DirN, 1, false)
	require.False(t, m.GetNormal(maze.DirE, 0, maze.DirN, 1))
}

func TestEdgeGetSet_SelfLoopIgnored(t *testing.T) {
	m, err := maze.New(3)
	require.NoError(t, err)

	m.SetNX(1, 1, true) // self-loop: silently ignored
	require.False(t, m.GetNX(1, 1))

	m.SetNX(0, 1, true)
	require.True(t, m.GetNX(0, 1))
	require.False(t, m.GetNX(1, 0))

	m.SetNY(2, 0, true)
	require.True(t, m.GetNY(2, 0))
}

func TestEdgeSlot_Dense(t *testing.T) {
	// For N=3 the dense table has N(N-1)=6 slots; every (si,di), si!=di,
	// must map to a distinct slot in [0,6).
	m, err := maze.New(3)
	require.NoError(t, err)

	seen := map[int]bool{}
	for si := 0; si < 3; si++ {
		for di := 0; di < 3; di++ {
			if si == di {
				continue
			}
			m.Clear()
			m.SetNX(si, di, true)
			flat := m.Flat()
			count := 0
			idx := -1
			for i, b := range flat {
				if b != 0 {
					count++
					idx = i
				}
			}
			require.Equal(t, 1, count)
			require.False(t, seen[idx], "slot %d reused", idx)
			seen[idx] = true
		}
	}
	require.Len(t, seen, 6)
}

func TestFlatAccessors_RoundTrip(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)

	n := m.PortCount()
	for i := 0; i < n; i++ {
		require.False(t, m.At(i))
	}
	m.SetFlat(3, true)
	require.True(t, m.At(3))
	flipped := m.FlipFlat(3)
	require.False(t, flipped)
	require.False(t, m.At(3))
}

func TestCheckFlatIndex(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)

	require.NoError(t, m.CheckFlatIndex(0))
	require.NoError(t, m.CheckFlatIndex(m.PortCount()-1))
	require.ErrorIs(t, m.CheckFlatIndex(-1), maze.ErrIndexOutOfRange)
	require.ErrorIs(t, m.CheckFlatIndex(m.PortCount()), maze.ErrIndexOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetFlat(0, true)

	clone := m.Clone()
	require.True(t, clone.At(0))

	clone.SetFlat(0, false)
	require.True(t, m.At(0), "mutating the clone must not affect the original")
	require.False(t, clone.At(0))
}

func TestLoad_RoundTrip(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	m.SetFlat(1, true)
	m.SetFlat(5, true)
	buf := m.Flat()

	m2, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m2.Load(buf))
	require.Equal(t, buf, m2.Flat())
}

func TestLoad_BadLength(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Load(make([]byte, 3)), maze.ErrBadLoadLength)
}

func TestRandomize_Deterministic(t *testing.T) {
	m1, _ := maze.New(3)
	m2, _ := maze.New(3)

	m1.Randomize(maze.NewXorshift64(42))
	m2.Randomize(maze.NewXorshift64(42))
	require.Equal(t, m1.Flat(), m2.Flat())

	m3, _ := maze.New(3)
	m3.Randomize(maze.NewXorshift64(43))
	require.NotEqual(t, m1.Flat(), m3.Flat())
}

func TestClear(t *testing.T) {
	m, _ := maze.New(2)
	m.Randomize(maze.NewXorshift64(7))
	m.Clear()
	for i := 0; i < m.PortCount(); i++ {
		require.False(t, m.At(i))
	}
}
