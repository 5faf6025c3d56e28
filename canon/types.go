package canon

import "github.com/katalvlaran/mazebeaver/maze"

// State is a canonical 4-tuple (x, y, d, i). Dir is always maze.DirE or
// maze.DirN: folding collapses W and S into the lower/left neighbor before
// a State is ever constructed.
type State struct {
	X, Y int
	Dir  maze.Dir
	I    int
}

// BlockKind classifies a lattice position by which terminals it owns.
type BlockKind int

const (
	// KindInvalid marks (0,0) and any position with a negative coordinate.
	KindInvalid BlockKind = iota
	// KindNormal blocks (x>0, y>0) own all 4N terminals.
	KindNormal
	// KindNX blocks (x=0, y>0) own only the N east terminals.
	KindNX
	// KindNY blocks (x>0, y=0) own only the N north terminals.
	KindNY
)

// KindAt classifies block position (x, y).
func KindAt(x, y int) BlockKind {
	switch {
	case x == 0 && y == 0:
		return KindInvalid
	case x > 0 && y > 0:
		return KindNormal
	case x == 0 && y > 0:
		return KindNX
	case x > 0 && y == 0:
		return KindNY
	default:
		return KindInvalid
	}
}

// Start is the fixed canonical start state (0, 1, E, 0).
var Start = State{X: 0, Y: 1, Dir: maze.DirE, I: 0}

// Goal is the fixed canonical goal state (0, 1, E, 1).
var Goal = State{X: 0, Y: 1, Dir: maze.DirE, I: 1}

// MaxFanOut returns the fan-out upper bound for nterm n (two incident
// blocks, up to 4N destinations each), sized
// for callers that want to preallocate a Neighbors buffer.
func MaxFanOut(n int) int { return 8 * n }
