package maze

import "errors"

// Sentinel errors for maze store operations.
var (
	// ErrInvalidNterm indicates nterm < 2, the minimum the model supports.
	ErrInvalidNterm = errors.New("maze: nterm must be >= 2")

	// ErrIndexOutOfRange indicates a flat index outside [0, PortCount()).
	ErrIndexOutOfRange = errors.New("maze: index out of range")

	// ErrBadLoadLength indicates Load was given a slice of the wrong length.
	ErrBadLoadLength = errors.New("maze: load length does not match port count")
)

// Dir identifies one of the four terminal directions of a normal block.
// The ordering (E, W, N, S) fixes the dir*N+idx numbering used to address
// the dense Normal table, and must not be reordered.
type Dir int

const (
	DirE Dir = iota
	DirW
	DirN
	DirS
)

// String renders a Dir as its single-letter name.
func (d Dir) String() string {
	switch d {
	case DirE:
		return "E"
	case DirW:
		return "W"
	case DirN:
		return "N"
	case DirS:
		return "S"
	default:
		return "?"
	}
}

// Maze holds the three port tables for a given nterm, plus N itself so a
// *Maze is self-describing to every downstream package.
type Maze struct {
	N      int    // nterm
	Normal []byte // (4N)^2 slots, 1 = port present
	NX     []byte // N(N-1) slots
	NY     []byte // N(N-1) slots
}

// normalLen returns the slot count of the normal-block port table for n.
func normalLen(n int) int { return (4 * n) * (4 * n) }

// edgeLen returns the slot count of an nx/ny port table for n.
func edgeLen(n int) int { return n * (n - 1) }

// NormalLen returns the slot count of the normal-block port table for n,
// exported for callers (normalize, mazefmt) that need the layout without
// duplicating the arithmetic.
func NormalLen(n int) int { return normalLen(n) }

// EdgeLen returns the slot count of an nx/ny port table for n.
func EdgeLen(n int) int { return edgeLen(n) }

// PortCount returns P, the total number of addressable port slots.
func (m *Maze) PortCount() int {
	return normalLen(m.N) + 2*edgeLen(m.N)
}
