package normalize

import "github.com/katalvlaran/mazebeaver/maze"

// IsSelfLoop reports whether flatIdx names a normal-block port whose source
// and destination terminal are the same (Ti->Ti). nx and ny ports are
// self-loop-free by construction (their dense tables never allocate a slot
// for si==di), so any index outside the normal table's range is never a
// self-loop.
func IsSelfLoop(n, flatIdx int) bool {
	nl := maze.NormalLen(n)
	if flatIdx < 0 || flatIdx >= nl {
		return false
	}
	width := 4 * n
	return flatIdx/width == flatIdx%width
}
