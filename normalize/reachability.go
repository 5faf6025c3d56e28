package normalize

import (
	"math/bits"

	"github.com/katalvlaran/mazebeaver/maze"
)

// classOf maps a normal-block local terminal index t (0 <= t < 4n, t =
// dir*n+idx) to its E/W-or-N/S equivalence class: idx for E/W terminals,
// n+idx for N/S terminals.
func classOf(n, t int) int {
	dir := t / n
	idx := t % n
	if maze.Dir(dir) == maze.DirN || maze.Dir(dir) == maze.DirS {
		return n + idx
	}
	return idx
}

// AbstractReachable builds the 2N-node terminal-class graph (node i is the
// E/W class i, node n+i is the N/S class i) and reports whether class 1
// (goal) is reachable from class 0 (start) via a bitmask BFS. False is a
// sound proof that no start->goal path exists in the full maze; true is
// only necessary, never sufficient.
func AbstractReachable(m *maze.Maze) bool {
	n := m.N
	adj := make([]uint64, 2*n)

	width := 4 * n
	for i, active := range m.Normal {
		if active == 0 {
			continue
		}
		s, d := i/width, i%width
		adj[classOf(n, s)] |= 1 << uint(classOf(n, d))
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si == di {
				continue
			}
			if m.GetNX(si, di) {
				adj[si] |= 1 << uint(di)
			}
			if m.GetNY(si, di) {
				adj[n+si] |= 1 << uint(n+di)
			}
		}
	}

	const startClass, goalClass = 0, 1
	var visited uint64 = 1 << startClass
	queue := []int{startClass}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == goalClass {
			return true
		}
		frontier := adj[cur] &^ visited
		for frontier != 0 {
			nb := bits.TrailingZeros64(frontier)
			frontier &^= 1 << uint(nb)
			visited |= 1 << uint(nb)
			queue = append(queue, nb)
		}
	}

	return visited&(1<<goalClass) != 0
}
