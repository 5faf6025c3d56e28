package canon

import "github.com/katalvlaran/mazebeaver/maze"

// fold translates a local destination terminal (dd, di) owned by the block
// at (bx, by) back to canonical form, per the W/S→E/N folding rules.
func fold(bx, by int, dd maze.Dir, di int) State {
	switch dd {
	case maze.DirE:
		return State{X: bx, Y: by, Dir: maze.DirE, I: di}
	case maze.DirW:
		return State{X: bx - 1, Y: by, Dir: maze.DirE, I: di}
	case maze.DirN:
		return State{X: bx, Y: by, Dir: maze.DirN, I: di}
	default: // maze.DirS
		return State{X: bx, Y: by - 1, Dir: maze.DirN, I: di}
	}
}

// appendValid appends s to buf unless it falls outside the lattice
// (x<0 or y<0).
func appendValid(buf []State, s State) []State {
	if s.X < 0 || s.Y < 0 {
		return buf
	}
	return append(buf, s)
}

// normalDests appends every canonical destination reachable from srcDir[i]
// of the normal block at (bx, by), by scanning its full local port row.
func normalDests(buf []State, m *maze.Maze, bx, by int, srcDir maze.Dir, i int) []State {
	n := m.N
	for dd := maze.DirE; dd <= maze.DirS; dd++ {
		for di := 0; di < n; di++ {
			if m.GetNormal(srcDir, i, dd, di) {
				buf = appendValid(buf, fold(bx, by, dd, di))
			}
		}
	}
	return buf
}

// Neighbors enumerates every canonical state reachable from s in one port
// traversal, appending to buf (which is reset to length 0 first) and
// returning the extended slice. Passing a buf with spare capacity (see
// MaxFanOut) avoids per-call allocation in solver hot loops.
func Neighbors(m *maze.Maze, s State, buf []State) []State {
	buf = buf[:0]
	n := m.N

	switch s.Dir {
	case maze.DirE:
		switch KindAt(s.X, s.Y) {
		case KindNormal:
			buf = normalDests(buf, m, s.X, s.Y, maze.DirE, s.I)
		case KindNX:
			for di := 0; di < n; di++ {
				if di != s.I && m.GetNX(s.I, di) {
					buf = appendValid(buf, State{X: s.X, Y: s.Y, Dir: maze.DirE, I: di})
				}
			}
		}

		bx, by := s.X+1, s.Y
		if KindAt(bx, by) == KindNormal {
			buf = normalDests(buf, m, bx, by, maze.DirW, s.I)
		}

	case maze.DirN:
		switch KindAt(s.X, s.Y) {
		case KindNormal:
			buf = normalDests(buf, m, s.X, s.Y, maze.DirN, s.I)
		case KindNY:
			for di := 0; di < n; di++ {
				if di != s.I && m.GetNY(s.I, di) {
					buf = appendValid(buf, State{X: s.X, Y: s.Y, Dir: maze.DirN, I: di})
				}
			}
		}

		bx, by := s.X, s.Y+1
		if KindAt(bx, by) == KindNormal {
			buf = normalDests(buf, m, bx, by, maze.DirS, s.I)
		}
	}

	return buf
}
