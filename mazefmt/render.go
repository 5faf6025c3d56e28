package mazefmt

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
)

// RenderMatrix renders m's three port tables as human-readable matrices:
// rows are source terminals, columns destinations, `*` present, `.` absent.
func RenderMatrix(m *maze.Maze) string {
	n := m.N
	var b strings.Builder

	names := make([]string, 4*n)
	for t := range names {
		names[t] = termName(n, t)
	}

	grid := func(title string, rows []string, cols []string, at func(r, c int) bool) {
		b.WriteString(title)
		b.WriteString(":\n    ")
		for _, c := range cols {
			fmt.Fprintf(&b, "%3s", c)
		}
		b.WriteByte('\n')
		for r, rn := range rows {
			fmt.Fprintf(&b, "%4s", rn)
			for c := range cols {
				mark := "."
				if at(r, c) {
					mark = "*"
				}
				fmt.Fprintf(&b, "%3s", mark)
			}
			b.WriteByte('\n')
		}
	}

	width := 4 * n
	grid("normal", names, names, func(r, c int) bool {
		return m.Normal[r*width+c] != 0
	})

	edgeNames := func(d maze.Dir) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s%d", d, i)
		}
		return out
	}
	grid("nx", edgeNames(maze.DirE), edgeNames(maze.DirE), m.GetNX)
	grid("ny", edgeNames(maze.DirN), edgeNames(maze.DirN), m.GetNY)

	return b.String()
}

// traversal identifies the block and local port realizing one path step.
type traversal struct {
	bx, by int
	sd, dd maze.Dir
	si, di int
	ok     bool
}

// findTraversal locates an active port of a block incident to both a and b
// whose source folds to a and destination folds to b.
func findTraversal(m *maze.Maze, a, b canon.State) traversal {
	type incidence struct {
		bx, by int
		sd     maze.Dir
	}
	var inc []incidence
	if a.Dir == maze.DirE {
		inc = []incidence{{a.X, a.Y, maze.DirE}, {a.X + 1, a.Y, maze.DirW}}
	} else {
		inc = []incidence{{a.X, a.Y, maze.DirN}, {a.X, a.Y + 1, maze.DirS}}
	}

	for _, in := range inc {
		switch canon.KindAt(in.bx, in.by) {
		case canon.KindNormal:
			for dd := maze.DirE; dd <= maze.DirS; dd++ {
				for di := 0; di < m.N; di++ {
					if m.GetNormal(in.sd, a.I, dd, di) && foldEq(in.bx, in.by, dd, di, b) {
						return traversal{bx: in.bx, by: in.by, sd: in.sd, dd: dd, si: a.I, di: di, ok: true}
					}
				}
			}
		case canon.KindNX:
			if in.sd == maze.DirE && b.X == in.bx && b.Y == in.by && b.Dir == maze.DirE && m.GetNX(a.I, b.I) {
				return traversal{bx: in.bx, by: in.by, sd: maze.DirE, dd: maze.DirE, si: a.I, di: b.I, ok: true}
			}
		case canon.KindNY:
			if in.sd == maze.DirN && b.X == in.bx && b.Y == in.by && b.Dir == maze.DirN && m.GetNY(a.I, b.I) {
				return traversal{bx: in.bx, by: in.by, sd: maze.DirN, dd: maze.DirN, si: a.I, di: b.I, ok: true}
			}
		}
	}

	return traversal{}
}

// foldEq reports whether local terminal (dd, di) of block (bx, by) folds to
// canonical state b.
func foldEq(bx, by int, dd maze.Dir, di int, b canon.State) bool {
	switch dd {
	case maze.DirE:
		return b == canon.State{X: bx, Y: by, Dir: maze.DirE, I: di}
	case maze.DirW:
		return b == canon.State{X: bx - 1, Y: by, Dir: maze.DirE, I: di}
	case maze.DirN:
		return b == canon.State{X: bx, Y: by, Dir: maze.DirN, I: di}
	default:
		return b == canon.State{X: bx, Y: by - 1, Dir: maze.DirN, I: di}
	}
}

// RenderVerbosePath annotates each step of p with the block and port it
// traverses, one step per line:
//
//	(0,1,E0) --[block (1,1) W0->N0]--> (1,1,N0)
//
// A step no active port explains is marked `[no matching port]`; solver
// paths never produce one.
func RenderVerbosePath(m *maze.Maze, p []canon.State) string {
	var b strings.Builder
	for k := 0; k+1 < len(p); k++ {
		tr := findTraversal(m, p[k], p[k+1])
		b.WriteString(PrintState(p[k]))
		if tr.ok {
			fmt.Fprintf(&b, " --[block (%d,%d) %s%d->%s%d]--> ", tr.bx, tr.by, tr.sd, tr.si, tr.dd, tr.di)
		} else {
			b.WriteString(" --[no matching port]--> ")
		}
		b.WriteString(PrintState(p[k+1]))
		b.WriteByte('\n')
	}
	return b.String()
}
