package mazefmt

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazebeaver/maze"
)

// termName renders local terminal t = dir*n+idx of a normal block.
func termName(n, t int) string {
	return fmt.Sprintf("%s%d", maze.Dir(t/n), t%n)
}

// Print encodes m in the canonical three-section text format: fixed
// section order, entries in source-major destination-minor order, `(none)`
// for an empty section. Parse(Print(m), m.N) reproduces m byte-for-byte.
func Print(m *maze.Maze) string {
	n := m.N
	width := 4 * n

	var normal []string
	for s := 0; s < width; s++ {
		for d := 0; d < width; d++ {
			if m.Normal[s*width+d] != 0 {
				normal = append(normal, termName(n, s)+"->"+termName(n, d))
			}
		}
	}

	edge := func(dir maze.Dir, get func(si, di int) bool) []string {
		var out []string
		for si := 0; si < n; si++ {
			for di := 0; di < n; di++ {
				if si != di && get(si, di) {
					out = append(out, fmt.Sprintf("%s%d->%s%d", dir, si, dir, di))
				}
			}
		}
		return out
	}

	section := func(name string, entries []string) string {
		if len(entries) == 0 {
			return name + ": (none)"
		}
		return name + ": " + strings.Join(entries, ", ")
	}

	return section("normal", normal) + "; " +
		section("nx", edge(maze.DirE, m.GetNX)) + "; " +
		section("ny", edge(maze.DirN, m.GetNY))
}
