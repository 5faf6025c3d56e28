package normalize

import (
	"bytes"

	"github.com/katalvlaran/mazebeaver/maze"
)

const unmapped = -1

// classMaps holds the two index permutations being built: ew for the E/W
// class (indices 0 and 1 pinned to start/goal), ns for the free N/S class.
type classMaps struct {
	ew, ns         []int
	nextEw, nextNs int
}

func newClassMaps(n int) *classMaps {
	ew := make([]int, n)
	ns := make([]int, n)
	for i := range ew {
		ew[i] = unmapped
		ns[i] = unmapped
	}
	ew[0], ew[1] = 0, 1

	return &classMaps{ew: ew, ns: ns, nextEw: 2, nextNs: 0}
}

// seeEW records the first-seen occurrence of an E/W-class index.
func (c *classMaps) seeEW(idx int) {
	if c.ew[idx] == unmapped {
		c.ew[idx] = c.nextEw
		c.nextEw++
	}
}

// seeNS records the first-seen occurrence of an N/S-class index.
func (c *classMaps) seeNS(idx int) {
	if c.ns[idx] == unmapped {
		c.ns[idx] = c.nextNs
		c.nextNs++
	}
}

// seeTerm records a local terminal t = dir*n+idx by its class.
func (c *classMaps) seeTerm(n, t int) {
	dir := maze.Dir(t / n)
	idx := t % n
	if dir == maze.DirE || dir == maze.DirW {
		c.seeEW(idx)
	} else {
		c.seeNS(idx)
	}
}

// fillRemaining assigns canonical values to every still-unmapped index, in
// ascending original-index order, so the mapping is total and deterministic
// even for indices that never appear in an active port.
func (c *classMaps) fillRemaining() {
	for idx := range c.ew {
		if c.ew[idx] == unmapped {
			c.ew[idx] = c.nextEw
			c.nextEw++
		}
		if c.ns[idx] == unmapped {
			c.ns[idx] = c.nextNs
			c.nextNs++
		}
	}
}

// mapIdx returns the canonical index for local terminal t under dir's class.
func (c *classMaps) mapIdx(dir maze.Dir, idx int) int {
	if dir == maze.DirE || dir == maze.DirW {
		return c.ew[idx]
	}
	return c.ns[idx]
}

// buildClassMaps scans m's active ports in source-major, destination-minor
// order — normal, then nx, then ny — recording first-seen index
// occurrences.
func buildClassMaps(m *maze.Maze) *classMaps {
	n := m.N
	c := newClassMaps(n)
	width := 4 * n

	for slot, active := range m.Normal {
		if active == 0 {
			continue
		}
		s, d := slot/width, slot%width
		c.seeTerm(n, s)
		c.seeTerm(n, d)
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si == di || !m.GetNX(si, di) {
				continue
			}
			c.seeEW(si)
			c.seeEW(di)
		}
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si == di || !m.GetNY(si, di) {
				continue
			}
			c.seeNS(si)
			c.seeNS(di)
		}
	}
	c.fillRemaining()

	return c
}

// Normalize returns a freshly allocated maze in canonical form: the unique
// representative of m's (E/W-permutation x N/S-permutation) equivalence
// class, with the E/W indices 0 and 1 (start, goal) always fixed.
func Normalize(m *maze.Maze) *maze.Maze {
	n := m.N
	c := buildClassMaps(m)

	out, _ := maze.New(n) // n is already valid: m carries it
	width := 4 * n

	for slot, active := range m.Normal {
		if active == 0 {
			continue
		}
		s, d := slot/width, slot%width
		sd, si := maze.Dir(s/n), s%n
		dd, di := maze.Dir(d/n), d%n
		out.SetNormal(sd, c.mapIdx(sd, si), dd, c.mapIdx(dd, di), true)
	}
	for si := 0; si < n; si++ {
		for di := 0; di < n; di++ {
			if si == di {
				continue
			}
			if m.GetNX(si, di) {
				out.SetNX(c.ew[si], c.ew[di], true)
			}
			if m.GetNY(si, di) {
				out.SetNY(c.ns[si], c.ns[di], true)
			}
		}
	}

	return out
}

// IsNormalized reports whether m is already its own canonical form.
func IsNormalized(m *maze.Maze) bool {
	return bytes.Equal(Normalize(m).Flat(), m.Flat())
}
