package mazefmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
)

// PrintState renders one canonical state literal, e.g. `(0,1,E0)`.
func PrintState(s canon.State) string {
	return fmt.Sprintf("(%d,%d,%s%d)", s.X, s.Y, s.Dir, s.I)
}

// PrintPath renders a path as arrow-separated state literals, e.g.
// `(0,1,E0) -> (1,1,N0) -> (0,1,E1)`.
func PrintPath(p []canon.State) string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = PrintState(s)
	}
	return strings.Join(parts, " -> ")
}

// ParseState decodes one `(x,y,Dd)` literal. Only canonical directions
// (E, N) are accepted.
func ParseState(s string) (canon.State, error) {
	var st canon.State

	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "(") || !strings.HasSuffix(t, ")") {
		return st, fmt.Errorf("%w: %q", ErrMalformedState, s)
	}
	fields := strings.Split(t[1:len(t)-1], ",")
	if len(fields) != 3 {
		return st, fmt.Errorf("%w: %q", ErrMalformedState, s)
	}

	x, errX := strconv.Atoi(strings.TrimSpace(fields[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(fields[1]))
	if errX != nil || errY != nil {
		return st, fmt.Errorf("%w: %q", ErrMalformedState, s)
	}

	term := strings.TrimSpace(fields[2])
	d, idx, n, ok := parseTerminal(term)
	if !ok || n != len(term) || (d != maze.DirE && d != maze.DirN) {
		return st, fmt.Errorf("%w: %q", ErrMalformedState, s)
	}

	return canon.State{X: x, Y: y, Dir: d, I: idx}, nil
}

// ParsePath decodes an arrow-separated list of state literals.
func ParsePath(s string) ([]canon.State, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []canon.State
	for _, tok := range strings.Split(s, "->") {
		st, err := ParseState(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}
