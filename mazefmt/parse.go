package mazefmt

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazebeaver/maze"
)

// portEntry is one parsed `<dir><digits>-><dir><digits>` token.
type portEntry struct {
	sd, dd maze.Dir
	si, di int
}

// parseDir maps a direction letter (case-insensitive) to its Dir.
func parseDir(c byte) (maze.Dir, bool) {
	switch c {
	case 'E', 'e':
		return maze.DirE, true
	case 'W', 'w':
		return maze.DirW, true
	case 'N', 'n':
		return maze.DirN, true
	case 'S', 's':
		return maze.DirS, true
	default:
		return 0, false
	}
}

// parseTerminal reads `<dir><digits>` from s, returning the terminal and
// the number of bytes consumed.
func parseTerminal(s string) (maze.Dir, int, int, bool) {
	if len(s) == 0 {
		return 0, 0, 0, false
	}
	d, ok := parseDir(s[0])
	if !ok {
		return 0, 0, 0, false
	}
	i := 1
	idx := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		idx = idx*10 + int(s[i]-'0')
		i++
	}
	if i == 1 {
		return 0, 0, 0, false
	}
	return d, idx, i, true
}

// parseEntry parses one port entry, tolerating whitespace between tokens.
func parseEntry(s string) (portEntry, error) {
	var e portEntry

	s = strings.TrimSpace(s)
	sd, si, n, ok := parseTerminal(s)
	if !ok {
		return e, fmt.Errorf("%w: %q", ErrMalformedEntry, s)
	}
	rest := strings.TrimSpace(s[n:])
	if !strings.HasPrefix(rest, "->") {
		return e, fmt.Errorf("%w: %q", ErrMalformedEntry, s)
	}
	rest = strings.TrimSpace(rest[2:])
	dd, di, n, ok := parseTerminal(rest)
	if !ok || strings.TrimSpace(rest[n:]) != "" {
		return e, fmt.Errorf("%w: %q", ErrMalformedEntry, s)
	}

	return portEntry{sd: sd, si: si, dd: dd, di: di}, nil
}

// applyEntry writes e into the section's port table, silently dropping
// out-of-range indices, non-same-direction entries in edge sections, and
// edge self-loops, per the parse-tolerance rules.
func applyEntry(m *maze.Maze, section string, e portEntry) {
	n := m.N
	if e.si >= n || e.di >= n {
		return
	}
	switch section {
	case "normal":
		m.SetNormal(e.sd, e.si, e.dd, e.di, true)
	case "nx":
		if e.sd == maze.DirE && e.dd == maze.DirE && e.si != e.di {
			m.SetNX(e.si, e.di, true)
		}
	case "ny":
		if e.sd == maze.DirN && e.dd == maze.DirN && e.si != e.di {
			m.SetNY(e.si, e.di, true)
		}
	}
}

// Parse decodes the three-section maze text format into a Maze of the
// given nterm. A missing section is treated as empty; unknown port entries
// are dropped per the tolerance rules; a malformed entry or section name
// is an error, as is nterm < 2.
func Parse(s string, nterm int) (*maze.Maze, error) {
	m, err := maze.New(nterm)
	if err != nil {
		return nil, err
	}

	for _, chunk := range strings.Split(s, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		name, body, found := strings.Cut(chunk, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEntry, chunk)
		}
		section := strings.ToLower(strings.TrimSpace(name))
		if section != "normal" && section != "nx" && section != "ny" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
		}
		body = strings.TrimSpace(body)
		if body == "" || strings.EqualFold(body, "(none)") {
			continue
		}
		for _, tok := range strings.Split(body, ",") {
			e, err := parseEntry(tok)
			if err != nil {
				return nil, err
			}
			applyEntry(m, section, e)
		}
	}

	return m, nil
}

// DetectNterm scans s for terminal literals and returns max(2, max index
// seen + 1), the smallest nterm that can hold every entry.
func DetectNterm(s string) int {
	maxIdx := -1
	for i := 0; i < len(s); i++ {
		if _, ok := parseDir(s[i]); !ok {
			continue
		}
		j := i + 1
		idx := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			idx = idx*10 + int(s[j]-'0')
			j++
		}
		if j > i+1 && idx > maxIdx {
			maxIdx = idx
		}
		i = j - 1
	}
	if maxIdx < 1 {
		return 2
	}
	return maxIdx + 1
}

// ParseAuto is Parse with nterm detected from the input itself.
func ParseAuto(s string) (*maze.Maze, error) {
	return Parse(s, DetectNterm(s))
}
