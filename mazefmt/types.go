package mazefmt

import "errors"

// Sentinel errors for maze and path text parsing. Parse tolerance (dropped
// out-of-range entries, edge-section self-loops, missing sections) never
// produces an error; these cover genuinely malformed input only.
var (
	// ErrUnknownSection indicates a section name other than normal/nx/ny.
	ErrUnknownSection = errors.New("mazefmt: unknown section name")

	// ErrMalformedEntry indicates a port entry that does not match
	// <dir><digits>-><dir><digits>.
	ErrMalformedEntry = errors.New("mazefmt: malformed port entry")

	// ErrMalformedState indicates a path state literal that does not
	// match (x,y,Dd).
	ErrMalformedState = errors.New("mazefmt: malformed state literal")
)
