package quiz

import (
	"log"

	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/maze"
)

// Best is the record returned by every search strategy: the best maze found
// (cloned — the caller owns it), its shortest-path length, and the path
// states. A nil *Best means the search found no maze with a valid path,
// which is a normal empty result, not an error.
type Best struct {
	Maze   *maze.Maze
	Length int
	Path   []canon.State
}

// Logger is the side output channel for progress lines and new-best
// announcements. It is an injected dependency so searches never write to a
// hardcoded destination.
type Logger interface {
	Logf(format string, args ...any)
}

// stdLogger adapts a *log.Logger to the Logger interface.
type stdLogger struct{ l *log.Logger }

func (s stdLogger) Logf(format string, args ...any) { s.l.Printf(format, args...) }

// NewStdLogger wraps l (or log.Default() when l is nil) as a Logger.
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}
	return stdLogger{l: l}
}

// Option configures a search via functional arguments.
type Option func(*options)

type options struct {
	nterm     int
	kMin      int
	kMax      int
	lengthCap int
	seed      int64
	useBFS    bool
	ceiling   int
	logger    Logger
}

func defaultOptions() options {
	return options{
		nterm:   2,
		kMin:    0,
		kMax:    -1, // -1 means "all candidates"
		ceiling: 0,  // 0 means the iddfs package default
		logger:  NewStdLogger(nil),
	}
}

// WithNterm sets N, the per-direction terminal count. Default 2.
func WithNterm(n int) Option {
	return func(o *options) { o.nterm = n }
}

// WithPortBudget bounds the number of active ports per candidate maze:
// exhaustive search enumerates k in [min, max], random search samples k
// uniformly from [min, max]. A max < 0 means "up to every candidate port".
func WithPortBudget(min, max int) Option {
	return func(o *options) { o.kMin, o.kMax = min, max }
}

// WithLengthCap terminates a search once a maze of at least this
// shortest-path length is found. Zero means no cap.
func WithLengthCap(n int) Option {
	return func(o *options) { o.lengthCap = n }
}

// WithSeed fixes the RNG seed for random sampling. Seed 0 selects a stable
// default, so results are reproducible either way.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithBFS selects the BFS solver instead of the default IDDFS. BFS is
// faster on mazes with small reachable sets but may not terminate on an
// infinite goal-free one; callers choose per workload.
func WithBFS() Option {
	return func(o *options) { o.useBFS = true }
}

// WithDepthCeiling overrides the IDDFS depth ceiling used for solves.
// Ignored under WithBFS.
func WithDepthCeiling(n int) Option {
	return func(o *options) { o.ceiling = n }
}

// WithLogger installs the side output channel. Default: stdlib log.Default().
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
