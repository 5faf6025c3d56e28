// Package mazebeaver searches for "repeated mazes" — port configurations
// over an infinitely tiled block grid — that maximize the length of the
// shortest path between a fixed start and goal terminal: a busy-beaver
// style optimization over a combinatorial maze space, paired with a
// shortest-path oracle.
//
// The module is organized into small, focused packages:
//
//	maze/      — the port store: three dense port tables, typed and
//	             flat-index access, clone, clear, bulk load, randomize
//	canon/     — canonical states, W/S→E/N folding, and the per-state
//	             neighbor enumerator on the infinite state graph
//	bfs/       — breadth-first shortest-path solver with parent links
//	iddfs/     — iterative-deepening DFS with a transposition table,
//	             plus the warm-started variant used by top-down search
//	normalize/ — canonical-form normalization, abstract terminal-class
//	             reachability, self-loop detection (the pruning filters)
//	quiz/      — the quizmaster: exhaustive, random, and top-down
//	             port-deletion search over the maze space
//	mazefmt/   — textual maze/path formats and inspection renderers
//
// The cmd/mazebeaver command wires these together behind the solve, norm,
// and search subcommands.
//
// Quick taste — the smallest maze with a path at all:
//
//	m, _ := mazefmt.Parse("normal: (none); nx: E0->E1; ny: (none)", 2)
//	res, _ := bfs.Solve(m)
//	// res.Length == 1, res.Path == Start -> Goal
//
// Everything is single-threaded and deterministic: seeded RNGs only, no
// global mutable state, cooperative cancellation via context.Context.
package mazebeaver
