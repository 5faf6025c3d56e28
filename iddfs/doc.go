// Package iddfs runs iterative-deepening depth-first search from
// canon.Start to canon.Goal on the canonical state graph of a maze.Maze,
// plus its warm-started variant used by top-down port-deletion search.
//
// What
//
//   - Solve tries successive depth limits L = 0, 1, 2, ... up to a
//     configurable ceiling (default 200), running a depth-limited DFS at
//     each limit.
//   - Within one depth limit, a transposition table (canon.StateMap[int])
//     records the shallowest depth at which each state has been reached
//     this iteration; a successor at depth d+1 is only admitted if it is
//     unseen, or was previously seen deeper than d+1 — in either case the
//     table is updated to d+1. This prunes redundant re-traversal while
//     still letting the DFS revisit a state reached more cheaply via a
//     different frontier.
//   - The transposition table is rebuilt from scratch (re-seeding Start at
//     depth 0) on every new depth limit: a state's admissibility at
//     L=10 says nothing about L=11, where a cheaper path to it may now
//     exist.
//   - SolveFrom begins the outer loop at a caller-supplied lower bound
//     instead of 0, for top-down port-deletion search: deleting a port can
//     only lengthen (never shorten) the shortest path, so every L below
//     the maze's previous shortest-path length is provably empty.
//
// Why
//
//   - IDDFS bounds memory on the (infinite) canonical state graph where
//     BFS's frontier could grow unboundedly; the per-iteration
//     transposition table is the mechanism that keeps a single
//     depth-limited DFS pass from being exponentially redundant.
//
// Complexity
//
//   - Bounded by the depth ceiling: O(ceiling * branching^ceiling) worst
//     case, dominated in practice by however quickly Goal or exhaustion is
//     detected; per-iteration table lookups are O(1) amortized.
package iddfs
