// Package quiz probes the repeated-maze space for the port configuration
// whose shortest start-to-goal path is longest — the busy-beaver objective
// — via three search strategies sharing one prune-and-solve pipeline.
//
// What
//
//   - Exhaustive enumerates every k-subset of the candidate ports (all
//     flat indices that are not normal-block self-loops) for k in the
//     configured budget, in lexicographic next-combination order.
//   - Random samples candidate subsets of random size with a seeded,
//     deterministic RNG until cancelled.
//   - TopDown starts fully connected and walks single-port deletions,
//     bucketed best-first by current shortest-path length, with a seen set
//     of normalized port vectors collapsing symmetric twins.
//
// Pipeline
//
//   - Pruning short-circuits in order: canonical-form check (exhaustive
//     only), abstract terminal-class reachability, then a length-only
//     solve (IDDFS by default, BFS via WithBFS). TopDown warm-starts the
//     IDDFS at the parent's length, since deletion never shortens a path.
//
// Cancellation and results
//
//   - Cancellation is cooperative: the loops poll ctx between iterations
//     and return the best found so far, never an error. A nil *Best is the
//     normal "no valid maze found" result. The returned Best owns a clone
//     of the winning maze; the caller is free to retain or mutate it.
package quiz
