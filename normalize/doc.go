// Package normalize implements the quizmaster's pruning pipeline: cheap
// self-loop detection, the abstract terminal-reachability filter, and
// canonical-form normalization (and its corollary, the is-normalized test).
//
// What
//
//   - IsSelfLoop identifies normal-block ports whose source and destination
//     terminal coincide (Ti->Ti); these can never contribute to a path and
//     are excluded from the quizmaster's candidate-port set.
//   - AbstractReachable collapses the maze to a 2N-node terminal-class
//     graph and runs a word-wise bitmask BFS to test whether the goal
//     class is reachable from the start class — a necessary, not
//     sufficient, condition for the goal to be reachable in the full
//     maze, used only as a sound reject-on-false filter.
//   - Normalize produces the canonical representative of a maze under the
//     (E/W-index permutation with 0,1 fixed) x (free N/S-index
//     permutation) symmetry; IsNormalized tests membership.
//
// Why
//
//   - These filters form the quizmaster's short-circuit pipeline
//     (normalize check, then reachability, then solve), run once per
//     candidate maze — so each must be cheap: no allocation-heavy generic
//     graph type belongs here. AbstractReachable in particular runs in
//     the innermost loop of exhaustive/top-down search (potentially
//     millions of times per run), which is why it is a bitmask BFS over
//     per-node uint64 adjacency words rather than a reuse of a generic
//     graph traversal.
//
// Complexity
//
//   - IsSelfLoop: O(1).
//   - AbstractReachable: O(P) to build the class adjacency plus O(N) BFS,
//     where P is the port count; supports N <= 32 (2N <= 64 bits).
//   - Normalize: O(P), linear in the port count.
package normalize
