// Package bfs runs breadth-first search from canon.Start to canon.Goal on
// the (infinite) canonical state graph of a maze.Maze.
//
// What
//
//   - Classic BFS: an ordered FIFO frontier plus a visited table mapping
//     each discovered state to its parent, implemented as an
//     open-addressing hash (canon.StateMap) keyed by a fixed-seed FNV-1a
//     hash over the state's four integer fields.
//   - Terminates the moment Goal is dequeued; reconstructs the path by
//     walking parent links back to Start.
//   - Solve returns Result{Found: false} (length -1) when the frontier
//     empties without ever reaching Goal — an expected outcome, not an
//     error.
//
// Why
//
//   - Many interesting mazes have small reachable neighborhoods, where
//     BFS's simplicity beats IDDFS's iterative restarts; the quizmaster
//     picks whichever of bfs/iddfs fits its workload.
//
// Complexity
//
//   - O(V) states discovered, O(fan-out) work each, where V is the number
//     of states discovered before Goal is dequeued. When Goal is
//     unreachable and the reachable subgraph is infinite, Solve does not
//     terminate unless its context is cancelled.
package bfs
