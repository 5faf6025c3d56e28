// Package canon maps block-local terminals of a maze.Maze to canonical
// states and enumerates, for any canonical state, its successor set on the
// (infinite) canonical state graph.
//
// What
//
//   - A canonical state is a 4-tuple (x, y, d, i) naming a physical
//     boundary point shared by up to two blocks, per the W/S→E/N folding
//     rule: a canonical state never carries Dir W or S.
//   - BlockKind classifies a lattice position (x, y) as Normal, NX (west
//     edge, x=0), or NY (south edge, y=0); (0,0) is never a valid block.
//   - Neighbors enumerates every state reachable from s in one port
//     traversal, by consulting the up-to-two blocks incident to s's
//     physical point and folding each admissible destination terminal back
//     to canonical form.
//
// Why
//
//   - Three block kinds differ only in which terminals exist and which
//     port table to consult; modeling this as a three-way switch on
//     BlockKind (rather than a subtype hierarchy) keeps the enumerator a
//     single, inlinable function.
//
// Complexity
//
//   - Neighbors is O(N) per incident block, so O(N) total (at most two
//     blocks), with an upper fan-out bound of 8N.
package canon
