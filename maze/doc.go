// Package maze owns the port configuration of a repeated (infinitely
// tiled) block maze: three dense port tables — normal, nx (west-edge),
// and ny (south-edge) blocks — plus typed and flat-index accessors,
// cloning, bulk load, and randomization.
//
// What
//
//   - A Maze is fully described by nterm (N, the per-direction terminal
//     count) and three port tables: Normal[(4N)^2], NX[N(N-1)], NY[N(N-1)].
//   - Typed accessors (Normal/NX/NY Get/Set) address a table by source and
//     destination terminal. Flat accessors (At/SetFlat/FlipFlat) address the
//     concatenated {normal || nx || ny} bit vector by a single index.
//   - Clone deep-copies a Maze; Clear zeros it in place; Load replaces the
//     flat vector from a caller-supplied byte slice.
//
// Why
//
//   - Decoupling "how a port is addressed" from "what explores it" lets the
//     canonicalization, normalization, and search packages all share one
//     storage representation without re-deriving index arithmetic.
//
// Complexity
//
//   - All operations are O(1) or O(P) in the port count P = (4N)^2 + 2N(N-1);
//     New, Clear, Clone, Load, Flat and Randomize are O(P); the typed and
//     flat single-slot accessors are O(1).
//
// Errors
//
//   - ErrInvalidNterm   if N < 2.
//   - ErrIndexOutOfRange from CheckFlatIndex if a flat index falls outside
//     [0, P). The typed and flat accessors do not validate their indices.
//   - ErrBadLoadLength  if Load is given a slice of the wrong length.
package maze
