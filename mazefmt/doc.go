// Package mazefmt converts mazes and paths to and from their textual
// formats, and renders the human-readable inspection views.
//
// What
//
//   - Parse / ParseAuto / Print: the canonical three-section maze format
//     (`normal: E0->N1; nx: E0->E1; ny: (none)`), with deterministic
//     emission order and the boundary's parse-tolerance rules (missing
//     sections are empty; out-of-range and edge-self-loop entries are
//     dropped silently; malformed tokens are errors).
//   - ParsePath / PrintPath / PrintState: arrow-separated canonical state
//     literals, e.g. `(0,1,E0) -> (1,1,N0) -> (0,1,E1)`.
//   - RenderMatrix: port tables as `*`/`.` matrices, rows = sources.
//   - RenderVerbosePath: each path step annotated with the block and port
//     it traverses.
//
// The package is a boundary collaborator: it consumes maze and path values
// and emits text; no core package depends on it.
package mazefmt
