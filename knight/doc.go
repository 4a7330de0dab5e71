// Package knight enumerates every minimum-length knight route between two
// squares of the empty 8×8 board.
//
// Enumerate(start, end) validates both squares, short-circuits start == end to
// the single zero-move path, runs a layered bfs.BFS from start that stops once
// end's layer is complete, then expands the recorded predecessor relation with
// dfs.Paths. The returned PathSet is complete (no shortest path omitted),
// duplicate-free, and every member has the same number of moves.
//
// An Enumerator carries only immutable configuration (a logger). Each call
// builds its own search state, so one Enumerator may serve concurrent queries.
//
// Errors:
//
//   - *board.SquareError (errors.Is ErrInvalidSquare) for off-board input.
//
// A search that fails to connect two valid squares is impossible on the empty
// board; it is treated as a programming error and panics with
// ErrInvariantViolation.
package knight
