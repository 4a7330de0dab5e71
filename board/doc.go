// Package board models the empty 8×8 chessboard as the knight's move graph.
//
// What:
//
//   - Square addresses one of the 64 cells by zero-based (Row, Col).
//   - Offsets is the read-only table of the 8 knight vectors (±1,±2) and (±2,±1).
//   - Neighbors computes the knight targets of a square lazily, dropping
//     out-of-bounds targets, in Offsets order.
//   - Path is an ordered sequence of squares joined by knight moves.
//   - ParseSquare / Square.String convert between (Row, Col) and algebraic
//     notation (file a–h = Col, rank 1–8 = Row+1).
//   - DistanceTable returns all-pairs knight distances (Floyd–Warshall).
//
// Why:
//
//   - Fixed geometry lets search state live in arenas indexed by Square.Index
//     instead of maps, with no per-query graph construction.
//
// Complexity:
//
//   - Neighbors, IsKnightMove, Validate: O(1).
//   - DistanceTable: O(64³) once per process, O(64²) copy per call.
//
// Errors:
//
//   - ErrInvalidSquare: coordinate outside 0..7 (wrapped in *SquareError).
//   - ErrInvalidNotation: malformed algebraic input (wrapped in *NotationError).
package board
