// Package board defines squares, paths, and sentinel errors.
package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the number of ranks and files on the board.
	Size = 8
	// Squares is the number of distinct squares.
	Squares = Size * Size
)

// Sentinel errors for board operations.
var (
	// ErrInvalidSquare indicates a row or column outside 0..Size-1.
	ErrInvalidSquare = errors.New("board: square out of range")
	// ErrInvalidNotation indicates a string that is not a square in algebraic notation.
	ErrInvalidNotation = errors.New("board: invalid algebraic notation")
)

// Offsets lists the knight move vectors as (ΔRow, ΔCol). Do not modify.
var Offsets = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// Square is a board cell addressed by zero-based row (rank) and column (file).
type Square struct {
	Row, Col int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// Index maps the square to its row-major index Row*Size + Col.
// The result is meaningful only for valid squares.
func (s Square) Index() int {
	return s.Row*Size + s.Col
}

// FromIndex converts a row-major index back to a Square.
func FromIndex(i int) Square {
	return Square{Row: i / Size, Col: i % Size}
}

// String returns the algebraic name ("e4") of a valid square,
// or "(row,col)" for an off-board one.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{files[s.Col], ranks[s.Row]})
}

// SquareError reports an off-board coordinate.
type SquareError struct {
	Square Square
}

func (e *SquareError) Error() string {
	return fmt.Sprintf("%v: row=%d col=%d (want 0..%d)", ErrInvalidSquare, e.Square.Row, e.Square.Col, Size-1)
}

// Unwrap returns ErrInvalidSquare.
func (e *SquareError) Unwrap() error { return ErrInvalidSquare }

// NotationError reports malformed algebraic input.
type NotationError struct {
	Input  string
	Reason string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidNotation, e.Input, e.Reason)
}

// Unwrap returns ErrInvalidNotation.
func (e *NotationError) Unwrap() error { return ErrInvalidNotation }

// Path is an ordered sequence of squares where each consecutive pair is a knight move.
type Path []Square

// Moves returns the number of moves in p (len-1), or -1 for an empty path.
func (p Path) Moves() int {
	return len(p) - 1
}

// Reverse returns a reversed copy of p.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, sq := range p {
		out[len(p)-1-i] = sq
	}
	return out
}

// Valid reports whether p is non-empty, stays on the board,
// and every step is a knight move.
func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for i, sq := range p {
		if !sq.Valid() {
			return false
		}
		if i > 0 && !IsKnightMove(p[i-1], sq) {
			return false
		}
	}
	return true
}

// Equal reports whether p and q visit the same squares in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Key returns a compact identity for p, e.g. "e4-f6-h7".
func (p Path) Key() string {
	return p.join("-")
}

// String renders p as "e4 → f6 → h7".
func (p Path) String() string {
	return p.join(" → ")
}

// Strings returns the algebraic names of the squares in p.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, sq := range p {
		out[i] = sq.String()
	}
	return out
}

func (p Path) join(sep string) string {
	return strings.Join(p.Strings(), sep)
}
