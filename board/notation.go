package board

import (
	"fmt"
	"strings"
)

const (
	files = "abcdefgh"
	ranks = "12345678"
)

// ParseSquare converts algebraic notation such as "e4" (or "E4") into a Square.
// Surrounding whitespace is ignored. Any other input returns a *NotationError.
func ParseSquare(s string) (Square, error) {
	in := strings.TrimSpace(s)
	if len(in) != 2 {
		return Square{}, &NotationError{Input: s, Reason: fmt.Sprintf("want 2 characters, got %d", len(in))}
	}
	col := strings.IndexByte(files, lower(in[0]))
	if col < 0 {
		return Square{}, &NotationError{Input: s, Reason: fmt.Sprintf("file %q not in a-h", in[0])}
	}
	row := strings.IndexByte(ranks, in[1])
	if row < 0 {
		return Square{}, &NotationError{Input: s, Reason: fmt.Sprintf("rank %q not in 1-8", in[1])}
	}
	return Square{Row: row, Col: col}, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// Intended for constants in tests and examples.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
