// Package board provides the knight's move geometry over the 8×8 board.
package board

// Validate returns a *SquareError wrapping ErrInvalidSquare when sq is off the board.
func Validate(sq Square) error {
	if !sq.Valid() {
		return &SquareError{Square: sq}
	}
	return nil
}

// Neighbors returns the squares one knight move away from sq, in Offsets order.
// Off-board targets are dropped. An off-board sq has no neighbors.
// Complexity: O(1).
func Neighbors(sq Square) []Square {
	if !sq.Valid() {
		return nil
	}
	out := make([]Square, 0, len(Offsets))
	for _, d := range Offsets {
		nb := Square{Row: sq.Row + d[0], Col: sq.Col + d[1]}
		if !nb.Valid() {
			continue
		}
		out = append(out, nb)
	}
	return out
}

// IsKnightMove reports whether a and b are both on the board
// and differ by exactly one knight offset.
func IsKnightMove(a, b Square) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	dr, dc := abs(b.Row-a.Row), abs(b.Col-a.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// AllSquares returns the 64 squares in row-major order (a1, b1, ..., h8).
func AllSquares() []Square {
	out := make([]Square, Squares)
	for i := range out {
		out[i] = FromIndex(i)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
