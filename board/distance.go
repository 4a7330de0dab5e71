package board

import "sync"

// Unreachable marks a pair with no knight route in a distance table.
// It never appears for the empty 8×8 board.
const Unreachable = 1 << 30

var (
	distOnce  sync.Once
	distTable [Squares][Squares]int
)

// DistanceTable returns the knight distance between every pair of squares,
// indexed by Square.Index. The table is computed once with Floyd–Warshall
// over the move graph and returned by value, so callers may modify their copy.
// Complexity: O(64³) on first call, O(64²) afterwards.
func DistanceTable() [Squares][Squares]int {
	distOnce.Do(func() {
		distTable = floydWarshall()
	})
	return distTable
}

// Distance returns the knight distance between a and b using DistanceTable.
func Distance(a, b Square) (int, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}
	t := DistanceTable()
	return t[a.Index()][b.Index()], nil
}

func floydWarshall() [Squares][Squares]int {
	var d [Squares][Squares]int

	// Stage 1: unit edges, zero diagonal, Unreachable elsewhere
	for i := 0; i < Squares; i++ {
		for j := 0; j < Squares; j++ {
			d[i][j] = Unreachable
		}
		d[i][i] = 0
		for _, nb := range Neighbors(FromIndex(i)) {
			d[i][nb.Index()] = 1
		}
	}

	// Stage 2: relax every pair through every intermediate square
	var i, j, k int
	for k = 0; k < Squares; k++ {
		for i = 0; i < Squares; i++ {
			if d[i][k] == Unreachable {
				continue
			}
			for j = 0; j < Squares; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}
