package knight_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/knightpaths/board"
	"github.com/katalvlaran/knightpaths/knight"
)

var sq = board.MustParseSquare

func pathKeys(ps knight.PathSet) []string {
	out := make([]string, len(ps.Paths))
	for i, p := range ps.Paths {
		out[i] = p.Key()
	}
	return out
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestEnumerate_Scenarios pins move counts and path counts for known pairs.
func TestEnumerate_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		start, end board.Square
		moves      int
		count      int
	}{
		{"CornerToCorner", board.Square{Row: 0, Col: 0}, board.Square{Row: 7, Col: 7}, 6, 108},
		{"E4ToH7", sq("e4"), sq("h7"), 2, 2},
		{"D5ToG8", board.Square{Row: 4, Col: 3}, board.Square{Row: 7, Col: 6}, 2, 2},
		{"AdjacentOnRank", board.Square{Row: 0, Col: 0}, board.Square{Row: 0, Col: 1}, 3, 2},
		{"CornerDiagonal", sq("a1"), sq("b2"), 4, 10},
		{"AdjacentOnFile", sq("e4"), sq("e5"), 3, 12},
		{"SixRoutes", sq("e4"), sq("e7"), 3, 6},
		{"SingleMove", sq("e4"), sq("f6"), 1, 1},
		{"Identical", board.Square{Row: 3, Col: 3}, board.Square{Row: 3, Col: 3}, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := knight.Enumerate(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.count, ps.Len())
			assert.Equal(t, tc.moves, ps.Moves())
			assert.Equal(t, tc.start, ps.Start)
			assert.Equal(t, tc.end, ps.End)
		})
	}
}

// TestEnumerate_E4H7Members lists the exact routes of the documented sample.
func TestEnumerate_E4H7Members(t *testing.T) {
	ps, err := knight.Enumerate(sq("e4"), sq("h7"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"e4-f6-h7", "e4-g5-h7"}, pathKeys(ps))
}

// TestEnumerate_SameSquare returns exactly one zero-move path.
func TestEnumerate_SameSquare(t *testing.T) {
	for _, s := range board.AllSquares() {
		ps, err := knight.Enumerate(s, s)
		require.NoError(t, err)
		require.Equal(t, 1, ps.Len())
		assert.Equal(t, board.Path{s}, ps.Paths[0])
		assert.Equal(t, 0, ps.Moves())
	}
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestEnumerate_InvalidSquare rejects off-board input with the coordinate attached.
func TestEnumerate_InvalidSquare(t *testing.T) {
	cases := []struct {
		name       string
		start, end board.Square
		bad        board.Square
	}{
		{"StartRow", board.Square{Row: 8, Col: 0}, sq("a1"), board.Square{Row: 8, Col: 0}},
		{"EndCol", sq("a1"), board.Square{Row: 0, Col: -1}, board.Square{Row: 0, Col: -1}},
		{"BothOffStartReported", board.Square{Row: -3, Col: 2}, board.Square{Row: 9, Col: 9}, board.Square{Row: -3, Col: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := knight.Enumerate(tc.start, tc.end)
			require.ErrorIs(t, err, board.ErrInvalidSquare)
			var se *board.SquareError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.bad, se.Square)
			assert.Zero(t, ps.Len())
		})
	}
	_, err := knight.Distance(board.Square{Row: 0, Col: 8}, sq("a1"))
	assert.ErrorIs(t, err, board.ErrInvalidSquare)
}

//----------------------------------------------------------------------------//
// Properties over every pair of squares
//----------------------------------------------------------------------------//

// TestEnumerate_AllPairs checks, for all 4096 pairs, that paths share the
// Floyd–Warshall distance, are valid knight walks with correct endpoints,
// never repeat a square, and are pairwise distinct.
func TestEnumerate_AllPairs(t *testing.T) {
	dist := board.DistanceTable()
	for _, a := range board.AllSquares() {
		for _, b := range board.AllSquares() {
			ps, err := knight.Enumerate(a, b)
			require.NoError(t, err)
			require.NotZero(t, ps.Len(), "%v→%v", a, b)

			want := dist[a.Index()][b.Index()]
			seen := make(map[string]bool, ps.Len())
			for _, p := range ps.Paths {
				if p.Moves() != want {
					t.Fatalf("%v→%v: path %v has %d moves; want %d", a, b, p, p.Moves(), want)
				}
				if !p.Valid() || p[0] != a || p[len(p)-1] != b {
					t.Fatalf("%v→%v: bad path %v", a, b, p)
				}
				visited := make(map[board.Square]bool, len(p))
				for _, s := range p {
					if visited[s] {
						t.Fatalf("%v→%v: path %v revisits %v", a, b, p, s)
					}
					visited[s] = true
				}
				if seen[p.Key()] {
					t.Fatalf("%v→%v: duplicate path %v", a, b, p)
				}
				seen[p.Key()] = true
			}
		}
	}
}

// TestEnumerate_Complete compares against a brute-force enumeration of every
// knight walk of the shortest length, for a sample of pairs.
func TestEnumerate_Complete(t *testing.T) {
	pairs := [][2]string{{"a1", "h8"}, {"a1", "b2"}, {"e4", "e5"}, {"h1", "a8"}, {"c3", "f3"}}
	for _, pr := range pairs {
		a, b := sq(pr[0]), sq(pr[1])
		ps, err := knight.Enumerate(a, b)
		require.NoError(t, err)

		var brute []string
		var walk func(p board.Path)
		walk = func(p board.Path) {
			last := p[len(p)-1]
			if p.Moves() == ps.Moves() {
				if last == b {
					brute = append(brute, p.Key())
				}
				return
			}
			for _, nb := range board.Neighbors(last) {
				walk(append(p[:len(p):len(p)], nb))
			}
		}
		walk(board.Path{a})

		if diff := cmp.Diff(brute, pathKeys(ps), cmpopts.SortSlices(func(x, y string) bool { return x < y })); diff != "" {
			t.Errorf("%v→%v mismatch (-brute +enumerate):\n%s", a, b, diff)
		}
	}
}

// TestEnumerate_Idempotent returns equal sets on repeated calls.
func TestEnumerate_Idempotent(t *testing.T) {
	first, err := knight.Enumerate(sq("b1"), sq("g7"))
	require.NoError(t, err)
	second, err := knight.Enumerate(sq("b1"), sq("g7"))
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	if diff := cmp.Diff(pathKeys(first), pathKeys(second), cmpopts.SortSlices(func(x, y string) bool { return x < y })); diff != "" {
		t.Errorf("repeat mismatch:\n%s", diff)
	}
}

// TestEnumerate_Symmetry checks that reversing A→B gives exactly B→A.
func TestEnumerate_Symmetry(t *testing.T) {
	for _, a := range board.AllSquares() {
		for _, b := range []board.Square{sq("a1"), sq("d5"), sq("h7"), sq("g2")} {
			ab, err := knight.Enumerate(a, b)
			require.NoError(t, err)
			ba, err := knight.Enumerate(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab.Moves(), ba.Moves())
			require.True(t, ab.Reverse().Equal(ba), "%v↔%v", a, b)
		}
	}
}

// TestDistance agrees with the distance table.
func TestDistance(t *testing.T) {
	dist := board.DistanceTable()
	for _, a := range board.AllSquares() {
		for _, b := range board.AllSquares() {
			d, err := knight.Distance(a, b)
			require.NoError(t, err)
			if d != dist[a.Index()][b.Index()] {
				t.Fatalf("Distance(%v,%v) = %d; want %d", a, b, d, dist[a.Index()][b.Index()])
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Enumerator configuration and concurrency
//----------------------------------------------------------------------------//

// TestEnumerator_Logger emits debug traces to the injected logger.
func TestEnumerator_Logger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := knight.New(knight.WithLogger(zap.New(core)))

	_, err := e.Enumerate(sq("a1"), sq("b1"))
	require.NoError(t, err)
	entries := logs.FilterMessage("paths enumerated").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])

	_, err = e.Enumerate(sq("c3"), sq("c3"))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("start equals end").Len())

	assert.NotNil(t, knight.New(knight.WithLogger(nil)))
}

// TestEnumerator_Concurrent shares one Enumerator across goroutines.
func TestEnumerator_Concurrent(t *testing.T) {
	e := knight.New()
	want, err := e.Enumerate(sq("a1"), sq("h8"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Enumerate(sq("a1"), sq("h8"))
			if err != nil {
				errs <- err
				return
			}
			if !got.Equal(want) {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
