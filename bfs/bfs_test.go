package bfs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpaths/bfs"
	"github.com/katalvlaran/knightpaths/board"
)

var sq = board.MustParseSquare

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// off-board start
	_, err := bfs.BFS(board.Square{Row: 8, Col: 0})
	require.ErrorIs(t, err, bfs.ErrInvalidStart)
	require.ErrorIs(t, err, board.ErrInvalidSquare)

	// negative MaxDepth is a violation
	_, err = bfs.BFS(sq("a1"), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	// off-board target is a violation
	_, err = bfs.BFS(sq("a1"), bfs.WithTarget(board.Square{Row: 0, Col: -1}))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_FullBoard checks that an unbounded search covers all 64 squares
// with depths matching the Floyd–Warshall table.
func TestBFS_FullBoard(t *testing.T) {
	dist := board.DistanceTable()
	for _, start := range board.AllSquares() {
		res, err := bfs.BFS(start)
		require.NoError(t, err)
		require.Len(t, res.Order, board.Squares, "from %v", start)
		for _, s := range board.AllSquares() {
			if got, want := res.Depth(s), dist[start.Index()][s.Index()]; got != want {
				t.Fatalf("Depth(%v→%v) = %d; want %d", start, s, got, want)
			}
		}
	}
}

// TestBFS_LayersAreMonotone verifies Layers[d] holds exactly the squares at depth d.
func TestBFS_LayersAreMonotone(t *testing.T) {
	res, err := bfs.BFS(sq("a1"))
	require.NoError(t, err)
	assert.Len(t, res.Layers, 7) // depths 0..6
	total := 0
	for d, layer := range res.Layers {
		for _, s := range layer {
			assert.Equal(t, d, res.Depth(s), "square %v", s)
		}
		total += len(layer)
	}
	assert.Equal(t, board.Squares, total)
	assert.Equal(t, []board.Square{sq("a1")}, res.Layers[0])
	assert.ElementsMatch(t, []board.Square{sq("b3"), sq("c2")}, res.Layers[1])
}

// TestBFS_AllPredecessors ensures every shortest-path parent is recorded, not just the first.
func TestBFS_AllPredecessors(t *testing.T) {
	res, err := bfs.BFS(sq("e4"))
	require.NoError(t, err)

	// h7 is reached in two moves through both f6 and g5
	assert.Equal(t, 2, res.Depth(sq("h7")))
	assert.ElementsMatch(t, []board.Square{sq("f6"), sq("g5")}, res.Predecessors(sq("h7")))

	// every predecessor set is exactly the neighbours one layer closer
	for _, s := range board.AllSquares() {
		d := res.Depth(s)
		var want []board.Square
		for _, nb := range board.Neighbors(s) {
			if res.Depth(nb) == d-1 {
				want = append(want, nb)
			}
		}
		assert.ElementsMatch(t, want, res.Predecessors(s), "predecessors of %v", s)
	}
	assert.Empty(t, res.Predecessors(sq("e4")))
}

// TestBFS_Target stops after the layer that discovers the target.
func TestBFS_Target(t *testing.T) {
	res, err := bfs.BFS(sq("a1"), bfs.WithTarget(sq("b1")))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth(sq("b1")))
	assert.Len(t, res.Layers, 4)
	assert.False(t, res.Reached(sq("h8")), "search must not run past the target layer")
	assert.Len(t, res.Predecessors(sq("b1")), 2)

	// target equal to start needs no expansion at all
	res, err = bfs.BFS(sq("d4"), bfs.WithTarget(sq("d4")))
	require.NoError(t, err)
	assert.Equal(t, []board.Square{sq("d4")}, res.Order)
}

// TestBFS_MaxDepth limits discovery to the given depth.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(sq("d4"), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 9)
	for _, s := range res.Order {
		assert.LessOrEqual(t, res.Depth(s), 1)
	}

	res, err = bfs.BFS(sq("d4"), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, board.Squares, "0 means no limit")
}

// TestBFS_Hooks asserts that hooks fire once per square in layer order.
func TestBFS_Hooks(t *testing.T) {
	var enq, vis []string
	res, err := bfs.BFS(sq("a1"),
		bfs.WithTarget(sq("c1")),
		bfs.WithOnEnqueue(func(s board.Square, d int) { enq = append(enq, fmt.Sprintf("%v@%d", s, d)) }),
		bfs.WithOnVisit(func(s board.Square, d int) error { vis = append(vis, fmt.Sprintf("%v@%d", s, d)); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, len(res.Order), len(enq))
	assert.Equal(t, []string{"a1@0", "b3@1", "c2@1"}, vis)
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(sq("a1"), bfs.WithOnVisit(func(s board.Square, d int) error {
		if d == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestResult_PathTo covers trivial, regular and unreachable targets.
func TestResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(sq("a1"), bfs.WithTarget(sq("h8")))
	require.NoError(t, err)

	p, err := res.PathTo(sq("a1"))
	require.NoError(t, err)
	assert.Equal(t, board.Path{sq("a1")}, p)

	p, err = res.PathTo(sq("h8"))
	require.NoError(t, err)
	assert.Equal(t, 6, p.Moves())
	assert.True(t, p.Valid())
	assert.Equal(t, sq("a1"), p[0])

	limited, err := bfs.BFS(sq("a1"), bfs.WithMaxDepth(1))
	require.NoError(t, err)
	_, err = limited.PathTo(sq("h8"))
	assert.ErrorIs(t, err, bfs.ErrNotReached)
	assert.Equal(t, -1, limited.Depth(sq("h8")))
	assert.Equal(t, -1, limited.Depth(board.Square{Row: 99}))
}

// TestResult_PredecessorsCopy ensures callers cannot mutate internal state.
func TestResult_PredecessorsCopy(t *testing.T) {
	res, err := bfs.BFS(sq("e4"))
	require.NoError(t, err)
	p := res.Predecessors(sq("h7"))
	p[0] = sq("a1")
	assert.NotContains(t, res.Predecessors(sq("h7")), sq("a1"))
}
