// Package bfs provides tunable options, error definitions and the result type
// for the layered knight-graph search.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knightpaths/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrInvalidStart is returned when the start square is off the board.
	ErrInvalidStart = errors.New("bfs: invalid start square")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a square outside the explored layers.
	ErrNotReached = errors.New("bfs: square not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced
// as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Target, when HasTarget is set, ends the search after the layer
	// that discovers it. Its depth and predecessors are final at that point.
	Target    board.Square
	HasTarget bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// OnEnqueue is called when a square is first discovered.
	OnEnqueue func(sq board.Square, depth int)

	// OnVisit is called when a square is expanded. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(sq board.Square, depth int) error

	err error
}

// DefaultOptions returns Options with no target, no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(board.Square, int) {},
		OnVisit:   func(board.Square, int) error { return nil },
	}
}

// WithTarget stops the search once the layer containing sq is complete.
func WithTarget(sq board.Square) Option {
	return func(o *Options) {
		if !sq.Valid() {
			o.err = fmt.Errorf("%w: target %v is off the board", ErrOptionViolation, sq)
			return
		}
		o.Target = sq
		o.HasTarget = true
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: do not discover squares deeper than d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback to run when a square is first discovered.
func WithOnEnqueue(fn func(sq board.Square, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a square is expanded;
// returning an error from it stops the BFS.
func WithOnVisit(fn func(sq board.Square, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a layered BFS.
// Per-square state lives in arenas indexed by board.Square.Index.
type Result struct {
	Start  board.Square
	Order  []board.Square
	Layers [][]board.Square

	depth [board.Squares]int
	preds [board.Squares][]board.Square
}

// Reached reports whether sq was discovered.
func (r *Result) Reached(sq board.Square) bool {
	return sq.Valid() && r.depth[sq.Index()] >= 0
}

// Depth returns the move distance from Start to sq, or -1 if sq was not reached.
func (r *Result) Depth(sq board.Square) int {
	if !sq.Valid() {
		return -1
	}
	return r.depth[sq.Index()]
}

// Predecessors returns a copy of every square at Depth(sq)-1 that moves to sq.
// It is empty for Start and for squares that were not reached.
func (r *Result) Predecessors(sq board.Square) []board.Square {
	if !sq.Valid() {
		return nil
	}
	p := r.preds[sq.Index()]
	out := make([]board.Square, len(p))
	copy(out, p)
	return out
}

// PathTo reconstructs one shortest path from Start to dest by following
// the first recorded predecessor of each square.
func (r *Result) PathTo(dest board.Square) (board.Path, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := board.Path{}
	for cur := dest; ; {
		path = append(path, cur)
		p := r.preds[cur.Index()]
		if len(p) == 0 {
			break
		}
		cur = p[0]
	}

	return path.Reverse(), nil
}
