// Package bfs provides layered breadth-first search over the knight's move graph,
// returning shortest distances and the complete predecessor relation.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/knightpaths/board"
)

// walker encapsulates mutable BFS state.
type walker struct {
	opts     Options
	frontier []board.Square
	res      *Result
}

// BFS runs a layered breadth-first search from start, applying any number of
// functional Options. Returns ErrInvalidStart for an off-board start,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(start board.Square, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := board.Validate(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}

	w := &walker{
		opts:     o,
		frontier: make([]board.Square, 0, board.Squares),
		res: &Result{
			Start: start,
			Order: make([]board.Square, 0, board.Squares),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
	}

	w.discover(start, 0, nil)
	w.res.Layers = append(w.res.Layers, w.frontier)

	return w.res, w.loop()
}

// discover marks sq at depth d, records its first predecessor and calls OnEnqueue.
func (w *walker) discover(sq board.Square, d int, from *board.Square) {
	i := sq.Index()
	w.res.depth[i] = d
	if from != nil {
		w.res.preds[i] = append(w.res.preds[i], *from)
	}
	w.res.Order = append(w.res.Order, sq)
	w.frontier = append(w.frontier, sq)
	w.opts.OnEnqueue(sq, d)
}

// loop expands one complete layer per iteration until the board is exhausted,
// the target's layer is finished, or MaxDepth is reached.
func (w *walker) loop() error {
	for depth := 0; ; depth++ {
		if w.done(depth) {
			return nil
		}
		layer := w.frontier
		w.frontier = make([]board.Square, 0, len(layer)*2)
		for _, sq := range layer {
			if err := w.expand(sq, depth); err != nil {
				return err
			}
		}
		if len(w.frontier) == 0 {
			return nil
		}
		w.res.Layers = append(w.res.Layers, w.frontier)
	}
}

// done reports whether no further layer should be expanded after depth.
func (w *walker) done(depth int) bool {
	if w.opts.HasTarget && w.res.depth[w.opts.Target.Index()] >= 0 {
		return true
	}
	return w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth
}

// expand visits sq and links each neighbor one layer deeper. A neighbor already
// discovered in that next layer gains sq as an additional predecessor.
func (w *walker) expand(sq board.Square, depth int) error {
	if err := w.opts.OnVisit(sq, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", sq, err)
	}
	next := depth + 1
	for _, nb := range board.Neighbors(sq) {
		switch w.res.depth[nb.Index()] {
		case -1:
			w.discover(nb, next, &sq)
		case next:
			w.res.preds[nb.Index()] = append(w.res.preds[nb.Index()], sq)
		}
	}
	return nil
}
