// Package dfs implements depth-first enumeration of all paths in a predecessor
// relation over board squares.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knightpaths/board"
)

// errLimit stops the walk once Options.Limit paths are collected.
var errLimit = errors.New("dfs: limit reached")

// walker encapsulates state during enumeration.
type walker struct {
	graph PredecessorGraph
	opts  Options
	start board.Square
	state [board.Squares]int
	stack board.Path // squares from end back to the current one
	out   []board.Path
}

// Paths returns every path from start to end described by g, walking the
// predecessor relation backwards from end. Each branch point multiplies the
// number of results; all branches are explored unless WithLimit is set.
// When start == end the single one-square path is returned.
func Paths(g PredecessorGraph, start, end board.Square, opts ...Option) ([]board.Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !start.Valid() || !end.Valid() {
		return nil, fmt.Errorf("%w: %v → %v", ErrInvalidSquare, start, end)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Walk
	w := &walker{graph: g, opts: o, start: start}
	if err := w.traverse(end); err != nil && !errors.Is(err, errLimit) {
		return nil, err
	}

	return w.out, nil
}

// traverse pushes sq onto the current branch and recurses into each predecessor.
func (w *walker) traverse(sq board.Square) error {
	i := sq.Index()
	if w.state[i] == Gray {
		return fmt.Errorf("%w at %v", ErrCycleDetected, sq)
	}
	w.state[i] = Gray
	w.stack = append(w.stack, sq)
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		w.state[i] = White
	}()

	if sq == w.start {
		return w.emit()
	}

	preds := w.graph.Predecessors(sq)
	if len(preds) == 0 {
		return fmt.Errorf("%w: %v has no predecessors", ErrDeadEnd, sq)
	}
	for _, p := range preds {
		if !p.Valid() {
			return fmt.Errorf("%w: predecessor %v of %v", ErrInvalidSquare, p, sq)
		}
		if err := w.traverse(p); err != nil {
			return err
		}
	}

	return nil
}

// emit records the current branch as a start→end path.
func (w *walker) emit() error {
	p := w.stack.Reverse()
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(p); err != nil {
			return fmt.Errorf("dfs: OnPath hook for %v: %w", p, err)
		}
	}
	w.out = append(w.out, p)
	if w.opts.Limit > 0 && len(w.out) >= w.opts.Limit {
		return errLimit
	}
	return nil
}
