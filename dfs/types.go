// Package dfs defines types, options and errors for predecessor-path enumeration.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knightpaths/board"
)

// Square states during enumeration.
const (
	White = iota // White: not on the current branch.
	Gray         // Gray: on the current branch (recursion stack).
)

var (
	// ErrGraphNil is returned when a nil PredecessorGraph is passed to Paths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrInvalidSquare indicates an off-board start or end square.
	ErrInvalidSquare = errors.New("dfs: invalid square")

	// ErrDeadEnd indicates a square other than start with no predecessors,
	// i.e. the relation does not connect end back to start.
	ErrDeadEnd = errors.New("dfs: predecessor chain does not reach start")

	// ErrCycleDetected indicates the relation loops back onto the current branch.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// PredecessorGraph exposes, for each square, the squares that lead into it.
// *bfs.Result satisfies it.
type PredecessorGraph interface {
	Predecessors(sq board.Square) []board.Square
}

// Option configures optional behavior of Paths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// OnPath, if non-nil, is invoked for each completed start→end path.
	// Returning an error aborts enumeration with that error.
	OnPath func(p board.Path) error

	// Limit, if > 0, stops enumeration after that many paths.
	Limit int

	err error
}

// DefaultOptions returns Options with no hook and no limit.
func DefaultOptions() Options {
	return Options{}
}

// WithOnPath installs fn as the per-path hook.
func WithOnPath(fn func(p board.Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithLimit caps the number of returned paths. 0 disables the cap.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}
