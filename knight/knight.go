// Package knight implements the shortest knight path enumerator.
package knight

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/knightpaths/bfs"
	"github.com/katalvlaran/knightpaths/board"
	"github.com/katalvlaran/knightpaths/dfs"
)

// ErrInvariantViolation is the panic value (wrapped) raised when the search
// breaks an assumption that holds for every pair of squares on the empty board.
var ErrInvariantViolation = errors.New("knight: internal invariant violated")

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithLogger sets the logger used for debug traces. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Enumerator) {
		if l != nil {
			e.logger = l
		}
	}
}

// Enumerator computes PathSets. It holds no per-query state.
type Enumerator struct {
	logger *zap.Logger
}

// New returns an Enumerator configured by opts.
func New(opts ...Option) *Enumerator {
	e := &Enumerator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEnumerator = New()

// Enumerate returns all shortest knight paths from start to end using a
// no-op logger. See (*Enumerator).Enumerate.
func Enumerate(start, end board.Square) (PathSet, error) {
	return defaultEnumerator.Enumerate(start, end)
}

// Distance returns the knight distance between two squares.
func Distance(start, end board.Square) (int, error) {
	if err := validate(start, end); err != nil {
		return 0, err
	}
	res, err := bfs.BFS(start, bfs.WithTarget(end))
	if err != nil {
		invariant("bfs from %v: %v", start, err)
	}
	if !res.Reached(end) {
		invariant("%v unreachable from %v", end, start)
	}
	return res.Depth(end), nil
}

// Enumerate returns the complete set of minimum-length knight paths from start
// to end. Off-board squares yield a *board.SquareError.
func (e *Enumerator) Enumerate(start, end board.Square) (PathSet, error) {
	if err := validate(start, end); err != nil {
		return PathSet{}, err
	}
	ps := PathSet{Start: start, End: end}

	if start == end {
		ps.Paths = []board.Path{{start}}
		e.logger.Debug("start equals end", zap.Stringer("square", start))
		return ps, nil
	}

	res, err := bfs.BFS(start, bfs.WithTarget(end))
	if err != nil {
		invariant("bfs from %v: %v", start, err)
	}
	if !res.Reached(end) {
		invariant("%v unreachable from %v", end, start)
	}
	moves := res.Depth(end)
	e.logger.Debug("bfs complete",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("moves", moves),
		zap.Int("explored", len(res.Order)),
	)

	seen := make(map[string]struct{})
	paths, err := dfs.Paths(res, start, end, dfs.WithOnPath(func(p board.Path) error {
		if p.Moves() != moves {
			return fmt.Errorf("path %v has %d moves, want %d", p, p.Moves(), moves)
		}
		k := p.Key()
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate path %v", p)
		}
		seen[k] = struct{}{}
		return nil
	}))
	if err != nil {
		invariant("reconstruct %v → %v: %v", start, end, err)
	}
	if len(paths) == 0 {
		invariant("no path %v → %v", start, end)
	}
	ps.Paths = paths

	e.logger.Debug("paths enumerated",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("count", len(paths)),
	)
	return ps, nil
}

func validate(start, end board.Square) error {
	if err := board.Validate(start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := board.Validate(end); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	return nil
}

func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...))
}
