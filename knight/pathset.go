package knight

import (
	"slices"

	"github.com/katalvlaran/knightpaths/board"
)

// PathSet is the complete collection of distinct shortest paths from Start to End.
type PathSet struct {
	Start board.Square
	End   board.Square
	Paths []board.Path
}

// Len returns the number of paths.
func (ps PathSet) Len() int {
	return len(ps.Paths)
}

// Moves returns the shared move count of the paths, or -1 for an empty set.
func (ps PathSet) Moves() int {
	if len(ps.Paths) == 0 {
		return -1
	}
	return ps.Paths[0].Moves()
}

// Contains reports whether p is a member of the set.
func (ps PathSet) Contains(p board.Path) bool {
	for _, q := range ps.Paths {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same endpoints and the same paths,
// regardless of order.
func (ps PathSet) Equal(other PathSet) bool {
	if ps.Start != other.Start || ps.End != other.End || len(ps.Paths) != len(other.Paths) {
		return false
	}
	seen := make(map[string]int, len(ps.Paths))
	for _, p := range ps.Paths {
		seen[p.Key()]++
	}
	for _, p := range other.Paths {
		k := p.Key()
		if seen[k] == 0 {
			return false
		}
		seen[k]--
	}
	return true
}

// Reverse returns the set of reversed paths, running from End to Start.
func (ps PathSet) Reverse() PathSet {
	out := PathSet{Start: ps.End, End: ps.Start, Paths: make([]board.Path, len(ps.Paths))}
	for i, p := range ps.Paths {
		out.Paths[i] = p.Reverse()
	}
	return out
}

// Sort orders the paths lexicographically by square index, in place,
// giving adapters a deterministic rendering order.
func (ps PathSet) Sort() {
	slices.SortFunc(ps.Paths, compare)
}

// Sorted returns a sorted copy of the set.
func (ps PathSet) Sorted() PathSet {
	out := PathSet{Start: ps.Start, End: ps.End, Paths: slices.Clone(ps.Paths)}
	out.Sort()
	return out
}

// compare orders two paths element-by-element by square index, shorter first on a tie.
func compare(a, b board.Path) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if d := a[i].Index() - b[i].Index(); d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}
