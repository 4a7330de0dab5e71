// Package dfs enumerates every path encoded by a predecessor relation, such as
// the shortest-path DAG recorded by bfs.BFS.
//
// Key features:
//   - Paths(g, start, end, opts...): depth-first walk from end back to start,
//     branching over every predecessor; each finished branch is reversed into a
//     start→end board.Path.
//   - Hooks: OnPath is called for each completed path; an error aborts.
//   - Limits: WithLimit caps the number of paths returned.
//   - Cycle guard: a predecessor relation that loops back onto the current
//     branch is reported as ErrCycleDetected instead of recursing forever.
//
// Complexity:
//
//   - Time:   O(P × L) where P = number of paths and L = path length.
//   - Memory: O(L) recursion stack plus the returned paths.
//
// Options:
//
//   - WithOnPath(fn)   hook per completed path; error aborts enumeration.
//   - WithLimit(n)     stop after n paths (n > 0); 0 means unlimited.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrInvalidSquare     if start or end is off the board.
//   - ErrDeadEnd           if a square other than start has no predecessors.
//   - ErrCycleDetected     if the relation revisits a square on the current branch.
//   - ErrOptionViolation   for a negative limit.
//   - any error returned by OnPath.
package dfs
