// Package bfs provides a layered breadth-first search over the knight's move
// graph that records every shortest-path predecessor of each square.
//
// What
//
//   - Explore squares frontier by frontier (non-decreasing move count) from a start square.
//   - Returns a Result containing:
//   - Order:  discovery sequence
//   - Layers: the squares of each frontier, Layers[d] at distance d
//   - Depth:  distance (moves) from start, -1 when unreached
//   - Predecessors: ALL squares at depth-1 that reach the square in one move
//   - Supports functional hooks:
//   - OnEnqueue (when a square is first discovered)
//   - OnVisit   (when a square is expanded; may abort with an error)
//   - Stops after the layer that discovers WithTarget, or at WithMaxDepth.
//
// Why
//
//   - A single parent pointer keeps one shortest path; the full predecessor
//     relation is the DAG of all shortest paths, which dfs.Paths enumerates.
//
// Layering
//
//	A square first discovered at depth d may be reached again by another square
//	of layer d-1 while that layer is still being expanded. That second parent is
//	appended to its predecessor set instead of being ignored. Because a layer is
//	expanded completely before the next one starts, the predecessor set of every
//	square in layer d is final once layer d-1 is done.
//
// Determinism
//
//	Neighbors are generated in board.Offsets order, so Order, Layers and the
//	order inside each predecessor set are reproducible.
//
// Complexity (V = 64 squares, E ≤ 8 per square)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) in fixed arenas indexed by board.Square.Index
//
// Usage
//
//	res, err := bfs.BFS(start, bfs.WithTarget(end))
//	if err != nil {
//	    // ErrInvalidStart, ErrOptionViolation, or a wrapped OnVisit error
//	}
//	fmt.Println(res.Depth(end), res.Predecessors(end))
//
// Errors
//
//   - ErrInvalidStart     if the start square is off the board (wraps board.ErrInvalidSquare).
//   - ErrOptionViolation  if an Option is invalid (negative depth, off-board target).
//   - ErrNotReached       from Result.PathTo for a square the search did not reach.
//   - Wrapped user-supplied OnVisit errors.
package bfs
