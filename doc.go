// Package knightpaths finds every shortest knight path between two squares
// of a standard 8×8 chessboard.
//
// 🚀 What is knightpaths?
//
//	A small, dependency-light toolkit that brings together:
//		• Board primitives: squares, algebraic notation, knight geometry
//		• Traversals: layered BFS with all predecessors, DFS path reconstruction
//		• Enumeration: the complete set of minimum-length paths (knight.Enumerate)
//		• Renderers: Graphviz DOT, PNG board, animated GIF, JSON, YAML, text
//		• CLI: knightpaths -s e4 -e h7
//
// Packages:
//
//	board/      Square, Path, notation, neighbours, all-pairs distance table
//	bfs/        multi-predecessor breadth-first search over the knight graph
//	dfs/        exhaustive path enumeration over a predecessor relation
//	knight/     Enumerator and PathSet, the public entry point
//	render/     output adapters for a PathSet
//	cmd/        the knightpaths command
//
// Quick example (e4 → h7, two moves):
//
//	8 . . . . . . . .
//	7 . . . . . . . E
//	6 . . . . . x . .
//	5 . . . . . . x .
//	4 . . . . S . . .
//	  a b c d e f g h
//
//	e4 → f6 → h7
//	e4 → g5 → h7
//
//	go install github.com/katalvlaran/knightpaths/cmd/knightpaths@latest
package knightpaths
