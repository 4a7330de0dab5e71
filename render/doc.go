// Package render turns a knight.PathSet into output artifacts.
//
// What:
//
//   - WriteDOT:  Graphviz digraph with one cluster per path, start node green,
//     end node red.
//   - WritePNG:  the board with square labels and every path overlaid as a
//     coloured polyline between square centres, above a title and a
//     "Path N" legend strip.
//   - WriteGIF:  one frame per step of every path, the knight marker moving
//     along the route drawn so far. Frames are rendered one at a time and
//     all but the first store only the changed rectangle.
//   - WriteText, WriteJSON, WriteYAML: path listings.
//   - Files:     writes several formats next to each other, concurrently.
//
// Every writer renders the paths in PathSet.Sorted order, so output is
// reproducible for a given query. Writers never modify the PathSet.
//
// Errors:
//
//   - ErrEmptyPathSet:   the set has no paths.
//   - ErrInvalidOptions: non-positive square size or negative frame delay.
//   - ErrUnknownFormat:  ParseFormat received an unsupported name.
package render
