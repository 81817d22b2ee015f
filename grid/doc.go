// Package grid provides Grid[T], a fixed-size rectangular container of cells
// addressed by geom.Position, for puzzle solvers that parse a text board once
// and then query it many times.
//
// What:
//
//   - New / MustNew build a grid from row-major [][]T; rows[x][y] lands at {x, y}.
//   - At and AtMut treat out-of-range positions as absent (ok == false), never as errors.
//   - Neighbours returns the in-bounds king-move cells in geom.KingOffsets order.
//     NeighboursConn(p, Conn4) restricts to N, E, S, W.
//   - All, AllMut and Positions traverse row-major and restart on every call.
//   - Adjacency builds position → neighbour-set maps for cells selected by a predicate.
//
// Shape:
//
//   - The empty outer slice is the 0×0 grid.
//   - Size is (rows, len(row 0)); every row has that length.
//   - There is no resize: a different shape needs a new Grid.
//
// Complexity:
//
//   - New, Map:             O(R×C), Memory: O(R×C).
//   - At, AtMut, InBounds:  O(1).
//   - Neighbours:           O(8).
//   - Adjacency:            O(R×C×8).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths. MustNew panics with it.
//
// Concurrency:
//
//	A Grid has no internal locking. Concurrent readers are fine; any writer
//	(AtMut, AllMut) needs external synchronization.
package grid
