// Package aockit is a small toolkit for daily grid puzzles: parse a text
// board once, then walk and query it with value-typed coordinates.
//
// What is in the box?
//
//	• geom/    - Position (row, column) arithmetic, Direction and Move enums
//	• grid/    - Grid[T]: bounds-safe lookup, 8/4-neighbour queries, row-major iterators
//	• numeric/ - Gcd, Lcm and ranged triangular sums
//
// Everything is synchronous, allocation-light and free of I/O. Callers own
// reading input and printing answers.
//
// Quick ASCII example:
//
//	    (0,0)(0,1)(0,2)
//	    (1,0)[1,1](1,2)     Neighbours({1,1}) visits the ring
//	    (2,0)(2,1)(2,2)     in KingOffsets order, row by row.
//
//	go get github.com/katalvlaran/aockit
package aockit
