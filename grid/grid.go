package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aockit/geom"
)

// New builds a Grid from row-major values, assigning rows[x][y] the Position
// {x, y}. The grid takes ownership of the input; callers should not keep
// mutating the slices. An empty outer slice yields the empty 0×0 grid.
// Returns ErrNonRectangular if any row length differs from row 0.
// Complexity: O(R×C) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return &Grid[T]{}, nil
	}
	w := len(rows[0])
	for x, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, x, len(row), w)
		}
	}
	cells := make([][]Cell[T], len(rows))
	for x, row := range rows {
		cells[x] = make([]Cell[T], w)
		for y, v := range row {
			cells[x][y] = Cell[T]{Value: v, Position: geom.Position{X: int64(x), Y: int64(y)}}
		}
	}

	return &Grid[T]{rows: cells}, nil
}

// MustNew is like New but panics on non-rectangular input. Ragged rows are a
// programming error in the caller's parser, not a condition to recover from.
func MustNew[T any](rows [][]T) *Grid[T] {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Map returns a grid with g's shape whose payloads are fn applied to g's cells.
func Map[T, U any](g *Grid[T], fn func(Cell[T]) U) *Grid[U] {
	out := &Grid[U]{rows: make([][]Cell[U], len(g.rows))}
	for x, row := range g.rows {
		out.rows[x] = make([]Cell[U], len(row))
		for y, c := range row {
			out.rows[x][y] = Cell[U]{Value: fn(c), Position: c.Position}
		}
	}
	return out
}

// Count returns how many cells of g have a payload satisfying pred.
func Count[T any](g *Grid[T], pred func(T) bool) int {
	n := 0
	for c := range g.All() {
		if pred(c.Value) {
			n++
		}
	}
	return n
}

// Size returns (rows, columns of row 0), or (0,0) for an empty grid.
func (g *Grid[T]) Size() geom.Position {
	if len(g.rows) == 0 {
		return geom.Origin
	}
	return geom.Position{X: int64(len(g.rows)), Y: int64(len(g.rows[0]))}
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	s := g.Size()
	return int(s.X * s.Y)
}

// InBounds reports whether p addresses a cell of g.
// Row 0's length is the canonical width; construction guarantees all rows match.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p geom.Position) bool {
	return p.X >= 0 && p.Y >= 0 &&
		p.X < int64(len(g.rows)) && p.Y < int64(len(g.rows[0]))
}

// At returns a copy of the cell at p. ok is false when p is out of bounds.
func (g *Grid[T]) At(p geom.Position) (c Cell[T], ok bool) {
	if !g.InBounds(p) {
		return c, false
	}
	return g.rows[p.X][p.Y], true
}

// AtMut returns a pointer to the cell at p so its Value can be changed in
// place. Callers must not alter Position. ok is false when p is out of bounds.
func (g *Grid[T]) AtMut(p geom.Position) (c *Cell[T], ok bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.rows[p.X][p.Y], true
}

// Neighbours returns the in-bounds cells one king move from p, in
// geom.KingOffsets order. The result has at most 8 entries.
func (g *Grid[T]) Neighbours(p geom.Position) []Cell[T] {
	out := make([]Cell[T], 0, len(geom.KingOffsets))
	for _, d := range geom.KingOffsets {
		if c, ok := g.At(p.Add(d)); ok {
			out = append(out, c)
		}
	}
	return out
}

// NeighboursConn returns the in-bounds neighbours of p under conn.
// Conn8 matches Neighbours; Conn4 yields N, E, S, W in that order.
func (g *Grid[T]) NeighboursConn(p geom.Position, conn Connectivity) []Cell[T] {
	if conn != Conn4 {
		return g.Neighbours(p)
	}
	out := make([]Cell[T], 0, 4)
	for d := range geom.Directions() {
		if c, ok := g.At(p.Add(d.AdvanceBy())); ok {
			out = append(out, c)
		}
	}
	return out
}

// All yields every cell in row-major order: row 0 left to right, then row 1.
// Each call starts a fresh traversal.
func (g *Grid[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for _, row := range g.rows {
			for _, c := range row {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// AllMut is All with pointers into the grid, for in-place payload updates.
// Do not interleave it with other access to the same cells.
func (g *Grid[T]) AllMut() iter.Seq[*Cell[T]] {
	return func(yield func(*Cell[T]) bool) {
		for x := range g.rows {
			for y := range g.rows[x] {
				if !yield(&g.rows[x][y]) {
					return
				}
			}
		}
	}
}

// Positions yields every in-bounds position in row-major order.
func (g *Grid[T]) Positions() iter.Seq[geom.Position] {
	return func(yield func(geom.Position) bool) {
		for c := range g.All() {
			if !yield(c.Position) {
				return
			}
		}
	}
}
