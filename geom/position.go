package geom

import "fmt"

// Position is a discrete 2D coordinate. X addresses the row (outer) dimension
// and Y the column (inner) dimension. Negative components are valid values
// but never resolve to a grid cell.
type Position struct {
	X, Y int64
}

// Origin is the zero Position.
var Origin = Position{}

// KingOffsets lists the eight unit offsets around a cell. Grid neighbour
// queries follow this order, so callers may rely on it for tie-breaking.
var KingOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Add returns the componentwise sum p + q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by k.
func (p Position) Scale(k int64) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Scale returns p multiplied by k. It mirrors Position.Scale for call sites
// that put the scalar first.
func Scale(k int64, p Position) Position {
	return p.Scale(k)
}

// Wrap reduces v componentwise by the Euclidean remainder modulo p:
// X = v.X mod p.X and Y = v.Y mod p.Y, both in [0, |p|).
// The receiver is the modulus; v is the value being wrapped.
// A zero component in p panics with an integer divide by zero.
func (p Position) Wrap(v Position) Position {
	return Position{X: remEuclid(v.X, p.X), Y: remEuclid(v.Y, p.Y)}
}

// Neighbours returns the eight positions one king move away from p, in
// KingOffsets order. No bounds are applied.
func (p Position) Neighbours() [8]Position {
	var out [8]Position
	for i, d := range KingOffsets {
		out[i] = p.Add(d)
	}
	return out
}

// Less reports whether p orders before q.
func (p Position) Less(q Position) bool {
	return Compare(p, q) < 0
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Compare orders positions lexicographically, X first then Y.
// It returns -1, 0 or +1 and fits slices.SortFunc.
func Compare(a, b Position) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// remEuclid returns a mod b in [0, |b|).
func remEuclid(a, b int64) int64 {
	r := a % b
	if r < 0 {
		if b < 0 {
			return r - b
		}
		return r + b
	}
	return r
}
