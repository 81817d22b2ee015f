package grid

import "github.com/katalvlaran/aockit/geom"

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional (king move) connectivity in geom.KingOffsets order.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity in geom.Directions order: N, E, S, W.
	Conn4
)

// Cell pairs a payload with the Position it occupies. Position is assigned
// by the owning Grid at construction and never changes.
type Cell[T any] struct {
	Value    T
	Position geom.Position
}

// Grid is a fixed-size rectangular arrangement of cells, addressed as
// rows[Position.X][Position.Y]. It cannot be resized.
// The zero value is an empty 0×0 grid.
type Grid[T any] struct {
	rows [][]Cell[T]
}
