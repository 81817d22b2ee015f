package grid

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/aockit/geom"
)

// Adjacency maps the position of every cell whose payload satisfies keep to
// the set of positions of its king-move neighbours that also satisfy keep.
// A kept cell with no kept neighbours maps to an empty set.
//
// Time:   O(R·C·8).
// Memory: O(K·8) for K kept cells.
func (g *Grid[T]) Adjacency(keep func(T) bool) map[geom.Position]mapset.Set[geom.Position] {
	adj := make(map[geom.Position]mapset.Set[geom.Position])
	for c := range g.All() {
		if !keep(c.Value) {
			continue
		}
		nbrs := mapset.New[geom.Position]()
		for _, n := range g.Neighbours(c.Position) {
			if keep(n.Value) {
				nbrs.Put(n.Position)
			}
		}
		adj[c.Position] = nbrs
	}
	return adj
}
