package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aockit/geom"
	"github.com/katalvlaran/aockit/grid"
)

// NeighboursSuite exercises neighbour queries on the 3×3 grid 1..9.
type NeighboursSuite struct {
	suite.Suite
	g *grid.Grid[int]
}

func TestNeighboursSuite(t *testing.T) {
	suite.Run(t, new(NeighboursSuite))
}

func (s *NeighboursSuite) SetupTest() {
	s.g = grid.MustNew([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
}

func sum(cells []grid.Cell[int]) int {
	total := 0
	for _, c := range cells {
		total += c.Value
	}
	return total
}

// TestCountsAndSums checks the centre, corners and an edge.
func (s *NeighboursSuite) TestCountsAndSums() {
	cases := []struct {
		p     geom.Position
		count int
		sum   int
	}{
		{geom.Position{X: 1, Y: 1}, 8, 40},
		{geom.Position{X: 0, Y: 0}, 3, 11},
		{geom.Position{X: 2, Y: 2}, 3, 19},
		{geom.Position{X: 0, Y: 1}, 5, 19},
	}
	for _, tc := range cases {
		ns := s.g.Neighbours(tc.p)
		s.Len(ns, tc.count, "Neighbours%v", tc.p)
		s.Equal(tc.sum, sum(ns), "Neighbours%v", tc.p)
	}
}

// TestOrder pins the fixed offset order for the centre cell.
func (s *NeighboursSuite) TestOrder() {
	var vals []int
	for _, c := range s.g.Neighbours(geom.Position{X: 1, Y: 1}) {
		vals = append(vals, c.Value)
	}
	s.Equal([]int{1, 2, 3, 4, 6, 7, 8, 9}, vals)

	vals = vals[:0]
	for _, c := range s.g.Neighbours(geom.Position{X: 0, Y: 1}) {
		vals = append(vals, c.Value)
	}
	s.Equal([]int{1, 3, 4, 5, 6}, vals)
}

// TestOutsideGrid queries positions just past the corners.
func (s *NeighboursSuite) TestOutsideGrid() {
	ns := s.g.Neighbours(geom.Position{X: -1, Y: -1})
	s.Require().Len(ns, 1)
	s.Equal(1, ns[0].Value)

	s.Empty(s.g.Neighbours(geom.Position{X: 5, Y: 5}))
}

// TestConn4 checks orthogonal neighbours in N, E, S, W order.
func (s *NeighboursSuite) TestConn4() {
	var vals []int
	for _, c := range s.g.NeighboursConn(geom.Position{X: 1, Y: 1}, grid.Conn4) {
		vals = append(vals, c.Value)
	}
	s.Equal([]int{2, 6, 8, 4}, vals)

	s.Len(s.g.NeighboursConn(geom.Position{X: 0, Y: 0}, grid.Conn4), 2)
	s.Equal(s.g.Neighbours(geom.Position{X: 2, Y: 1}), s.g.NeighboursConn(geom.Position{X: 2, Y: 1}, grid.Conn8))
}

func (s *NeighboursSuite) TestTraversalSum() {
	total := 0
	for c := range s.g.All() {
		total += c.Value
	}
	s.Equal(45, total)
}

// TestNeighbours_Counts checks interior, edge and corner counts on a 4×5 grid
// and that every neighbour is exactly one king move away.
func TestNeighbours_Counts(t *testing.T) {
	rows := make([][]int, 4)
	for x := range rows {
		rows[x] = make([]int, 5)
	}
	g := grid.MustNew(rows)
	size := g.Size()

	for p := range g.Positions() {
		onRowEdge := p.X == 0 || p.X == size.X-1
		onColEdge := p.Y == 0 || p.Y == size.Y-1
		want := 8
		switch {
		case onRowEdge && onColEdge:
			want = 3
		case onRowEdge || onColEdge:
			want = 5
		}

		ns := g.Neighbours(p)
		require.Len(t, ns, want, "Neighbours%v", p)
		for _, n := range ns {
			d := n.Position.Sub(p)
			require.Contains(t, geom.KingOffsets[:], d)
			require.True(t, g.InBounds(n.Position))
		}
	}
}
