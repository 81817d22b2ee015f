package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aockit/geom"
	"github.com/katalvlaran/aockit/grid"
)

func randomBools(n int) [][]bool {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]bool, n)
	for x := range rows {
		rows[x] = make([]bool, n)
		for y := range rows[x] {
			rows[x][y] = rng.Intn(2) == 1
		}
	}
	return rows
}

// BenchmarkNeighbours measures Neighbours over every cell of a 500×500 grid.
// Complexity: O(R×C×8)
func BenchmarkNeighbours(b *testing.B) {
	g := grid.MustNew(randomBools(500))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := range g.Positions() {
			_ = g.Neighbours(p)
		}
	}
}

// BenchmarkAdjacency measures Adjacency on a random 500×500 grid.
// Complexity: O(R×C×8)
func BenchmarkAdjacency(b *testing.B) {
	g := grid.MustNew(randomBools(500))
	keep := func(v bool) bool { return v }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Adjacency(keep)
	}
}

// BenchmarkAt measures a bounds-checked lookup that is out of range half the time.
func BenchmarkAt(b *testing.B) {
	g := grid.MustNew(randomBools(100))
	size := geom.Position{X: 200, Y: 200}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.At(size.Wrap(geom.Position{X: int64(i), Y: int64(i * 7)}))
	}
}
