package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfinder/search"
)

// benchmarkStrategy runs s on a fixed 200×200 random grid.
// Complexity: O(V + E) for BFS/DFS, O((V + E) log E) for UCS/AStar.
func benchmarkStrategy(b *testing.B, s search.Strategy) {
	r := rand.New(rand.NewSource(42))
	g := randomGrid(r, 200, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(g, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_BFS(b *testing.B)   { benchmarkStrategy(b, search.BFS) }
func BenchmarkSearch_DFS(b *testing.B)   { benchmarkStrategy(b, search.DFS) }
func BenchmarkSearch_UCS(b *testing.B)   { benchmarkStrategy(b, search.UCS) }
func BenchmarkSearch_AStar(b *testing.B) { benchmarkStrategy(b, search.AStar) }

// BenchmarkPriorityFrontier measures push/pop throughput with many ties.
func BenchmarkPriorityFrontier(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f := search.NewPriorityFrontier()
		for id := 0; id < 1024; id++ {
			f.Add(id, float64(id%16))
		}
		for !f.IsEmpty() {
			_, _ = f.Pop()
		}
	}
}
