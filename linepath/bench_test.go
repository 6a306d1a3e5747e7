package linepath_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortline/linepath"
)

// BenchmarkSolver_PureLine measures a full drain with no injected edges:
// the worst case for queue traffic from line relaxations alone.
func BenchmarkSolver_PureLine(b *testing.B) {
	const n = 100_000

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s, err := linepath.NewSolver(n)
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, ok := s.Pop(); !ok {
				break
			}
		}
	}
}

// BenchmarkSolver_RandomInjection measures a drain with one random extra
// edge injected per finalized node, the intended usage pattern. Edges are
// pregenerated with a fixed seed so every iteration solves the same graph.
func BenchmarkSolver_RandomInjection(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	extra := make([]int, n)
	for i := range extra {
		extra[i] = r.Intn(n)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s, err := linepath.NewSolver(n)
		if err != nil {
			b.Fatal(err)
		}
		for {
			c, ok := s.Pop()
			if !ok {
				break
			}
			s.Push(linepath.Candidate{Cost: c.Cost + 1, Position: extra[c.Position]})
		}
	}
}
