package shortcuts_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortline/shortcuts"
)

// buildMapping generates a deterministic random shortcut mapping of size n.
func buildMapping(n int) []int {
	r := rand.New(rand.NewSource(42))
	shortcut := make([]int, n)
	for i := range shortcut {
		shortcut[i] = r.Intn(n)
	}

	return shortcut
}

// BenchmarkDistances_Random solves a random instance: the expected workload.
func BenchmarkDistances_Random(b *testing.B) {
	const n = 100_000
	shortcut := buildMapping(n)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := shortcuts.Distances(shortcut); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDistances_SelfLoops solves the degenerate all-self mapping, where
// every injected push is discarded and only line traffic remains.
func BenchmarkDistances_SelfLoops(b *testing.B) {
	const n = 100_000
	shortcut := make([]int, n)
	for i := range shortcut {
		shortcut[i] = i
	}

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := shortcuts.Distances(shortcut); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDistances_AllToBack stresses staleness: every node shortcuts to
// the last node, which gets finalized at cost 1 and floods the queue with a
// backward walk that competes with the forward one.
func BenchmarkDistances_AllToBack(b *testing.B) {
	const n = 100_000
	shortcut := make([]int, n)
	for i := range shortcut {
		shortcut[i] = n - 1
	}

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := shortcuts.Distances(shortcut); err != nil {
			b.Fatal(err)
		}
	}
}
