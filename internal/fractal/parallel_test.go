package fractal

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor_CoversFullRange(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		minChunk int
	}{
		{"inline small range", 10, 64},
		{"parallel large range", 10000, 64},
		{"range equal to chunk", 64, 64},
		{"empty range", 0, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited atomic.Int64
			ParallelFor(tt.n, tt.minChunk, func(start, end int) {
				visited.Add(int64(end - start))
			})
			if got := visited.Load(); got != int64(tt.n) {
				t.Errorf("visited %d indices, want %d", got, tt.n)
			}
		})
	}
}

func TestParallelFor_NoOverlap(t *testing.T) {
	const n = 5000
	seen := make([]atomic.Int32, n)

	ParallelFor(n, 16, func(start, end int) {
		for i := start; i < end; i++ {
			seen[i].Add(1)
		}
	})

	for i := range seen {
		if c := seen[i].Load(); c != 1 {
			t.Fatalf("index %d visited %d times, want exactly once", i, c)
		}
	}
}
