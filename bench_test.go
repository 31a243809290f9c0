package ressplit_test

import (
	"testing"

	"github.com/katalvlaran/ressplit"
	"github.com/katalvlaran/ressplit/core"
)

// benchmarkSplit builds n uniform resources and runs the full pipeline.
func benchmarkSplit(b *testing.B, n int, cfg ressplit.Config) {
	resources := make([]core.Resource[int], n)
	for i := range resources {
		resources[i] = core.Resource[int]{Count: 10}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := func(yield func(core.Resource[int]) bool) {
			for _, r := range resources {
				if !yield(r) {
					return
				}
			}
		}
		seq, err := ressplit.Split(src, cfg)
		if err != nil {
			b.Fatalf("Split failed: %v", err)
		}
		for range seq {
		}
	}
}

func BenchmarkSplitSmall(b *testing.B) {
	benchmarkSplit(b, 200, ressplit.Config{
		MaxSegmentCount: 400,
		BorderIncision:  core.Impossible,
		GapRate:         0.25,
		TailRate:        0.5,
	})
}

func BenchmarkSplitLarge(b *testing.B) {
	benchmarkSplit(b, 5000, ressplit.Config{
		MaxSegmentCount: 4000,
		BorderIncision:  core.Impossible,
		GapRate:         0.25,
		TailRate:        0.5,
	})
}
