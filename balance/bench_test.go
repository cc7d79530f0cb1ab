package balance_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/katalvlaran/triadic/balance"
	"github.com/katalvlaran/triadic/builder"
)

// BenchmarkAnalyze measures a full run on planted partitions of growing size.
func BenchmarkAnalyze(b *testing.B) {
	for _, n := range []int{50, 200, 500} {
		g, lab, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(1)},
			builder.PlantedPartition([]int{n / 2, n - n/2}, 0.1, 0.01),
		)
		if err != nil {
			b.Fatal(err)
		}
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := balance.Analyze(context.Background(), g, lab, balance.WithTrials(50)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
