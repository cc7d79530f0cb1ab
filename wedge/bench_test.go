package wedge_test

import (
	"testing"

	"github.com/katalvlaran/triadic/builder"
	"github.com/katalvlaran/triadic/wedge"
)

// BenchmarkClosureHub stresses the quadratic per-center scan with a star hub.
func BenchmarkClosureHub(b *testing.B) {
	g, lab, err := builder.BuildGraph(nil, builder.Star(2000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wedge.Closure(g, lab)
	}
}
