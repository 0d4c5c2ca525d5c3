package sssp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/frontier/digraph"
	"github.com/katalvlaran/frontier/sssp"
)

// BenchmarkShortestPath measures solves on random connected graphs with
// reduction enabled and disabled.
func BenchmarkShortestPath(b *testing.B) {
	for _, n := range []int{1_000, 10_000} {
		g, err := digraph.RandomConnected(n, 5*n, 100, rand.New(rand.NewSource(int64(n))))
		if err != nil {
			b.Fatal(err)
		}
		for _, mode := range []struct {
			name string
			opt  sssp.Option
		}{
			{"reduction", sssp.WithReduction(true)},
			{"plain", sssp.WithoutReduction()},
		} {
			b.Run(fmt.Sprintf("V=%d/%s", n, mode.name), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := sssp.ShortestPath(g, 0, mode.opt); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
