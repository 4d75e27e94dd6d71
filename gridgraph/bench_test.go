// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/hexed/gridgraph"
)

// BenchmarkConnectedComponents measures the component walk over a 4×2 piece box.
func BenchmarkConnectedComponents(b *testing.B) {
	cells := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {2, 1}}
	gg, err := gridgraph.FromCells(4, 2, cells)
	if err != nil {
		b.Fatalf("setup FromCells failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
