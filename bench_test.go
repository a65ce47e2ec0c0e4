// SPDX-License-Identifier: MIT
// Package grid_test provides benchmarks for construction, access, windows and the codec.

package grid_test

import (
	"fmt"
	"testing"

	"github.com/bachm/grid"
	"github.com/bachm/grid/wire"
)

// benchSizes are the square side lengths to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkB []byte
)

func benchArray(b *testing.B, n int) *grid.Array2[int] {
	b.Helper()
	a, err := grid.FromFnXY(n, n, func(x, y int) int { return x ^ y })
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = a.Release() })
	return a
}

func BenchmarkFromFnXY(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a, err := grid.FromFnXY(n, n, func(x, y int) int { return x + y })
				if err != nil {
					b.Fatal(err)
				}
				_ = a.Release()
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := benchArray(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, _ := a.Get(i%n, (i/n)%n)
				sinkI += v
			}
		})
	}
}

func BenchmarkIter(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := benchArray(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for v := range a.Iter() {
					sinkI += v
				}
			}
		})
	}
}

func BenchmarkView(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := benchArray(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for row := range a.View(n/4, n/4, n/2, n/2) {
					for _, v := range row {
						sinkI += v
					}
				}
			}
		})
	}
}

func BenchmarkMarshal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := benchArray(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				data, err := grid.Marshal(a, wire.Int[int]())
				if err != nil {
					b.Fatal(err)
				}
				sinkB = data
			}
		})
	}
}
