// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures.
//
// Purpose:
//   - Element types that count finalizer calls.
//   - Small constructors that fail the test instead of returning errors.

package grid_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bachm/grid"
	"github.com/bachm/grid/alloc"
)

// counted increments *n once per Finalize; copies share the counter.
type counted struct {
	n *int
	v int
}

func (c counted) Finalize() {
	if c.n != nil {
		*c.n++
	}
}

// closer records Close calls in order and fails when err is set.
type closer struct {
	log *[]int
	id  int
	err error
}

func (c *closer) Close() error {
	*c.log = append(*c.log, c.id)
	return c.err
}

// deep owns a heap cell that Clone duplicates.
type deep struct{ p *int }

func (d deep) Clone() deep {
	v := *d.p
	return deep{p: &v}
}

// unit is zero-sized and counts finalizers through a package counter.
type unit struct{}

var unitFinalized int

func (unit) Finalize() { unitFinalized++ }

// tracked decodes from JSON and counts finalizers through a package counter.
type tracked struct{ V int }

var trackedFinalized int

func (tracked) Finalize() { trackedFinalized++ }

// seq3x3 returns the 3x3 array 0..8 in row-major order.
func seq3x3(t testing.TB, opts ...grid.Option) *grid.Array2[int] {
	t.Helper()
	a, err := grid.FromFnXY(3, 3, func(x, y int) int { return x + 3*y }, opts...)
	require.NoError(t, err)
	return a
}

// collectRows copies every yielded row.
func collectRows[T any](rows iter.Seq[[]T]) [][]T {
	out := [][]T{}
	for row := range rows {
		out = append(out, append([]T(nil), row...))
	}
	return out
}

// requirePanicsIs runs f and requires a panic whose value is an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// countingAllocator counts Allocate calls on top of a Heap.
type countingAllocator struct {
	*alloc.Heap
	calls int
}

func (c *countingAllocator) Allocate(size, align uintptr) (alloc.Block, error) {
	c.calls++
	return c.Heap.Allocate(size, align)
}

var errBoom = errors.New("boom")
