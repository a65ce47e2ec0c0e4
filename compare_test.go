// SPDX-License-Identifier: MIT
package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bachm/grid"
)

func TestEqual(t *testing.T) {
	a := seq3x3(t)
	b := seq3x3(t)
	defer a.Release()
	defer b.Release()

	require.True(t, grid.Equal(a, b))
	require.True(t, grid.Equal(a, a))
	require.True(t, grid.Equal[int](nil, nil))
	require.False(t, grid.Equal(a, nil))

	b.Set(2, 2, -1)
	require.False(t, grid.Equal(a, b))

	// same elements, different shape
	c := grid.MustFromFn(9, 1, func() int { return 0 })
	d := grid.MustFromFn(1, 9, func() int { return 0 })
	defer c.Release()
	defer d.Release()
	require.False(t, grid.Equal(c, d))
}

func TestEqualFunc(t *testing.T) {
	a := grid.MustFromElem(2, 2, "Go")
	b := grid.MustFromElem(2, 2, "GO")
	defer a.Release()
	defer b.Release()

	require.False(t, grid.Equal(a, b))
	require.True(t, grid.EqualFunc(a, b, strings.EqualFold))
}

// TestCompare checks width, then height, then row-major data decide the order.
func TestCompare(t *testing.T) {
	mk := func(w, h, fill int) *grid.Array2[int] {
		a := grid.MustFromElem(w, h, fill)
		t.Cleanup(func() { _ = a.Release() })
		return a
	}

	cases := []struct {
		name string
		a, b *grid.Array2[int]
		want int
	}{
		{"narrower first", mk(2, 9, 9), mk(3, 1, 0), -1},
		{"wider last", mk(4, 1, 0), mk(3, 9, 9), 1},
		{"shorter first", mk(2, 1, 9), mk(2, 2, 0), -1},
		{"data decides", mk(2, 2, 1), mk(2, 2, 2), -1},
		{"equal", mk(2, 2, 5), mk(2, 2, 5), 0},
		{"nil first", nil, mk(1, 1, 0), -1},
		{"both nil", nil, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, grid.Compare(tc.a, tc.b))
			require.Equal(t, -tc.want, grid.Compare(tc.b, tc.a))
		})
	}

	a := seq3x3(t)
	b := seq3x3(t)
	defer a.Release()
	defer b.Release()
	b.Set(0, 2, 100) // offset 6 differs, earlier offsets equal
	require.Equal(t, -1, grid.Compare(a, b))
	require.Equal(t, 1, grid.CompareFunc(a, b, func(x, y int) int { return y - x }))
}

// TestString checks the list-of-rows form.
func TestString(t *testing.T) {
	a := grid.MustFromFnXY(2, 2, func(x, y int) int { return x + 2*y })
	defer a.Release()
	require.Equal(t, "[[0, 1], [2, 3]]", a.String())

	s := grid.MustFromElem(3, 1, "ab")
	defer s.Release()
	require.Equal(t, "[[ab, ab, ab]]", s.String())
}

// TestToRows checks the copy is detached from the array.
func TestToRows(t *testing.T) {
	a := seq3x3(t)
	defer a.Release()

	rows := a.ToRows()
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}, rows)
	rows[0][0] = 99
	require.Equal(t, 0, a.At(grid.Pos{}))
}
