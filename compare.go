// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// String format constants.
const (
	strOpen  = "["
	strClose = "]"
	strSep   = ", "
)

// Equal reports whether a and b have the same dimensions and elements.
// Two nil arrays are equal.
func Equal[T comparable](a, b *Array2[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Array2[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.width != b.width || a.height != b.height {
		return false
	}
	a.guard.acquireShared("Equal")
	defer a.guard.releaseShared()
	b.guard.acquireShared("Equal")
	defer b.guard.releaseShared()

	return slices.EqualFunc(a.data, b.data, eq)
}

// Compare orders a and b by width, then height, then their elements in
// row-major order. It returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Array2[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element ordering. Its result
// is normalised to -1, 0 or +1 whatever magnitude cmpFn returns. A nil array
// orders before any non-nil one.
func CompareFunc[T any](a, b *Array2[T], cmpFn func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.width, b.width); c != 0 {
		return c
	}
	if c := cmp.Compare(a.height, b.height); c != 0 {
		return c
	}
	a.guard.acquireShared("Compare")
	defer a.guard.releaseShared()
	b.guard.acquireShared("Compare")
	defer b.guard.releaseShared()

	return cmp.Compare(slices.CompareFunc(a.data, b.data, cmpFn), 0)
}

// ToRows returns the elements as independent row slices, top to bottom.
func (a *Array2[T]) ToRows() [][]T {
	a.guard.acquireShared("ToRows")
	defer a.guard.releaseShared()

	out := make([][]T, 0, a.height)
	a.rows(func(row []T) bool {
		out = append(out, slices.Clone(row))
		return true
	})
	return out
}

// String renders a as a list of rows, e.g. "[[0, 1], [2, 3]]".
func (a *Array2[T]) String() string {
	a.guard.acquireShared("String")
	defer a.guard.releaseShared()

	var sb strings.Builder
	sb.WriteString(strOpen)
	first := true
	a.rows(func(row []T) bool {
		if !first {
			sb.WriteString(strSep)
		}
		first = false
		sb.WriteString(strOpen)
		for x, v := range row {
			if x > 0 {
				sb.WriteString(strSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(strClose)
		return true
	})
	sb.WriteString(strClose)
	return sb.String()
}
