// SPDX-License-Identifier: MIT
// Package grid: element access.
//
// Soft accessors (Get, GetMut, Set) report absence for a position outside the
// array; hard indexers (At, AtMut) panic with an error wrapping ErrOutOfRange.
// Pointers returned by GetMut and AtMut stay valid until Release; the borrow
// guard only checks the moment they are taken.

package grid

import "fmt"

// Width returns the number of columns, 0 after Release.
func (a *Array2[T]) Width() int { return a.width }

// Height returns the number of rows, 0 after Release.
func (a *Array2[T]) Height() int { return a.height }

// Len returns Width()*Height().
func (a *Array2[T]) Len() int { return len(a.data) }

// InBounds reports whether (x, y) addresses an element.
func (a *Array2[T]) InBounds(x, y int) bool {
	_, ok := a.offset(x, y)
	return ok
}

// Coordinate converts a row-major offset into (x, y). ok is false when i is
// outside [0, Len()).
func (a *Array2[T]) Coordinate(i int) (x, y int, ok bool) {
	if i < 0 || i >= len(a.data) {
		return 0, 0, false
	}
	return i % a.width, i / a.width, true
}

func (a *Array2[T]) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return 0, false
	}
	return x + y*a.width, true
}

// Get returns the element at (x, y), or false if the position is outside the array.
func (a *Array2[T]) Get(x, y int) (T, bool) {
	a.guard.checkShared("Get")
	i, ok := a.offset(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	return a.data[i], true
}

// GetMut returns a pointer to the element at (x, y), or false if the position
// is outside the array.
func (a *Array2[T]) GetMut(x, y int) (*T, bool) {
	a.guard.checkExclusive("GetMut")
	i, ok := a.offset(x, y)
	if !ok {
		return nil, false
	}
	return &a.data[i], true
}

// Set replaces the element at (x, y) with v, finalizing the old value.
// It reports false, and leaves v with the caller, if the position is outside
// the array.
func (a *Array2[T]) Set(x, y int, v T) bool {
	a.guard.checkExclusive("Set")
	i, ok := a.offset(x, y)
	if !ok {
		return false
	}
	if a.finalize {
		finalizeOwned(&a.data[i])
	}
	a.data[i] = v
	return true
}

// At returns the element at p. It panics if p is outside the array.
func (a *Array2[T]) At(p Position) T {
	a.guard.checkShared("At")
	return a.data[a.mustOffset("At", p)]
}

// AtMut returns a pointer to the element at p. It panics if p is outside the array.
func (a *Array2[T]) AtMut(p Position) *T {
	a.guard.checkExclusive("AtMut")
	return &a.data[a.mustOffset("AtMut", p)]
}

func (a *Array2[T]) mustOffset(method string, p Position) int {
	x, y := p.XY()
	i, ok := a.offset(x, y)
	if !ok {
		panic(arrayErrorf(method, x, y,
			fmt.Errorf("index (%d, %d) out of bounds for %dx%d array: %w", x, y, a.width, a.height, ErrOutOfRange)))
	}
	return i
}
