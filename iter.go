// SPDX-License-Identifier: MIT

package grid

import "iter"

// Iter yields every element in row-major order.
func (a *Array2[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a.guard.acquireShared("Iter")
		defer a.guard.releaseShared()

		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// IterMut yields a pointer to every element in row-major order. No other
// access to a is allowed while the loop runs.
func (a *Array2[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		a.guard.acquireExclusive("IterMut")
		defer a.guard.releaseExclusive()

		for i := range a.data {
			if !yield(&a.data[i]) {
				return
			}
		}
	}
}

// All yields every position with its element in row-major order.
func (a *Array2[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		a.guard.acquireShared("All")
		defer a.guard.releaseShared()

		for i, v := range a.data {
			if !yield(Pos{X: i % a.width, Y: i / a.width}, v) {
				return
			}
		}
	}
}

// Rows yields each row, top to bottom, as a slice of exactly Width()
// elements. The slices alias the array; treat them as read-only.
func (a *Array2[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		a.guard.acquireShared("Rows")
		defer a.guard.releaseShared()

		a.rows(yield)
	}
}

// RowsMut is Rows with write access to the yielded slices.
func (a *Array2[T]) RowsMut() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		a.guard.acquireExclusive("RowsMut")
		defer a.guard.releaseExclusive()

		a.rows(yield)
	}
}

func (a *Array2[T]) rows(yield func([]T) bool) {
	for off := 0; off < len(a.data); off += a.width {
		end := off + a.width
		if !yield(a.data[off:end:end]) {
			return
		}
	}
}
