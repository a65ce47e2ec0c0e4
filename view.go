// SPDX-License-Identifier: MIT
// Package grid: rectangular windows.
//
// A window is requested as origin plus extent and clipped to the owner
// (see Rect.Clip). Each yielded row starts at x + (y+i)*owner.Width(): the
// owner's stride, not the window's width. Rows are capacity-clipped, so
// append on a yielded slice never writes into the next row.

package grid

import "iter"

// View yields the rows of the width x height window at (x, y), clipped to a.
func (a *Array2[T]) View(x, y, width, height int) iter.Seq[[]T] {
	return a.ViewRect(Rect{X: x, Y: y, Width: width, Height: height})
}

// ViewRect is View with the window given as a Rect.
func (a *Array2[T]) ViewRect(r Rect) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		a.guard.acquireShared("View")
		defer a.guard.releaseShared()

		a.window(r, yield)
	}
}

// ViewMut is View with write access to the yielded rows.
func (a *Array2[T]) ViewMut(x, y, width, height int) iter.Seq[[]T] {
	return a.ViewRectMut(Rect{X: x, Y: y, Width: width, Height: height})
}

// ViewRectMut is ViewMut with the window given as a Rect.
func (a *Array2[T]) ViewRectMut(r Rect) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		a.guard.acquireExclusive("ViewMut")
		defer a.guard.releaseExclusive()

		a.window(r, yield)
	}
}

func (a *Array2[T]) window(r Rect, yield func([]T) bool) {
	c := r.Clip(a.width, a.height)
	if c.Empty() {
		return
	}
	for i := 0; i < c.Height; i++ {
		start := c.X + (c.Y+i)*a.width
		end := start + c.Width
		if !yield(a.data[start:end:end]) {
			return
		}
	}
}
