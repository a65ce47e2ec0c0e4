// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/bachm/grid/alloc"
)

// Array2 is a fixed-size two-dimensional array stored in row-major order.
// Element (x, y) lives at offset x + y*Width().
//
// An Array2 owns its elements: Release finalizes them and returns the backing
// block to the allocator it came from. Arrays must not be copied by value;
// use Clone.
type Array2[T any] struct {
	width, height int
	data          []T

	alloc    alloc.Allocator
	block    alloc.Block
	guard    borrowGuard
	finalize bool // T or *T may implement Finalizer / io.Closer
	released bool
}

// newStore validates the shape and reserves an uninitialised (zeroed) store.
func newStore[T any](ctor string, width, height int, o options) (*Array2[T], error) {
	if width <= 0 || height <= 0 {
		Logger().Debug("grid: invalid dimensions",
			zap.String("op", ctor), zap.Int("width", width), zap.Int("height", height))
		return nil, ctorErrorf(ctor, width, height, ErrInvalidDimensions)
	}
	if width > math.MaxInt/height {
		return nil, ctorErrorf(ctor, width, height, fmt.Errorf("%w: %w", ErrAllocation, alloc.ErrOverflow))
	}
	data, block, err := alloc.Make[T](o.alloc, width*height)
	if err != nil {
		Logger().Debug("grid: allocation refused",
			zap.String("op", ctor), zap.Int("width", width), zap.Int("height", height), zap.Error(err))
		return nil, ctorErrorf(ctor, width, height, fmt.Errorf("%w: %w", ErrAllocation, err))
	}

	a := &Array2[T]{
		width:    width,
		height:   height,
		data:     data,
		alloc:    o.alloc,
		block:    block,
		finalize: needsFinalize[T](),
	}
	a.guard.enabled = o.guard
	return a, nil
}

// fill stores gen(i) at every offset i in row-major order. If gen panics the
// elements placed so far are finalized and the store is returned before the
// panic continues.
func (a *Array2[T]) fill(gen func(i int) T) {
	placed := 0
	defer func() {
		if placed != len(a.data) {
			a.rollback(placed)
		}
	}()
	for placed < len(a.data) {
		a.data[placed] = gen(placed)
		placed++
	}
}

// rollback finalizes the first placed elements in row-major order and frees
// the store. Finalizer errors are logged.
func (a *Array2[T]) rollback(placed int) {
	if a.finalize {
		for i := 0; i < placed; i++ {
			if err := finalizeElem(&a.data[i]); err != nil {
				Logger().Warn("grid: finalizer failed during rollback", zap.Int("offset", i), zap.Error(err))
			}
		}
	}
	a.free()
}

// free returns the block and leaves the array released and 0x0.
func (a *Array2[T]) free() {
	clear(a.data)
	alloc.Free(a.alloc, a.block)
	a.data, a.block = nil, alloc.Block{}
	a.width, a.height = 0, 0
	a.released = true
}

// live reports whether a holds a store.
func (a *Array2[T]) live() bool {
	return a != nil && !a.released && a.data != nil
}

// New returns a width x height array of zero values.
func New[T any](width, height int, opts ...Option) (*Array2[T], error) {
	return newStore[T]("New", width, height, gatherOptions(opts...))
}

// FromElem returns a width x height array where every element is a clone of
// elem (via Cloner when implemented, assignment otherwise).
//
// FromElem takes ownership of elem: once filling finishes, successfully or
// not, elem itself is finalized exactly once.
func FromElem[T any](width, height int, elem T, opts ...Option) (*Array2[T], error) {
	defer finalizeOwned(&elem)

	a, err := newStore[T]("FromElem", width, height, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	a.fill(func(int) T { return cloneElem(elem) })
	return a, nil
}

// FromFn returns a width x height array filled by calling gen once per
// position in row-major order.
func FromFn[T any](width, height int, gen func() T, opts ...Option) (*Array2[T], error) {
	a, err := newStore[T]("FromFn", width, height, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	a.fill(func(int) T { return gen() })
	return a, nil
}

// FromFnXY is FromFn with the position passed to gen.
func FromFnXY[T any](width, height int, gen func(x, y int) T, opts ...Option) (*Array2[T], error) {
	a, err := newStore[T]("FromFnXY", width, height, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	a.fill(func(i int) T { return gen(i%width, i/width) })
	return a, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](width, height int, opts ...Option) *Array2[T] {
	return must(New[T](width, height, opts...))
}

// MustFromElem is like FromElem but panics on error.
func MustFromElem[T any](width, height int, elem T, opts ...Option) *Array2[T] {
	return must(FromElem(width, height, elem, opts...))
}

// MustFromFn is like FromFn but panics on error.
func MustFromFn[T any](width, height int, gen func() T, opts ...Option) *Array2[T] {
	return must(FromFn(width, height, gen, opts...))
}

// MustFromFnXY is like FromFnXY but panics on error.
func MustFromFnXY[T any](width, height int, gen func(x, y int) T, opts ...Option) *Array2[T] {
	return must(FromFnXY(width, height, gen, opts...))
}

func must[T any](a *Array2[T], err error) *Array2[T] {
	if err == nil {
		return a
	}
	if errors.Is(err, ErrInvalidDimensions) {
		panic(ErrInvalidDimensions)
	}
	panic(err)
}

// Release finalizes every element in row-major order, returns the backing
// block to its allocator and leaves the array empty (0x0). Errors from
// io.Closer elements are combined; finalization continues past them.
//
// Release needs exclusive access. Releasing twice returns ErrReleased.
func (a *Array2[T]) Release() error {
	if a == nil || a.released {
		return ErrReleased
	}
	a.guard.acquireExclusive("Release")
	defer a.guard.releaseExclusive()

	var errs error
	if a.finalize {
		for i := range a.data {
			errs = multierr.Append(errs, finalizeElem(&a.data[i]))
		}
	}
	a.free()
	return errs
}

// Close implements io.Closer by calling Release, so an array stored as an
// element of another array is released with it.
func (a *Array2[T]) Close() error {
	return a.Release()
}

// Clone returns a deep copy of a in a fresh store from the same allocator.
// Elements are copied through Cloner when implemented.
func (a *Array2[T]) Clone() (*Array2[T], error) {
	if !a.live() {
		return nil, ErrReleased
	}
	a.guard.acquireShared("Clone")
	defer a.guard.releaseShared()

	b, err := newStore[T]("Clone", a.width, a.height, options{alloc: a.alloc, guard: a.guard.enabled})
	if err != nil {
		return nil, err
	}
	b.fill(func(i int) T { return cloneElem(a.data[i]) })
	return b, nil
}
