// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every failure surfaced by this package matches exactly one of these via
// errors.Is. Context (operation, coordinates, shape) is attached with %w at
// the detection site; the sentinel itself is never rewritten.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a width or height that is not positive.
	// Constructors check it before touching the allocator.
	ErrInvalidDimensions = errors.New("grid: width and height must be > 0")

	// ErrAllocation indicates the backing store could not be reserved. The
	// allocator's own error is wrapped alongside it.
	ErrAllocation = errors.New("grid: cannot allocate backing store")

	// ErrOutOfRange indicates a position outside the array. Only the hard
	// indexers (At, AtMut) raise it; Get and GetMut report absence instead.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBorrowConflict indicates exclusive access overlapping another live access.
	ErrBorrowConflict = errors.New("grid: borrow conflict")

	// ErrLengthMismatch indicates a decoded data sequence whose length is not width*height.
	ErrLengthMismatch = errors.New("grid: data length does not match dimensions")

	// ErrReleased indicates use of an array that was released or never constructed.
	ErrReleased = errors.New("grid: array released")
)

// arrayErrorf wraps err with the Array2 method and the coordinates it was called with.
func arrayErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Array2.%s(%d,%d): %w", method, x, y, err)
}

// ctorErrorf wraps err with the constructor name and requested shape.
func ctorErrorf(ctor string, width, height int, err error) error {
	return fmt.Errorf("grid.%s(%d,%d): %w", ctor, width, height, err)
}
