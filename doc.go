// SPDX-License-Identifier: MIT

// Package grid provides Array2, a two-dimensional array whose dimensions are
// fixed at construction.
//
// What:
//
//   - One contiguous row-major buffer of width*height elements (offset x + y*width).
//   - Soft accessors (Get, GetMut) that report absence, and hard indexers (At, AtMut)
//     that panic with a descriptive error on a bad position.
//   - Range-over-func sequences over elements, rows and clipped rectangular windows,
//     each in an immutable and a mutable variant.
//   - Structural equality and ordering, a list-of-rows String form.
//   - A binary codec (package wire) with the fixed record shape width, height, data,
//     and a JSON form of the same shape.
//
// Ownership:
//
//   - The backing block is reserved from an alloc.Allocator (alloc.Default unless
//     WithAllocator is given) and returned exactly once by Release.
//   - Release finalizes every element in row-major order first: elements whose type
//     (or pointer type) implements Finalizer or io.Closer get one call each.
//     *Array2 is an io.Closer, so nested arrays are released with their owner.
//   - Zero-footprint element types never reach the allocator; their positions are
//     purely logical, but generators and finalizers still run once per position.
//
// Borrowing:
//
//   - Any number of immutable sequences may be ranged over at the same time.
//   - A mutable sequence, GetMut, AtMut, Set and Release need exclusive access;
//     overlapping them with any other live sequence panics with ErrBorrowConflict.
//   - The guard is on by default and can be disabled with WithBorrowGuard(false).
//   - Array2 performs no internal locking; one goroutine owns an array at a time.
//
// Complexity:
//
//   - Construction, Release, Clone, Equal/Compare, String, codec: O(width*height).
//   - Get/At/Set and dimension queries: O(1).
//   - Sequences are lazy; a window costs O(rows of the clipped window) to walk.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive (checked before allocation).
//   - ErrAllocation: the allocator refused the request or the size overflows.
//   - ErrOutOfRange: raised by the hard indexers only.
//   - ErrBorrowConflict: exclusive access overlapped another live access.
//   - ErrLengthMismatch: decoded data length differs from width*height.
//   - ErrReleased: the array was released (or never constructed).
package grid
