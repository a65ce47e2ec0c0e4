// SPDX-License-Identifier: MIT

// Package alloc is the memory-reservation layer behind grid backing stores.
//
// The Go runtime owns the actual memory of every slice; an Allocator decides
// whether a request of size bytes at a given alignment may be served and keeps
// the books for it. Requests are all-or-nothing: an Allocator either grants
// the whole block or returns an error, never a partial reservation.
//
// Zero-footprint element types never reach an Allocator: Make returns the zero
// Block for them and Free ignores it.
package alloc

import (
	"errors"
	"math/bits"
	"unsafe"
)

var (
	// ErrExhausted is returned when a request exceeds the allocator's remaining budget.
	ErrExhausted = errors.New("alloc: allocator exhausted")

	// ErrBadAlign is returned when alignment is zero or not a power of two.
	ErrBadAlign = errors.New("alloc: alignment must be a power of two")

	// ErrOverflow is returned when size arithmetic overflows the address space.
	ErrOverflow = errors.New("alloc: size overflows address space")
)

// maxAlloc bounds a single request: 1<<47 bytes on 64-bit platforms, 1<<31 on 32-bit.
const maxAlloc = uintptr(1) << (31 + 16*(^uintptr(0)>>63))

// Block identifies a granted reservation. The zero Block stands for "nothing
// was allocated" and is what zero-footprint requests produce.
type Block struct {
	Size  uintptr // bytes reserved
	Align uintptr // alignment the bytes were reserved at
	id    uint64  // allocator-private handle, 0 for the zero Block
}

// IsZero reports whether b is the zero Block.
func (b Block) IsZero() bool { return b.id == 0 }

// Allocator reserves and releases memory blocks.
type Allocator interface {
	// Allocate reserves size bytes at align. It never partially satisfies a
	// request: on failure the returned error is non-nil and nothing is held.
	Allocate(size, align uintptr) (Block, error)

	// Deallocate returns a block obtained from Allocate. Passing an unknown or
	// already returned block is a programmer error.
	Deallocate(b Block)
}

// SizeOf reports the storage footprint of one T in bytes.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// AlignOf reports the required alignment of T in bytes.
func AlignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// IsZeroSized reports whether T occupies no storage.
func IsZeroSized[T any]() bool { return SizeOf[T]() == 0 }

// ArraySize returns the byte size of n elements of T, or ErrOverflow.
func ArraySize[T any](n int) (uintptr, error) {
	if n < 0 {
		return 0, ErrOverflow
	}
	hi, lo := bits.Mul(uint(n), uint(SizeOf[T]()))
	if hi != 0 || uintptr(lo) > maxAlloc {
		return 0, ErrOverflow
	}

	return uintptr(lo), nil
}

// Make reserves room for n elements of T through a and returns a zeroed
// buffer of exactly n elements together with its Block.
//
// For zero-footprint T the allocator is not consulted and the zero Block is
// returned; the slice still has length n so logical positions can be indexed.
func Make[T any](a Allocator, n int) ([]T, Block, error) {
	size, err := ArraySize[T](n)
	if err != nil {
		return nil, Block{}, err
	}
	if size == 0 {
		// zero-sized elements or n == 0: Go backs this with no memory
		return make([]T, n), Block{}, nil
	}
	b, err := a.Allocate(size, AlignOf[T]())
	if err != nil {
		return nil, Block{}, err
	}

	return make([]T, n), b, nil
}

// Free returns b to a. The zero Block is ignored.
func Free(a Allocator, b Block) {
	if b.IsZero() {
		return
	}
	a.Deallocate(b)
}
