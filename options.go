// SPDX-License-Identifier: MIT
// Package grid: functional configuration for constructors and decoders.
//
// Defaults live in constants; WithX setters panic only on nonsensical values
// (programmer error). Every constructor and Decode accept ...Option and
// resolve them through gatherOptions.

package grid

import "github.com/bachm/grid/alloc"

// DefaultBorrowGuard enables the runtime borrow guard on new arrays.
const DefaultBorrowGuard = true

const panicNilAllocator = "grid: WithAllocator: allocator must not be nil"

// Option mutates construction options.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	alloc alloc.Allocator // alloc.Default() unless overridden
	guard bool            // DefaultBorrowGuard
}

// WithAllocator reserves backing stores through a instead of alloc.Default().
// It panics if a is nil.
func WithAllocator(a alloc.Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}
	return func(o *options) {
		o.alloc = a
	}
}

// WithBorrowGuard turns the runtime borrow guard on or off. With the guard off
// overlapping mutable and immutable access is not detected; callers take over
// the single-writer contract themselves.
func WithBorrowGuard(on bool) Option {
	return func(o *options) {
		o.guard = on
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		alloc: alloc.Default(),
		guard: DefaultBorrowGuard,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
