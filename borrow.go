// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"sync/atomic"
)

// exclusive marks a live mutable borrow in borrowGuard.state.
const exclusive = -1

// borrowGuard tracks live borrows of one array. state is the number of live
// immutable borrows, or exclusive while a mutable borrow is live.
//
// The guard detects overlap within one owner; it is not a lock and does not
// make an Array2 safe for concurrent use.
type borrowGuard struct {
	enabled bool
	state   atomic.Int32
}

func borrowPanic(op, held string) {
	panic(fmt.Errorf("Array2.%s: %s borrow is live: %w", op, held, ErrBorrowConflict))
}

func held(s int32) string {
	if s == exclusive {
		return "mutable"
	}
	return "immutable"
}

// acquireShared registers an immutable borrow.
func (g *borrowGuard) acquireShared(op string) {
	if !g.enabled {
		return
	}
	for {
		s := g.state.Load()
		if s == exclusive {
			borrowPanic(op, "mutable")
		}
		if g.state.CompareAndSwap(s, s+1) {
			return
		}
	}
}

func (g *borrowGuard) releaseShared() {
	if g.enabled {
		g.state.Add(-1)
	}
}

// acquireExclusive registers a mutable borrow; no other borrow may be live.
func (g *borrowGuard) acquireExclusive(op string) {
	if !g.enabled {
		return
	}
	if !g.state.CompareAndSwap(0, exclusive) {
		borrowPanic(op, held(g.state.Load()))
	}
}

func (g *borrowGuard) releaseExclusive() {
	if g.enabled {
		g.state.Store(0)
	}
}

// checkShared panics if a momentary read would overlap a mutable borrow.
func (g *borrowGuard) checkShared(op string) {
	if g.enabled && g.state.Load() == exclusive {
		borrowPanic(op, "mutable")
	}
}

// checkExclusive panics if a momentary write would overlap any borrow.
func (g *borrowGuard) checkExclusive(op string) {
	if !g.enabled {
		return
	}
	if s := g.state.Load(); s != 0 {
		borrowPanic(op, held(s))
	}
}
