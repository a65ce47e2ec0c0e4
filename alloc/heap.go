// SPDX-License-Identifier: MIT

package alloc

import (
	"fmt"
	"sync"
)

// Heap is an accounting Allocator over the Go heap. It grants requests while
// the live byte count stays within its limit and tracks every outstanding
// block so double frees are caught.
//
// Heap is safe for concurrent use.
type Heap struct {
	mu sync.Mutex

	// limit is the maximum number of live bytes (maxAlloc when unlimited)
	limit uintptr

	// live is the number of bytes currently reserved
	live uintptr

	// nextID is the handle given to the next granted block
	nextID uint64

	// blocks maps outstanding handles to their sizes
	blocks map[uint64]uintptr

	stats Stats
}

// Stats contains allocation statistics.
type Stats struct {
	TotalAllocations uint64 // Number of granted requests
	TotalFrees       uint64 // Number of returned blocks
	TotalBytesAlloc  uint64 // Total bytes granted
	TotalBytesFree   uint64 // Total bytes returned
	LargestAlloc     uint64 // Largest single grant
	Refused          uint64 // Number of refused requests
}

var (
	defaultHeap     *Heap
	defaultHeapOnce sync.Once
)

// Default returns the process-wide unlimited Heap.
func Default() *Heap {
	defaultHeapOnce.Do(func() {
		defaultHeap = NewHeap(0)
	})
	return defaultHeap
}

// NewHeap creates a Heap allowing at most limit live bytes; 0 means unlimited.
func NewHeap(limit uintptr) *Heap {
	if limit == 0 || limit > maxAlloc {
		limit = maxAlloc
	}
	return &Heap{
		limit:  limit,
		nextID: 1,
		blocks: make(map[uint64]uintptr),
	}
}

// Allocate reserves size bytes at align.
func (h *Heap) Allocate(size, align uintptr) (Block, error) {
	if align == 0 || align&(align-1) != 0 {
		return Block{}, fmt.Errorf("alloc: align %d: %w", align, ErrBadAlign)
	}
	if size > maxAlloc {
		return Block{}, fmt.Errorf("alloc: size %d: %w", size, ErrOverflow)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if size > h.limit-h.live {
		h.stats.Refused++
		return Block{}, fmt.Errorf("alloc: %d bytes requested, %d of %d available: %w",
			size, h.limit-h.live, h.limit, ErrExhausted)
	}

	id := h.nextID
	h.nextID++
	h.blocks[id] = size
	h.live += size

	h.stats.TotalAllocations++
	h.stats.TotalBytesAlloc += uint64(size)
	if uint64(size) > h.stats.LargestAlloc {
		h.stats.LargestAlloc = uint64(size)
	}

	return Block{Size: size, Align: align, id: id}, nil
}

// Deallocate returns b. It panics if b was not granted by h or was already returned.
func (h *Heap) Deallocate(b Block) {
	h.mu.Lock()
	defer h.mu.Unlock()

	size, ok := h.blocks[b.id]
	if !ok || size != b.Size {
		panic(fmt.Sprintf("alloc: deallocate of unknown block %d (%d bytes)", b.id, b.Size))
	}
	delete(h.blocks, b.id)
	h.live -= size

	h.stats.TotalFrees++
	h.stats.TotalBytesFree += uint64(size)
}

// Live returns the number of bytes currently reserved.
func (h *Heap) Live() uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.live
}

// Outstanding returns the number of blocks not yet returned.
func (h *Heap) Outstanding() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.blocks)
}

// Stats returns a snapshot of the allocation statistics.
func (h *Heap) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.stats
}

// Compile-time assertion.
var _ Allocator = (*Heap)(nil)
