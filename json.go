// SPDX-License-Identifier: MIT

package grid

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/bachm/grid/alloc"
)

// jsonRecord is the JSON form of an Array2, the same record shape as Encode.
type jsonRecord[T any] struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Data   []T `json:"data"`
}

// MarshalJSON implements json.Marshaler as {"width":w,"height":h,"data":[...]}.
func (a *Array2[T]) MarshalJSON() ([]byte, error) {
	if !a.live() {
		return nil, ErrReleased
	}
	a.guard.acquireShared("MarshalJSON")
	defer a.guard.releaseShared()

	return json.Marshal(jsonRecord[T]{Width: a.width, Height: a.height, Data: a.data})
}

// UnmarshalJSON implements json.Unmarshaler. The record is validated like
// Decode; on success the previous contents of a are released and replaced.
// A zero Array2 decodes into alloc.Default() with the default borrow guard.
func (a *Array2[T]) UnmarshalJSON(b []byte) error {
	var rec jsonRecord[T]
	if err := json.Unmarshal(b, &rec); err != nil {
		discard(rec.Data)
		return err
	}
	if rec.Width <= 0 || rec.Height <= 0 {
		discard(rec.Data)
		return fmt.Errorf("Array2.UnmarshalJSON(%d,%d): %w", rec.Width, rec.Height, ErrInvalidDimensions)
	}
	if rec.Width > math.MaxInt/rec.Height || len(rec.Data) != rec.Width*rec.Height {
		discard(rec.Data)
		return fmt.Errorf("Array2.UnmarshalJSON(%d,%d): %d elements: %w",
			rec.Width, rec.Height, len(rec.Data), ErrLengthMismatch)
	}

	o := options{alloc: a.alloc, guard: a.guard.enabled}
	if o.alloc == nil {
		o = gatherOptions(WithAllocator(alloc.Default()))
	}
	fresh, err := newStore[T]("UnmarshalJSON", rec.Width, rec.Height, o)
	if err != nil {
		discard(rec.Data)
		return err
	}
	copy(fresh.data, rec.Data)

	if a.live() {
		if err := a.Release(); err != nil {
			Logger().Warn("grid: releasing replaced array", zap.Error(err))
		}
	}
	a.width, a.height = fresh.width, fresh.height
	a.data, a.block, a.alloc = fresh.data, fresh.block, fresh.alloc
	a.finalize = fresh.finalize
	a.guard.enabled = o.guard
	a.released = false
	return nil
}

// discard finalizes decoded elements that never made it into a store.
func discard[T any](data []T) {
	if !needsFinalize[T]() {
		return
	}
	for i := range data {
		finalizeOwned(&data[i])
	}
}
