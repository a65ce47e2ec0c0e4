// SPDX-License-Identifier: MIT

package grid

import (
	"bytes"
	"fmt"
	"math"
	"math/bits"

	"go.uber.org/zap"

	"github.com/bachm/grid/wire"
)

// Record shape shared by every encoding of an Array2.
const (
	recordName  = "Array2"
	fieldWidth  = "width"
	fieldHeight = "height"
	fieldData   = "data"
	fieldCount  = 3
)

// Encode writes a as the record {width uint64, height uint64, data [T]},
// with each element in row-major order encoded by elem. Errors come from the
// encoder or elem unchanged; a released array yields ErrReleased.
func Encode[T any](e wire.Encoder, a *Array2[T], elem wire.Codec[T]) error {
	if !a.live() {
		return ErrReleased
	}
	a.guard.acquireShared("Encode")
	defer a.guard.releaseShared()

	if err := e.BeginStruct(recordName, fieldCount); err != nil {
		return err
	}
	if err := e.Field(fieldWidth, 0); err != nil {
		return err
	}
	if err := e.Uint64(uint64(a.width)); err != nil {
		return err
	}
	if err := e.Field(fieldHeight, 1); err != nil {
		return err
	}
	if err := e.Uint64(uint64(a.height)); err != nil {
		return err
	}
	if err := e.Field(fieldData, 2); err != nil {
		return err
	}
	if err := e.BeginSeq(len(a.data)); err != nil {
		return err
	}
	for i := range a.data {
		if err := elem.Encode(e, a.data[i]); err != nil {
			return err
		}
	}
	if err := e.EndSeq(); err != nil {
		return err
	}
	return e.EndStruct()
}

// Decode reads the record written by Encode into a new array built with opts.
//
// The shape is validated before anything is allocated: zero or oversized
// dimensions yield ErrInvalidDimensions, a data length other than
// width*height yields ErrLengthMismatch. Elements are stored as they decode;
// if one fails, the elements already stored are finalized in row-major order,
// the store is returned, and the decoder's error is returned unmodified.
//
// Storage for width*height elements is reserved as soon as the header checks
// out. For untrusted input pass WithAllocator(alloc.NewHeap(limit)) so a
// hostile header cannot reserve more than limit bytes.
func Decode[T any](d wire.Decoder, elem wire.Codec[T], opts ...Option) (*Array2[T], error) {
	if err := d.BeginStruct(recordName, fieldCount); err != nil {
		return nil, err
	}
	w, err := decodeDim(d, fieldWidth, 0)
	if err != nil {
		return nil, err
	}
	h, err := decodeDim(d, fieldHeight, 1)
	if err != nil {
		return nil, err
	}
	if w == 0 || h == 0 || w > math.MaxInt || h > math.MaxInt {
		return nil, fmt.Errorf("grid.Decode(%d,%d): %w", w, h, ErrInvalidDimensions)
	}
	if err := d.Field(fieldData, 2); err != nil {
		return nil, err
	}
	n, err := d.BeginSeq()
	if err != nil {
		return nil, err
	}
	if hi, lo := bits.Mul64(w, h); hi != 0 || lo != uint64(n) {
		return nil, fmt.Errorf("grid.Decode(%d,%d): %d elements: %w", w, h, n, ErrLengthMismatch)
	}

	a, err := newStore[T]("Decode", int(w), int(h), gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, err := elem.Decode(d)
		if err != nil {
			Logger().Debug("grid: decode rollback",
				zap.Int("placed", i), zap.Int("len", n), zap.Error(err))
			a.rollback(i)
			return nil, err
		}
		a.data[i] = v
	}
	if err := d.EndSeq(); err != nil {
		a.rollback(n)
		return nil, err
	}
	if err := d.EndStruct(); err != nil {
		a.rollback(n)
		return nil, err
	}
	return a, nil
}

func decodeDim(d wire.Decoder, name string, index int) (uint64, error) {
	if err := d.Field(name, index); err != nil {
		return 0, err
	}
	return d.Uint64()
}

// NewCodec returns a wire.Codec for *Array2[T], so arrays can nest inside
// other records. Decoded arrays are built with opts.
func NewCodec[T any](elem wire.Codec[T], opts ...Option) wire.Codec[*Array2[T]] {
	return wire.CodecFunc[*Array2[T]]{
		EncodeFunc: func(e wire.Encoder, a *Array2[T]) error { return Encode(e, a, elem) },
		DecodeFunc: func(d wire.Decoder) (*Array2[T], error) { return Decode(d, elem, opts...) },
	}
}

// Marshal encodes a with wire.DefaultConfig.
func Marshal[T any](a *Array2[T], elem wire.Codec[T]) ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf, wire.DefaultConfig())
	if err := Encode(w, a, elem); err != nil {
		return nil, err
	}
	if err := w.Done(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one array from data with wire.DefaultConfig.
// Trailing bytes release the decoded array and yield wire.ErrTrailingData.
func Unmarshal[T any](data []byte, elem wire.Codec[T], opts ...Option) (*Array2[T], error) {
	src := bytes.NewReader(data)
	r := wire.NewReader(src, wire.DefaultConfig())
	a, err := Decode(r, elem, opts...)
	if err != nil {
		return nil, err
	}
	err = r.Done()
	if err == nil && src.Len() != 0 {
		err = fmt.Errorf("grid.Unmarshal: %d bytes left: %w", src.Len(), wire.ErrTrailingData)
	}
	if err != nil {
		if rerr := a.Release(); rerr != nil {
			Logger().Warn("grid: releasing rejected array", zap.Error(rerr))
		}
		return nil, err
	}
	return a, nil
}
