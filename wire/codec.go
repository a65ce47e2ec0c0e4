// SPDX-License-Identifier: MIT

package wire

import (
	"bytes"
	"fmt"
	"unsafe"
)

// Codec encodes and decodes values of T through the structured surface.
type Codec[T any] interface {
	Encode(e Encoder, v T) error
	Decode(d Decoder) (T, error)
}

// Integer is the set of Go integer kinds Int can encode.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of Go floating-point kinds Float can encode.
type Floating interface {
	~float32 | ~float64
}

// CodecFunc adapts a pair of functions to Codec.
type CodecFunc[T any] struct {
	EncodeFunc func(e Encoder, v T) error
	DecodeFunc func(d Decoder) (T, error)
}

func (c CodecFunc[T]) Encode(e Encoder, v T) error { return c.EncodeFunc(e, v) }
func (c CodecFunc[T]) Decode(d Decoder) (T, error)  { return c.DecodeFunc(d) }

// Int returns the fixed-width codec for T: the width is the storage size of T
// and signedness follows T, so int and uint use the platform word size.
func Int[T Integer]() Codec[T] { return intCodec[T]{} }

type intCodec[T Integer] struct{}

func signed[T Integer]() bool {
	var zero T
	return ^zero < 0
}

func (intCodec[T]) Encode(e Encoder, v T) error {
	s := signed[T]()
	switch unsafe.Sizeof(v) {
	case 1:
		if s {
			return e.Int8(int8(v))
		}
		return e.Uint8(uint8(v))
	case 2:
		if s {
			return e.Int16(int16(v))
		}
		return e.Uint16(uint16(v))
	case 4:
		if s {
			return e.Int32(int32(v))
		}
		return e.Uint32(uint32(v))
	default:
		if s {
			return e.Int64(int64(v))
		}
		return e.Uint64(uint64(v))
	}
}

func (intCodec[T]) Decode(d Decoder) (T, error) {
	var zero T
	s := signed[T]()
	switch unsafe.Sizeof(zero) {
	case 1:
		if s {
			v, err := d.Int8()
			return T(v), err
		}
		v, err := d.Uint8()
		return T(v), err
	case 2:
		if s {
			v, err := d.Int16()
			return T(v), err
		}
		v, err := d.Uint16()
		return T(v), err
	case 4:
		if s {
			v, err := d.Int32()
			return T(v), err
		}
		v, err := d.Uint32()
		return T(v), err
	default:
		if s {
			v, err := d.Int64()
			return T(v), err
		}
		v, err := d.Uint64()
		return T(v), err
	}
}

// Float returns the IEEE-754 codec for T.
func Float[T Floating]() Codec[T] { return floatCodec[T]{} }

type floatCodec[T Floating] struct{}

func (floatCodec[T]) Encode(e Encoder, v T) error {
	if unsafe.Sizeof(v) == 4 {
		return e.Float32(float32(v))
	}
	return e.Float64(float64(v))
}

func (floatCodec[T]) Decode(d Decoder) (T, error) {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		v, err := d.Float32()
		return T(v), err
	}
	v, err := d.Float64()
	return T(v), err
}

// Bool returns the one-byte bool codec.
func Bool() Codec[bool] {
	return CodecFunc[bool]{
		EncodeFunc: func(e Encoder, v bool) error { return e.Bool(v) },
		DecodeFunc: func(d Decoder) (bool, error) { return d.Bool() },
	}
}

// String returns the length-prefixed string codec.
func String() Codec[string] {
	return CodecFunc[string]{
		EncodeFunc: func(e Encoder, v string) error { return e.String(v) },
		DecodeFunc: func(d Decoder) (string, error) { return d.String() },
	}
}

// Slice returns a codec for []T as a length-prefixed sequence of elem.
func Slice[T any](elem Codec[T]) Codec[[]T] { return sliceCodec[T]{elem: elem} }

type sliceCodec[T any] struct{ elem Codec[T] }

func (c sliceCodec[T]) Encode(e Encoder, v []T) error {
	if err := e.BeginSeq(len(v)); err != nil {
		return err
	}
	for i := range v {
		if err := c.elem.Encode(e, v[i]); err != nil {
			return err
		}
	}
	return e.EndSeq()
}

func (c sliceCodec[T]) Decode(d Decoder) ([]T, error) {
	n, err := d.BeginSeq()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		v, err := c.elem.Decode(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, d.EndSeq()
}

// Marshal encodes v with c into a fresh byte slice.
func Marshal[T any](v T, c Codec[T], cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf, cfg)
	if err := c.Encode(w, v); err != nil {
		return nil, err
	}
	if err := w.Done(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one value of T from data.
func Unmarshal[T any](data []byte, c Codec[T], cfg Config) (T, error) {
	var zero T
	src := bytes.NewReader(data)
	r := NewReader(src, cfg)
	v, err := c.Decode(r)
	if err != nil {
		return zero, err
	}
	if err := r.Done(); err != nil {
		return zero, err
	}
	if src.Len() != 0 {
		return zero, fmt.Errorf("wire: %d bytes left: %w", src.Len(), ErrTrailingData)
	}
	return v, nil
}
