// SPDX-License-Identifier: MIT

package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Reader decodes structured values from an io.Reader.
type Reader struct {
	r       io.Reader
	order   binary.ByteOrder
	tagged  bool
	maxLen  int
	stack   frames
	scratch [8]byte
}

// NewReader creates a binary reader with the given configuration.
func NewReader(r io.Reader, cfg Config) *Reader {
	cfg = cfg.normalize()
	return &Reader{
		r:      r,
		order:  cfg.ByteOrder,
		tagged: cfg.Tagged,
		maxLen: cfg.MaxSeqLen,
	}
}

// Done reports ErrNesting if a struct or sequence is still open.
func (r *Reader) Done() error { return r.stack.done() }

// ReadBytes reads exactly len(buf) bytes.
// Running out of input, even at a value boundary, is io.ErrUnexpectedEOF.
func (r *Reader) ReadBytes(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	_, err := io.ReadFull(r.r, buf)
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// BeginStruct opens a struct; in tagged mode the stored name and field count must match.
func (r *Reader) BeginStruct(name string, fields int) error {
	if r.tagged {
		got, err := r.String()
		if err != nil {
			return err
		}
		if got != name {
			return fieldErrorf(name, "", "struct %q on the wire", got)
		}
		n, err := r.Uint64()
		if err != nil {
			return err
		}
		if n != uint64(fields) {
			return fieldErrorf(name, "", "%d fields on the wire, want %d", n, fields)
		}
	}
	r.stack.push(frame{kind: frameStruct, name: name, fields: fields})
	return nil
}

// Field advances to the next field; in tagged mode the stored field name must match.
func (r *Reader) Field(name string, index int) error {
	if err := r.stack.field(name, index); err != nil {
		return err
	}
	if !r.tagged {
		return nil
	}
	got, err := r.String()
	if err != nil {
		return err
	}
	if got != name {
		f, _ := r.stack.top(frameStruct)
		return fieldErrorf(f.name, name, "field %q on the wire", got)
	}
	return nil
}

// EndStruct closes the open struct.
func (r *Reader) EndStruct() error { return r.stack.endStruct() }

// BeginSeq reads a sequence length prefix.
func (r *Reader) BeginSeq() (int, error) {
	n, err := r.length()
	if err != nil {
		return 0, err
	}
	r.stack.push(frame{kind: frameSeq})
	return n, nil
}

// EndSeq closes the open sequence.
func (r *Reader) EndSeq() error { return r.stack.endSeq() }

// length reads a uint64 prefix and checks it against the configured limit.
func (r *Reader) length() (int, error) {
	n, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	if n > uint64(r.maxLen) {
		return 0, fmt.Errorf("wire: length prefix %d: %w", n, ErrLengthLimit)
	}
	return int(n), nil
}

// Uint8 reads an unsigned 8-bit integer.
func (r *Reader) Uint8() (uint8, error) {
	if err := r.ReadBytes(r.scratch[:1]); err != nil {
		return 0, err
	}
	return r.scratch[0], nil
}

// Uint16 reads an unsigned 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.ReadBytes(r.scratch[:2]); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.scratch[:2]), nil
}

// Uint32 reads an unsigned 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.ReadBytes(r.scratch[:4]); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.scratch[:4]), nil
}

// Uint64 reads an unsigned 64-bit integer.
func (r *Reader) Uint64() (uint64, error) {
	if err := r.ReadBytes(r.scratch[:8]); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.scratch[:8]), nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

// Float32 reads IEEE-754 bits.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// Float64 reads IEEE-754 bits.
func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	return math.Float64frombits(v), err
}

// Bool reads one byte that must be 0 or 1.
func (r *Reader) Bool() (bool, error) {
	v, err := r.Uint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("wire: bool byte 0x%02x: %w", v, ErrInvalidBool)
}

// String reads a length-prefixed byte string.
func (r *Reader) String() (string, error) {
	n, err := r.length()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	// grow with the input instead of trusting the prefix up front
	var sb strings.Builder
	if _, err := io.CopyN(&sb, r.r, int64(n)); err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return sb.String(), nil
}

var _ Decoder = (*Reader)(nil)
