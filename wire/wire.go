// SPDX-License-Identifier: MIT

package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrFieldMismatch indicates a struct name, field count, field name or field order mismatch.
	ErrFieldMismatch = errors.New("wire: struct field mismatch")

	// ErrNesting indicates unbalanced or misplaced struct/sequence markers.
	ErrNesting = errors.New("wire: invalid nesting")

	// ErrInvalidBool indicates a bool byte other than 0 or 1.
	ErrInvalidBool = errors.New("wire: invalid bool encoding")

	// ErrLengthLimit indicates a length prefix above the configured maximum.
	ErrLengthLimit = errors.New("wire: length exceeds limit")

	// ErrTrailingData indicates unread bytes after a complete value.
	ErrTrailingData = errors.New("wire: trailing data after value")
)

// DefaultMaxSeqLen bounds sequence and string length prefixes.
const DefaultMaxSeqLen = 1 << 28

// Config holds stream configuration shared by Writer and Reader.
type Config struct {
	ByteOrder binary.ByteOrder
	Tagged    bool // write and verify struct and field names
	MaxSeqLen int  // upper bound for length prefixes; 0 means DefaultMaxSeqLen
}

// DefaultConfig returns the untagged little-endian layout.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.LittleEndian,
		MaxSeqLen: DefaultMaxSeqLen,
	}
}

// normalize fills unset fields with defaults.
func (c Config) normalize() Config {
	if c.ByteOrder == nil {
		c.ByteOrder = binary.LittleEndian
	}
	if c.MaxSeqLen <= 0 {
		c.MaxSeqLen = DefaultMaxSeqLen
	}
	return c
}

// Encoder emits structured values.
type Encoder interface {
	BeginStruct(name string, fields int) error
	Field(name string, index int) error
	EndStruct() error

	BeginSeq(n int) error
	EndSeq() error

	Uint8(v uint8) error
	Uint16(v uint16) error
	Uint32(v uint32) error
	Uint64(v uint64) error
	Int8(v int8) error
	Int16(v int16) error
	Int32(v int32) error
	Int64(v int64) error
	Float32(v float32) error
	Float64(v float64) error
	Bool(v bool) error
	String(v string) error
}

// Decoder reads structured values in the order an Encoder emitted them.
type Decoder interface {
	BeginStruct(name string, fields int) error
	Field(name string, index int) error
	EndStruct() error

	// BeginSeq returns the declared element count.
	BeginSeq() (int, error)
	EndSeq() error

	Uint8() (uint8, error)
	Uint16() (uint16, error)
	Uint32() (uint32, error)
	Uint64() (uint64, error)
	Int8() (int8, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)
	Float32() (float32, error)
	Float64() (float64, error)
	Bool() (bool, error)
	String() (string, error)
}

type frameKind uint8

const (
	frameStruct frameKind = iota + 1
	frameSeq
)

// frame tracks one open struct or sequence.
type frame struct {
	kind   frameKind
	name   string
	fields int // declared field count (structs)
	next   int // index of the next expected field (structs)
}

// frames is the nesting stack shared by Writer and Reader.
type frames []frame

func (fs *frames) push(f frame) { *fs = append(*fs, f) }

func (fs *frames) top(kind frameKind) (*frame, bool) {
	if len(*fs) == 0 || (*fs)[len(*fs)-1].kind != kind {
		return nil, false
	}
	return &(*fs)[len(*fs)-1], true
}

func (fs *frames) pop() { *fs = (*fs)[:len(*fs)-1] }

// field advances the open struct to index, verifying order.
func (fs *frames) field(name string, index int) error {
	f, ok := fs.top(frameStruct)
	if !ok {
		return fmt.Errorf("wire: field %q outside struct: %w", name, ErrNesting)
	}
	if index != f.next || index >= f.fields {
		return fieldErrorf(f.name, name, "index %d, want %d of %d", index, f.next, f.fields)
	}
	f.next++
	return nil
}

// endStruct closes the open struct, verifying every field was visited.
func (fs *frames) endStruct() error {
	f, ok := fs.top(frameStruct)
	if !ok {
		return ErrNesting
	}
	if f.next != f.fields {
		return fieldErrorf(f.name, "", "%d of %d fields", f.next, f.fields)
	}
	fs.pop()
	return nil
}

// endSeq closes the open sequence.
func (fs *frames) endSeq() error {
	if _, ok := fs.top(frameSeq); !ok {
		return ErrNesting
	}
	fs.pop()
	return nil
}

// done reports unbalanced frames.
func (fs frames) done() error {
	if len(fs) != 0 {
		return ErrNesting
	}
	return nil
}

// fieldErrorf wraps ErrFieldMismatch with the struct and field it concerns.
func fieldErrorf(structName, fieldName, format string, args ...any) error {
	return fmt.Errorf("wire: %s.%s: %s: %w", structName, fieldName, fmt.Sprintf(format, args...), ErrFieldMismatch)
}
