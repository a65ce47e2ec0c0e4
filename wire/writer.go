// SPDX-License-Identifier: MIT

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer encodes structured values onto an io.Writer.
type Writer struct {
	w       io.Writer
	order   binary.ByteOrder
	tagged  bool
	maxLen  int
	stack   frames
	scratch [8]byte
}

// NewWriter creates a binary writer with the given configuration.
func NewWriter(w io.Writer, cfg Config) *Writer {
	cfg = cfg.normalize()
	return &Writer{
		w:      w,
		order:  cfg.ByteOrder,
		tagged: cfg.Tagged,
		maxLen: cfg.MaxSeqLen,
	}
}

// Done reports ErrNesting if a struct or sequence is still open.
func (w *Writer) Done() error { return w.stack.done() }

// BeginStruct opens a struct with the given number of fields.
func (w *Writer) BeginStruct(name string, fields int) error {
	if fields < 0 {
		return fieldErrorf(name, "", "negative field count %d", fields)
	}
	if w.tagged {
		if err := w.String(name); err != nil {
			return err
		}
		if err := w.Uint64(uint64(fields)); err != nil {
			return err
		}
	}
	w.stack.push(frame{kind: frameStruct, name: name, fields: fields})
	return nil
}

// Field announces the next field of the open struct.
func (w *Writer) Field(name string, index int) error {
	if err := w.stack.field(name, index); err != nil {
		return err
	}
	if w.tagged {
		return w.String(name)
	}
	return nil
}

// EndStruct closes the open struct.
func (w *Writer) EndStruct() error { return w.stack.endStruct() }

// BeginSeq writes the length prefix of a sequence of n elements.
func (w *Writer) BeginSeq(n int) error {
	if n < 0 || n > w.maxLen {
		return fmt.Errorf("wire: sequence of %d elements: %w", n, ErrLengthLimit)
	}
	if err := w.Uint64(uint64(n)); err != nil {
		return err
	}
	w.stack.push(frame{kind: frameSeq})
	return nil
}

// EndSeq closes the open sequence.
func (w *Writer) EndSeq() error { return w.stack.endSeq() }

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	_, err := w.w.Write(data)
	return err
}

// Uint8 writes an unsigned 8-bit integer.
func (w *Writer) Uint8(v uint8) error {
	w.scratch[0] = v
	return w.WriteBytes(w.scratch[:1])
}

// Uint16 writes an unsigned 16-bit integer.
func (w *Writer) Uint16(v uint16) error {
	w.order.PutUint16(w.scratch[:2], v)
	return w.WriteBytes(w.scratch[:2])
}

// Uint32 writes an unsigned 32-bit integer.
func (w *Writer) Uint32(v uint32) error {
	w.order.PutUint32(w.scratch[:4], v)
	return w.WriteBytes(w.scratch[:4])
}

// Uint64 writes an unsigned 64-bit integer.
func (w *Writer) Uint64(v uint64) error {
	w.order.PutUint64(w.scratch[:8], v)
	return w.WriteBytes(w.scratch[:8])
}

func (w *Writer) Int8(v int8) error   { return w.Uint8(uint8(v)) }
func (w *Writer) Int16(v int16) error { return w.Uint16(uint16(v)) }
func (w *Writer) Int32(v int32) error { return w.Uint32(uint32(v)) }
func (w *Writer) Int64(v int64) error { return w.Uint64(uint64(v)) }

// Float32 writes the IEEE-754 bits of v.
func (w *Writer) Float32(v float32) error { return w.Uint32(math.Float32bits(v)) }

// Float64 writes the IEEE-754 bits of v.
func (w *Writer) Float64(v float64) error { return w.Uint64(math.Float64bits(v)) }

// Bool writes 1 for true and 0 for false.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.Uint8(1)
	}
	return w.Uint8(0)
}

// String writes a length-prefixed byte string.
func (w *Writer) String(v string) error {
	if len(v) > w.maxLen {
		return fmt.Errorf("wire: string of %d bytes: %w", len(v), ErrLengthLimit)
	}
	if err := w.Uint64(uint64(len(v))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	_, err := io.WriteString(w.w, v)
	return err
}

var _ Encoder = (*Writer)(nil)
