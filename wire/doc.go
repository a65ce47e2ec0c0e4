// SPDX-License-Identifier: MIT

// Package wire is a small structured serializer: values are emitted as named
// structs of ordered fields, fixed-width integers, IEEE-754 floats, bools,
// strings and length-prefixed sequences, each element encoded by its own Codec.
//
// What:
//
//   - Encoder / Decoder describe the structured surface independent of layout.
//   - Writer / Reader implement it as a compact binary stream.
//   - Codec[T] encodes one value of T through an Encoder and decodes it back;
//     codecs compose, so a sequence codec just calls its element codec per item.
//
// Binary layout (DefaultConfig):
//
//   - integers: fixed width of the Go type, little-endian;
//   - floats: IEEE-754 bits, same byte order;
//   - bool: one byte, 0 or 1;
//   - string: uint64 byte length followed by the bytes;
//   - sequence: uint64 element count followed by the elements;
//   - struct: the fields back to back, no markers.
//
// With Config.Tagged the struct name, its field count and every field name are
// written as well, and the Reader rejects any mismatch with ErrFieldMismatch.
// Both modes check nesting and field order, so a codec that emits fields out
// of order fails at the call site rather than producing a corrupt stream.
//
// Errors:
//
//   - ErrFieldMismatch: struct name, field count, field name or field index differs.
//   - ErrNesting: End*/Field called outside the matching Begin*, or unbalanced frames.
//   - ErrInvalidBool: a bool byte other than 0 or 1.
//   - ErrLengthLimit: a declared length exceeds Config.MaxSeqLen.
//   - ErrTrailingData: Unmarshal found bytes after the value.
//
// Truncated input surfaces as io.ErrUnexpectedEOF.
package wire
