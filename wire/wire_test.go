// SPDX-License-Identifier: MIT
package wire_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/bachm/grid/wire"
	"github.com/stretchr/testify/require"
)

// point is a two-field struct used to exercise struct framing.
type point struct {
	X int32
	Y string
}

var pointCodec = wire.CodecFunc[point]{
	EncodeFunc: func(e wire.Encoder, p point) error {
		if err := e.BeginStruct("point", 2); err != nil {
			return err
		}
		if err := e.Field("x", 0); err != nil {
			return err
		}
		if err := e.Int32(p.X); err != nil {
			return err
		}
		if err := e.Field("y", 1); err != nil {
			return err
		}
		if err := e.String(p.Y); err != nil {
			return err
		}
		return e.EndStruct()
	},
	DecodeFunc: func(d wire.Decoder) (point, error) {
		var p point
		if err := d.BeginStruct("point", 2); err != nil {
			return p, err
		}
		if err := d.Field("x", 0); err != nil {
			return p, err
		}
		x, err := d.Int32()
		if err != nil {
			return p, err
		}
		if err := d.Field("y", 1); err != nil {
			return p, err
		}
		y, err := d.String()
		if err != nil {
			return p, err
		}
		p.X, p.Y = x, y
		return p, d.EndStruct()
	},
}

// TestUntaggedLayout pins the byte layout of an untagged struct.
func TestUntaggedLayout(t *testing.T) {
	data, err := wire.Marshal(point{X: -2, Y: "ab"}, pointCodec, wire.DefaultConfig())
	require.NoError(t, err)

	want := []byte{
		0xfe, 0xff, 0xff, 0xff, // x = -2
		2, 0, 0, 0, 0, 0, 0, 0, // len("ab")
		'a', 'b',
	}
	require.Equal(t, want, data)

	got, err := wire.Unmarshal(data, pointCodec, wire.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, point{X: -2, Y: "ab"}, got)
}

// TestTaggedRoundTrip writes and verifies struct and field names.
func TestTaggedRoundTrip(t *testing.T) {
	cfg := wire.DefaultConfig()
	cfg.Tagged = true

	data, err := wire.Marshal(point{X: 7, Y: "q"}, pointCodec, cfg)
	require.NoError(t, err)
	require.True(t, bytes.Contains(data, []byte("point")))

	got, err := wire.Unmarshal(data, pointCodec, cfg)
	require.NoError(t, err)
	require.Equal(t, point{X: 7, Y: "q"}, got)
}

// TestTaggedFieldMismatch rejects a stream whose field names differ.
func TestTaggedFieldMismatch(t *testing.T) {
	cfg := wire.DefaultConfig()
	cfg.Tagged = true

	renamed := wire.CodecFunc[point]{
		EncodeFunc: pointCodec.EncodeFunc,
		DecodeFunc: func(d wire.Decoder) (point, error) {
			if err := d.BeginStruct("point", 2); err != nil {
				return point{}, err
			}
			return point{}, d.Field("col", 0)
		},
	}
	data, err := wire.Marshal(point{X: 1, Y: "z"}, pointCodec, cfg)
	require.NoError(t, err)

	_, err = wire.Unmarshal(data, renamed, cfg)
	require.ErrorIs(t, err, wire.ErrFieldMismatch)
}

// TestFieldOrderEnforced catches out-of-order and missing fields on encode.
func TestFieldOrderEnforced(t *testing.T) {
	w := wire.NewWriter(io.Discard, wire.DefaultConfig())
	require.NoError(t, w.BeginStruct("s", 2))
	require.ErrorIs(t, w.Field("b", 1), wire.ErrFieldMismatch)
	require.NoError(t, w.Field("a", 0))
	require.ErrorIs(t, w.EndStruct(), wire.ErrFieldMismatch)

	w2 := wire.NewWriter(io.Discard, wire.DefaultConfig())
	require.ErrorIs(t, w2.Field("a", 0), wire.ErrNesting)
	require.ErrorIs(t, w2.EndSeq(), wire.ErrNesting)
	require.NoError(t, w2.BeginSeq(0))
	require.ErrorIs(t, w2.Done(), wire.ErrNesting)
	require.NoError(t, w2.EndSeq())
	require.NoError(t, w2.Done())
}

// TestPrimitiveCodecs round-trips the built-in codecs.
func TestPrimitiveCodecs(t *testing.T) {
	cfg := wire.DefaultConfig()

	t.Run("int8", func(t *testing.T) {
		data, err := wire.Marshal(int8(-5), wire.Int[int8](), cfg)
		require.NoError(t, err)
		require.Len(t, data, 1)
		v, err := wire.Unmarshal(data, wire.Int[int8](), cfg)
		require.NoError(t, err)
		require.Equal(t, int8(-5), v)
	})
	t.Run("uint16", func(t *testing.T) {
		data, err := wire.Marshal(uint16(0xBEEF), wire.Int[uint16](), cfg)
		require.NoError(t, err)
		require.Equal(t, []byte{0xEF, 0xBE}, data)
		v, err := wire.Unmarshal(data, wire.Int[uint16](), cfg)
		require.NoError(t, err)
		require.Equal(t, uint16(0xBEEF), v)
	})
	t.Run("int64", func(t *testing.T) {
		data, err := wire.Marshal(int64(math.MinInt64), wire.Int[int64](), cfg)
		require.NoError(t, err)
		require.Len(t, data, 8)
		v, err := wire.Unmarshal(data, wire.Int[int64](), cfg)
		require.NoError(t, err)
		require.Equal(t, int64(math.MinInt64), v)
	})
	t.Run("float32", func(t *testing.T) {
		data, err := wire.Marshal(float32(1.5), wire.Float[float32](), cfg)
		require.NoError(t, err)
		require.Len(t, data, 4)
		v, err := wire.Unmarshal(data, wire.Float[float32](), cfg)
		require.NoError(t, err)
		require.Equal(t, float32(1.5), v)
	})
	t.Run("float64", func(t *testing.T) {
		data, err := wire.Marshal(math.Pi, wire.Float[float64](), cfg)
		require.NoError(t, err)
		v, err := wire.Unmarshal(data, wire.Float[float64](), cfg)
		require.NoError(t, err)
		require.Equal(t, math.Pi, v)
	})
	t.Run("bool", func(t *testing.T) {
		data, err := wire.Marshal(true, wire.Bool(), cfg)
		require.NoError(t, err)
		require.Equal(t, []byte{1}, data)
		v, err := wire.Unmarshal(data, wire.Bool(), cfg)
		require.NoError(t, err)
		require.True(t, v)
	})
	t.Run("slice", func(t *testing.T) {
		in := []string{"a", "", "xyz"}
		data, err := wire.Marshal(in, wire.Slice(wire.String()), cfg)
		require.NoError(t, err)
		v, err := wire.Unmarshal(data, wire.Slice(wire.String()), cfg)
		require.NoError(t, err)
		require.Equal(t, in, v)
	})
}

// TestBigEndian honours the configured byte order.
func TestBigEndian(t *testing.T) {
	cfg := wire.Config{ByteOrder: binary.BigEndian}
	data, err := wire.Marshal(uint32(1), wire.Int[uint32](), cfg)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 1}, data)
}

// TestDecodeErrors covers malformed input.
func TestDecodeErrors(t *testing.T) {
	cfg := wire.DefaultConfig()

	_, err := wire.Unmarshal([]byte{2}, wire.Bool(), cfg)
	require.ErrorIs(t, err, wire.ErrInvalidBool)

	_, err = wire.Unmarshal([]byte{1, 2, 3}, wire.Int[uint32](), cfg)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = wire.Unmarshal(nil, wire.Int[uint8](), cfg)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = wire.Unmarshal([]byte{1, 0}, wire.Int[uint8](), cfg)
	require.ErrorIs(t, err, wire.ErrTrailingData)

	// string claims 5 bytes, carries 2
	_, err = wire.Unmarshal([]byte{5, 0, 0, 0, 0, 0, 0, 0, 'h', 'i'}, wire.String(), cfg)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// TestLengthLimit rejects length prefixes above MaxSeqLen on both sides.
func TestLengthLimit(t *testing.T) {
	cfg := wire.DefaultConfig()
	cfg.MaxSeqLen = 2

	_, err := wire.Marshal([]bool{true, false, true}, wire.Slice(wire.Bool()), cfg)
	require.ErrorIs(t, err, wire.ErrLengthLimit)

	data, err := wire.Marshal([]bool{true, false, true}, wire.Slice(wire.Bool()), wire.DefaultConfig())
	require.NoError(t, err)
	_, err = wire.Unmarshal(data, wire.Slice(wire.Bool()), cfg)
	require.ErrorIs(t, err, wire.ErrLengthLimit)

	_, err = wire.Unmarshal([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, wire.String(), wire.DefaultConfig())
	require.ErrorIs(t, err, wire.ErrLengthLimit)
}
