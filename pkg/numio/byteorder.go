package numio

import (
	"encoding/binary"
	"io"
)

// A ByteOrder decodes fixed-width numeric values from a byte source,
// reading exactly the value's size in bytes per call. A source that runs
// out mid-value fails with the short-read error unchanged (io.EOF when
// nothing was read, io.ErrUnexpectedEOF on a partial value); a truncated
// field is never zero-padded.
//
// The decoder interprets nothing beyond the requested value. Layer it over
// a bounded window (pkg/chunk) to get "read this field, but never past this
// record's end" semantics.
type ByteOrder interface {
	Uint8(r io.Reader) (uint8, error)
	Uint16(r io.Reader) (uint16, error)
	Uint32(r io.Reader) (uint32, error)
	Uint64(r io.Reader) (uint64, error)
	Uint128(r io.Reader) (Uint128, error)

	Int8(r io.Reader) (int8, error)
	Int16(r io.Reader) (int16, error)
	Int32(r io.Reader) (int32, error)
	Int64(r io.Reader) (int64, error)
	Int128(r io.Reader) (Int128, error)

	// Uint and Int decode a platform-word-sized integer (8 bytes on 64-bit
	// platforms, 4 on 32-bit). Portable formats should prefer an explicit
	// width.
	Uint(r io.Reader) (uint, error)
	Int(r io.Reader) (int, error)

	Float32(r io.Reader) (float32, error)
	Float64(r io.Reader) (float64, error)

	String() string
}

// Byte orders supported by the decoder. NativeEndian is whichever of
// BigEndian or LittleEndian matches the platform's own representation.
var (
	BigEndian    ByteOrder = bigEndian{}
	LittleEndian ByteOrder = littleEndian{}
	NativeEndian ByteOrder = nativeOrder()
)

func nativeOrder() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x3412 {
		return LittleEndian
	}
	return BigEndian
}
