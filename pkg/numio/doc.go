// Package numio decodes fixed-width numeric values from byte sources,
// parameterized by byte order.
//
// Each ByteOrder (BigEndian, LittleEndian, NativeEndian) decodes 8- to
// 128-bit signed and unsigned integers, platform-word-sized integers, and
// IEEE 754 float32/float64 values by reading exactly the value's size in
// bytes from an io.Reader. A source exhausted mid-value is an error, never
// a zero-padded result.
//
// The package performs no bounds interpretation of its own; combined with a
// bounded window from pkg/chunk it yields field readers that cannot run
// past a record's declared end:
//
//	body, _ := c.Slice(recordLen)
//	tag, err := numio.LittleEndian.Uint32(body)
package numio
