package numio

import (
	"encoding/binary"
	"io"
	"math"
	"math/bits"
)

type littleEndian struct{}

func (littleEndian) String() string { return "LittleEndian" }

func (littleEndian) Uint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (littleEndian) Uint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (littleEndian) Uint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (littleEndian) Uint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (littleEndian) Uint128(r io.Reader) (Uint128, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}, nil
}

func (e littleEndian) Int8(r io.Reader) (int8, error) {
	v, err := e.Uint8(r)
	return int8(v), err
}

func (e littleEndian) Int16(r io.Reader) (int16, error) {
	v, err := e.Uint16(r)
	return int16(v), err
}

func (e littleEndian) Int32(r io.Reader) (int32, error) {
	v, err := e.Uint32(r)
	return int32(v), err
}

func (e littleEndian) Int64(r io.Reader) (int64, error) {
	v, err := e.Uint64(r)
	return int64(v), err
}

func (e littleEndian) Int128(r io.Reader) (Int128, error) {
	v, err := e.Uint128(r)
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}, err
}

func (e littleEndian) Uint(r io.Reader) (uint, error) {
	if bits.UintSize == 32 {
		v, err := e.Uint32(r)
		return uint(v), err
	}
	v, err := e.Uint64(r)
	return uint(v), err
}

func (e littleEndian) Int(r io.Reader) (int, error) {
	if bits.UintSize == 32 {
		v, err := e.Int32(r)
		return int(v), err
	}
	v, err := e.Int64(r)
	return int(v), err
}

func (e littleEndian) Float32(r io.Reader) (float32, error) {
	v, err := e.Uint32(r)
	return math.Float32frombits(v), err
}

func (e littleEndian) Float64(r io.Reader) (float64, error) {
	v, err := e.Uint64(r)
	return math.Float64frombits(v), err
}
