package recordio

import (
	"encoding/binary"
	"hash/crc32"
)

// HeaderSize is the encoded size of a record header:
// CRC32(4) + Tag(4) + PayloadSize(8).
const HeaderSize = 16

// Errors
var (
	ErrCorruption = &RecordError{"record corruption detected"}
	ErrNoSpace    = &RecordError{"record does not fit in the remaining window"}
)

// RecordError represents a record framing error.
type RecordError struct {
	Message string
}

func (e *RecordError) Error() string {
	return e.Message
}

// Record is one decoded record: a caller-chosen tag, a length-prefixed
// payload, and a CRC32 over both.
type Record struct {
	CRC32   uint32 // CRC32 checksum for integrity
	Tag     uint32 // Caller-chosen record type
	Size    uint64 // Payload size in bytes
	Offset  int64  // Window-relative offset of the record header
	Payload []byte // Payload data
}

// Encode serializes a tagged payload into the binary record format.
// Format: [CRC32(4)][Tag(4)][PayloadSize(8)][Payload], little-endian.
func Encode(tag uint32, payload []byte) []byte {
	buf := make([]byte, HeaderSize+len(payload))

	binary.LittleEndian.PutUint32(buf[4:], tag)
	binary.LittleEndian.PutUint64(buf[8:], uint64(len(payload)))
	copy(buf[HeaderSize:], payload)
	binary.LittleEndian.PutUint32(buf[0:], crc32.ChecksumIEEE(buf[4:]))

	return buf
}

// Validate checks the integrity of a record using CRC32.
func (r *Record) Validate() error {
	if r.CRC32 != r.checksum() {
		return ErrCorruption
	}
	return nil
}

// checksum computes the CRC32 over everything but the CRC field itself:
// Tag + PayloadSize + Payload.
func (r *Record) checksum() uint32 {
	var hdr [HeaderSize - 4]byte
	binary.LittleEndian.PutUint32(hdr[0:], r.Tag)
	binary.LittleEndian.PutUint64(hdr[4:], r.Size)

	crc := crc32.NewIEEE()
	crc.Write(hdr[:])
	crc.Write(r.Payload)
	return crc.Sum32()
}
