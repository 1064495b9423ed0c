// Package recordio reads and writes CRC-checked, length-prefixed records
// through bounded windows.
//
// It is the toolkit's reference consumer: framing is decoded with
// pkg/numio, and every payload is accessed through a pkg/chunk sub-window
// carved at the declared size, so a corrupt or hostile length field can
// never reach bytes outside the record.
//
// # Record Format
//
// Records are serialized little-endian with the following structure:
//
//	[CRC32(4)][Tag(4)][PayloadSize(8)][Payload]
//
// The CRC32 (IEEE) covers Tag, PayloadSize and Payload. Tag is an opaque
// caller-chosen record type. Payloads may themselves contain encoded
// records; parsing them through a sliced window keeps the nesting safe.
//
// # Errors
//
// A truncated header or payload, a size field overrunning the enclosing
// window, and a CRC mismatch all surface as ErrCorruption. A record that
// does not fit the writer's remaining window is rejected with ErrNoSpace
// before any bytes are written. Underlying I/O errors propagate unchanged.
package recordio
