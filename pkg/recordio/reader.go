package recordio

import (
	"errors"
	"io"
	"math"

	"github.com/julionce/once-io/pkg/chunk"
	"github.com/julionce/once-io/pkg/numio"
)

// Reader walks records sequentially through a bounded window. Each record's
// payload is read through a sub-window carved at the declared size, so a
// size field that lies about its length can never pull in bytes from
// outside the reader's window.
type Reader struct {
	src *chunk.Chunk
}

// NewReader creates a reader over the given window, starting at its current
// position.
func NewReader(src *chunk.Chunk) *Reader {
	return &Reader{src: src}
}

// Next reads the record at the current position and leaves the window
// positioned at the next one. It returns io.EOF at a clean end of the
// window and ErrCorruption for a truncated header or payload, a payload
// overrunning the window, or a CRC mismatch.
func (r *Reader) Next() (*Record, error) {
	offset, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	remaining, err := r.src.RemainderLen()
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		return nil, io.EOF
	}
	if remaining < HeaderSize {
		return nil, ErrCorruption
	}

	crc, err := numio.LittleEndian.Uint32(r.src)
	if err != nil {
		return nil, headerErr(err)
	}
	tag, err := numio.LittleEndian.Uint32(r.src)
	if err != nil {
		return nil, headerErr(err)
	}
	size, err := numio.LittleEndian.Uint64(r.src)
	if err != nil {
		return nil, headerErr(err)
	}
	if size > math.MaxInt64 {
		return nil, ErrCorruption
	}

	body, err := r.src.Slice(int64(size))
	if err != nil {
		return nil, err
	}
	bodyLen, err := body.RemainderLen()
	if err != nil {
		return nil, err
	}
	if bodyLen < int64(size) {
		// The declared size overruns the window; the clamp kept us from
		// reading past it, so this record is truncated.
		return nil, ErrCorruption
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(body.ReadOnly(), payload); err != nil {
		return nil, headerErr(err)
	}
	// body shares the underlying handle, so the parent window is already
	// positioned just past the payload.

	record := &Record{
		CRC32:   crc,
		Tag:     tag,
		Size:    size,
		Offset:  offset,
		Payload: payload,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// headerErr promotes an end-of-input failure mid-record into ErrCorruption;
// any other underlying I/O error propagates unchanged.
func headerErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrCorruption
	}
	return err
}
