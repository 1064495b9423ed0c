package recordio

import (
	"io"

	"github.com/julionce/once-io/pkg/chunk"
)

// Writer appends records through a write-only window over a pre-sized
// segment. The window's bound is the segment capacity: a record that does
// not fit in the remaining space is rejected with ErrNoSpace before
// anything is written.
type Writer struct {
	dst *chunk.WriteOnlyChunk
}

// NewWriter creates a writer over the given window, appending at its
// current position.
func NewWriter(dst *chunk.WriteOnlyChunk) *Writer {
	return &Writer{dst: dst}
}

// Append writes one record and returns the window-relative offset its
// header was written at.
func (w *Writer) Append(tag uint32, payload []byte) (int64, error) {
	offset, err := w.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	remaining, err := w.dst.RemainderLen()
	if err != nil {
		return 0, err
	}

	data := Encode(tag, payload)
	if int64(len(data)) > remaining {
		return 0, ErrNoSpace
	}

	n, err := w.dst.Write(data)
	if err != nil {
		return 0, err
	}
	if n < len(data) {
		return 0, io.ErrShortWrite
	}
	return offset, nil
}

// Flush forwards to the underlying stream.
func (w *Writer) Flush() error {
	return w.dst.Flush()
}
