package chunk

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// NoLimit marks a slice as bounded only by its parent window and the
// underlying stream's actual length.
const NoLimit int64 = -1

// Errors returned by window operations.
var (
	// ErrInvalidSeek is returned when a seek target is negative, overflows
	// offset arithmetic, or falls outside the window's bound. The window and
	// the underlying stream are left unchanged.
	ErrInvalidSeek = errors.New("chunk: seek to a negative or out-of-window position")
)

// Chunk is a bounded window over a seekable byte stream. All reads, writes
// and seeks through the window are confined to [start, end], where start is
// the underlying stream's position at construction time and end is the
// window's limit clamped to the stream's actual length.
//
// The underlying length is probed on every operation, so a window stays
// correct even if the stream grows or is truncated between calls. Windows
// carved from the same stream share one handle; the caller must drive only
// one of them at a time, and must not use any of them from multiple
// goroutines concurrently.
type Chunk struct {
	inner    io.ReadWriteSeeker
	start    int64
	limitPos int64 // absolute bound; meaningful only when bounded is set
	bounded  bool
}

// Wrap creates an unbounded window over inner, starting at inner's current
// position.
func Wrap(inner io.ReadWriteSeeker) (*Chunk, error) {
	pos, err := inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &Chunk{inner: inner, start: pos}, nil
}

// Slice carves a nested window starting at the current position. limit is
// the window's byte count, or NoLimit for a window bounded only by its
// parent. The effective bound is always the intersection of limit and the
// parent's remaining bound; slicing never widens access. An offset overflow
// in start+limit is treated as "unbounded", not as an error.
func (c *Chunk) Slice(limit int64) (*Chunk, error) {
	pos, err := c.inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	child := &Chunk{inner: c.inner, start: pos}
	if limit < 0 {
		child.limitPos = c.limitPos
		child.bounded = c.bounded
		return child, nil
	}
	limitPos := saturatingAdd(pos, limit)
	if c.bounded && c.limitPos < limitPos {
		limitPos = c.limitPos
	}
	child.limitPos = limitPos
	child.bounded = true
	return child, nil
}

// Unwrap hands the underlying stream back to the caller. The stream is
// positioned wherever the window last left it, i.e. at start plus the
// window's relative position.
func (c *Chunk) Unwrap() io.ReadWriteSeeker {
	return c.inner
}

// Seek implements io.Seeker in window coordinates: io.SeekStart is relative
// to the window's start, io.SeekEnd to the window's effective end, and
// io.SeekCurrent to the underlying stream's actual current position (a
// sibling window sharing the handle may have moved it). The returned offset
// is relative to the window's start.
//
// Targets outside the window, including one byte past its end, fail with
// ErrInvalidSeek without moving the stream.
func (c *Chunk) Seek(offset int64, whence int) (int64, error) {
	cur, err := c.inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := c.end()
	if err != nil {
		return 0, err
	}

	var base int64
	switch whence {
	case io.SeekStart:
		base = c.start
	case io.SeekCurrent:
		base = cur
	case io.SeekEnd:
		base = end
	default:
		return 0, fmt.Errorf("chunk: invalid whence: %d", whence)
	}

	target, ok := checkedAdd(base, offset)
	if !ok || target < c.start || target > end {
		return 0, ErrInvalidSeek
	}
	if _, err := c.inner.Seek(target, io.SeekStart); err != nil {
		return 0, err
	}
	return target - c.start, nil
}

// Read reads into p, clamped to the window's remaining length. A request
// for more bytes than remain is a short read, not an error; bytes of p past
// the clamped prefix are never touched. At the window's end Read returns
// io.EOF.
func (c *Chunk) Read(p []byte) (int, error) {
	remaining, err := c.RemainderLen()
	if err != nil {
		return 0, err
	}
	if remaining == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := len(p)
	if int64(n) > remaining {
		n = int(remaining)
	}
	return c.inner.Read(p[:n])
}

// Write writes from p, clamped to the window's remaining length. Writing
// more than remains truncates silently: the accepted count is returned with
// a nil error, and it is the caller's responsibility to detect the short
// write. This intentionally deviates from the usual io.Writer expectation
// that n < len(p) implies a non-nil error.
func (c *Chunk) Write(p []byte) (int, error) {
	remaining, err := c.RemainderLen()
	if err != nil {
		return 0, err
	}
	n := len(p)
	if int64(n) > remaining {
		n = int(remaining)
	}
	if n == 0 {
		return 0, nil
	}
	return c.inner.Write(p[:n])
}

// Flush forwards to the underlying stream's Flush or Sync method when it
// has one. The window buffers nothing of its own.
func (c *Chunk) Flush() error {
	switch s := c.inner.(type) {
	case interface{ Flush() error }:
		return s.Flush()
	case interface{ Sync() error }:
		return s.Sync()
	}
	return nil
}

// RemainderLen reports how many bytes remain between the current position
// and the window's effective end, zero when the position is at or past it.
// A stored limit of math.MaxInt64 behaves exactly like "no limit".
func (c *Chunk) RemainderLen() (int64, error) {
	cur, err := c.inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := c.end()
	if err != nil {
		return 0, err
	}
	if end <= cur {
		return 0, nil
	}
	return end - cur, nil
}

// end computes the window's effective end: the limit clamped to the
// underlying stream's actual length, or the length alone when unbounded.
func (c *Chunk) end() (int64, error) {
	length, err := c.length()
	if err != nil {
		return 0, err
	}
	if c.bounded && c.limitPos < length {
		return c.limitPos, nil
	}
	return length, nil
}

// length probes the underlying stream's total length, restoring the stream
// position before returning so the probe is not observable.
func (c *Chunk) length() (int64, error) {
	cur, err := c.inner.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	length, err := c.inner.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := c.inner.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return length, nil
}

// checkedAdd adds two offsets, reporting overflow instead of wrapping.
func checkedAdd(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// saturatingAdd adds two non-negative offsets, clamping to math.MaxInt64 on
// overflow.
func saturatingAdd(a, b int64) int64 {
	if sum, ok := checkedAdd(a, b); ok {
		return sum
	}
	return math.MaxInt64
}
