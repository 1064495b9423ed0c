// Package chunk provides bounded, nestable windows over seekable byte
// streams.
//
// A Chunk restricts all access through it to the byte range [start, end] of
// an underlying io.ReadWriteSeeker, where start is the stream position at
// construction and end is the window's limit clamped to the stream's actual
// length. Windows nest: slicing a window yields a child whose bound is the
// intersection of its requested limit and the parent's remaining bound, so a
// nested parser can never observe or mutate bytes outside the range it was
// handed. This is the primitive needed for box/chunk/atom-structured
// container formats, where a length prefix declares how far a sub-parser may
// look.
//
// # Usage
//
//	c, err := chunk.Wrap(file)
//	if err != nil {
//	    return err
//	}
//	// Confine the next 64 bytes to a sub-parser.
//	body, err := c.Slice(64)
//	if err != nil {
//	    return err
//	}
//	parse(body.ReadOnly())
//	// Reclaim the stream to continue past the window.
//	file = c.Unwrap().(*os.File)
//
// # Bound semantics
//
// The window's effective end is recomputed from the underlying stream's
// actual length on every operation (the probe restores the stream position),
// so a limit past the real end of the stream never grants access the stream
// does not have, and a stream that grows or shrinks between operations is
// handled correctly. Reads and writes past the bound are clamped, not
// errors; seeks outside the bound fail with ErrInvalidSeek and change
// nothing.
//
// # Concurrency
//
// None. Windows perform no internal locking, and windows sliced from the
// same stream share one handle. The caller must drive one window at a time
// and must not touch the same handle from two goroutines at once.
package chunk
