package chunk

import "io"

// Compile-time capability checks.
var (
	_ io.ReadSeeker  = (*ReadOnlyChunk)(nil)
	_ io.WriteSeeker = (*WriteOnlyChunk)(nil)
)

// ReadOnlyChunk is a view of a window with the write capability removed at
// the type level. It holds no state of its own.
type ReadOnlyChunk struct {
	chunk *Chunk
}

// ReadOnly returns a read-only view of the window.
func (c *Chunk) ReadOnly() *ReadOnlyChunk {
	return &ReadOnlyChunk{chunk: c}
}

func (r *ReadOnlyChunk) Read(p []byte) (int, error) {
	return r.chunk.Read(p)
}

func (r *ReadOnlyChunk) Seek(offset int64, whence int) (int64, error) {
	return r.chunk.Seek(offset, whence)
}

func (r *ReadOnlyChunk) RemainderLen() (int64, error) {
	return r.chunk.RemainderLen()
}

// Unwrap returns the wrapped window, restoring the write capability.
func (r *ReadOnlyChunk) Unwrap() *Chunk {
	return r.chunk
}

// WriteOnlyChunk is a view of a window with the read capability removed at
// the type level. It holds no state of its own.
type WriteOnlyChunk struct {
	chunk *Chunk
}

// WriteOnly returns a write-only view of the window.
func (c *Chunk) WriteOnly() *WriteOnlyChunk {
	return &WriteOnlyChunk{chunk: c}
}

func (w *WriteOnlyChunk) Write(p []byte) (int, error) {
	return w.chunk.Write(p)
}

func (w *WriteOnlyChunk) Seek(offset int64, whence int) (int64, error) {
	return w.chunk.Seek(offset, whence)
}

func (w *WriteOnlyChunk) Flush() error {
	return w.chunk.Flush()
}

func (w *WriteOnlyChunk) RemainderLen() (int64, error) {
	return w.chunk.RemainderLen()
}

// Unwrap returns the wrapped window, restoring the read capability.
func (w *WriteOnlyChunk) Unwrap() *Chunk {
	return w.chunk
}
