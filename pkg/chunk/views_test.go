package chunk

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOnlyChunk_ReadsAndSeeks(t *testing.T) {
	file := newTestFile(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	c, err := Wrap(file)
	require.NoError(t, err)

	r := c.ReadOnly()

	pos, err := r.Seek(2, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{2, 3, 4}, buf)

	remaining, err := r.RemainderLen()
	require.NoError(t, err)
	assert.Equal(t, int64(5), remaining)

	assert.Same(t, c, r.Unwrap())
}

func TestWriteOnlyChunk_WritesAndFlushes(t *testing.T) {
	file := newTestFile(t, make([]byte, 10))
	root, err := Wrap(file)
	require.NoError(t, err)
	c, err := root.Slice(4)
	require.NoError(t, err)

	w := c.WriteOnly()

	n, err := w.Write([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, w.Flush())

	pos, err := w.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	assert.Same(t, c, w.Unwrap())
}
