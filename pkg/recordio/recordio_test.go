package recordio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julionce/once-io/pkg/chunk"
)

// newSegment creates a zero-filled file of the given capacity, opened
// read-write at position 0.
func newSegment(t *testing.T, capacity int64) *os.File {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "recordio_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "segment.rec")
	require.NoError(t, os.WriteFile(path, make([]byte, capacity), 0600))

	file, err := os.OpenFile(path, os.O_RDWR, 0600)
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file
}

func TestWriterReader_RoundTrip(t *testing.T) {
	file := newSegment(t, 1024)

	win, err := chunk.Wrap(file)
	require.NoError(t, err)
	writer := NewWriter(win.WriteOnly())

	payloads := [][]byte{
		[]byte("first"),
		{},
		bytes.Repeat([]byte{0xAB}, 100),
	}
	tags := []uint32{0x11, 0x22, 0x33}

	var offsets []int64
	var total int64
	for i := range payloads {
		offset, err := writer.Append(tags[i], payloads[i])
		require.NoError(t, err)
		assert.Equal(t, total, offset)
		offsets = append(offsets, offset)
		total += HeaderSize + int64(len(payloads[i]))
	}
	require.NoError(t, writer.Flush())

	// Read back through a window bounded to the written bytes, so the
	// segment's zero padding stays invisible.
	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)
	root, err := chunk.Wrap(file)
	require.NoError(t, err)
	data, err := root.Slice(total)
	require.NoError(t, err)

	reader := NewReader(data)
	for i := range payloads {
		record, err := reader.Next()
		require.NoError(t, err)
		assert.Equal(t, tags[i], record.Tag)
		assert.Equal(t, offsets[i], record.Offset)
		assert.Equal(t, uint64(len(payloads[i])), record.Size)
		assert.Equal(t, payloads[i], record.Payload)
		assert.NoError(t, record.Validate())
	}

	_, err = reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriter_NoSpace(t *testing.T) {
	file := newSegment(t, 20)

	win, err := chunk.Wrap(file)
	require.NoError(t, err)
	writer := NewWriter(win.WriteOnly())

	// HeaderSize + 10 > 20: rejected before any bytes land.
	_, err = writer.Append(0x01, bytes.Repeat([]byte{0xFF}, 10))
	assert.ErrorIs(t, err, ErrNoSpace)

	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 20), content)

	// A record that fits exactly is fine.
	offset, err := writer.Append(0x01, bytes.Repeat([]byte{0xFF}, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(0), offset)
}

func TestReader_CorruptPayload(t *testing.T) {
	data := Encode(0x42, []byte("payload under test"))
	data[HeaderSize+3] ^= 0xFF

	file := newSegment(t, int64(len(data)))
	_, err := file.WriteAt(data, 0)
	require.NoError(t, err)
	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)

	win, err := chunk.Wrap(file)
	require.NoError(t, err)

	_, err = NewReader(win).Next()
	assert.ErrorIs(t, err, ErrCorruption)
}

func TestReader_TruncatedHeader(t *testing.T) {
	file := newSegment(t, 8)

	win, err := chunk.Wrap(file)
	require.NoError(t, err)

	_, err = NewReader(win).Next()
	assert.ErrorIs(t, err, ErrCorruption)
}

func TestReader_SizeOverrunsWindow(t *testing.T) {
	// A record whose declared size reaches past the end of the data: the
	// payload window clamps at the real end and the reader reports the
	// record as truncated instead of reading out of bounds.
	data := Encode(0x42, bytes.Repeat([]byte{0x01}, 100))
	truncated := data[:HeaderSize+50]

	file := newSegment(t, int64(len(truncated)))
	_, err := file.WriteAt(truncated, 0)
	require.NoError(t, err)
	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)

	win, err := chunk.Wrap(file)
	require.NoError(t, err)

	_, err = NewReader(win).Next()
	assert.ErrorIs(t, err, ErrCorruption)
}

func TestReader_NestedRecords(t *testing.T) {
	inner := Encode(0x1111, []byte("inner payload"))
	outer := Encode(0x2222, inner)

	file := newSegment(t, int64(len(outer)))
	_, err := file.WriteAt(outer, 0)
	require.NoError(t, err)
	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)

	root, err := chunk.Wrap(file)
	require.NoError(t, err)

	record, err := NewReader(root).Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2222), record.Tag)

	// Reparse the outer payload in place through its own window.
	_, err = root.Seek(HeaderSize, io.SeekStart)
	require.NoError(t, err)
	body, err := root.Slice(int64(record.Size))
	require.NoError(t, err)

	nested, err := NewReader(body).Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1111), nested.Tag)
	assert.Equal(t, []byte("inner payload"), nested.Payload)
}

func TestEncode_HeaderLayout(t *testing.T) {
	payload := []byte("abc")
	data := Encode(0xDEADBEEF, payload)

	require.Len(t, data, HeaderSize+len(payload))

	record := &Record{
		CRC32:   uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24,
		Tag:     uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24,
		Size:    uint64(len(payload)),
		Payload: payload,
	}
	assert.Equal(t, uint32(0xDEADBEEF), record.Tag)
	assert.NoError(t, record.Validate())
}
