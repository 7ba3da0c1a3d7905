package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderValidateRequiresVersionWithNoHeader(t *testing.T) {
	r := NewReader(func(any, []byte) int { return 0 }, nil).WithNoHeader()
	assert.Error(t, r.Validate())

	r2 := NewReader(func(any, []byte) int { return 0 }, nil).WithVersion(1).WithNoHeader()
	assert.NoError(t, r2.Validate())
}

func TestReadFullDetectsShortTransfer(t *testing.T) {
	src := &MemSource{Buf: []byte{1, 2}}
	r := NewReader(src.Read, nil)

	buf := make([]byte, 4)
	err := r.ReadFull(buf)
	assert.ErrorIs(t, err, ErrShortTransfer)
}

func TestReadFullSucceedsOnExactTransfer(t *testing.T) {
	src := &MemSource{Buf: []byte{1, 2, 3, 4}}
	r := NewReader(src.Read, nil)

	buf := make([]byte, 4)
	require.NoError(t, r.ReadFull(buf))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)
}

func TestWriteFullDetectsShortTransfer(t *testing.T) {
	w := NewWriter(func(any, []byte) int { return 1 }, nil)
	err := w.WriteFull([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortTransfer)
}

func TestMemSinkAccumulates(t *testing.T) {
	sink := &MemSink{}
	w := NewWriter(sink.Write, nil)
	require.NoError(t, w.WriteFull([]byte{1, 2}))
	require.NoError(t, w.WriteFull([]byte{3, 4}))
	assert.Equal(t, []byte{1, 2, 3, 4}, sink.Buf)
}

func TestMemSourceRewindReplaysBuffer(t *testing.T) {
	src := &MemSource{Buf: []byte{1, 2, 3, 4}}
	r := NewReader(src.Read, nil)

	first := make([]byte, 4)
	require.NoError(t, r.ReadFull(first))

	src.Rewind()
	second := make([]byte, 4)
	require.NoError(t, r.ReadFull(second))
	assert.Equal(t, first, second)
}

func TestFromIOReaderAndWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FromIOWriter(&buf), nil)
	require.NoError(t, w.WriteFull([]byte("hello")))
	assert.Equal(t, "hello", buf.String())

	r := NewReader(FromIOReader(bytes.NewReader([]byte("hello"))), nil)
	out := make([]byte, 5)
	require.NoError(t, r.ReadFull(out))
	assert.Equal(t, "hello", string(out))
}
