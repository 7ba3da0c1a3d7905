package dbof1

import (
	"testing"

	"github.com/joshuapare/dbof/pkg/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFlexLengthChoosesMinimumN(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{1, 0}},
		{255, []byte{1, 255}},
		{256, []byte{2, 0, 1}},
		{1<<16 - 1, []byte{2, 255, 255}},
		{1 << 16, []byte{3, 0, 0, 1}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, encodeFlexLength(c.v))
	}
}

func TestFlexLengthRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 1 << 20, 1<<32 - 1, 1 << 40, ^uint64(0)}
	for _, v := range values {
		sink := &stream.MemSink{}
		w := stream.NewWriter(sink.Write, nil)
		require.NoError(t, writeFlexLength(w, v))

		src := &stream.MemSource{Buf: sink.Buf}
		r := stream.NewReader(src.Read, nil)
		got, err := readFlexLength(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadFlexLengthRejectsNGreaterThanEight(t *testing.T) {
	src := &stream.MemSource{Buf: []byte{9, 0, 0, 0, 0, 0, 0, 0, 0}}
	r := stream.NewReader(src.Read, nil)
	_, err := readFlexLength(r)
	assert.ErrorIs(t, err, ErrFlexLengthTooWide)
}

func TestReadFlexLengthAcceptsNonMinimalN(t *testing.T) {
	// A decoder must accept any legal N <= 8, even though the encoder never
	// produces a non-minimal one (spec.md §4.6).
	src := &stream.MemSource{Buf: []byte{4, 1, 0, 0, 0}}
	r := stream.NewReader(src.Read, nil)
	got, err := readFlexLength(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}
