package dbof

import (
	"testing"

	"github.com/joshuapare/dbof/pkg/object"
	"github.com/joshuapare/dbof/pkg/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeaderRoundTrip pins spec.md §8 P8/scenario 1: SignedByte(-1) with a
// header produces 44 42 4F 46 01 00 01 FF.
func TestHeaderRoundTrip(t *testing.T) {
	sink := &stream.MemSink{}
	w := stream.NewWriter(sink.Write, nil)
	require.NoError(t, Write(w, object.NewSignedByte(-1)))

	assert.Equal(t, []byte{0x44, 0x42, 0x4F, 0x46, 0x01, 0x00, 0x01, 0xFF}, sink.Buf)

	src := &stream.MemSource{Buf: sink.Buf}
	r := stream.NewReader(src.Read, nil)
	decoded, err := Read(r)
	require.NoError(t, err)
	assert.True(t, object.Equal(object.NewSignedByte(-1), decoded))
}

func TestNoHeaderRoundTrip(t *testing.T) {
	sink := &stream.MemSink{}
	w := stream.NewWriter(sink.Write, nil).WithNoHeader()
	require.NoError(t, Write(w, object.NewBoolean(true)))
	assert.Equal(t, []byte{0x07, 0x01}, sink.Buf) // tag (Boolean=7) + payload, magic/version suppressed

	src := &stream.MemSource{Buf: sink.Buf}
	r := stream.NewReader(src.Read, nil).WithVersion(1).WithNoHeader()
	decoded, err := Read(r)
	require.NoError(t, err)
	assert.True(t, object.Equal(object.NewBoolean(true), decoded))
}

func TestReadRejectsBadMagic(t *testing.T) {
	src := &stream.MemSource{Buf: []byte{0x58, 0x58, 0x58, 0x58, 0x01, 0x00}}
	r := stream.NewReader(src.Read, nil)
	_, err := Read(r)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestReadRejectsUnsupportedVersion(t *testing.T) {
	src := &stream.MemSource{Buf: []byte{0x44, 0x42, 0x4F, 0x46, 0x09, 0x00}}
	r := stream.NewReader(src.Read, nil)
	_, err := Read(r)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestUseVersionOverridesHeaderVersion(t *testing.T) {
	// Header claims version 9 (unsupported), but UseVersion forces 1.
	src := &stream.MemSource{Buf: []byte{0x44, 0x42, 0x4F, 0x46, 0x09, 0x00, 0x01, 0xFF}}
	r := stream.NewReader(src.Read, nil).WithVersion(1)
	decoded, err := Read(r)
	require.NoError(t, err)
	assert.True(t, object.Equal(object.NewSignedByte(-1), decoded))
}

func TestNoHeaderWithoutVersionFails(t *testing.T) {
	src := &stream.MemSource{Buf: []byte{0x01, 0xFF}}
	r := stream.NewReader(src.Read, nil).WithNoHeader()
	_, err := Read(r)
	assert.Error(t, err)
}
