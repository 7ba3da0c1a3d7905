package dbof1

import (
	"testing"

	"github.com/joshuapare/dbof/pkg/kind"
	"github.com/joshuapare/dbof/pkg/object"
	"github.com/joshuapare/dbof/pkg/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToBytes(t *testing.T, o object.Object) []byte {
	t.Helper()
	sink := &stream.MemSink{}
	w := stream.NewWriter(sink.Write, nil)
	require.NoError(t, Encode(w, o))
	return sink.Buf
}

func decodeFromBytes(t *testing.T, b []byte) object.Object {
	t.Helper()
	src := &stream.MemSource{Buf: b}
	r := stream.NewReader(src.Read, nil)
	o, err := Decode(r)
	require.NoError(t, err)
	return o
}

// TestSignedByteWireBytes pins spec.md §8 scenario 1: SignedByte(-1) body is
// tag 01 followed by the single byte FF.
func TestSignedByteWireBytes(t *testing.T) {
	got := encodeToBytes(t, object.NewSignedByte(-1))
	assert.Equal(t, []byte{0x01, 0xFF}, got)

	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(object.NewSignedByte(-1), decoded))
}

// TestSignedIntegerWireBytes pins spec.md §8 scenario 2.
func TestSignedIntegerWireBytes(t *testing.T) {
	got := encodeToBytes(t, object.NewSignedInteger(1))
	assert.Equal(t, []byte{0x03, 0x01, 0x00, 0x00, 0x00}, got)
}

// TestUtf8StringWireBytes pins spec.md §8 scenario 4: "hi" -> 0B 01 02 68 69.
func TestUtf8StringWireBytes(t *testing.T) {
	got := encodeToBytes(t, object.NewString([]byte("hi")))
	assert.Equal(t, []byte{0x0B, 0x01, 0x02, 0x68, 0x69}, got)

	decoded := decodeFromBytes(t, got)
	s, ok := object.As[*object.String](decoded)
	require.True(t, ok)
	assert.Equal(t, "hi", s.String())
}

// TestTypedArrayWireBytes pins spec.md §8 scenario 5: TypedArray[SignedInteger]{7,8}.
func TestTypedArrayWireBytes(t *testing.T) {
	arr := object.New(kind.TypedArray).(*object.TypedArray)
	require.True(t, arr.PushBack(object.NewSignedInteger(7)))
	require.True(t, arr.PushBack(object.NewSignedInteger(8)))

	got := encodeToBytes(t, arr)
	want := []byte{
		0x80,             // tag: TypedArray
		0x01, 0x02,       // flex-length size=2
		0x03,             // element kind: SignedInteger
		0x07, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, got)

	decoded := decodeFromBytes(t, got)
	da, ok := object.As[*object.TypedArray](decoded)
	require.True(t, ok)
	assert.Equal(t, 2, da.Len())
	assert.Equal(t, int32(7), da.Get(0).(*object.SignedInteger).Value)
	assert.Equal(t, int32(8), da.Get(1).(*object.SignedInteger).Value)
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		got := encodeToBytes(t, object.NewBoolean(v))
		decoded := decodeFromBytes(t, got)
		assert.True(t, object.Equal(object.NewBoolean(v), decoded))
	}
}

func TestFloatRoundTrip(t *testing.T) {
	got := encodeToBytes(t, object.NewSingleFloat(3.5))
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(object.NewSingleFloat(3.5), decoded))

	got = encodeToBytes(t, object.NewDoubleFloat(-2.25))
	decoded = decodeFromBytes(t, got)
	assert.True(t, object.Equal(object.NewDoubleFloat(-2.25), decoded))
}

func TestCharacterRoundTrip(t *testing.T) {
	got := encodeToBytes(t, object.NewCharacter('z'))
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(object.NewCharacter('z'), decoded))
}

// TestDecodeRejectsLoneSurrogateCharacter pins the I1/§4.1 requirement that
// Character holds a 32-bit Unicode *scalar* value: a lone surrogate half on
// the wire (here U+D800) must be rejected, not silently accepted.
func TestDecodeRejectsLoneSurrogateCharacter(t *testing.T) {
	// tag (Character=10) + LE u32 0x0000D800
	wire := []byte{byte(kind.Character), 0x00, 0xD8, 0x00, 0x00}
	src := &stream.MemSource{Buf: wire}
	r := stream.NewReader(src.Read, nil)
	_, err := Decode(r)
	assert.Error(t, err)
}

func TestLongIntegerRoundTrip(t *testing.T) {
	got := encodeToBytes(t, object.NewSignedLongInteger(-123456789012345))
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(object.NewSignedLongInteger(-123456789012345), decoded))

	got = encodeToBytes(t, object.NewUnsignedLongInteger(18446744073709551615))
	decoded = decodeFromBytes(t, got)
	assert.True(t, object.Equal(object.NewUnsignedLongInteger(18446744073709551615), decoded))
}

func TestUntypedArrayRoundTripMixedKinds(t *testing.T) {
	arr := object.New(kind.UntypedArray).(*object.UntypedArray)
	arr.PushBack(object.NewSignedInteger(1))
	arr.PushBack(object.NewBoolean(true))
	arr.PushBack(object.NewString([]byte("x")))

	got := encodeToBytes(t, arr)
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(arr, decoded))
}

func TestTypedMapRoundTrip(t *testing.T) {
	m := object.New(kind.TypedMap).(*object.TypedMap)
	require.True(t, m.Put(object.NewString([]byte("a")), object.NewSignedInteger(1)))
	require.True(t, m.Put(object.NewString([]byte("b")), object.NewSignedInteger(2)))

	got := encodeToBytes(t, m)
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(m, decoded))
}

func TestUntypedMapRoundTrip(t *testing.T) {
	m := object.New(kind.UntypedMap).(*object.UntypedMap)
	m.Put(object.NewSignedInteger(1), object.NewBoolean(true))
	m.Put(object.NewString([]byte("k")), object.NewCharacter('z'))

	got := encodeToBytes(t, m)
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(m, decoded))
}

func TestNestedContainerRoundTrip(t *testing.T) {
	inner := object.New(kind.UntypedArray).(*object.UntypedArray)
	inner.PushBack(object.NewSignedInteger(9))

	outer := object.New(kind.TypedMap).(*object.TypedMap)
	require.True(t, outer.Put(object.NewString([]byte("nested")), inner))

	got := encodeToBytes(t, outer)
	decoded := decodeFromBytes(t, got)
	assert.True(t, object.Equal(outer, decoded))
}

func TestDecodeRejectsUnrecognizedKindTag(t *testing.T) {
	src := &stream.MemSource{Buf: []byte{200}}
	r := stream.NewReader(src.Read, nil)
	_, err := Decode(r)
	assert.ErrorIs(t, err, ErrUnrecognizedKind)
}

func TestDecodeTruncatedStreamIsShortTransfer(t *testing.T) {
	src := &stream.MemSource{Buf: []byte{0x03, 0x01}} // SignedInteger tag but only 1 of 4 body bytes
	r := stream.NewReader(src.Read, nil)
	_, err := Decode(r)
	assert.ErrorIs(t, err, stream.ErrShortTransfer)
}
