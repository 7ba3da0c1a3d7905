// Package dbof1 implements the DBOF‑1 wire codec: little-endian per-kind
// encoders/decoders, the flex-length varint, and recursive container
// encoding, as specified in spec.md §4.6.
//
// The teacher repo's internal/format package decodes fixed hive records
// (NK/VK/cell headers) straight out of a memory-mapped buffer. DBOF‑1 reads
// instead arrive through a pull callback (pkg/stream), so every decode step
// here goes through Reader.ReadFull rather than slicing a []byte directly —
// but the per-field little-endian decoding follows the same shape as
// internal/buf's U32LE/U64LE helpers.
package dbof1

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/dbof/internal/dbflog"
	"github.com/joshuapare/dbof/pkg/kind"
	"github.com/joshuapare/dbof/pkg/object"
	"github.com/joshuapare/dbof/pkg/stream"
)

// Encode writes a tagged object: a one-byte kind tag followed by its
// per-kind payload. This is the "per-element tagged object" shape used at
// the outermost frame and inside untyped containers (spec.md §4.6).
func Encode(w *stream.Writer, o object.Object) error {
	if err := w.WriteFull([]byte{byte(o.Kind())}); err != nil {
		return err
	}
	return encodePayload(w, o)
}

// Decode reads a tagged object: a one-byte kind tag followed by its
// per-kind payload, and returns the freshly constructed object.
func Decode(r *stream.Reader) (object.Object, error) {
	var tagBuf [1]byte
	if err := r.ReadFull(tagBuf[:]); err != nil {
		return nil, err
	}
	k := kind.Kind(tagBuf[0])
	if !k.Valid() {
		dbflog.Debug("dbof1: unrecognized kind tag", "tag", tagBuf[0])
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedKind, tagBuf[0])
	}
	return decodePayload(r, k)
}

// encodePayload writes o's payload only (no tag), per the per-kind layout
// table in spec.md §4.6.
func encodePayload(w *stream.Writer, o object.Object) error {
	switch v := o.(type) {
	case *object.Null:
		return nil
	case *object.SignedByte:
		return w.WriteFull([]byte{byte(v.Value)})
	case *object.UnsignedByte:
		return w.WriteFull([]byte{v.Value})
	case *object.Boolean:
		if v.Value {
			return w.WriteFull([]byte{1})
		}
		return w.WriteFull([]byte{0})
	case *object.SignedInteger:
		return writeU32(w, uint32(v.Value))
	case *object.UnsignedInteger:
		return writeU32(w, v.Value)
	case *object.Character:
		return writeU32(w, uint32(v.Value))
	case *object.SignedLongInteger:
		return writeU64(w, uint64(v.Value))
	case *object.UnsignedLongInteger:
		return writeU64(w, v.Value)
	case *object.SingleFloat:
		return writeU32(w, float32ToBits(v.Value))
	case *object.DoubleFloat:
		return writeU64(w, float64ToBits(v.Value))
	case *object.String:
		return encodeString(w, v)
	case *object.TypedArray:
		return encodeTypedArray(w, v)
	case *object.UntypedArray:
		return encodeUntypedArray(w, v)
	case *object.TypedMap:
		return encodeTypedMap(w, v)
	case *object.UntypedMap:
		return encodeUntypedMap(w, v)
	default:
		return fmt.Errorf("%w: %T", ErrUnrecognizedKind, o)
	}
}

// decodePayload reads a payload for the given kind (the tag having already
// been consumed, or, for typed-container elements, never written at all).
func decodePayload(r *stream.Reader, k kind.Kind) (object.Object, error) {
	switch k {
	case kind.Null:
		return &object.Null{}, nil
	case kind.SignedByte:
		var b [1]byte
		if err := r.ReadFull(b[:]); err != nil {
			return nil, err
		}
		return object.NewSignedByte(int8(b[0])), nil
	case kind.UnsignedByte:
		var b [1]byte
		if err := r.ReadFull(b[:]); err != nil {
			return nil, err
		}
		return object.NewUnsignedByte(b[0]), nil
	case kind.Boolean:
		var b [1]byte
		if err := r.ReadFull(b[:]); err != nil {
			return nil, err
		}
		return object.NewBoolean(b[0] != 0), nil
	case kind.SignedInteger:
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		return object.NewSignedInteger(int32(v)), nil
	case kind.UnsignedInteger:
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		return object.NewUnsignedInteger(v), nil
	case kind.Character:
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		c, err := object.NewCharacterStrict(rune(v))
		if err != nil {
			dbflog.Debug("dbof1: invalid character scalar", "value", v)
			return nil, fmt.Errorf("%w: U+%04X", err, v)
		}
		return c, nil
	case kind.SignedLongInteger:
		v, err := readU64(r)
		if err != nil {
			return nil, err
		}
		return object.NewSignedLongInteger(int64(v)), nil
	case kind.UnsignedLongInteger:
		v, err := readU64(r)
		if err != nil {
			return nil, err
		}
		return object.NewUnsignedLongInteger(v), nil
	case kind.SingleFloat:
		v, err := readU32(r)
		if err != nil {
			return nil, err
		}
		return object.NewSingleFloat(bitsToFloat32(v)), nil
	case kind.DoubleFloat:
		v, err := readU64(r)
		if err != nil {
			return nil, err
		}
		return object.NewDoubleFloat(bitsToFloat64(v)), nil
	case kind.Utf8String:
		return decodeString(r)
	case kind.TypedArray:
		return decodeTypedArray(r)
	case kind.UntypedArray:
		return decodeUntypedArray(r)
	case kind.TypedMap:
		return decodeTypedMap(r)
	case kind.UntypedMap:
		return decodeUntypedMap(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedKind, uint8(k))
	}
}

func writeU32(w *stream.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.WriteFull(b[:])
}

func writeU64(w *stream.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.WriteFull(b[:])
}

func readU32(r *stream.Reader) (uint32, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readU64(r *stream.Reader) (uint64, error) {
	var b [8]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func encodeString(w *stream.Writer, s *object.String) error {
	b := s.Bytes()
	if err := writeFlexLength(w, uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return w.WriteFull(b)
}

func decodeString(r *stream.Reader) (object.Object, error) {
	n, err := readFlexLength(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if n > 0 {
		if err := r.ReadFull(buf); err != nil {
			return nil, err
		}
	}
	// The decoder stores bytes as received, per spec.md §3.2, even if a
	// malformed producer violated the UTF-8 contract.
	return object.NewStringRaw(buf), nil
}

func encodeTypedArray(w *stream.Writer, a *object.TypedArray) error {
	if err := writeFlexLength(w, uint64(a.Len())); err != nil {
		return err
	}
	if err := w.WriteFull([]byte{byte(a.ElementKind())}); err != nil {
		return err
	}
	var encErr error
	a.Each(func(_ int, v object.Object) {
		if encErr != nil {
			return
		}
		encErr = encodePayload(w, v)
	})
	return encErr
}

func decodeTypedArray(r *stream.Reader) (object.Object, error) {
	size, err := readFlexLength(r)
	if err != nil {
		return nil, err
	}
	var tagBuf [1]byte
	if err := r.ReadFull(tagBuf[:]); err != nil {
		return nil, err
	}
	elemKind := kind.Kind(tagBuf[0])
	if !elemKind.Valid() {
		dbflog.Debug("dbof1: unrecognized element kind", "tag", tagBuf[0])
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedKind, tagBuf[0])
	}

	arr := object.New(kind.TypedArray).(*object.TypedArray)
	arr.SetElementKind(elemKind)
	for i := uint64(0); i < size; i++ {
		elem, err := decodePayload(r, elemKind)
		if err != nil {
			return nil, err
		}
		if !arr.PushBack(elem) {
			dbflog.Debug("dbof1: typed array element violates declared kind", "declared", elemKind, "actual", elem.Kind(), "index", i)
			return nil, ErrElementKindMismatch
		}
	}
	return arr, nil
}

func encodeUntypedArray(w *stream.Writer, a *object.UntypedArray) error {
	if err := writeFlexLength(w, uint64(a.Len())); err != nil {
		return err
	}
	var encErr error
	a.Each(func(_ int, v object.Object) {
		if encErr != nil {
			return
		}
		encErr = Encode(w, v)
	})
	return encErr
}

func decodeUntypedArray(r *stream.Reader) (object.Object, error) {
	size, err := readFlexLength(r)
	if err != nil {
		return nil, err
	}
	arr := object.New(kind.UntypedArray).(*object.UntypedArray)
	for i := uint64(0); i < size; i++ {
		elem, err := Decode(r)
		if err != nil {
			return nil, err
		}
		arr.PushBack(elem)
	}
	return arr, nil
}

// encodeTypedMap writes entries in insertion order, per spec.md §4.6's
// normative resolution of the source's map-codec TODO.
func encodeTypedMap(w *stream.Writer, m *object.TypedMap) error {
	if err := writeFlexLength(w, uint64(m.Size())); err != nil {
		return err
	}
	if err := w.WriteFull([]byte{byte(m.KeyKind()), byte(m.ValueKind())}); err != nil {
		return err
	}
	var encErr error
	m.Each(func(k, v object.Object) {
		if encErr != nil {
			return
		}
		if encErr = encodePayload(w, k); encErr != nil {
			return
		}
		encErr = encodePayload(w, v)
	})
	return encErr
}

func decodeTypedMap(r *stream.Reader) (object.Object, error) {
	size, err := readFlexLength(r)
	if err != nil {
		return nil, err
	}
	var kindBuf [2]byte
	if err := r.ReadFull(kindBuf[:]); err != nil {
		return nil, err
	}
	keyKind, valueKind := kind.Kind(kindBuf[0]), kind.Kind(kindBuf[1])
	if !keyKind.Valid() || !valueKind.Valid() {
		dbflog.Debug("dbof1: unrecognized map key/value kind", "key", kindBuf[0], "value", kindBuf[1])
		return nil, fmt.Errorf("%w: key=%d value=%d", ErrUnrecognizedKind, kindBuf[0], kindBuf[1])
	}

	m := object.New(kind.TypedMap).(*object.TypedMap)
	m.SetKeyKind(keyKind)
	m.SetValueKind(valueKind)
	for i := uint64(0); i < size; i++ {
		key, err := decodePayload(r, keyKind)
		if err != nil {
			return nil, err
		}
		val, err := decodePayload(r, valueKind)
		if err != nil {
			return nil, err
		}
		if !m.Put(key, val) {
			dbflog.Debug("dbof1: typed map entry violates declared kind", "keyKind", keyKind, "valueKind", valueKind, "index", i)
			return nil, ErrElementKindMismatch
		}
	}
	return m, nil
}

func encodeUntypedMap(w *stream.Writer, m *object.UntypedMap) error {
	if err := writeFlexLength(w, uint64(m.Size())); err != nil {
		return err
	}
	var encErr error
	m.Each(func(k, v object.Object) {
		if encErr != nil {
			return
		}
		if encErr = Encode(w, k); encErr != nil {
			return
		}
		encErr = Encode(w, v)
	})
	return encErr
}

func decodeUntypedMap(r *stream.Reader) (object.Object, error) {
	size, err := readFlexLength(r)
	if err != nil {
		return nil, err
	}
	m := object.New(kind.UntypedMap).(*object.UntypedMap)
	for i := uint64(0); i < size; i++ {
		key, err := Decode(r)
		if err != nil {
			return nil, err
		}
		val, err := Decode(r)
		if err != nil {
			return nil, err
		}
		m.Put(key, val)
	}
	return m, nil
}
