package object

import (
	"github.com/joshuapare/dbof/internal/utf8check"
	"github.com/joshuapare/dbof/pkg/kind"
)

// Null is a value object with no payload (kind.Null). All Null objects
// compare equal and hash to 0.
type Null struct{}

func (*Null) Kind() kind.Kind          { return kind.Null }
func (*Null) Hash() int32              { return 0 }
func (*Null) equalPayload(Object) bool { return true }
func (*Null) sealed()                  {}

// SignedByte is an 8-bit signed integer value object (kind.SignedByte).
type SignedByte struct {
	Value int8
}

// NewSignedByte constructs a SignedByte with the given payload.
func NewSignedByte(v int8) *SignedByte { return &SignedByte{Value: v} }

func (*SignedByte) Kind() kind.Kind { return kind.SignedByte }
func (o *SignedByte) Hash() int32   { return int32(o.Value) }
func (o *SignedByte) equalPayload(other Object) bool {
	return o.Value == other.(*SignedByte).Value
}
func (*SignedByte) sealed() {}

// UnsignedByte is an 8-bit unsigned integer value object (kind.UnsignedByte).
type UnsignedByte struct {
	Value uint8
}

func NewUnsignedByte(v uint8) *UnsignedByte { return &UnsignedByte{Value: v} }

func (*UnsignedByte) Kind() kind.Kind { return kind.UnsignedByte }
func (o *UnsignedByte) Hash() int32   { return int32(o.Value) }
func (o *UnsignedByte) equalPayload(other Object) bool {
	return o.Value == other.(*UnsignedByte).Value
}
func (*UnsignedByte) sealed() {}

// SignedInteger is a 32-bit signed integer value object (kind.SignedInteger).
type SignedInteger struct {
	Value int32
}

func NewSignedInteger(v int32) *SignedInteger { return &SignedInteger{Value: v} }

func (*SignedInteger) Kind() kind.Kind { return kind.SignedInteger }
func (o *SignedInteger) Hash() int32   { return o.Value }
func (o *SignedInteger) equalPayload(other Object) bool {
	return o.Value == other.(*SignedInteger).Value
}
func (*SignedInteger) sealed() {}

// UnsignedInteger is a 32-bit unsigned integer value object (kind.UnsignedInteger).
type UnsignedInteger struct {
	Value uint32
}

func NewUnsignedInteger(v uint32) *UnsignedInteger { return &UnsignedInteger{Value: v} }

func (*UnsignedInteger) Kind() kind.Kind { return kind.UnsignedInteger }
func (o *UnsignedInteger) Hash() int32   { return int32(o.Value) }
func (o *UnsignedInteger) equalPayload(other Object) bool {
	return o.Value == other.(*UnsignedInteger).Value
}
func (*UnsignedInteger) sealed() {}

// SignedLongInteger is a 64-bit signed integer value object (kind.SignedLongInteger).
type SignedLongInteger struct {
	Value int64
}

func NewSignedLongInteger(v int64) *SignedLongInteger { return &SignedLongInteger{Value: v} }

func (*SignedLongInteger) Kind() kind.Kind { return kind.SignedLongInteger }
func (o *SignedLongInteger) Hash() int32   { return fold64(uint64(o.Value)) }
func (o *SignedLongInteger) equalPayload(other Object) bool {
	return o.Value == other.(*SignedLongInteger).Value
}
func (*SignedLongInteger) sealed() {}

// UnsignedLongInteger is a 64-bit unsigned integer value object (kind.UnsignedLongInteger).
type UnsignedLongInteger struct {
	Value uint64
}

func NewUnsignedLongInteger(v uint64) *UnsignedLongInteger {
	return &UnsignedLongInteger{Value: v}
}

func (*UnsignedLongInteger) Kind() kind.Kind { return kind.UnsignedLongInteger }
func (o *UnsignedLongInteger) Hash() int32   { return fold64(o.Value) }
func (o *UnsignedLongInteger) equalPayload(other Object) bool {
	return o.Value == other.(*UnsignedLongInteger).Value
}
func (*UnsignedLongInteger) sealed() {}

// Boolean is a one-byte boolean value object (kind.Boolean). On decode a
// wire byte of 0 is false and any nonzero byte is true. The in-memory
// payload is a Go bool, so encoding writes 0 or 1; the original value of a
// nonzero wire byte is not kept.
type Boolean struct {
	Value bool
}

func NewBoolean(v bool) *Boolean { return &Boolean{Value: v} }

func (*Boolean) Kind() kind.Kind { return kind.Boolean }

// Hash returns 1231 for true and 1237 for false, per spec.md §4.2 (inspired
// by java.lang.Boolean.hashCode).
func (o *Boolean) Hash() int32 {
	if o.Value {
		return 1231
	}
	return 1237
}
func (o *Boolean) equalPayload(other Object) bool {
	return o.Value == other.(*Boolean).Value
}
func (*Boolean) sealed() {}

// SingleFloat is an IEEE-754 binary32 value object (kind.SingleFloat).
type SingleFloat struct {
	Value float32
}

func NewSingleFloat(v float32) *SingleFloat { return &SingleFloat{Value: v} }

func (*SingleFloat) Kind() kind.Kind { return kind.SingleFloat }
func (o *SingleFloat) Hash() int32   { return int32(float32Bits(o.Value)) }
func (o *SingleFloat) equalPayload(other Object) bool {
	return float32Bits(o.Value) == float32Bits(other.(*SingleFloat).Value)
}
func (*SingleFloat) sealed() {}

// DoubleFloat is an IEEE-754 binary64 value object (kind.DoubleFloat).
type DoubleFloat struct {
	Value float64
}

func NewDoubleFloat(v float64) *DoubleFloat { return &DoubleFloat{Value: v} }

func (*DoubleFloat) Kind() kind.Kind { return kind.DoubleFloat }
func (o *DoubleFloat) Hash() int32   { return fold64(float64Bits(o.Value)) }
func (o *DoubleFloat) equalPayload(other Object) bool {
	return float64Bits(o.Value) == float64Bits(other.(*DoubleFloat).Value)
}
func (*DoubleFloat) sealed() {}

// Character is a 32-bit Unicode scalar value object (kind.Character): a
// code point in [0, utf8.MaxRune] that is not a UTF-16 surrogate half.
type Character struct {
	Value rune
}

// NewCharacter constructs a Character from v. An invalid scalar (a
// surrogate half, or out of range) is silently treated as the zero value;
// callers who need an error should use Set or NewCharacterStrict.
func NewCharacter(v rune) *Character {
	c := &Character{}
	_ = c.Set(v)
	return c
}

// NewCharacterStrict constructs a Character from v, returning
// utf8check.ErrInvalidScalar instead of silently discarding an invalid
// scalar. Used by the DBOF-1 decoder, which must reject a malformed or
// adversarial producer's surrogate-half/out-of-range code point rather than
// accept it (unlike Utf8String, spec.md does not direct Character decoding
// to store invalid content "as received").
func NewCharacterStrict(v rune) (*Character, error) {
	c := &Character{}
	if err := c.Set(v); err != nil {
		return nil, err
	}
	return c, nil
}

// Set validates v as a Unicode scalar value before assigning it. On
// failure the prior value is left untouched and an error is returned.
func (o *Character) Set(v rune) error {
	if err := utf8check.ValidateScalar(v); err != nil {
		return err
	}
	o.Value = v
	return nil
}

func (*Character) Kind() kind.Kind { return kind.Character }
func (o *Character) Hash() int32   { return int32(o.Value) }
func (o *Character) equalPayload(other Object) bool {
	return o.Value == other.(*Character).Value
}
func (*Character) sealed() {}
