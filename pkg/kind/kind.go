// Package kind enumerates the object kinds recognized by DBOF and classifies
// each into a category (value or container). Every object in the system
// carries exactly one Kind for its entire lifetime.
package kind

import "fmt"

// Kind identifies the type of a DBOF object. The numeric values match the
// DBOF-1 wire type IDs exactly: the codec relies on identity between a
// logical Kind and its on-wire tag byte.
type Kind uint8

const (
	Null                 Kind = 0
	SignedByte           Kind = 1
	UnsignedByte         Kind = 2
	SignedInteger        Kind = 3
	UnsignedInteger      Kind = 4
	SignedLongInteger    Kind = 5
	UnsignedLongInteger  Kind = 6
	Boolean              Kind = 7
	SingleFloat          Kind = 8
	DoubleFloat          Kind = 9
	Character            Kind = 10
	Utf8String           Kind = 11

	TypedArray   Kind = 128
	UntypedArray Kind = 129
	TypedMap     Kind = 130
	UntypedMap   Kind = 131
)

// Category classifies a Kind as holding a scalar payload or owning children.
type Category uint8

const (
	// Value marks kinds 0-11: fixed or length-prefixed scalar payloads.
	Value Category = iota
	// Container marks kinds 128-131: arrays and maps that own child objects.
	Container
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case SignedByte:
		return "SignedByte"
	case UnsignedByte:
		return "UnsignedByte"
	case SignedInteger:
		return "SignedInteger"
	case UnsignedInteger:
		return "UnsignedInteger"
	case SignedLongInteger:
		return "SignedLongInteger"
	case UnsignedLongInteger:
		return "UnsignedLongInteger"
	case Boolean:
		return "Boolean"
	case SingleFloat:
		return "SingleFloat"
	case DoubleFloat:
		return "DoubleFloat"
	case Character:
		return "Character"
	case Utf8String:
		return "Utf8String"
	case TypedArray:
		return "TypedArray"
	case UntypedArray:
		return "UntypedArray"
	case TypedMap:
		return "TypedMap"
	case UntypedMap:
		return "UntypedMap"
	default:
		return fmt.Sprintf("UnknownKind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the sixteen recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case Null, SignedByte, UnsignedByte, SignedInteger, UnsignedInteger,
		SignedLongInteger, UnsignedLongInteger, Boolean, SingleFloat,
		DoubleFloat, Character, Utf8String,
		TypedArray, UntypedArray, TypedMap, UntypedMap:
		return true
	default:
		return false
	}
}

// CategoryOf returns the category of k. Unknown kinds report Value, the
// zero Category; callers that accept arbitrary wire input should check
// Valid first.
func CategoryOf(k Kind) Category {
	if k >= TypedArray && k <= UntypedMap {
		return Container
	}
	return Value
}

// IsContainer reports whether k is one of the four container kinds.
func IsContainer(k Kind) bool {
	return CategoryOf(k) == Container
}

// IsValue reports whether k is in the Value category: one of the twelve
// scalar kinds, or an unrecognized kind (see CategoryOf).
func IsValue(k Kind) bool {
	return CategoryOf(k) == Value
}

// SameKind reports whether a and b carry the identical Kind.
func SameKind(a, b Kind) bool {
	return a == b
}

// SameCategory reports whether a and b belong to the same Category.
func SameCategory(a, b Kind) bool {
	return CategoryOf(a) == CategoryOf(b)
}
