// Package object implements the DBOF in-memory object model: a tagged
// variant over the sixteen kinds of spec.md §3.1, with homogeneity
// invariants on typed containers and structural equality/hashing (§3.3,
// §4.2).
//
// The teacher repo represents its tagged variants with a common header
// struct and pointer casts per record type (internal/format/nk.go,
// internal/format/vk.go). DBOF instead follows spec.md §9's guidance and
// uses Go's native discriminated union: a sealed interface whose dynamic
// type *is* the discriminant, so there is no separate kind field to get out
// of sync with the payload.
package object

import (
	"fmt"

	"github.com/joshuapare/dbof/pkg/kind"
)

// Object is any of the sixteen DBOF object kinds. Only types defined in
// this package implement Object (the sealed method prevents outside
// implementations), which is what makes Kind() trustworthy: it can never
// disagree with the object's actual in-memory shape.
//
// A Go nil Object models the "null reference" of spec.md §4.2 — the
// absence of an object — which is distinct from a non-nil *Null object
// (Kind() == kind.Null), a real, owned object that carries no payload.
type Object interface {
	// Kind returns the object's kind, fixed at construction (I1).
	Kind() kind.Kind
	// Hash returns the object's 32-bit hash code (I4, I5).
	Hash() int32

	// equalPayload compares two objects already known to share a kind.
	equalPayload(other Object) bool
	// sealed prevents types outside this package from implementing Object.
	sealed()
}

// New constructs a default-initialized object of kind k: numeric zero,
// false, an empty string, or an empty container. k must be one of the
// sixteen recognized kinds; an unrecognized kind is a programming error and
// panics, matching spec.md §4.2's license for scalar/kind mismatches to
// panic, return a default, or abort.
func New(k kind.Kind) Object {
	switch k {
	case kind.Null:
		return &Null{}
	case kind.SignedByte:
		return &SignedByte{}
	case kind.UnsignedByte:
		return &UnsignedByte{}
	case kind.SignedInteger:
		return &SignedInteger{}
	case kind.UnsignedInteger:
		return &UnsignedInteger{}
	case kind.SignedLongInteger:
		return &SignedLongInteger{}
	case kind.UnsignedLongInteger:
		return &UnsignedLongInteger{}
	case kind.Boolean:
		return &Boolean{}
	case kind.SingleFloat:
		return &SingleFloat{}
	case kind.DoubleFloat:
		return &DoubleFloat{}
	case kind.Character:
		return &Character{}
	case kind.Utf8String:
		return NewString(nil)
	case kind.TypedArray:
		return newTypedArray()
	case kind.UntypedArray:
		return newUntypedArray()
	case kind.TypedMap:
		return newTypedMap()
	case kind.UntypedMap:
		return newUntypedMap()
	default:
		panic(fmt.Sprintf("object: New called with unrecognized kind %d", uint8(k)))
	}
}

// As attempts to narrow o to concrete type T, the idiomatic Go replacement
// for a checked scalar/container accessor: ok is false, not a panic, when
// o's dynamic type is not T. Callers who would rather fail loudly on a
// kind mismatch (spec.md §4.2's "programming error" case) can ignore ok and
// let the zero value of T surface the bug downstream, or wrap As in a
// MustXxx helper at the call site.
func As[T Object](o Object) (T, bool) {
	v, ok := o.(T)
	return v, ok
}

// Equal reports whether a and b are structurally equal per spec.md §4.2.
//
// The source implementation this is modeled on short-circuits to "equal"
// whenever two containers share a category but not a kind, and separately
// whenever two value objects merely hash the same without ever comparing
// payloads (see spec.md §9, "Equality pre-filter bug"). Both are bugs,
// fixed here: kind equality is required up front for values and containers
// alike, and hash equality is used only to decide whether it's worth
// comparing payloads, never as the final verdict.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !kind.SameCategory(a.Kind(), b.Kind()) {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Hash() != b.Hash() {
		return false
	}
	return a.equalPayload(b)
}
