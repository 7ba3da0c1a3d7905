package object

import (
	"github.com/joshuapare/dbof/internal/container/hashmap"
	"github.com/joshuapare/dbof/pkg/kind"
)

func objectHash(o Object) int32 { return o.Hash() }
func objectEqual(a, b Object) bool { return Equal(a, b) }

func newEntryMap() *hashmap.Map[Object, Object] {
	return hashmap.New[Object, Object](objectHash, objectEqual)
}

// mapHash folds (key, value) pairs order-insensitively by XOR, so the hash
// is stable regardless of iteration/bucket order (spec.md §9 supplement:
// containers hashing is implementation-defined but must satisfy I4).
func mapHash(seed kind.Kind, m *hashmap.Map[Object, Object]) int32 {
	h := int32(seed)
	m.Each(func(k, v Object) {
		h ^= combineOrdered(k.Hash(), v.Hash())
	})
	return h
}

func mapEqualPayload(a, b *hashmap.Map[Object, Object]) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	a.Each(func(k, v Object) {
		if !equal {
			return
		}
		bv, ok := b.Get(k)
		if !ok || !Equal(v, bv) {
			equal = false
		}
	})
	return equal
}

// TypedMap is a hash map whose keys share one kind and whose values share
// one (possibly different) kind (kind.TypedMap). Per spec.md I3, KeyKind
// and ValueKind may be reassigned only while the map is empty.
type TypedMap struct {
	keyKind, valueKind kind.Kind
	entries            *hashmap.Map[Object, Object]
}

func newTypedMap() *TypedMap {
	return &TypedMap{keyKind: kind.Null, valueKind: kind.Null, entries: newEntryMap()}
}

func (*TypedMap) Kind() kind.Kind { return kind.TypedMap }
func (o *TypedMap) Hash() int32   { return mapHash(kind.TypedMap, o.entries) }
func (o *TypedMap) equalPayload(other Object) bool {
	return mapEqualPayload(o.entries, other.(*TypedMap).entries)
}
func (*TypedMap) sealed() {}

func (o *TypedMap) Size() int       { return o.entries.Size() }
func (o *TypedMap) IsEmpty() bool   { return o.entries.IsEmpty() }
func (o *TypedMap) KeyKind() kind.Kind   { return o.keyKind }
func (o *TypedMap) ValueKind() kind.Kind { return o.valueKind }

// SetKeyKind assigns the map's key kind. No-op once the map holds entries.
func (o *TypedMap) SetKeyKind(k kind.Kind) {
	if o.entries.Size() > 0 {
		return
	}
	o.keyKind = k
}

// SetValueKind assigns the map's value kind. No-op once the map holds entries.
func (o *TypedMap) SetValueKind(k kind.Kind) {
	if o.entries.Size() > 0 {
		return
	}
	o.valueKind = k
}

func (o *TypedMap) Get(key Object) (Object, bool) { return o.entries.Get(key) }
func (o *TypedMap) HasKey(key Object) bool         { return o.entries.HasKey(key) }

// Put inserts or overwrites key/value. If the map is empty, key's and
// value's kinds become KeyKind/ValueKind; otherwise both must already
// match, or the call is rejected (mirrors TypedArray.PushBack's I2/I3
// homogeneity enforcement). It reports whether the pair was accepted.
func (o *TypedMap) Put(key, value Object) bool {
	if o.entries.IsEmpty() {
		o.keyKind = key.Kind()
		o.valueKind = value.Kind()
	} else if key.Kind() != o.keyKind || value.Kind() != o.valueKind {
		return false
	}
	o.entries.Put(key, value)
	return true
}

// TryPut is Put for callers that want strict rejection reported as an error
// rather than a silent false return (spec.md §9 supplement).
func (o *TypedMap) TryPut(key, value Object) error {
	if !o.Put(key, value) {
		return ErrKindMismatch
	}
	return nil
}

func (o *TypedMap) Remove(key Object) (Object, bool) { return o.entries.Remove(key) }

// Each calls fn for every entry in insertion order.
func (o *TypedMap) Each(fn func(key, value Object)) { o.entries.Each(fn) }

// UntypedMap is a hash map whose keys and values may each independently
// hold any kind (kind.UntypedMap).
type UntypedMap struct {
	entries *hashmap.Map[Object, Object]
}

func newUntypedMap() *UntypedMap {
	return &UntypedMap{entries: newEntryMap()}
}

func (*UntypedMap) Kind() kind.Kind { return kind.UntypedMap }
func (o *UntypedMap) Hash() int32   { return mapHash(kind.UntypedMap, o.entries) }
func (o *UntypedMap) equalPayload(other Object) bool {
	return mapEqualPayload(o.entries, other.(*UntypedMap).entries)
}
func (*UntypedMap) sealed() {}

func (o *UntypedMap) Size() int     { return o.entries.Size() }
func (o *UntypedMap) IsEmpty() bool { return o.entries.IsEmpty() }

func (o *UntypedMap) Get(key Object) (Object, bool)  { return o.entries.Get(key) }
func (o *UntypedMap) HasKey(key Object) bool          { return o.entries.HasKey(key) }
func (o *UntypedMap) Put(key, value Object)           { o.entries.Put(key, value) }
func (o *UntypedMap) Remove(key Object) (Object, bool) { return o.entries.Remove(key) }
func (o *UntypedMap) Each(fn func(key, value Object)) { o.entries.Each(fn) }
