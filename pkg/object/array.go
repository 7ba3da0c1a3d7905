package object

import (
	"github.com/joshuapare/dbof/internal/container/dynarray"
	"github.com/joshuapare/dbof/pkg/kind"
)

// TypedArray is a growable, ordered, homogeneous sequence (kind.TypedArray).
// Per spec.md I2, ElementKind is free to change only while the array is
// empty; once any element is present it is frozen, and every element's
// kind equals it.
type TypedArray struct {
	elementKind kind.Kind
	elements    *dynarray.Array[Object]
}

func newTypedArray() *TypedArray {
	return &TypedArray{elementKind: kind.Null, elements: dynarray.New[Object]()}
}

func (*TypedArray) Kind() kind.Kind { return kind.TypedArray }

func (o *TypedArray) Hash() int32 {
	h := int32(kind.TypedArray)
	for i := 0; i < o.elements.Len(); i++ {
		h = combineOrdered(h, o.elements.Get(i).Hash())
	}
	return h
}

func (o *TypedArray) equalPayload(other Object) bool {
	b := other.(*TypedArray)
	if o.elements.Len() != b.elements.Len() {
		return false
	}
	for i := 0; i < o.elements.Len(); i++ {
		if !Equal(o.elements.Get(i), b.elements.Get(i)) {
			return false
		}
	}
	return true
}
func (*TypedArray) sealed() {}

// Len returns the number of elements.
func (o *TypedArray) Len() int { return o.elements.Len() }

// Cap returns the current backing capacity.
func (o *TypedArray) Cap() int { return o.elements.Cap() }

// ElementKind returns the array's fixed element kind, or kind.Null if the
// array has never held an element and no kind has been assigned.
func (o *TypedArray) ElementKind() kind.Kind { return o.elementKind }

// SetElementKind assigns the array's element kind. It is a no-op once the
// array holds at least one element (I2).
func (o *TypedArray) SetElementKind(k kind.Kind) {
	if o.elements.Len() > 0 {
		return
	}
	o.elementKind = k
}

// Get returns the element at index i (no bounds check, per spec.md §4.2).
func (o *TypedArray) Get(i int) Object { return o.elements.Get(i) }

// Set replaces the element at index i. It is a no-op if v's kind does not
// match ElementKind (no bounds check beyond that, per spec.md §4.2).
func (o *TypedArray) Set(i int, v Object) {
	if v.Kind() != o.elementKind {
		return
	}
	o.elements.Set(i, v)
}

// PushBack appends v. If the array is empty, v's kind becomes ElementKind;
// otherwise v is accepted only if its kind already matches ElementKind. It
// reports whether v was accepted (P4: a rejected push never changes Len()).
func (o *TypedArray) PushBack(v Object) bool {
	if o.elements.Len() == 0 {
		o.elementKind = v.Kind()
	} else if v.Kind() != o.elementKind {
		return false
	}
	o.elements.PushBack(v)
	return true
}

// TryPushBack is PushBack for callers that want strict rejection reported
// as an error rather than a silent false return (spec.md §9 supplement:
// the source's push_back if-check stays the default, but a caller who needs
// to propagate the failure shouldn't have to re-check ElementKind itself).
func (o *TypedArray) TryPushBack(v Object) error {
	if !o.PushBack(v) {
		return ErrKindMismatch
	}
	return nil
}

// Insert shifts elements at or after i right by one and places v at i. It
// is a no-op (returning false) on a kind mismatch against a non-empty
// array's ElementKind, mirroring PushBack.
func (o *TypedArray) Insert(i int, v Object) bool {
	if o.elements.Len() == 0 {
		o.elementKind = v.Kind()
	} else if v.Kind() != o.elementKind {
		return false
	}
	o.elements.Insert(i, v)
	return true
}

// Remove removes and returns the element at index i.
func (o *TypedArray) Remove(i int) Object { return o.elements.Remove(i) }

// PopBack removes and returns the last element; ok is false when empty.
func (o *TypedArray) PopBack() (Object, bool) { return o.elements.PopBack() }

// ShrinkToFit releases capacity beyond the current size.
func (o *TypedArray) ShrinkToFit() { o.elements.ShrinkToFit() }

// Each calls fn for every element in order.
func (o *TypedArray) Each(fn func(i int, v Object)) { o.elements.Each(fn) }

// UntypedArray is a growable, ordered, heterogeneous sequence
// (kind.UntypedArray). Element kinds may differ freely.
type UntypedArray struct {
	elements *dynarray.Array[Object]
}

func newUntypedArray() *UntypedArray {
	return &UntypedArray{elements: dynarray.New[Object]()}
}

func (*UntypedArray) Kind() kind.Kind { return kind.UntypedArray }

func (o *UntypedArray) Hash() int32 {
	h := int32(kind.UntypedArray)
	for i := 0; i < o.elements.Len(); i++ {
		h = combineOrdered(h, o.elements.Get(i).Hash())
	}
	return h
}

func (o *UntypedArray) equalPayload(other Object) bool {
	b := other.(*UntypedArray)
	if o.elements.Len() != b.elements.Len() {
		return false
	}
	for i := 0; i < o.elements.Len(); i++ {
		if !Equal(o.elements.Get(i), b.elements.Get(i)) {
			return false
		}
	}
	return true
}
func (*UntypedArray) sealed() {}

func (o *UntypedArray) Len() int { return o.elements.Len() }
func (o *UntypedArray) Cap() int { return o.elements.Cap() }

func (o *UntypedArray) Get(i int) Object        { return o.elements.Get(i) }
func (o *UntypedArray) Set(i int, v Object)      { o.elements.Set(i, v) }
func (o *UntypedArray) PushBack(v Object)        { o.elements.PushBack(v) }
func (o *UntypedArray) Insert(i int, v Object)   { o.elements.Insert(i, v) }
func (o *UntypedArray) Remove(i int) Object      { return o.elements.Remove(i) }
func (o *UntypedArray) PopBack() (Object, bool)  { return o.elements.PopBack() }
func (o *UntypedArray) ShrinkToFit()             { o.elements.ShrinkToFit() }
func (o *UntypedArray) Each(fn func(i int, v Object)) { o.elements.Each(fn) }
