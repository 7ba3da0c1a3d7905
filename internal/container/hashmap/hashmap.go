// Package hashmap implements the chained hash table shared by both the
// typed and untyped map object kinds (spec.md §4.4). Keys need not be
// comparable in the Go sense: the map is parameterized over caller-supplied
// hash and equality functions, since DBOF objects carry container payloads
// (slices) that cannot use Go's built-in == operator.
package hashmap

// InitialBuckets is the number of chain heads a freshly constructed Map
// allocates, per spec.md §4.4 ("Initial bucket count 16").
const InitialBuckets = 16

// HashFunc computes a 32-bit hash code for a key, per spec.md §3.3 (I5).
type HashFunc[K any] func(K) int32

// EqualFunc reports structural equality between two keys, per spec.md §4.2.
type EqualFunc[K any] func(a, b K) bool

// entry is one node in both a bucket's chain and the map's global
// insertion-order list.
type entry[K, V any] struct {
	key   K
	value V
	hash  int32

	bucketPrev, bucketNext *entry[K, V]
	orderPrev, orderNext   *entry[K, V]
}

// Map is a chained hash table keyed by K with values V. The zero value is
// not usable; construct with New.
type Map[K, V any] struct {
	buckets []*entry[K, V]
	size    int
	hash    HashFunc[K]
	eq      EqualFunc[K]

	orderHead, orderTail *entry[K, V] // insertion order, oldest first
}

// New constructs an empty Map using hash and eq to locate and compare keys.
func New[K, V any](hash HashFunc[K], eq EqualFunc[K]) *Map[K, V] {
	return &Map[K, V]{
		buckets: make([]*entry[K, V], InitialBuckets),
		hash:    hash,
		eq:      eq,
	}
}

// Size returns the number of live entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether Size() == 0.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *Map[K, V]) bucketIndex(hash int32) int {
	return int(uint32(hash)) % len(m.buckets)
}

func (m *Map[K, V]) findInBucket(idx int, key K) *entry[K, V] {
	for e := m.buckets[idx]; e != nil; e = e.bucketNext {
		if m.eq(e.key, key) {
			return e
		}
	}
	return nil
}

// Get looks up key. ok is false when the key is absent.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	h := m.hash(key)
	idx := m.bucketIndex(h)
	if e := m.findInBucket(idx, key); e != nil {
		return e.value, true
	}
	return value, false
}

// HasKey reports whether key is present.
func (m *Map[K, V]) HasKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts or overwrites key's value. When key already exists, its old
// value is returned with replaced=true so the caller can release it
// (containers own their values, per spec.md I6).
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	h := m.hash(key)
	idx := m.bucketIndex(h)
	if e := m.findInBucket(idx, key); e != nil {
		old = e.value
		e.value = value
		return old, true
	}

	e := &entry[K, V]{key: key, value: value, hash: h}

	// Append to the bucket chain.
	if tail := m.buckets[idx]; tail == nil {
		m.buckets[idx] = e
	} else {
		for tail.bucketNext != nil {
			tail = tail.bucketNext
		}
		tail.bucketNext = e
		e.bucketPrev = tail
	}

	// Append to the insertion-order list.
	if m.orderTail != nil {
		m.orderTail.orderNext = e
		e.orderPrev = m.orderTail
	} else {
		m.orderHead = e
	}
	m.orderTail = e

	m.size++
	m.maybeRehash()
	return old, false
}

// Remove unlinks key and returns its value. ok is false if key was absent.
func (m *Map[K, V]) Remove(key K) (value V, ok bool) {
	h := m.hash(key)
	idx := m.bucketIndex(h)
	e := m.findInBucket(idx, key)
	if e == nil {
		return value, false
	}

	// Unlink from the bucket chain.
	if e.bucketPrev != nil {
		e.bucketPrev.bucketNext = e.bucketNext
	} else {
		m.buckets[idx] = e.bucketNext
	}
	if e.bucketNext != nil {
		e.bucketNext.bucketPrev = e.bucketPrev
	}

	// Unlink from the insertion-order list.
	if e.orderPrev != nil {
		e.orderPrev.orderNext = e.orderNext
	} else {
		m.orderHead = e.orderNext
	}
	if e.orderNext != nil {
		e.orderNext.orderPrev = e.orderPrev
	} else {
		m.orderTail = e.orderPrev
	}

	m.size--
	return e.value, true
}

// maybeRehash doubles bucket count once the load factor exceeds 1.0.
// spec.md §4.4 permits but does not mandate rehashing on growth.
func (m *Map[K, V]) maybeRehash() {
	if m.size <= len(m.buckets) {
		return
	}
	newBuckets := make([]*entry[K, V], len(m.buckets)*2)
	for e := m.orderHead; e != nil; e = e.orderNext {
		e.bucketPrev = nil
		idx := int(uint32(e.hash)) % len(newBuckets)
		e.bucketNext = newBuckets[idx]
		if e.bucketNext != nil {
			e.bucketNext.bucketPrev = e
		}
		newBuckets[idx] = e
	}
	m.buckets = newBuckets
}

// Each calls fn for every entry in insertion order, per spec.md §5's
// requirement that map serialization be a deterministic function of
// (entries) within one implementation.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for e := m.orderHead; e != nil; e = e.orderNext {
		fn(e.key, e.value)
	}
}

// Keys returns every key in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for e := m.orderHead; e != nil; e = e.orderNext {
		keys = append(keys, e.key)
	}
	return keys
}
