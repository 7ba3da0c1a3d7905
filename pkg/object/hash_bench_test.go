package object

import (
	"testing"

	"github.com/joshuapare/dbof/pkg/kind"
)

// Benchmark_TypedArray_Hash exercises the array hash fold over a
// moderately-sized homogeneous array.
func Benchmark_TypedArray_Hash(b *testing.B) {
	a := New(kind.TypedArray).(*TypedArray)
	for i := int32(0); i < 256; i++ {
		a.PushBack(NewSignedInteger(i))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = a.Hash()
	}
}

// Benchmark_UntypedMap_Hash exercises the order-insensitive XOR-fold map
// hash over a moderately-sized map.
func Benchmark_UntypedMap_Hash(b *testing.B) {
	m := New(kind.UntypedMap).(*UntypedMap)
	for i := int32(0); i < 256; i++ {
		m.Put(NewSignedInteger(i), NewBoolean(i%2 == 0))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = m.Hash()
	}
}

// Benchmark_HashBytes exercises the Utf8String byte-accumulator hash.
func Benchmark_HashBytes(b *testing.B) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated enough to matter")

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = hashBytes(data)
	}
}
