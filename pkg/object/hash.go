package object

import "math"

// canonicalQuietNaN32 is the bit pattern every SingleFloat NaN normalizes to
// before hashing or comparison, per spec.md §4.2's hash table.
const canonicalQuietNaN32 uint32 = 0x7FC00000

// canonicalQuietNaN64 is the bit pattern every DoubleFloat NaN normalizes to
// before hashing or comparison, per spec.md §4.2's hash table.
const canonicalQuietNaN64 uint64 = 0x7FF8000000000000

// float32Bits returns v's IEEE-754 bit pattern, normalizing any NaN to the
// canonical quiet NaN so that NaN hashes and compares consistently with
// itself (I4) despite IEEE NaN != NaN at the value level.
func float32Bits(v float32) uint32 {
	if v != v { // NaN
		return canonicalQuietNaN32
	}
	return math.Float32bits(v)
}

// float64Bits returns v's IEEE-754 bit pattern, normalizing any NaN to the
// canonical quiet NaN.
func float64Bits(v float64) uint64 {
	if v != v { // NaN
		return canonicalQuietNaN64
	}
	return math.Float64bits(v)
}

// fold64 XORs the low and high 32-bit halves of v, per spec.md §4.2's hash
// contract for 64-bit integers and DoubleFloat.
func fold64(v uint64) int32 {
	lo := uint32(v)
	hi := uint32(v >> 32)
	return int32(lo ^ hi)
}

// hashBytes implements spec.md's Utf8String hash contract: an
// accumulator h, starting at 0, folded as h = b + 31*h for each byte b.
func hashBytes(b []byte) int32 {
	var h int32
	for _, c := range b {
		h = int32(c) + 31*h
	}
	return h
}

// combineOrdered folds a child hash into an order-sensitive accumulator,
// used for array container hashing (spec.md §9 supplement: the source
// leaves container hashing as a TODO returning 0, which this spec requires
// to be real so I4 is non-trivially satisfied).
func combineOrdered(h int32, childHash int32) int32 {
	return 31*h + childHash
}
