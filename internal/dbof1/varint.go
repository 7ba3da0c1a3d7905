package dbof1

import "github.com/joshuapare/dbof/pkg/stream"

// encodeFlexLength returns the canonical flex-length encoding of v: one byte
// N (the minimum byte count such that v fits in N bytes), followed by N
// little-endian bytes of v (spec.md §4.6, P7).
func encodeFlexLength(v uint64) []byte {
	n := byte(1)
	for n < 8 && v > (uint64(1)<<(8*n))-1 {
		n++
	}
	out := make([]byte, 1+n)
	out[0] = n
	for i := byte(0); i < n; i++ {
		out[1+i] = byte(v >> (8 * i))
	}
	return out
}

// writeFlexLength emits v's canonical flex-length encoding via w.
func writeFlexLength(w *stream.Writer, v uint64) error {
	return w.WriteFull(encodeFlexLength(v))
}

// readFlexLength decodes a flex-length varint from r. Any legal N ≤ 8 is
// accepted on decode even though the encoder always chooses the minimum N.
func readFlexLength(r *stream.Reader) (uint64, error) {
	var nBuf [1]byte
	if err := r.ReadFull(nBuf[:]); err != nil {
		return 0, err
	}
	n := nBuf[0]
	if n > 8 {
		return 0, ErrFlexLengthTooWide
	}
	body := make([]byte, n)
	if err := r.ReadFull(body); err != nil {
		return 0, err
	}
	var v uint64
	for i := byte(0); i < n; i++ {
		v |= uint64(body[i]) << (8 * i)
	}
	return v, nil
}
