package dbof1

import (
	"testing"

	"github.com/joshuapare/dbof/pkg/stream"
)

// Benchmark_EncodeFlexLength exercises the minimal-N search and byte
// emission for a value spanning most of the 8-byte range.
func Benchmark_EncodeFlexLength(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_ = encodeFlexLength(0x1234_5678_9ABC)
	}
}

// Benchmark_ReadFlexLength exercises the decode side against a fixed wire
// encoding, the hot path for every string/container length prefix.
func Benchmark_ReadFlexLength(b *testing.B) {
	wire := encodeFlexLength(0x1234_5678_9ABC)
	src := &stream.MemSource{Buf: wire}
	r := stream.NewReader(src.Read, nil)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		src.Rewind()
		if _, err := readFlexLength(r); err != nil {
			b.Fatal(err)
		}
	}
}
