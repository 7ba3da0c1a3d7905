package object

import (
	"github.com/joshuapare/dbof/internal/utf8check"
	"github.com/joshuapare/dbof/pkg/kind"
)

// String is a UTF-8 byte string value object (kind.Utf8String).
//
// Per spec.md §3.2, content must be valid UTF-8 on the producer side: Set
// validates with utf8check and rejects malformed input, returning the prior
// content unchanged (strong exception safety, the Go analogue of the
// source's "reallocation failure leaves the prior string intact"). A
// decoder reconstructing a String from an untrusted wire still stores
// whatever bytes it received — see internal/dbof1, which calls NewStringRaw
// to bypass validation the same way the source stores bytes "as received".
type String struct {
	data []byte
}

// NewString constructs a String from b, which must be valid UTF-8. Invalid
// input is silently treated as empty; callers who need an error should use
// (*String).Set directly.
func NewString(b []byte) *String {
	s := &String{}
	_ = s.Set(b)
	return s
}

func (*String) Kind() kind.Kind { return kind.Utf8String }
func (o *String) Hash() int32   { return hashBytes(o.data) }
func (o *String) equalPayload(other Object) bool {
	return stringBytesEqual(o.data, other.(*String).data)
}
func (*String) sealed() {}

// Bytes returns the string's content. The returned slice aliases internal
// storage and must not be mutated by the caller.
func (o *String) Bytes() []byte {
	return o.data
}

// Len returns the pre-NUL byte length of the string's content.
func (o *String) Len() int {
	return len(o.data)
}

// String returns the content as a Go string.
func (o *String) String() string {
	return string(o.data)
}

// Set replaces the string's content. It validates b as strict UTF-8 first;
// on failure the prior content is left untouched and an error is returned.
func (o *String) Set(b []byte) error {
	if err := utf8check.ValidateString(b); err != nil {
		return err
	}
	o.setRaw(b)
	return nil
}

// NewStringRaw constructs a String from b without UTF-8 validation. Used by
// the DBOF-1 decoder, which per spec.md §3.2 "stores bytes as received"
// even when a malformed producer violated the UTF-8 contract.
func NewStringRaw(b []byte) *String {
	s := &String{}
	s.setRaw(b)
	return s
}

// setRaw installs b verbatim without UTF-8 validation.
func (o *String) setRaw(b []byte) {
	if len(b) == len(o.data) {
		copy(o.data, b)
		return
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	o.data = buf
}

func stringBytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
