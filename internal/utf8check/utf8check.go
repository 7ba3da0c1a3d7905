// Package utf8check validates the two Unicode-shaped payloads DBOF accepts
// from producers: Utf8String byte buffers and Character code points.
package utf8check

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned when a string payload fails strict UTF-8
// validation on the producer side, per DBOF-1 §3.2.
var ErrInvalidUTF8 = errors.New("utf8check: invalid UTF-8 sequence")

// ErrInvalidScalar is returned when a Character payload is not a valid
// 32-bit Unicode scalar value (i.e. it is a surrogate half or exceeds the
// maximum code point).
var ErrInvalidScalar = errors.New("utf8check: not a valid Unicode scalar value")

// ValidateString reports whether b holds strictly valid UTF-8, using
// golang.org/x/text's UTF8Validator, which rejects overlong encodings,
// surrogate halves and other malformed sequences.
func ValidateString(b []byte) error {
	if _, _, err := transform.Bytes(unicode.UTF8Validator, b); err != nil {
		return ErrInvalidUTF8
	}
	return nil
}

// ValidateScalar reports whether r is a valid Unicode scalar value: in
// range [0, utf8.MaxRune] and not a UTF-16 surrogate half.
func ValidateScalar(r rune) error {
	if r < 0 || r > utf8.MaxRune {
		return ErrInvalidScalar
	}
	if utf16.IsSurrogate(r) {
		return ErrInvalidScalar
	}
	return nil
}
