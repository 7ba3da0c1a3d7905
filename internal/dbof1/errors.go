package dbof1

import "errors"

var (
	// ErrFlexLengthTooWide indicates a flex-length varint declared N > 8.
	ErrFlexLengthTooWide = errors.New("dbof1: flex-length byte count exceeds 8")

	// ErrUnrecognizedKind indicates a wire type tag did not match any known kind.
	ErrUnrecognizedKind = errors.New("dbof1: unrecognized type tag")

	// ErrElementKindMismatch indicates a typed container's element/key/value
	// payload was rejected by the in-memory model during decode (a malformed
	// or adversarial producer declared one element kind but supplied another
	// object that the homogeneity invariant then refused).
	ErrElementKindMismatch = errors.New("dbof1: container rejected mismatched element kind")
)
