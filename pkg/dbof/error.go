package dbof

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text,
// mirroring the teacher's pkg/types.ErrKind/Error pair.
type ErrKind int

const (
	// ErrKindFormat indicates the stream's magic/version header is malformed.
	ErrKindFormat ErrKind = iota
	// ErrKindUnsupported indicates a recognized but unimplemented format version.
	ErrKindUnsupported
	// ErrKindCorrupt indicates a short read/write or an unrecognized wire tag.
	ErrKindCorrupt
	// ErrKindInvariant indicates a decoded payload violated a container's
	// homogeneity invariant (I2/I3).
	ErrKindInvariant
)

// Error is a typed error with an optional underlying cause, returned at the
// pkg/dbof package boundary so callers can branch on Kind via errors.As
// instead of string-matching, while errors.Is against the flat sentinels
// below (ErrBadMagic, ErrUnsupportedVersion, ...) keeps working through
// Unwrap.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func wrapErrf(kind ErrKind, cause error, format string, args ...any) *Error {
	return wrapErr(kind, fmt.Sprintf(format, args...), cause)
}
