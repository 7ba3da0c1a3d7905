package object

import "errors"

// ErrKindMismatch is the error returned by the Try* family when a
// homogeneity invariant (I2/I3) rejects an element/entry, giving strict
// callers an error to check instead of re-validating kinds themselves
// before calling PushBack/Put.
var ErrKindMismatch = errors.New("object: element kind does not match container's fixed kind")
