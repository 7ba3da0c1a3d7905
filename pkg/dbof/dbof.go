// Package dbof is the top-level entry point: it resolves the 6-byte
// magic+version header and dispatches to the per-version codec (currently
// only DBOF‑1), per spec.md §4.7.
package dbof

import (
	"encoding/binary"
	"errors"

	"github.com/joshuapare/dbof/internal/dbflog"
	"github.com/joshuapare/dbof/internal/dbof1"
	"github.com/joshuapare/dbof/pkg/object"
	"github.com/joshuapare/dbof/pkg/stream"
)

// DefaultVersion is used for Write when the Writer does not force one.
const DefaultVersion uint16 = 1

var magic = [4]byte{'D', 'B', 'O', 'F'}

var (
	// ErrBadMagic indicates the 4-byte magic prefix did not read "DBOF".
	ErrBadMagic = errors.New("dbof: bad magic header")
	// ErrUnsupportedVersion indicates a version with no registered decoder/encoder.
	ErrUnsupportedVersion = errors.New("dbof: unsupported version")
)

// Read resolves r's header (unless r.NoHeader) and decodes the root object
// via the selected version's codec (spec.md §4.7, read steps 1-3).
func Read(r *stream.Reader) (object.Object, error) {
	version := r.UseVersion
	if !r.NoHeader {
		var hdr [6]byte
		if err := r.ReadFull(hdr[:]); err != nil {
			return nil, wrapErr(ErrKindCorrupt, "dbof: failed reading header", err)
		}
		if hdr[0] != magic[0] || hdr[1] != magic[1] || hdr[2] != magic[2] || hdr[3] != magic[3] {
			dbflog.Debug("dbof: bad magic header", "bytes", hdr[:4])
			return nil, wrapErr(ErrKindFormat, "dbof: bad magic header", ErrBadMagic)
		}
		parsed := binary.LittleEndian.Uint16(hdr[4:6])
		if version == 0 {
			version = parsed
		}
	} else if err := r.Validate(); err != nil {
		return nil, wrapErr(ErrKindFormat, "dbof: invalid reader configuration", err)
	}

	switch version {
	case 1:
		o, err := dbof1.Decode(r)
		if err != nil {
			return nil, wrapDecodeErr(err)
		}
		return o, nil
	default:
		dbflog.Debug("dbof: unsupported version", "version", version)
		return nil, wrapErrf(ErrKindUnsupported, ErrUnsupportedVersion, "dbof: unsupported version %d", version)
	}
}

// wrapDecodeErr classifies an internal/dbof1 decode failure for callers
// branching on Error.Kind: a homogeneity rejection is an invariant error,
// everything else (unrecognized tag, short transfer) is corrupt input.
func wrapDecodeErr(err error) *Error {
	if errors.Is(err, dbof1.ErrElementKindMismatch) {
		return wrapErr(ErrKindInvariant, "dbof: decoded container violated homogeneity invariant", err)
	}
	return wrapErr(ErrKindCorrupt, "dbof: decode failed", err)
}

// Write resolves w's target version (UseVersion, or DefaultVersion if zero),
// emits the header unless w.NoHeader, and encodes o via that version's
// codec (spec.md §4.7, write steps 1-3).
func Write(w *stream.Writer, o object.Object) error {
	version := w.UseVersion
	if version == 0 {
		version = DefaultVersion
	}

	if !w.NoHeader {
		var hdr [6]byte
		copy(hdr[:4], magic[:])
		binary.LittleEndian.PutUint16(hdr[4:6], version)
		if err := w.WriteFull(hdr[:]); err != nil {
			return wrapErr(ErrKindCorrupt, "dbof: failed writing header", err)
		}
	}

	switch version {
	case 1:
		if err := dbof1.Encode(w, o); err != nil {
			return wrapErr(ErrKindCorrupt, "dbof: encode failed", err)
		}
		return nil
	default:
		return wrapErrf(ErrKindUnsupported, ErrUnsupportedVersion, "dbof: unsupported version %d", version)
	}
}
