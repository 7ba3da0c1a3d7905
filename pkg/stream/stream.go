// Package stream defines the byte-callback abstractions the DBOF codec reads
// from and writes to. The codec never touches a file descriptor or an
// io.Reader directly; callers supply a pull/push callback pair, matching the
// source's "caller supplies a read/write callback" boundary (spec.md §1, §4.5).
package stream

import "errors"

// ErrShortTransfer is returned (wrapped) when a ReadFunc or WriteFunc moves
// fewer bytes than requested. The codec treats any short transfer as fatal
// for the operation it was servicing (spec.md §4.5, §7 EndOfStream).
var ErrShortTransfer = errors.New("stream: short read or write")

// ReadFunc pulls up to len(buf) bytes from an external source into buf,
// returning the number of bytes actually placed. Returning n < len(buf)
// signals end-of-stream or failure; the codec surfaces this as
// ErrShortTransfer and aborts the containing operation.
//
// data is the opaque value supplied to NewReader, mirroring the source's
// untyped context pointer threaded through its callback signature.
type ReadFunc func(data any, buf []byte) (n int)

// WriteFunc pushes buf to an external sink, returning the number of bytes
// actually accepted. Returning n < len(buf) signals a failed/partial write.
type WriteFunc func(data any, buf []byte) (n int)

// Reader configures how the DBOF‑1 decoder pulls bytes off an external
// source. The zero value is not usable; construct with NewReader.
type Reader struct {
	// Read is invoked to fill successive byte spans.
	Read ReadFunc

	// UseVersion forces decoding as a specific format version, bypassing the
	// version parsed from the 6-byte header. Zero means "read from header".
	UseVersion uint16

	// NoHeader, when true, skips the 6-byte magic+version header entirely and
	// decodes the root object directly. Requires UseVersion != 0.
	NoHeader bool

	// Data is opaque and passed back unmodified to Read on every call.
	Data any
}

// NewReader builds a Reader around read, with headers expected and the
// version auto-detected from them. Use WithVersion/WithNoHeader to adjust.
func NewReader(read ReadFunc, data any) *Reader {
	return &Reader{Read: read, Data: data}
}

// WithVersion forces decoding under a specific version, ignoring whatever
// version (if any) is present in the header.
func (r *Reader) WithVersion(v uint16) *Reader {
	r.UseVersion = v
	return r
}

// WithNoHeader disables header parsing. The caller must have already called
// WithVersion with a nonzero version; Validate (called by the top-level
// dispatcher) rejects NoHeader paired with UseVersion == 0.
func (r *Reader) WithNoHeader() *Reader {
	r.NoHeader = true
	return r
}

// Validate reports whether the Reader's configuration is internally
// consistent (spec.md §4.6 read step 1: "no_header requires use_version≠0").
func (r *Reader) Validate() error {
	if r.NoHeader && r.UseVersion == 0 {
		return errNoHeaderNeedsVersion
	}
	return nil
}

// ReadFull pulls exactly len(buf) bytes via r.Read, returning ErrShortTransfer
// if the callback ever comes up short.
func (r *Reader) ReadFull(buf []byte) error {
	n := r.Read(r.Data, buf)
	if n != len(buf) {
		return ErrShortTransfer
	}
	return nil
}

// Writer configures how the DBOF‑1 encoder pushes bytes to an external sink.
// The zero value is not usable; construct with NewWriter.
type Writer struct {
	// Write is invoked with successive byte spans to emit.
	Write WriteFunc

	// UseVersion selects the format version to encode with. Zero selects
	// DefaultVersion.
	UseVersion uint16

	// NoHeader, when true, suppresses the 6-byte magic+version header.
	NoHeader bool

	// Data is opaque and passed back unmodified to Write on every call.
	Data any
}

// NewWriter builds a Writer around write, emitting a header at DefaultVersion
// unless adjusted via WithVersion/WithNoHeader.
func NewWriter(write WriteFunc, data any) *Writer {
	return &Writer{Write: write, Data: data}
}

func (w *Writer) WithVersion(v uint16) *Writer {
	w.UseVersion = v
	return w
}

func (w *Writer) WithNoHeader() *Writer {
	w.NoHeader = true
	return w
}

// WriteFull pushes all of buf via w.Write, returning ErrShortTransfer if the
// callback ever accepts fewer bytes than offered.
func (w *Writer) WriteFull(buf []byte) error {
	n := w.Write(w.Data, buf)
	if n != len(buf) {
		return ErrShortTransfer
	}
	return nil
}

var errNoHeaderNeedsVersion = errors.New("stream: NoHeader requires a nonzero UseVersion")
