package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which side of the pipeline the error occurred on.
type Phase string

const (
	PhaseEncode Phase = "encode" // geometry to Hilbert representation or bytes
	PhaseDecode Phase = "decode" // bytes or Hilbert representation to geometry
)

// Kind categorizes the error.
type Kind string

const (
	// KindUnsupportedGeometry means the input geometry variant has no
	// encoding rule (collections, rings, bounds).
	KindUnsupportedGeometry Kind = "unsupported_geometry"
	// KindTruncated means the byte sequence ended before the value did.
	KindTruncated Kind = "truncated"
	// KindInvalidDiscriminator means the wire tag names no known variant.
	KindInvalidDiscriminator Kind = "invalid_discriminator"
	// KindLengthOutOfBounds means a declared element count exceeds what the
	// remaining buffer could possibly hold.
	KindLengthOutOfBounds Kind = "length_out_of_bounds"
	// KindEncodingFailed means the wire codec could not represent an
	// otherwise well-formed value. Unexpected; treated as fatal.
	KindEncodingFailed Kind = "encoding_failed"
	// KindInvariant means a value is inconsistent with its own variant set,
	// e.g. a nil geometry or one from outside the closed type set.
	KindInvariant Kind = "invariant_violation"
)

// Error is the structured error type returned throughout the module.
type Error struct {
	Phase    Phase
	Kind     Kind
	GeomType string   // geometry type name, when one is involved
	Offset   int      // byte offset into the wire data, -1 when not applicable
	Path     []string // structural path, e.g. ["polygon", "ring 2"]
	Detail   string
	Cause    error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}
	if e.GeomType != "" {
		b.WriteString(": ")
		b.WriteString(e.GeomType)
	}
	if e.Detail != "" {
		if e.GeomType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by Phase and Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the error patterns the codec produces.

// UnsupportedGeometry creates an error for a geometry variant with no
// encoding rule.
func UnsupportedGeometry(geomType string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindUnsupportedGeometry,
		GeomType: geomType,
		Offset:   -1,
	}
}

// Truncated creates a decode error for a buffer that ended mid-value.
func Truncated(offset int, what string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("unexpected end of data reading %s", what),
		Cause:  cause,
	}
}

// InvalidDiscriminator creates a decode error for an unknown variant tag.
func InvalidDiscriminator(offset int, disc byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidDiscriminator,
		Offset: offset,
		Detail: fmt.Sprintf("unknown geometry discriminator 0x%02x", disc),
	}
}

// LengthOutOfBounds creates a decode error for an element count that cannot
// fit in the remaining buffer.
func LengthOutOfBounds(offset int, count uint64, remaining int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindLengthOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("declared %d elements but only %d bytes remain", count, remaining),
	}
}

// EncodingFailed wraps a failure of the wire codec on a well-formed value.
func EncodingFailed(geomType string, cause error) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindEncodingFailed,
		GeomType: geomType,
		Offset:   -1,
		Cause:    cause,
	}
}

// Invariant creates an internal-invariant violation error.
func Invariant(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Offset: -1,
		Detail: detail,
	}
}
