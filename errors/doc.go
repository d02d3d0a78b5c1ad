// Package errors provides structured error types for the hilbert-geometry
// module.
//
// Errors are categorized by Phase (encode or decode) and Kind (error
// category). Decode errors carry the byte offset where decoding stopped.
//
// All errors implement the standard error interface and support
// errors.Is/As; two *Error values match under errors.Is when their Phase and
// Kind agree:
//
//	if errors.Is(err, &hgerrors.Error{Phase: hgerrors.PhaseDecode, Kind: hgerrors.KindTruncated}) {
//	    // short input
//	}
package errors
