// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// ErrorKind classifies the closed set of error conditions the core
// encoder can raise. See Error for the type actually returned to
// callers.
type ErrorKind int

const (
	// InvalidArgument marks malformed caller input: version/mask out
	// of range, characters that don't belong to the declared segment
	// mode, a negative border, a malformed hex color.
	InvalidArgument ErrorKind = iota

	// DataTooLong marks data that doesn't fit any version in the
	// requested range at the requested (pre-boost) error correction
	// level.
	DataTooLong

	// ValueOutOfRange marks programmer-error preconditions:
	// (*Bits).AppendBits misuse. It is not raised by package gf256:
	// its operands are uint8, so a byte outside [0,255] cannot occur,
	// and gf256.Divisor panics with a plain string, not an *Error, for
	// a degree outside [1,255].
	ValueOutOfRange

	// InternalInvariant marks an assertion that, if it fires,
	// indicates a bug in this package rather than bad input. Never
	// recover from it.
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case DataTooLong:
		return "data too long"
	case ValueOutOfRange:
		return "value out of range"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every fallible operation in
// this package. It carries a Kind so callers can distinguish error
// categories with errors.As, and a Msg with the concrete detail.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("qr: %s: %s", e.Kind, e.Msg) }

func errf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// internalInvariant panics with an InternalInvariant error. It is
// called only where the package's own bookkeeping -- not caller
// input -- has gone wrong, e.g. a packed codeword count mismatching
// the raw codeword count for a version.
func internalInvariant(format string, args ...any) {
	panic(errf(InternalInvariant, format, args...))
}
