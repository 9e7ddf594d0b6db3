// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qr is the public façade of a QR Code Model 2 (versions
// 1-40) encoder. It turns Unicode text, or a caller-assembled list
// of segments, into an immutable Symbol: a square grid of dark/light
// modules ready for an output formatter to rasterize.
//
// The heavy lifting -- segment bit packing, version/ECC selection,
// Reed-Solomon error correction, matrix construction and masking --
// lives in the coding subpackage; this package only re-exports the
// pieces of its API that belong on the public surface.
package qr // import "github.com/vygonets-student/qrcore"

import "github.com/vygonets-student/qrcore/coding"

// Ecl is a QR Code error correction level, from least to most
// tolerant of errors.
type Ecl = coding.Ecl

// The four error correction levels.
const (
	Low      = coding.EclLow
	Medium   = coding.EclMedium
	Quartile = coding.EclQuartile
	High     = coding.EclHigh
)

// Symbol is a finalized QR Code: a square grid of modules plus the
// version, mask and error correction level used to build it. A
// Symbol is immutable once returned by EncodeText or EncodeSegments.
type Symbol = coding.Symbol

// Segment is a single encoded chunk of a QR Code's data, produced by
// MakeNumeric, MakeAlphanumeric, MakeBytes, MakeEci or MakeSegments
// and consumed by EncodeSegments.
type Segment = coding.Segment

// Error is the error type returned by every fallible operation in
// this package; its Kind distinguishes the closed set of failure
// categories below.
type Error = coding.Error

// ErrorKind classifies an Error. See the coding package's ErrorKind
// constants (InvalidArgument, DataTooLong, ValueOutOfRange,
// InternalInvariant) for the closed set of values.
type ErrorKind = coding.ErrorKind

// The error kinds this package's operations can raise.
const (
	InvalidArgument   = coding.InvalidArgument
	DataTooLong       = coding.DataTooLong
	ValueOutOfRange   = coding.ValueOutOfRange
	InternalInvariant = coding.InternalInvariant
)

// Segment factories. See their coding package counterparts for exact
// semantics.
var (
	MakeNumeric      = coding.MakeNumeric
	MakeAlphanumeric = coding.MakeAlphanumeric
	MakeBytes        = coding.MakeBytes
	MakeEci          = coding.MakeEci
	MakeSegments     = coding.MakeSegments
)

// EncodeText encodes text -- partitioned automatically into numeric,
// alphanumeric or byte segments -- at the given error correction
// level, using the full version range, automatic mask selection and
// ECC boosting.
func EncodeText(text string, ecl Ecl) (*Symbol, error) {
	return coding.EncodeText(text, ecl)
}

// EncodeSegments builds a Symbol from segs. minVersion and
// maxVersion bound the allowed QR version (1-40); mask forces a
// specific mask pattern in [0,7], or -1 to select automatically; if
// boostEcl is true, the error correction level is raised as high as
// it can go at the chosen version without changing that version.
func EncodeSegments(segs []Segment, ecl Ecl, minVersion, maxVersion, mask int, boostEcl bool) (*Symbol, error) {
	return coding.EncodeSegments(segs, ecl, minVersion, maxVersion, mask, boostEcl)
}
