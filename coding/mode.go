// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Ecl is a QR Code error correction level. The zero value is the
// lowest (least redundant) level.
type Ecl int

// The four error correction levels, from least to most tolerant of
// errors. The numeric value is both the table ordinal used to index
// eccCodewordsPerBlock/numErrorCorrectionBlocks and is unrelated to
// the 2-bit format word the level is encoded as -- see FormatBits.
const (
	EclLow      Ecl = iota // ~7% of codewords can be restored
	EclMedium              // ~15%
	EclQuartile            // ~25%
	EclHigh                // ~30%
)

func (e Ecl) String() string {
	if e < EclLow || e > EclHigh {
		return "invalid"
	}
	return [...]string{"Low", "Medium", "Quartile", "High"}[e]
}

// FormatBits returns the 2-bit value used to represent e in a QR
// symbol's format information, per the standard's (deliberately
// non-monotonic) assignment.
func (e Ecl) FormatBits() uint32 {
	return [...]uint32{1, 0, 3, 2}[e]
}

// Mode is a QR Code segment encoding mode: a 4-bit mode indicator
// plus the character-count field width for each of the three
// version ranges (1-9, 10-26, 27-40).
type Mode struct {
	indicator    uint32
	numCountBits [3]int
	name         string
}

// The modes this package's segment encoder produces.
var (
	ModeNumeric      = Mode{0x1, [3]int{10, 12, 14}, "numeric"}
	ModeAlphanumeric = Mode{0x2, [3]int{9, 11, 13}, "alphanumeric"}
	ModeByte         = Mode{0x4, [3]int{8, 16, 16}, "byte"}
	ModeEci          = Mode{0x7, [3]int{0, 0, 0}, "eci"}
)

func (m Mode) String() string { return m.name }

// versionRange returns the cc-bits range index (0,1,2) for ver, per
// range = floor((ver+7)/17).
func versionRange(ver int) int { return (ver + 7) / 17 }

// numCharCountBits returns the bit width of the character count
// field for m at the given version.
func (m Mode) numCharCountBits(ver int) int {
	return m.numCountBits[versionRange(ver)]
}
