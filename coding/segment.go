// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "golang.org/x/text/unicode/norm"

// alphanumericCharset is the QR alphanumeric character set, in
// encoding order; the index of a character is its encoded value.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Segment is a single QR Code encoding segment: a mode, the
// pre-encoding character count (digits for Numeric, characters for
// Alphanumeric, bytes for Byte), and the payload bits -- header
// (mode indicator + character count) excluded.
type Segment struct {
	Mode     Mode
	NumChars int
	bits     Bits
}

// MakeNumeric returns a segment encoding digits, a string of ASCII
// digits, in Numeric mode. It returns an InvalidArgument error if
// digits contains a non-digit byte.
func MakeNumeric(digits string) (Segment, error) {
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return Segment{}, errf(InvalidArgument,
				"numeric segment contains non-digit character %q", c)
		}
	}
	var b Bits
	for i := 0; i < len(digits); {
		n := min(3, len(digits)-i)
		var v uint32
		for j := 0; j < n; j++ {
			v = v*10 + uint32(digits[i+j]-'0')
		}
		b.AppendBits(v, 3*n+1)
		i += n
	}
	return Segment{Mode: ModeNumeric, NumChars: len(digits), bits: b}, nil
}

// alphanumericValue returns the encoded value of c in the
// alphanumeric charset, and whether c belongs to it.
func alphanumericValue(c byte) (int, bool) {
	i := indexByte(alphanumericCharset, c)
	return i, i >= 0
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// MakeAlphanumeric returns a segment encoding text, a string drawn
// from the QR alphanumeric character set, in Alphanumeric mode. It
// returns an InvalidArgument error if text contains a character
// outside that set.
func MakeAlphanumeric(text string) (Segment, error) {
	values := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		v, ok := alphanumericValue(text[i])
		if !ok {
			return Segment{}, errf(InvalidArgument,
				"alphanumeric segment contains invalid character %q", text[i])
		}
		values[i] = v
	}
	var b Bits
	i := 0
	for ; i+1 < len(values); i += 2 {
		b.AppendBits(uint32(values[i]*45+values[i+1]), 11)
	}
	if i < len(values) {
		b.AppendBits(uint32(values[i]), 6)
	}
	return Segment{Mode: ModeAlphanumeric, NumChars: len(text), bits: b}, nil
}

// MakeBytes returns a segment encoding data in Byte mode, one byte
// per 8 bits.
func MakeBytes(data []byte) Segment {
	var b Bits
	b.AppendBytes(data)
	return Segment{Mode: ModeByte, NumChars: len(data), bits: b}
}

// MakeEci returns a segment encoding an ECI designator for
// assignVal, the Extended Channel Interpretation value. assignVal
// must be non-negative and representable in the ECI wire format
// (< 10^6); otherwise MakeEci returns an InvalidArgument error.
func MakeEci(assignVal int) (Segment, error) {
	var b Bits
	switch {
	case assignVal < 0:
		return Segment{}, errf(InvalidArgument, "ECI assignment value %d is negative", assignVal)
	case assignVal < 1<<7:
		b.AppendBits(uint32(assignVal), 8)
	case assignVal < 1<<14:
		b.AppendBits(2, 2)
		b.AppendBits(uint32(assignVal), 14)
	case assignVal < 1_000_000:
		b.AppendBits(6, 3)
		b.AppendBits(uint32(assignVal), 21)
	default:
		return Segment{}, errf(InvalidArgument, "ECI assignment value %d is too large", assignVal)
	}
	return Segment{Mode: ModeEci, NumChars: 0, bits: b}, nil
}

// MakeSegments automatically partitions text into the minimal set of
// segments encoding it: one Numeric segment if text is all digits,
// one Alphanumeric segment if every character belongs to the QR
// alphanumeric set, otherwise one Byte segment over the UTF-8
// encoding of text. text is first normalized to NFC, so that
// precomposed and decomposed forms of the same glyph land in the same
// segment mode. MakeSegments returns nil for an empty string.
func MakeSegments(text string) []Segment {
	if text == "" {
		return nil
	}
	text = norm.NFC.String(text)
	allDigits, allAlnum := true, true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			allDigits = false
		}
		if _, ok := alphanumericValue(c); !ok {
			allAlnum = false
		}
		if !allDigits && !allAlnum {
			break
		}
	}
	var seg Segment
	var err error
	switch {
	case allDigits:
		seg, err = MakeNumeric(text)
	case allAlnum:
		seg, err = MakeAlphanumeric(text)
	default:
		seg = MakeBytes([]byte(text))
	}
	if err != nil {
		// allDigits/allAlnum were verified above; this would be an
		// internal inconsistency, not bad input.
		internalInvariant("MakeSegments: %v", err)
	}
	return []Segment{seg}
}

// totalBits returns the number of bits needed to encode segs as a
// bit stream (mode indicator + character count + payload per
// segment) at the given version, and whether that total is valid.
// It is invalid -- overflow -- if any segment's character count
// does not fit in its mode's character-count field at this version;
// the sum is meaningless in that case and must not be used.
func totalBits(segs []Segment, ver int) (n int, ok bool) {
	for _, seg := range segs {
		ccbits := seg.Mode.numCharCountBits(ver)
		if ccbits < 31 && seg.NumChars >= 1<<uint(ccbits) {
			return 0, false
		}
		n += 4 + ccbits + seg.bits.nbit
	}
	return n, true
}

// encode writes seg's header and payload to b at the given QR
// version.
func (seg Segment) encode(b *Bits, ver int) {
	b.AppendBits(seg.Mode.indicator, 4)
	b.AppendBits(uint32(seg.NumChars), seg.Mode.numCharCountBits(ver))
	b.AppendBuffer(&seg.bits)
}
