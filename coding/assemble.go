// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// EncodeSegments builds a Symbol from segs at the given error
// correction level. minVersion, maxVersion and mask select the
// allowed version range and force a specific mask pattern (mask in
// [0,7]) or request auto-selection (mask == -1). boostEcl, if true,
// raises ecl to the highest level that still fits the chosen version
// without re-searching for a version.
//
// EncodeSegments returns a DataTooLong error if no version in
// [minVersion, maxVersion] can hold segs at ecl, and an
// InvalidArgument error for an out-of-range version range or mask.
func EncodeSegments(segs []Segment, ecl Ecl, minVersion, maxVersion, mask int, boostEcl bool) (*Symbol, error) {
	if minVersion < 1 || minVersion > maxVersion || maxVersion > 40 {
		return nil, errf(InvalidArgument,
			"version range [%d,%d] invalid", minVersion, maxVersion)
	}
	if mask < -1 || mask > 7 {
		return nil, errf(InvalidArgument, "mask %d out of range [-1,7]", mask)
	}

	// 1. Version search: the smallest version in range that fits.
	ver := minVersion
	var dataCapacityBits int
	for {
		dataCapacityBits = numDataCodewords(ver, ecl) * 8
		if n, ok := totalBits(segs, ver); ok && n <= dataCapacityBits {
			break
		}
		if ver >= maxVersion {
			return nil, errf(DataTooLong,
				"segments do not fit in any version from %d to %d at level %v",
				minVersion, maxVersion, ecl)
		}
		ver++
	}

	// 2. ECC boost: adopt a higher level at the same version if it
	// still fits, without re-searching for a version.
	if boostEcl {
		for _, higher := range []Ecl{EclMedium, EclQuartile, EclHigh} {
			if higher <= ecl {
				continue
			}
			if n, ok := totalBits(segs, ver); ok && n <= numDataCodewords(ver, higher)*8 {
				ecl = higher
			}
		}
	}

	// 3. Bit stream assembly.
	var bits Bits
	for _, seg := range segs {
		seg.encode(&bits, ver)
	}

	dataCapacityBits = numDataCodewords(ver, ecl) * 8
	if bits.Len() > dataCapacityBits {
		internalInvariant("encoded bit length %d exceeds capacity %d", bits.Len(), dataCapacityBits)
	}

	// 4. Terminator, byte-boundary padding, and pad codewords.
	terminatorLen := min(4, dataCapacityBits-bits.Len())
	bits.AppendBits(0, terminatorLen)
	for bits.Len()%8 != 0 {
		bits.AppendBits(0, 1)
	}
	for padByteToggle := false; bits.Len() < dataCapacityBits; padByteToggle = !padByteToggle {
		if padByteToggle {
			bits.AppendBits(0x11, 8)
		} else {
			bits.AppendBits(0xec, 8)
		}
	}
	if bits.Len() != dataCapacityBits {
		internalInvariant("padded bit length %d != capacity %d", bits.Len(), dataCapacityBits)
	}

	// 5. Pack to codeword bytes.
	dataCodewords := bits.PackedBytes()

	// 6. Error correction, interleaving, matrix construction and
	// mask selection.
	allCodewords := addEccAndInterleave(dataCodewords, ver, ecl)
	d := newDraft(ver)
	d.drawFunctionPatterns()
	d.drawCodewords(allCodewords)
	return d.chooseMaskAndFinalize(ecl, mask, dataCodewords), nil
}

// EncodeText encodes text, automatically partitioned into segments
// by MakeSegments, at error correction level ecl, using the full
// version range [1,40], automatic mask selection, and ECC boosting.
func EncodeText(text string, ecl Ecl) (*Symbol, error) {
	return EncodeSegments(MakeSegments(text), ecl, 1, 40, -1, true)
}
