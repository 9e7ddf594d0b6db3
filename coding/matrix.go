// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// drawFunctionPatterns draws every function pattern except the real
// format bits (a mask=0 stub is drawn instead; the masker burns in
// the real format word once the best mask is chosen) and except the
// codewords themselves.
func (d *draft) drawFunctionPatterns() {
	// Timing patterns: row 6 and column 6, alternating starting dark.
	for i := 0; i < d.size; i++ {
		dark := i%2 == 0
		d.setFunctionModule(6, i, dark)
		d.setFunctionModule(i, 6, dark)
	}

	d.drawFinderPattern(3, 3)
	d.drawFinderPattern(d.size-4, 3)
	d.drawFinderPattern(3, d.size-4)

	for _, pos := range alignmentPatternPositions(d.version) {
		for _, pos2 := range alignmentPatternPositions(d.version) {
			// Skip the three finder corners.
			if (pos == 6 && pos2 == 6) ||
				(pos == 6 && pos2 == d.size-7) ||
				(pos == d.size-7 && pos2 == 6) {
				continue
			}
			d.drawAlignmentPattern(pos, pos2)
		}
	}

	d.drawFormatBits(EclLow, 0) // stub; real value burned in later
	d.drawVersionInformation()
}

// drawFinderPattern draws a 9x9 finder pattern centred on (x,y),
// clipping to the grid.
func (d *draft) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= d.size || yy < 0 || yy >= d.size {
				continue
			}
			dist := max(abs(dx), abs(dy))
			d.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centred on
// (x,y).
func (d *draft) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			d.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// alignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates (used for both x and y) for ver, or nil
// for version 1, which has none.
func alignmentPatternPositions(ver int) []int {
	if ver == 1 {
		return nil
	}
	numAlign := ver/7 + 2
	size := ver*4 + 17
	var step int
	if ver == 32 {
		step = 26
	} else {
		step = ceilDiv(size-13, 2*numAlign-2) * 2
	}
	positions := make([]int, numAlign)
	positions[0] = 6
	pos := size - 7
	for i := numAlign - 1; i >= 1; i-- {
		positions[i] = pos
		pos -= step
	}
	return positions
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// drawVersionInformation draws the two copies of the 18-bit version
// information block, for versions 7 and up only.
func (d *draft) drawVersionInformation() {
	if d.version < 7 {
		return
	}
	rem := uint32(d.version)
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1f25)
	}
	bits := uint32(d.version)<<12 | rem
	for i := 0; i < 18; i++ {
		bit := bits>>uint(i)&1 != 0
		a := d.size - 11 + i%3
		b := i / 3
		d.setFunctionModule(a, b, bit)
		d.setFunctionModule(b, a, bit)
	}
}

// drawCodewords writes data, the fully interleaved data+ECC codeword
// stream, into the grid's non-function cells in zig-zag order,
// MSB-first within each byte.
func (d *draft) drawCodewords(data []byte) {
	totalBits := len(data) * 8
	i := 0
	for right := d.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < d.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				y := vert
				if upward {
					y = d.size - 1 - vert
				}
				if d.isFunction[y][x] {
					continue
				}
				var bit bool
				if i < totalBits {
					bit = data[i>>3]>>uint(7-i&7)&1 != 0
					i++
				}
				d.modules[y][x] = bit
			}
		}
	}
	if i != totalBits {
		internalInvariant("drawCodewords: wrote %d of %d codeword bits", i, totalBits)
	}
}
