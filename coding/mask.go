// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskPredicate reports whether mask m inverts the module at (x,y).
func maskPredicate(m, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		internalInvariant("maskPredicate: mask %d out of range", m)
		panic("unreachable")
	}
}

// applyMask XORs every non-function module with mask m's predicate.
// Applying the same mask twice restores the grid.
func (d *draft) applyMask(m int) {
	for y := 0; y < d.size; y++ {
		for x := 0; x < d.size; x++ {
			if !d.isFunction[y][x] && maskPredicate(m, x, y) {
				d.modules[y][x] = !d.modules[y][x]
			}
		}
	}
}

// drawFormatBits computes the 15-bit format word for ecl and mask
// and draws its two standard copies next to the finder patterns,
// plus the permanently dark module at (8, size-8).
func (d *draft) drawFormatBits(ecl Ecl, mask int) {
	data := ecl.FormatBits()<<3 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	bits := (data<<10 | rem) ^ 0x5412
	if bits >= 1<<15 {
		internalInvariant("drawFormatBits: format word %#x exceeds 15 bits", bits)
	}

	get := func(i int) bool { return bits>>uint(i)&1 != 0 }

	// First copy, near the top-left finder.
	for i := 0; i <= 5; i++ {
		d.setFunctionModule(8, i, get(i))
	}
	d.setFunctionModule(8, 7, get(6))
	d.setFunctionModule(8, 8, get(7))
	d.setFunctionModule(7, 8, get(8))
	for i := 9; i < 15; i++ {
		d.setFunctionModule(14-i, 8, get(i))
	}

	// Second copy, split across the bottom-left and top-right finders.
	for i := 0; i < 8; i++ {
		d.setFunctionModule(d.size-1-i, 8, get(i))
	}
	for i := 8; i < 15; i++ {
		d.setFunctionModule(8, d.size-15+i, get(i))
	}
	d.setFunctionModule(8, d.size-8, true) // always dark
}

// penalty returns the four-term penalty score of the grid as it
// currently stands.
func (d *draft) penalty() int {
	size := d.size
	result := 0

	for y := 0; y < size; y++ {
		runColor := false
		runLen := 0
		var history [7]int
		for x := 0; x < size; x++ {
			if d.module(x, y) == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				finderPenaltyAddHistory(runLen, &history, size)
				if !runColor {
					result += finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runColor = d.module(x, y)
				runLen = 1
			}
		}
		result += finderPenaltyTerminateAndCount(runColor, runLen, &history, size) * penaltyN3
	}

	for x := 0; x < size; x++ {
		runColor := false
		runLen := 0
		var history [7]int
		for y := 0; y < size; y++ {
			if d.module(x, y) == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				finderPenaltyAddHistory(runLen, &history, size)
				if !runColor {
					result += finderPenaltyCountPatterns(&history) * penaltyN3
				}
				runColor = d.module(x, y)
				runLen = 1
			}
		}
		result += finderPenaltyTerminateAndCount(runColor, runLen, &history, size) * penaltyN3
	}

	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			c := d.module(x, y)
			if c == d.module(x+1, y) && c == d.module(x, y+1) && c == d.module(x+1, y+1) {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if d.module(x, y) {
				dark++
			}
		}
	}
	total := size * size
	k := ceilDiv(abs(dark*20-total*10), total) - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes currentRunLength onto the front of
// the rolling 7-slot run history, in place. The first run recorded
// in a line is padded with an imaginary light run the length of the
// whole line, standing in for the border.
func finderPenaltyAddHistory(currentRunLength int, history *[7]int, size int) {
	if history[0] == 0 {
		currentRunLength += size
	}
	copy(history[1:], history[:len(history)-1])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns reports how many times (0, 1, or 2) the
// finder signature 1:1:3:1:1 bordered by light runs appears at the
// current position of history.
func finderPenaltyCountPatterns(history *[7]int) int {
	n := history[1]
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	result := 0
	if core && history[0] >= n*4 && history[6] >= n {
		result++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		result++
	}
	return result
}

// finderPenaltyTerminateAndCount flushes the final run of a line
// into history (padding with the line's light border) and returns
// the resulting finder-pattern count.
func finderPenaltyTerminateAndCount(currentRunColor bool, currentRunLength int, history *[7]int, size int) int {
	if currentRunColor {
		finderPenaltyAddHistory(currentRunLength, history, size)
		currentRunLength = 0
	}
	currentRunLength += size
	finderPenaltyAddHistory(currentRunLength, history, size)
	return finderPenaltyCountPatterns(history)
}

// chooseMaskAndFinalize picks the mask minimizing penalty() (ties
// broken by the lower mask number) when requestedMask is -1, applies
// it once, draws its real format bits, and finalizes the symbol.
// When requestedMask is in [0,7], that mask is used unconditionally.
func (d *draft) chooseMaskAndFinalize(ecl Ecl, requestedMask int, dataCodewords []byte) *Symbol {
	mask := requestedMask
	if mask == -1 {
		best, bestPenalty := 0, -1
		for m := 0; m < 8; m++ {
			d.applyMask(m)
			d.drawFormatBits(ecl, m)
			if p := d.penalty(); bestPenalty == -1 || p < bestPenalty {
				best, bestPenalty = m, p
			}
			d.applyMask(m) // undo
		}
		mask = best
	}
	d.applyMask(mask)
	d.drawFormatBits(ecl, mask)
	return d.finalize(ecl, mask, dataCodewords)
}
