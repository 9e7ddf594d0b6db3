// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements GF(2^8) arithmetic under the primitive
// polynomial x^8+x^4+x^3+x^2+1 (0x11D) used by QR Code Reed-Solomon
// error correction, plus generator-polynomial and remainder helpers
// built on top of it.
package gf256

import "fmt"

// Poly is the primitive polynomial of the field: x^8+x^4+x^3+x^2+1.
const Poly = 0x11d

// Generator is the field's conventional generator element, alpha.
const Generator = 0x02

// Mul returns x*y in GF(2^8)/0x11D using Russian-peasant
// multiplication. x and y are uint8, so they are always in [0,255]
// by construction.
func Mul(x, y uint8) uint8 {
	var z uint16
	xx, yy := uint16(x), uint16(y)
	for yy != 0 {
		if yy&1 != 0 {
			z ^= xx
		}
		xx <<= 1
		if xx&0x100 != 0 {
			xx ^= Poly
		}
		yy >>= 1
	}
	return uint8(z)
}

// Divisor returns the coefficients, highest degree to lowest and
// excluding the leading 1, of the generator polynomial
//
//	prod_{i=0}^{degree-1} (x - alpha^i)
//
// over GF(2^8), for 1 <= degree <= 255. It panics if degree is out
// of range.
func Divisor(degree int) []uint8 {
	if degree < 1 || degree > 255 {
		panic(fmt.Sprintf("gf256: degree %d out of range", degree))
	}
	// result starts as the polynomial "1" (degree 0); root is
	// multiplied in one at a time, starting with alpha^0 = 1.
	result := make([]uint8, degree)
	result[degree-1] = 1
	root := uint8(1)
	for i := 0; i < degree; i++ {
		// Multiply the current result by (x - root). Polynomial
		// coefficients are stored highest-to-lowest.
		for j := 0; j < degree; j++ {
			result[j] = Mul(result[j], root)
			if j+1 < degree {
				result[j] ^= result[j+1]
			}
		}
		root = Mul(root, Generator)
	}
	return result
}

// Remainder performs polynomial long division of data by divisor
// over GF(2^8) and returns the remainder, which has len(divisor)
// elements -- the Reed-Solomon error correction codewords for data.
func Remainder(data, divisor []uint8) []uint8 {
	result := make([]uint8, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for j, coef := range divisor {
			result[j] ^= Mul(coef, factor)
		}
	}
	return result
}
