// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Symbol is a finalized, immutable QR Code Model 2 symbol: a square
// grid of dark/light modules together with the metadata needed to
// interpret it. A Symbol is built once, by EncodeSegments, and never
// mutated afterwards.
type Symbol struct {
	version int
	size    int
	ecl     Ecl
	mask    int
	modules [][]bool // modules[y][x]; true is dark

	// dataCodewords holds the pre-ECC codeword bytes used to build
	// this symbol, retained for reproducibility.
	dataCodewords []byte
}

// Version returns the symbol's QR version, in [1,40].
func (s *Symbol) Version() int { return s.version }

// Size returns the number of modules on a side: 4*Version()+17.
func (s *Symbol) Size() int { return s.size }

// ErrorCorrectionLevel returns the symbol's error correction level.
func (s *Symbol) ErrorCorrectionLevel() Ecl { return s.ecl }

// Mask returns the mask pattern, in [0,7], applied to this symbol.
func (s *Symbol) Mask() int { return s.mask }

// DataCodewords returns the pre-ECC data codeword bytes used to
// construct the symbol.
func (s *Symbol) DataCodewords() []byte { return s.dataCodewords }

// GetModule reports whether the module at (x,y) is dark. Coordinates
// outside [0,Size()) are defined to be light (false), never an
// error, so callers can probe freely around the symbol's border.
func (s *Symbol) GetModule(x, y int) bool {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return false
	}
	return s.modules[y][x]
}

// draft is the mutable in-progress state of a symbol under
// construction. Its isFunction grid is discarded once the symbol is
// finalized; only modules survives into the public Symbol.
type draft struct {
	version    int
	size       int
	modules    [][]bool
	isFunction [][]bool
}

func newDraft(version int) *draft {
	size := version*4 + 17
	d := &draft{version: version, size: size}
	d.modules = make([][]bool, size)
	d.isFunction = make([][]bool, size)
	for y := range d.modules {
		d.modules[y] = make([]bool, size)
		d.isFunction[y] = make([]bool, size)
	}
	return d
}

// module reports the current color of (x,y) for in-bounds
// coordinates; it is only used during construction, where all
// accesses are known to be in range.
func (d *draft) module(x, y int) bool { return d.modules[y][x] }

// setFunctionModule sets the module at (x,y), which must be in
// bounds, to dark (true) or light (false) and marks it as belonging
// to a function pattern so it is never touched by codeword placement
// or masking.
func (d *draft) setFunctionModule(x, y int, dark bool) {
	d.modules[y][x] = dark
	d.isFunction[y][x] = true
}

// finalize discards the isFunction scratch grid and returns the
// immutable Symbol.
func (d *draft) finalize(ecl Ecl, mask int, dataCodewords []byte) *Symbol {
	return &Symbol{
		version:       d.version,
		size:          d.size,
		ecl:           ecl,
		mask:          mask,
		modules:       d.modules,
		dataCodewords: dataCodewords,
	}
}
