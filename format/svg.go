// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format holds the output collaborators the core encoder
// never depends on: writers that turn a finalized symbol into bytes
// a viewer or printer understands. Each writer only reads module
// colors and symbol dimensions through the coding.Symbol accessors --
// it has no access to, and no need for, the symbol's construction
// internals.
package format

import (
	"fmt"
	"io"

	"github.com/vygonets-student/qrcore/coding"
)

// module is the subset of *coding.Symbol a formatter needs.
type module interface {
	Size() int
	GetModule(x, y int) bool
}

// WriteSVG writes sym as a standalone SVG document to w. border is
// the quiet-zone width in modules on each side; it must be
// non-negative. The document's viewBox covers size+2*border units,
// and each dark module is drawn as a single 1x1 path rectangle.
func WriteSVG(w io.Writer, sym module, border int) error {
	if border < 0 {
		return &coding.Error{Kind: coding.InvalidArgument,
			Msg: fmt.Sprintf("SVG border %d is negative", border)}
	}
	size := sym.Size()
	dim := size + 2*border

	var buf []byte
	buf = fmt.Appendf(buf, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" stroke="none">
<rect width="%d" height="%d" fill="#FFFFFF"/>
<path fill="#000000" d="`, dim, dim, dim, dim)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if sym.GetModule(x, y) {
				buf = fmt.Appendf(buf, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	buf = append(buf, []byte("\"/>\n</svg>\n")...)
	_, err := w.Write(buf)
	return err
}
