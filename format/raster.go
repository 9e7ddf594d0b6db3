// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/vygonets-student/qrcore/coding"
)

// RasterOptions controls PNG/JPEG rasterization.
type RasterOptions struct {
	Scale      int        // pixels per module; must be >= 1
	Border     int        // quiet zone, in modules; must be >= 0
	Background color.RGBA // fill color for light modules and the quiet zone
	Foreground color.RGBA // fill color for dark modules

	// Highlight, if true, paints the three finder patterns (and their
	// one-module separators) in FinderColor instead of Foreground.
	Highlight   bool
	FinderColor color.RGBA
}

// ParseHexColor parses a "#RRGGBB" or "#RRGGBBAA" string (the leading
// "#" is optional) into a color. It returns InvalidArgument for any
// string that isn't exactly 6 or 8 hex digits.
func ParseHexColor(s string) (color.RGBA, error) {
	s = trimHash(s)
	var c color.RGBA
	c.A = 0xff
	switch len(s) {
	case 6, 8:
	default:
		return c, &coding.Error{Kind: coding.InvalidArgument,
			Msg: fmt.Sprintf("%q: not a 6 or 8 digit hex color", s)}
	}
	v := [4]byte{0, 0, 0, 0xff}
	for i := 0; i*2 < len(s); i++ {
		b, ok := hexByte(s[i*2], s[i*2+1])
		if !ok {
			return c, &coding.Error{Kind: coding.InvalidArgument,
				Msg: fmt.Sprintf("%q: invalid hex digit", s)}
		}
		v[i] = b
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func trimHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexDigit(hi)
	l, ok2 := hexDigit(lo)
	return h<<4 | l, ok1 && ok2
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// isFinderRegion reports whether module (x,y) belongs to one of the
// three 9x9 finder-plus-separator blocks, the same footprint drawn by
// the core's finder pattern placement.
func isFinderRegion(x, y, size int) bool {
	centers := [3][2]int{{3, 3}, {size - 4, 3}, {3, size - 4}}
	for _, c := range centers {
		dx, dy := x-c[0], y-c[1]
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= 4 && dy <= 4 {
			return true
		}
	}
	return false
}

// Render rasterizes sym into an RGBA image per opts.
func Render(sym module, opts RasterOptions) (*image.RGBA, error) {
	if opts.Scale < 1 {
		return nil, &coding.Error{Kind: coding.InvalidArgument,
			Msg: fmt.Sprintf("raster scale %d must be >= 1", opts.Scale)}
	}
	if opts.Border < 0 {
		return nil, &coding.Error{Kind: coding.InvalidArgument,
			Msg: fmt.Sprintf("raster border %d is negative", opts.Border)}
	}
	size := sym.Size()
	dim := (size + 2*opts.Border) * opts.Scale
	img := image.NewRGBA(image.Rect(0, 0, dim, dim))

	for py := 0; py < dim; py++ {
		for px := 0; px < dim; px++ {
			mx := px/opts.Scale - opts.Border
			my := py/opts.Scale - opts.Border
			c := opts.Background
			if sym.GetModule(mx, my) {
				c = opts.Foreground
				if opts.Highlight && isFinderRegion(mx, my, size) {
					c = opts.FinderColor
				}
			}
			img.SetRGBA(px, py, c)
		}
	}
	return img, nil
}

// WritePNG rasterizes sym per opts and writes it to w as PNG.
func WritePNG(w io.Writer, sym module, opts RasterOptions) error {
	img, err := Render(sym, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteJPEG rasterizes sym per opts and writes it to w as JPEG at the
// given quality (1-100).
func WriteJPEG(w io.Writer, sym module, opts RasterOptions, quality int) error {
	img, err := Render(sym, opts)
	if err != nil {
		return err
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}
