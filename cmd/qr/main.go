// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr reads a string argument, or standard input if none is
// given, and writes a QR Code for it to standard output or a file.
package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"github.com/vygonets-student/qrcore"
	"github.com/vygonets-student/qrcore/format"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

var g = struct {
	scale   int    // raster pixels per module
	border  int    // quiet zone, in modules
	fg, bg  rgba   // raster colors
	level   string // error correction level letter
	out     string // output filename, "" or "-" for stdout
	format  string // output format name
	latin1  bool   // convert byte-mode input to ISO-8859-1 first
	sjis    bool   // convert byte-mode input to Shift JIS first
	quality int    // JPEG quality
}{
	border:  4,
	scale:   4,
	level:   "l",
	quality: 90,
	bg:      rgba{0xff, 0xff, 0xff, 0xff},
	fg:      rgba{0x00, 0x00, 0x00, 0xff},
}

type rgba color.RGBA

func (c *rgba) String() string { return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B) }

func (c *rgba) Set(s string, _ getopt.Option) error {
	v, err := format.ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = rgba(v)
	return nil
}

var levels = map[string]qr.Ecl{
	"l": qr.Low, "m": qr.Medium, "q": qr.Quartile, "h": qr.High,
}

var formats = []string{"svg", "png", "jpeg"}

func parseFlags() {
	getopt.FlagLong(&g.level, "level", 'l',
		"error correction level, lowest to highest", "l|m|q|h")
	getopt.FlagLong(&g.format, "format", 't',
		"output format: "+strings.Join(formats, ", ")+
			"; default svg to a terminal, png otherwise", "fmt")
	getopt.FlagLong(&g.out, "output", 'o',
		`output file, or "-" for standard output`, "file")
	getopt.FlagLong(&g.scale, "scale", 's',
		"raster pixels per module (svg is scale-independent)", "n")
	getopt.FlagLong(&g.border, "border", 'm', "quiet zone width, in modules", "n")
	getopt.FlagLong(&g.fg, "foreground", 'F',
		"foreground color as 6 or 8 hex digits", "RRGGBB[AA]")
	getopt.FlagLong(&g.bg, "background", 'B',
		"background color as 6 or 8 hex digits", "RRGGBB[AA]")
	getopt.FlagLong(&g.latin1, "latin1", '1',
		"re-encode byte-mode input as ISO-8859-1 before packing")
	getopt.FlagLong(&g.sjis, "shift-jis", 'k',
		"re-encode byte-mode input as Shift JIS before packing")
	getopt.FlagLong(&g.quality, "quality", 'q', "JPEG quality (1-100)", "n")
	getopt.Parse()

	if g.format == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			g.format = "svg"
		} else {
			g.format = "png"
		}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var text string
	if args := getopt.Args(); len(args) != 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}
		text, _ = strings.CutSuffix(string(b), "\n")
	}

	ecl, ok := levels[strings.ToLower(g.level)]
	if !ok {
		log.Fatalf("unknown error correction level %q", g.level)
	}

	segs, err := segmentsFor(text)
	if err != nil {
		log.Fatalln(err)
	}
	sym, err := qr.EncodeSegments(segs, ecl, 1, 40, -1, true)
	if err != nil {
		log.Fatalln(err)
	}

	w := os.Stdout
	if g.out != "" && g.out != "-" {
		f, err := os.Create(g.out)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		w = f
	}
	if err := writeSymbol(w, sym); err != nil {
		log.Fatalln(err)
	}
}

// segmentsFor builds the segment list for text, honoring -1/-k: when
// either is given, text is re-encoded through the named charset and
// packed as a single Byte segment rather than auto-partitioned, since
// the resulting bytes are no longer valid UTF-8 for MakeSegments to
// classify.
func segmentsFor(text string) ([]qr.Segment, error) {
	switch {
	case g.latin1:
		b, err := charmap.ISO8859_1.NewEncoder().String(text)
		if err != nil {
			return nil, err
		}
		return []qr.Segment{qr.MakeBytes([]byte(b))}, nil
	case g.sjis:
		b, err := japanese.ShiftJIS.NewEncoder().String(text)
		if err != nil {
			return nil, err
		}
		return []qr.Segment{qr.MakeBytes([]byte(b))}, nil
	default:
		return qr.MakeSegments(text), nil
	}
}

func writeSymbol(w io.Writer, sym *qr.Symbol) error {
	switch g.format {
	case "svg":
		return format.WriteSVG(w, sym, g.border)
	case "png":
		return format.WritePNG(w, sym, rasterOptions())
	case "jpeg":
		return format.WriteJPEG(w, sym, rasterOptions(), g.quality)
	default:
		return fmt.Errorf("unknown output format %q", g.format)
	}
}

func rasterOptions() format.RasterOptions {
	return format.RasterOptions{
		Scale:      g.scale,
		Border:     g.border,
		Background: color.RGBA(g.bg),
		Foreground: color.RGBA(g.fg),
	}
}
