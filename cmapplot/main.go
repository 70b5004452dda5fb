// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cmapplot previews color maps and the plotting style palette.
//
// Usage:
//
//	cmapplot [flags] [map...]
//
// Each map is one of the built-in maps (jet, gray-jet, viridis) or a
// derived pastel map (pastel-jet, pastel-gray-jet). By default,
// cmapplot shows jet, gray-jet, and their pastel variants, followed
// by the series color cycle of the current style.
//
// The -tone flag applies an additional tone correction, given as
// "dh,ds,dv", to every listed map before it is drawn. For example,
//
//	cmapplot -tone 0,-0.6,0.3 -samples 20 -o soft.svg viridis
//
// previews a pastel viridis.
//
// Output is an SVG plot by default. -format png writes a plain swatch
// image and -format table prints the sampled colors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mypyplot/go-plotstyle/colormap"
	"github.com/mypyplot/go-plotstyle/style"
	"golang.org/x/crypto/ssh/terminal"
)

var defaultMaps = []string{"jet", "pastel-jet", "gray-jet", "pastel-gray-jet"}

func main() {
	log.SetPrefix("cmapplot: ")
	log.SetFlags(0)

	var (
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat  = flag.String("format", "svg", "output `format`: svg, png, or table")
		flagN       = flag.Int("n", 64, "sample each map at `n` positions")
		flagTone    = flag.String("tone", "", "apply tone correction `dh,ds,dv` to each map")
		flagSamples = flag.Int("samples", 20, "tone correction sample `count`")
		flagStyle   = flag.String("style", "", "load and apply the TOML style in `file`")
		flagNoCycle = flag.Bool("nocycle", false, "omit the series color cycle")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [map...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMaps: %s\n\n", strings.Join(mapNames(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := style.Default()
	if *flagStyle != "" {
		var err error
		cfg, err = style.LoadFile(*flagStyle)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := style.Apply(cfg); err != nil {
		log.Fatal(err)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = defaultMaps
	}
	maps, err := lookupMaps(names)
	if err != nil {
		log.Fatal(err)
	}

	if *flagTone != "" {
		d, err := parseDelta(*flagTone)
		if err != nil {
			log.Fatal(err)
		}
		for i, m := range maps {
			tm, err := colormap.ToneCorrect(m.m, *flagSamples, d)
			if err != nil {
				log.Fatal(err)
			}
			maps[i] = namedMap{fmt.Sprintf("%s %v", m.name, d), tm}
		}
	}

	rows := swatches(maps, *flagN)
	if !*flagNoCycle {
		applied, _ := style.Current()
		rows = append(rows, cycleSwatch(applied, *flagN))
	}

	var render func(io.Writer, []swatch) error
	switch *flagFormat {
	case "svg":
		render = writeSVG
	case "png":
		render = writePNG
	case "table":
		render = writeTable
	default:
		log.Fatalf("unknown format %q", *flagFormat)
	}

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	} else if *flagFormat == "png" && terminal.IsTerminal(int(f.Fd())) {
		log.Fatal("refusing to write PNG to a terminal; use -o")
	}

	if err := render(f, rows); err != nil {
		log.Fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

type namedMap struct {
	name string
	m    colormap.Map
}

func mapNames() []string {
	names := colormap.Names()
	for name := range style.Maps() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupMaps(names []string) ([]namedMap, error) {
	derived := style.Maps()
	var out []namedMap
	for _, name := range names {
		if m, ok := derived[name]; ok {
			out = append(out, namedMap{name, m})
			continue
		}
		m, err := colormap.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, namedMap{name, m})
	}
	return out, nil
}

// parseDelta parses a "dh,ds,dv" tone correction.
func parseDelta(s string) (colormap.Delta, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colormap.Delta{}, fmt.Errorf("tone %q: want dh,ds,dv", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colormap.Delta{}, fmt.Errorf("tone %q: %v", s, err)
		}
		if v < -1 || v > 1 {
			return colormap.Delta{}, fmt.Errorf("tone %q: %g out of [-1, 1]", s, v)
		}
		vals[i] = v
	}
	return colormap.Delta{H: vals[0], S: vals[1], V: vals[2]}, nil
}
