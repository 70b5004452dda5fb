// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
	"github.com/mypyplot/go-plotstyle/colormap"
	"github.com/mypyplot/go-plotstyle/style"
	"golang.org/x/image/draw"
)

// A swatch is one row of the preview: colors sampled at positions xs.
type swatch struct {
	name   string
	xs     []float64
	colors []colormap.RGBA
}

func positions(n int) []float64 {
	if n < 2 {
		n = 2
	}
	return vec.Linspace(0, 1, n)
}

func swatches(maps []namedMap, n int) []swatch {
	xs := positions(n)
	out := make([]swatch, len(maps))
	for i, m := range maps {
		cs := make([]colormap.RGBA, len(xs))
		for j, x := range xs {
			cs[j] = m.m.At(x)
		}
		out[i] = swatch{m.name, xs, cs}
	}
	return out
}

// cycleSwatch shows the series colors of cfg as equal-width bands.
func cycleSwatch(cfg style.Config, n int) swatch {
	xs := positions(n)
	k := len(cfg.Cycle)
	cs := make([]colormap.RGBA, len(xs))
	for j, x := range xs {
		i := int(x * float64(k))
		if i >= k {
			i = k - 1
		}
		cs[j] = cfg.SeriesColor(i)
	}
	return swatch{"cycle", xs, cs}
}

// writeSVG plots one facet row per swatch.
func writeSVG(w io.Writer, rows []swatch) error {
	var names []string
	var xs, ys []float64
	var fills []color.Color
	for _, row := range rows {
		// Two tile rows per swatch give the tiles a height.
		for _, y := range []float64{0, 1} {
			for j, x := range row.xs {
				names = append(names, row.name)
				xs = append(xs, x)
				ys = append(ys, y)
				fills = append(fills, row.colors[j])
			}
		}
	}
	tab := new(table.Builder).
		Add("map", names).
		Add("x", xs).
		Add("y", ys).
		Add("color", fills).
		Done()

	plot := gg.NewPlot(tab)
	plot.Add(gg.FacetY{Col: "map"})
	plot.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "color"})
	return plot.WriteSVG(w, 600, 80*len(rows))
}

const (
	pngWidth      = 512
	pngBandHeight = 32
)

// writePNG draws one horizontal band per swatch.
func writePNG(w io.Writer, rows []swatch) error {
	if len(rows) == 0 {
		return nil
	}
	// Draw one pixel per sample, then scale up.
	src := image.NewRGBA(image.Rect(0, 0, len(rows[0].colors), len(rows)))
	for y, row := range rows {
		for x, c := range row.colors {
			src.Set(x, y, c)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, pngWidth, pngBandHeight*len(rows)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}

// writeTable prints every sampled color.
func writeTable(w io.Writer, rows []swatch) error {
	var names, hexes []string
	var xs, rs, gs, bs []float64
	for _, row := range rows {
		for j, x := range row.xs {
			c := row.colors[j]
			names = append(names, row.name)
			xs = append(xs, x)
			rs = append(rs, c.R)
			gs = append(gs, c.G)
			bs = append(bs, c.B)
			hexes = append(hexes, c.Hex())
		}
	}
	tab := new(table.Builder).
		Add("map", names).
		Add("x", xs).
		Add("r", rs).
		Add("g", gs).
		Add("b", bs).
		Add("hex", hexes).
		Done()
	table.Fprint(w, tab, "%s", "%.4f", "%.4f", "%.4f", "%.4f", "%s")
	return nil
}
