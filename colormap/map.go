// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides continuous color maps and a tone
// correction that derives softer variants of existing maps.
//
// Every Map is also a palette.Continuous from
// github.com/aclements/go-gg/palette, so maps can be used directly as
// plot color scales.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/aclements/go-gg/palette"
)

// ErrUnknownMap is returned by Lookup for names it does not know.
var ErrUnknownMap = errors.New("unknown color map")

// A Map is a function from a position in [0, 1] to a color.
type Map interface {
	// At returns the color at position x with channels in [0, 1].
	At(x float64) RGBA

	// Map is At as a color.Color.
	Map(x float64) color.Color
}

// Func adapts an ordinary function to a Map.
type Func func(x float64) RGBA

func (f Func) At(x float64) RGBA { return f(x) }

func (f Func) Map(x float64) color.Color { return f(x) }

// FromContinuous adapts a go-gg continuous palette to a Map.
func FromContinuous(p palette.Continuous) Map {
	return Func(func(x float64) RGBA {
		c := color.NRGBA64Model.Convert(p.Map(x)).(color.NRGBA64)
		return RGBA{
			float64(c.R) / 0xffff,
			float64(c.G) / 0xffff,
			float64(c.B) / 0xffff,
			float64(c.A) / 0xffff,
		}
	})
}

var builtin = map[string]func() Map{
	"jet":      func() Map { return Jet },
	"gray-jet": func() Map { return GrayJet },
	"viridis":  func() Map { return FromContinuous(palette.Viridis) },
}

// Lookup returns the built-in color map called name.
func Lookup(name string) (Map, error) {
	f, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMap, name)
	}
	return f(), nil
}

// Names returns the names known to Lookup in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample evaluates m at n evenly spaced positions in [0, 1].
func Sample(m Map, n int) []RGBA {
	if n < 1 {
		return nil
	}
	out := make([]RGBA, n)
	for i, x := range positions(n) {
		out[i] = m.At(x)
	}
	return out
}
