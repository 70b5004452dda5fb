// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrColor is returned when a color specification cannot be parsed.
var ErrColor = errors.New("bad color")

// RGBA is a non-premultiplied color with each channel in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	ch := func(x float64) uint32 {
		return uint32(clamp(x, 0, 1)*0xffff + 0.5)
	}
	a = ch(c.A)
	r = ch(c.R) * a / 0xffff
	g = ch(c.G) * a / 0xffff
	b = ch(c.B) * a / 0xffff
	return
}

// Hex returns c as a "#rrggbb" string, ignoring alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%.4g, %.4g, %.4g, %.4g)", c.R, c.G, c.B, c.A)
}

// ParseHex parses an opaque color written as "#rgb" or "#rrggbb".
// The leading "#" is optional.
func ParseHex(s string) (RGBA, error) {
	h := "#" + strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 4 && len(h) != 7 {
		return RGBA{}, fmt.Errorf("%w %q: want #rgb or #rrggbb", ErrColor, s)
	}
	c, err := colorful.Hex(strings.ToLower(h))
	if err != nil {
		return RGBA{}, fmt.Errorf("%w %q: %v", ErrColor, s, err)
	}
	return RGBA{c.R, c.G, c.B, 1}, nil
}

// MustParseHex is like ParseHex but panics if s is not a valid color.
// It is meant for package-level color constants.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
