// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrSampleCount is returned by ToneCorrect if asked for fewer than two
// samples.
var ErrSampleCount = errors.New("tone correction needs at least 2 samples")

// Delta is an additive shift in HSV space. Each component is
// conventionally in [-1, 1]; hue is measured in turns, not degrees.
type Delta struct {
	H, S, V float64
}

func (d Delta) String() string {
	return fmt.Sprintf("(%+g, %+g, %+g)", d.H, d.S, d.V)
}

// ToneCorrect samples src at n evenly spaced positions in [0, 1],
// shifts each sample by d in HSV space, and returns the piecewise
// linear map through the shifted samples.
//
// Hue, saturation, and value are each clamped to [0, 1] after the
// shift. Hue is clamped rather than wrapped around the color circle,
// so a large hue shift saturates at the red end. Any discontinuities
// in src are lost; only its sampled colors survive.
//
// If src has a Name method, the result is named after it.
func ToneCorrect(src Map, n int, d Delta) (*Segmented, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, have %d", ErrSampleCount, n)
	}

	red := make([]Segment, n)
	green := make([]Segment, n)
	blue := make([]Segment, n)
	for i, loc := range positions(n) {
		c := ShiftHSV(src.At(loc), d)
		red[i] = Seg(loc, c.R)
		green[i] = Seg(loc, c.G)
		blue[i] = Seg(loc, c.B)
	}

	name := "tone"
	if named, ok := src.(interface{ Name() string }); ok && named.Name() != "" {
		name = named.Name() + "-tone"
	}
	return NewSegmented(name, red, green, blue)
}

// MustToneCorrect is like ToneCorrect but panics on error. It is meant
// for package-level maps built from constant arguments.
func MustToneCorrect(src Map, n int, d Delta) *Segmented {
	m, err := ToneCorrect(src, n, d)
	if err != nil {
		panic(err)
	}
	return m
}

// ShiftHSV shifts c by d in HSV space, clamping each HSV component to
// [0, 1]. The result is opaque.
func ShiftHSV(c RGBA, d Delta) RGBA {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	h = clamp(h/360+d.H, 0, 1)
	s = clamp(s+d.S, 0, 1)
	v = clamp(v+d.V, 0, 1)

	// A hue of 1 is the same hue as 0.
	out := colorful.Hsv(math.Mod(h, 1)*360, s, v)
	return RGBA{clamp(out.R, 0, 1), clamp(out.G, 0, 1), clamp(out.B, 0, 1), 1}
}

// positions returns n evenly spaced positions covering [0, 1].
func positions(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	xs := vec.Linspace(0, 1, n)
	// Pin the endpoint so it never misses the last control point.
	xs[n-1] = 1
	return xs
}
