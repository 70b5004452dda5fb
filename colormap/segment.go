// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
)

// ErrSegments is returned when segment data does not describe a valid
// piecewise color map.
var ErrSegments = errors.New("invalid segment data")

// A Segment is one control point of a piecewise linear channel.
//
// Below is the channel value approached from positions less than Pos
// and Above is the value approached from positions greater than Pos.
// If they differ, the channel is discontinuous at Pos.
type Segment struct {
	Pos, Below, Above float64
}

// Seg returns a continuous control point with value v at pos.
func Seg(pos, v float64) Segment {
	return Segment{pos, v, v}
}

// Segmented is a color map defined by independent piecewise linear
// red, green, and blue channels. It is immutable once constructed.
type Segmented struct {
	name             string
	red, green, blue []Segment
	bad              RGBA
}

// NewSegmented returns a color map with the given channel control
// points. Each channel must have at least two points, start at
// position 0, end at position 1, have non-decreasing positions, and
// have values in [0, 1]. The channel slices are copied.
//
// Positions outside [0, 1] and NaN map to the bad color, which is
// initially transparent black. Use WithBad to set it.
func NewSegmented(name string, red, green, blue []Segment) (*Segmented, error) {
	for _, ch := range []struct {
		name string
		segs []Segment
	}{{"red", red}, {"green", green}, {"blue", blue}} {
		if err := checkChannel(ch.segs); err != nil {
			return nil, fmt.Errorf("%s: %s channel: %w", name, ch.name, err)
		}
	}
	return &Segmented{
		name:  name,
		red:   append([]Segment(nil), red...),
		green: append([]Segment(nil), green...),
		blue:  append([]Segment(nil), blue...),
	}, nil
}

// MustSegmented is like NewSegmented but panics on invalid data.
func MustSegmented(name string, red, green, blue []Segment) *Segmented {
	m, err := NewSegmented(name, red, green, blue)
	if err != nil {
		panic(err)
	}
	return m
}

func checkChannel(segs []Segment) error {
	if len(segs) < 2 {
		return fmt.Errorf("%w: need at least 2 control points, have %d", ErrSegments, len(segs))
	}
	if segs[0].Pos != 0 || segs[len(segs)-1].Pos != 1 {
		return fmt.Errorf("%w: control points must span [0, 1], have [%g, %g]", ErrSegments, segs[0].Pos, segs[len(segs)-1].Pos)
	}
	for i, s := range segs {
		if i > 0 && s.Pos < segs[i-1].Pos {
			return fmt.Errorf("%w: position %g at index %d is before %g", ErrSegments, s.Pos, i, segs[i-1].Pos)
		}
		if !inUnit(s.Below) || !inUnit(s.Above) {
			return fmt.Errorf("%w: value out of [0, 1] at position %g", ErrSegments, s.Pos)
		}
	}
	return nil
}

func inUnit(x float64) bool {
	return 0 <= x && x <= 1
}

// Name returns the name of m.
func (m *Segmented) Name() string {
	return m.name
}

// Bad returns the color m returns for invalid positions.
func (m *Segmented) Bad() RGBA {
	return m.bad
}

// WithBad returns a copy of m that maps invalid positions to c.
func (m *Segmented) WithBad(c RGBA) *Segmented {
	m2 := *m
	m2.bad = c
	return &m2
}

// Channels returns copies of the red, green, and blue control points.
func (m *Segmented) Channels() (red, green, blue []Segment) {
	return append([]Segment(nil), m.red...),
		append([]Segment(nil), m.green...),
		append([]Segment(nil), m.blue...)
}

// At returns the color at position x. If x is NaN or outside [0, 1],
// it returns the bad color.
func (m *Segmented) At(x float64) RGBA {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return m.bad
	}
	return RGBA{evalChannel(m.red, x), evalChannel(m.green, x), evalChannel(m.blue, x), 1}
}

// Map implements palette.Continuous.
func (m *Segmented) Map(x float64) color.Color {
	return m.At(x)
}

// evalChannel interpolates segs at x, which must be in [0, 1].
//
// An exact hit on an interior control point takes that point's Below
// value. At 0 it takes the first point's Above value.
func evalChannel(segs []Segment, x float64) float64 {
	k := sort.Search(len(segs), func(i int) bool { return segs[i].Pos >= x })
	if k == 0 {
		return segs[0].Above
	}
	if k == len(segs) {
		// Unreachable for validated data, since the last point is at 1.
		return segs[k-1].Below
	}
	// segs[k-1].Pos < x <= segs[k].Pos, so the interval is non-empty.
	lo, hi := segs[k-1], segs[k]
	t := (x - lo.Pos) / (hi.Pos - lo.Pos)
	return lo.Above + t*(hi.Below-lo.Above)
}
