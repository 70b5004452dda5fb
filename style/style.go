// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style holds the plotting style defaults and the derived color
// maps that a rendering layer reads when drawing figures.
//
// Nothing is configured on import. A program calls Apply once during
// initialization, and the renderer reads the result with Current.
package style

import (
	"errors"
	"fmt"

	"github.com/mypyplot/go-plotstyle/colormap"
)

// ErrInvalid is returned for style configurations that cannot be
// applied.
var ErrInvalid = errors.New("invalid style")

// TickDirection is the side of an axis that tick marks are drawn on.
type TickDirection string

const (
	TickIn    TickDirection = "in"
	TickOut   TickDirection = "out"
	TickInOut TickDirection = "inout"
)

func (d TickDirection) valid() bool {
	switch d {
	case TickIn, TickOut, TickInOut:
		return true
	}
	return false
}

// Config is a set of global plotting defaults.
type Config struct {
	FontFamily string  `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`

	XTickLabelSize float64       `toml:"xtick_label_size"`
	YTickLabelSize float64       `toml:"ytick_label_size"`
	XTickDirection TickDirection `toml:"xtick_direction"`
	YTickDirection TickDirection `toml:"ytick_direction"`

	// Cycle is the ordered palette used to color series that do not
	// set a color, as hex strings.
	Cycle []string `toml:"cycle"`

	// ContourLineWidth is the default line width of contour plots.
	ContourLineWidth float64 `toml:"contour_line_width"`
}

// Default returns the default style.
func Default() Config {
	return Config{
		FontFamily:     "DejaVu Serif",
		FontSize:       22,
		XTickLabelSize: 18,
		YTickLabelSize: 18,
		XTickDirection: TickIn,
		YTickDirection: TickIn,
		Cycle: []string{
			"#FF4B00", "#005AFF", "#03AF7A", "#4DC4FF",
			"#F6AA00", "#FFF100", "#000000",
		},
		ContourLineWidth: 1.0,
	}
}

// Validate reports whether c can be applied.
func (c Config) Validate() error {
	if c.FontFamily == "" {
		return fmt.Errorf("%w: empty font family", ErrInvalid)
	}
	for _, size := range []struct {
		name string
		v    float64
	}{
		{"font size", c.FontSize},
		{"x tick label size", c.XTickLabelSize},
		{"y tick label size", c.YTickLabelSize},
		{"contour line width", c.ContourLineWidth},
	} {
		if !(size.v > 0) {
			return fmt.Errorf("%w: %s must be positive, have %g", ErrInvalid, size.name, size.v)
		}
	}
	if !c.XTickDirection.valid() {
		return fmt.Errorf("%w: x tick direction %q", ErrInvalid, c.XTickDirection)
	}
	if !c.YTickDirection.valid() {
		return fmt.Errorf("%w: y tick direction %q", ErrInvalid, c.YTickDirection)
	}
	if len(c.Cycle) == 0 {
		return fmt.Errorf("%w: empty color cycle", ErrInvalid)
	}
	for _, s := range c.Cycle {
		if _, err := colormap.ParseHex(s); err != nil {
			return fmt.Errorf("%w: color cycle: %v", ErrInvalid, err)
		}
	}
	return nil
}

// SeriesColor returns the automatic color of the i'th series. Colors
// repeat once the cycle is exhausted. c must be valid.
func (c Config) SeriesColor(i int) colormap.RGBA {
	n := len(c.Cycle)
	i %= n
	if i < 0 {
		i += n
	}
	return colormap.MustParseHex(c.Cycle[i])
}

func (c Config) clone() Config {
	c.Cycle = append([]string(nil), c.Cycle...)
	return c
}
