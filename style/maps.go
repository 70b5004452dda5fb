// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import "github.com/mypyplot/go-plotstyle/colormap"

// Line and mask defaults.
const (
	LineColor = "#222"
	LineWidth = 1.5

	// MaskColor is drawn for masked or undefined data.
	MaskColor = "#DDD"
)

// PastelDelta is the tone correction that produces the pastel maps:
// saturation down, value up.
var PastelDelta = colormap.Delta{H: 0, S: -0.6, V: 0.3}

const pastelSamples = 20

var (
	// PastelJet is colormap.Jet, desaturated and lightened.
	PastelJet = pastel(colormap.Jet)

	// PastelGrayJet is colormap.GrayJet, desaturated and lightened.
	PastelGrayJet = pastel(colormap.GrayJet)
)

func pastel(src colormap.Map) *colormap.Segmented {
	return colormap.MustToneCorrect(src, pastelSamples, PastelDelta).WithBad(colormap.MustParseHex(MaskColor))
}

// Maps returns the derived maps by name.
func Maps() map[string]*colormap.Segmented {
	return map[string]*colormap.Segmented{
		"pastel-jet":      PastelJet,
		"pastel-gray-jet": PastelGrayJet,
	}
}
