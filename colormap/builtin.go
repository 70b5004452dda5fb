// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

// Jet is the classic blue-cyan-yellow-red rainbow map.
var Jet = MustSegmented("jet",
	[]Segment{Seg(0, 0), Seg(0.35, 0), Seg(0.66, 1), Seg(0.89, 1), Seg(1, 0.5)},
	[]Segment{Seg(0, 0), Seg(0.125, 0), Seg(0.375, 1), Seg(0.64, 1), Seg(0.91, 0), Seg(1, 0)},
	[]Segment{Seg(0, 0.5), Seg(0.11, 1), Seg(0.34, 1), Seg(0.65, 0), Seg(1, 0)},
)

// GrayJet starts with a short dark gray ramp and then runs through Jet
// compressed into the rest of the range.
var GrayJet = newGrayJet(0.9, 0.5)

// newGrayJet builds the gray-jet map. jetFrac is the fraction of [0, 1]
// taken by the jet ramp, which starts at 1-jetFrac. The gray ramp
// reaches its lightest point at grayBreak of the way to the jet ramp.
func newGrayJet(jetFrac, grayBreak float64) *Segmented {
	r, d := jetFrac, grayBreak
	jet := func(x float64) float64 { return x*r + (1 - r) }
	return MustSegmented("gray-jet",
		[]Segment{
			Seg(0, 0.2),
			Seg(d*(1-r), 0.3),
			Seg(jet(0.35), 0),
			Seg(jet(0.66), 1),
			Seg(jet(0.89), 1),
			Seg(1, 0.5),
		},
		[]Segment{
			Seg(0, 0.2),
			Seg(d*(1-r), 0.3),
			Seg(jet(0.125), 0),
			Seg(jet(0.375), 1),
			Seg(jet(0.640), 1),
			Seg(jet(0.910), 0),
			Seg(1, 0),
		},
		[]Segment{
			Seg(0, 0.2),
			Seg(d*(1-r), 0.3),
			Seg(jet(0), 0.5),
			Seg(jet(0.11), 1),
			Seg(jet(0.34), 1),
			Seg(jet(0.65), 0),
			Seg(1, 0),
		},
	)
}
