// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/mypyplot/go-plotstyle/colormap"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default style is invalid: %v", err)
	}
	if cfg.FontFamily != "DejaVu Serif" || cfg.FontSize != 22 {
		t.Errorf("font = %q %v, want DejaVu Serif 22", cfg.FontFamily, cfg.FontSize)
	}
	if cfg.XTickDirection != TickIn || cfg.YTickDirection != TickIn {
		t.Errorf("tick directions = %q %q, want in in", cfg.XTickDirection, cfg.YTickDirection)
	}
	if len(cfg.Cycle) != 7 || cfg.Cycle[0] != "#FF4B00" || cfg.Cycle[6] != "#000000" {
		t.Errorf("cycle = %v", cfg.Cycle)
	}

	// Each call returns a fresh cycle.
	cfg.Cycle[0] = "#123456"
	if Default().Cycle[0] != "#FF4B00" {
		t.Errorf("modifying a Default result changed later defaults")
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		edit func(*Config)
	}{
		{"no font", func(c *Config) { c.FontFamily = "" }},
		{"zero font size", func(c *Config) { c.FontSize = 0 }},
		{"NaN tick size", func(c *Config) { c.YTickLabelSize = math.NaN() }},
		{"negative contour width", func(c *Config) { c.ContourLineWidth = -1 }},
		{"bad x ticks", func(c *Config) { c.XTickDirection = "up" }},
		{"bad y ticks", func(c *Config) { c.YTickDirection = "" }},
		{"empty cycle", func(c *Config) { c.Cycle = nil }},
		{"bad cycle color", func(c *Config) { c.Cycle = []string{"#FF4B00", "blue"} }},
	} {
		cfg := Default()
		test.edit(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got error %v, want ErrInvalid", test.name, err)
		}
	}
}

func TestApply(t *testing.T) {
	defer reset()
	reset()

	if cfg, ok := Current(); ok || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("before Apply: Current() = %v, %v; want defaults, false", cfg, ok)
	}

	cfg := Default()
	cfg.FontSize = 12
	cfg.XTickDirection = TickOut
	if err := Apply(cfg); err != nil {
		t.Fatal(err)
	}
	cfg.Cycle[0] = "#000000"

	got, ok := Current()
	if !ok {
		t.Fatalf("after Apply: Current() reports not applied")
	}
	if got.FontSize != 12 || got.XTickDirection != TickOut {
		t.Errorf("Current() = %+v", got)
	}
	if got.Cycle[0] != "#FF4B00" {
		t.Errorf("Apply did not copy the cycle: %v", got.Cycle)
	}
	got.Cycle[1] = "#000000"
	if again, _ := Current(); again.Cycle[1] != "#005AFF" {
		t.Errorf("Current did not copy the cycle: %v", again.Cycle)
	}

	bad := Default()
	bad.FontSize = -1
	if err := Apply(bad); err == nil {
		t.Errorf("Apply accepted an invalid style")
	}
	if got, _ := Current(); got.FontSize != 12 {
		t.Errorf("failed Apply replaced the style: font size %v", got.FontSize)
	}
}

func TestApplyConcurrent(t *testing.T) {
	defer reset()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := Apply(Default()); err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			Current()
		}()
	}
	wg.Wait()
}

func TestSeriesColor(t *testing.T) {
	cfg := Default()
	for _, test := range []struct {
		i    int
		want string
	}{
		{0, "#ff4b00"},
		{1, "#005aff"},
		{6, "#000000"},
		{7, "#ff4b00"},
		{15, "#005aff"},
		{-1, "#000000"},
	} {
		if got := cfg.SeriesColor(test.i).Hex(); got != test.want {
			t.Errorf("SeriesColor(%d) = %s, want %s", test.i, got, test.want)
		}
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
font_family = "Noto Serif"
font_size = 14
ytick_direction = "inout"
cycle = ["#4c72b0", "#55a868"]
`))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.FontFamily = "Noto Serif"
	want.FontSize = 14
	want.YTickDirection = TickInOut
	want.Cycle = []string{"#4c72b0", "#55a868"}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, in := range []string{
		`font_size = "big"`,
		`unknown_key = 1`,
		`xtick_direction = "sideways"`,
		`cycle = []`,
		`font_size = `,
	} {
		if _, err := Load(strings.NewReader(in)); err == nil {
			t.Errorf("Load(%q): expected error", in)
		}
	}
}

func TestPastelMaps(t *testing.T) {
	mask := colormap.MustParseHex(MaskColor)
	for name, m := range Maps() {
		if got := m.At(math.NaN()); got != mask {
			t.Errorf("%s: At(NaN) = %v, want %v", name, got, mask)
		}
		if got := m.At(2); got != mask {
			t.Errorf("%s: At(2) = %v, want %v", name, got, mask)
		}
	}

	for _, test := range []struct {
		m   *colormap.Segmented
		src colormap.Map
	}{
		{PastelJet, colormap.Jet},
		{PastelGrayJet, colormap.GrayJet},
	} {
		for i := 0; i < pastelSamples; i++ {
			x := float64(i) / (pastelSamples - 1)
			got, want := test.m.At(x), colormap.ShiftHSV(test.src.At(x), PastelDelta)
			if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
				t.Errorf("%s: At(%v) = %v, want %v", test.m.Name(), x, got, want)
			}
		}
	}
}

func TestLineDefaults(t *testing.T) {
	if got := colormap.MustParseHex(LineColor).Hex(); got != "#222222" {
		t.Errorf("line color = %s, want #222222", got)
	}
	if LineWidth != 1.5 {
		t.Errorf("line width = %v, want 1.5", LineWidth)
	}
}
