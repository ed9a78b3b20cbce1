// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"errors"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestColorHexToNumber(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
		ok   bool
	}{
		{"#FF0000", 16711680, true},
		{"#ff0000", 16711680, true},
		{"00ff00", 65280, true},
		{"#0000FF", 255, true},
		{"#fff", 4095, true},
		{"banana", 0, false},
		{"#", 0, false},
		{"", 0, false},
		{"-ff", 0, false},
	} {
		got, err := ColorHexToNumber(test.in)
		if !test.ok {
			var ce *InvalidColorFormatError
			if !errors.As(err, &ce) {
				t.Errorf("ColorHexToNumber(%q): want InvalidColorFormatError, got %v, %v", test.in, got, err)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("ColorHexToNumber(%q): want %d, got %d, %v", test.in, test.want, got, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"red", color.RGBA{255, 0, 0, 255}, true},
		{"Blue", color.RGBA{0, 0, 255, 255}, true},
		{" steelblue ", colornames.Steelblue, true},
		{"#00ff00", color.RGBA{0, 255, 0, 255}, true},
		{"#0F0", color.RGBA{0, 255, 0, 255}, true},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"notacolor", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	} {
		got, err := ParseColor(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("ParseColor(%q): want %v (ok=%v), got %v, %v", test.in, test.want, test.ok, got, err)
		}
	}
	if got := FormatColor(color.RGBA{0x12, 0xab, 0x00, 0xff}); got != "#12ab00" {
		t.Errorf("FormatColor: want #12ab00, got %s", got)
	}
}

func recsWithColors(colors ...string) []Record {
	recs := make([]Record, len(colors))
	for i, c := range colors {
		recs[i] = Record{X: float64(i), Y: float64(i), Size: 1, Color: c}
	}
	return recs
}

func mustResolver(t *testing.T, cfg ColorConfig, recs []Record) ColorResolver {
	t.Helper()
	st, err := ComputeStats(recs)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewColorResolver(cfg, recs, st)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestDiscreteMapping(t *testing.T) {
	var warnings int
	cfg := ColorConfig{
		Discrete: true,
		Mapping:  []string{"1", "2", "3"},
		Colors:   []string{"red", "green", "blue"},
		Logf:     func(string, ...interface{}) { warnings++ },
	}
	r := mustResolver(t, cfg, recsWithColors("1", "2", "3", "4"))

	try := func(v string, want color.RGBA) {
		t.Helper()
		got, err := r.Resolve(v)
		if err != nil || got != want {
			t.Errorf("Resolve(%q): want %v, got %v, %v", v, want, got, err)
		}
	}
	try("1", colornames.Red)
	try("2", colornames.Green)
	try("2.0", colornames.Green)
	try("3", colornames.Blue)
	try("4", colornames.Gray)
	try("4", colornames.Gray)
	try("x", colornames.Gray)
	if warnings != 2 {
		t.Errorf("want 2 unmapped warnings, got %d", warnings)
	}

	cfg.Unmapped = "black"
	r = mustResolver(t, cfg, recsWithColors("1"))
	try("9", colornames.Black)
}

func TestDiscreteMappingNumericKeys(t *testing.T) {
	// A literal key that looks like an internal numeric key must
	// not shadow or be shadowed by a number.
	r := mustResolver(t, ColorConfig{
		Discrete: true,
		Mapping:  []string{"#num:2", "2"},
		Colors:   []string{"red", "blue"},
	}, recsWithColors("1"))
	for v, want := range map[string]color.RGBA{
		"#num:2": colornames.Red,
		"2":      colornames.Blue,
		"2.0":    colornames.Blue,
		"#num:3": colornames.Gray,
	} {
		if got, err := r.Resolve(v); err != nil || got != want {
			t.Errorf("Resolve(%q): want %v, got %v, %v", v, want, got, err)
		}
	}
}

func TestDiscreteMappingMismatch(t *testing.T) {
	recs := recsWithColors("1")
	st, _ := ComputeStats(recs)
	_, err := NewColorResolver(ColorConfig{
		Discrete: true,
		Mapping:  []string{"1", "2"},
		Colors:   []string{"red", "green", "blue"},
	}, recs, st)
	var me *MappingLengthMismatchError
	if !errors.As(err, &me) {
		t.Fatalf("want MappingLengthMismatchError, got %v", err)
	}
	if me.Keys != 2 || me.Colors != 3 {
		t.Errorf("want 2 keys and 3 colors, got %+v", me)
	}
}

func TestDiscreteLiteral(t *testing.T) {
	r := mustResolver(t, ColorConfig{Discrete: true}, recsWithColors("#ff0000", "blue", "#ff0000"))
	for v, want := range map[string]color.RGBA{
		"#ff0000": colornames.Red,
		"blue":    colornames.Blue,
		"#0f0":    {0, 255, 0, 255},
	} {
		if got, err := r.Resolve(v); err != nil || got != want {
			t.Errorf("Resolve(%q): want %v, got %v, %v", v, want, got, err)
		}
	}

	recs := recsWithColors("red", "notacolor")
	st, _ := ComputeStats(recs)
	_, err := NewColorResolver(ColorConfig{Discrete: true}, recs, st)
	var ce *InvalidColorFormatError
	if !errors.As(err, &ce) || ce.Value != "notacolor" {
		t.Errorf("want InvalidColorFormatError for notacolor, got %v", err)
	}
}

func TestContinuousNumeric(t *testing.T) {
	r := mustResolver(t, ColorConfig{}, recsWithColors("0", "5", "10"))
	// The domain is descending, so the maximum gets the first
	// color.
	for v, want := range map[string]color.RGBA{
		"10": colornames.Red,
		"0":  colornames.Blue,
	} {
		if got, err := r.Resolve(v); err != nil || got != want {
			t.Errorf("Resolve(%q): want %v, got %v, %v", v, want, got, err)
		}
	}
	mid, err := r.Resolve("5")
	if err != nil {
		t.Fatal(err)
	}
	if mid == colornames.Red || mid == colornames.Blue || mid.G != 0 {
		t.Errorf("Resolve(5): want a red/blue blend, got %v", mid)
	}
	if _, err := r.Resolve("x"); err == nil {
		t.Errorf("Resolve(x): want error")
	}
}

func TestContinuousGradient(t *testing.T) {
	// Every position blends its two neighboring stops, including
	// positions in the first segment.
	r := mustResolver(t, ColorConfig{Colors: []string{"red", "lime", "blue"}},
		recsWithColors("0", "2.5", "5", "7.5", "10"))
	for v, want := range map[string]color.RGBA{
		"10": colornames.Red,
		"0":  colornames.Blue,
	} {
		if got, err := r.Resolve(v); err != nil || got != want {
			t.Errorf("Resolve(%q): want %v, got %v, %v", v, want, got, err)
		}
	}
	mid, err := r.Resolve("5")
	if err != nil {
		t.Fatal(err)
	}
	if mid.R > 2 || mid.G < 253 || mid.B > 2 {
		t.Errorf("Resolve(5): want the middle stop, got %v", mid)
	}
	hi, err := r.Resolve("7.5")
	if err != nil {
		t.Fatal(err)
	}
	if hi.R == 0 || hi.R == 255 || hi.G == 0 || hi.G == 255 || hi.B != 0 {
		t.Errorf("Resolve(7.5): want a red/lime blend, got %v", hi)
	}
	lo, err := r.Resolve("2.5")
	if err != nil {
		t.Fatal(err)
	}
	if lo.R != 0 || lo.G == 0 || lo.G == 255 || lo.B == 0 || lo.B == 255 {
		t.Errorf("Resolve(2.5): want a lime/blue blend, got %v", lo)
	}

	// Fills change monotonically along a two-stop gradient.
	r = mustResolver(t, ColorConfig{}, recsWithColors("0", "10"))
	var prev color.RGBA
	for i, v := range []string{"0", "2.5", "5", "7.5", "10"} {
		got, err := r.Resolve(v)
		if err != nil {
			t.Fatal(err)
		}
		if i > 0 && (got.R <= prev.R || got.B >= prev.B) {
			t.Errorf("Resolve(%s) = %v does not move from blue toward red after %v", v, got, prev)
		}
		prev = got
	}
}

func TestContinuousHex(t *testing.T) {
	r := mustResolver(t, ColorConfig{Colors: []string{"white", "black"}},
		recsWithColors("#FF0000", "#00FF00", "#0000FF"))
	for v, want := range map[string]color.RGBA{
		"#FF0000": colornames.White,
		"#0000FF": colornames.Black,
	} {
		if got, err := r.Resolve(v); err != nil || got != want {
			t.Errorf("Resolve(%q): want %v, got %v, %v", v, want, got, err)
		}
	}

	recs := recsWithColors("#FF0000", "red")
	st, _ := ComputeStats(recs)
	_, err := NewColorResolver(ColorConfig{}, recs, st)
	var ce *InvalidColorFormatError
	if !errors.As(err, &ce) || ce.Value != "red" {
		t.Errorf("want InvalidColorFormatError for red, got %v", err)
	}
}

func TestContinuousLogDomain(t *testing.T) {
	recs := recsWithColors("0", "10")
	st, _ := ComputeStats(recs)
	_, err := NewColorResolver(ColorConfig{Type: Log}, recs, st)
	var de *ScaleDomainError
	if !errors.As(err, &de) {
		t.Errorf("want ScaleDomainError, got %v", err)
	}
}
