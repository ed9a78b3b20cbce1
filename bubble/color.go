// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
	"golang.org/x/image/colornames"
)

// ColorConfig controls how Record colors are resolved.
type ColorConfig struct {
	// Colors are the gradient stops in continuous mode or the
	// category colors in discrete mode. Each is a CSS color name,
	// "#rgb", or "#rrggbb". If empty, it defaults to red and blue.
	Colors []string

	// Discrete selects discrete category coloring.
	Discrete bool

	// Mapping lists the category for each of Colors in discrete
	// mode. If it is nil, each color value in the data is used
	// literally.
	Mapping []string

	// Unmapped is the color of values not in Mapping. If "", it
	// is gray.
	Unmapped string

	// Type and Exponent select the continuous color scale.
	Type     ScaleType
	Exponent float64

	// Logf, if non-nil, receives advisory messages.
	Logf func(format string, args ...interface{})
}

// A ColorResolver maps Record color values to display colors.
type ColorResolver interface {
	Resolve(value string) (color.RGBA, error)
}

// NewColorResolver returns a ColorResolver for the colors in recs. st
// must be the Stats of recs.
func NewColorResolver(cfg ColorConfig, recs []Record, st *Stats) (ColorResolver, error) {
	colors := cfg.Colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	stops := make([]color.RGBA, len(colors))
	for i, c := range colors {
		var err error
		if stops[i], err = ParseColor(c); err != nil {
			return nil, err
		}
	}

	if cfg.Discrete {
		var r ColorResolver
		var err error
		if cfg.Mapping == nil {
			r, err = newLiteralColors(recs)
		} else {
			r, err = newMappedColors(cfg, stops)
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	// Continuous.
	if len(stops) == 1 {
		stops = append(stops, stops[0])
	}
	exp := cfg.Exponent
	if exp == 0 {
		exp = 1
	}
	// RGBGradient.Map never blends within its first segment, so
	// the gradient carries a duplicate first stop and Resolve
	// shifts positions past it.
	grad := append([]color.RGBA{stops[0]}, stops...)
	r := &continuousColors{stops: stops, gradient: palette.RGBGradient{Colors: grad}}
	lo, hi := st.MinColor, st.MaxColor
	if !st.ColorNumeric {
		r.hex = true
		vals := make([]float64, len(recs))
		for i, rec := range recs {
			v, err := r.value(rec.Color)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		lo, hi = stats.Bounds(vals)
	}
	// The largest value gets the first color.
	s, err := newScale(cfg.Type, [2]float64{hi, lo}, [2]float64{0, 1}, exp)
	if err != nil {
		return nil, err
	}
	r.scale = s
	return r, nil
}

// DefaultColors is the default color gradient.
var DefaultColors = []string{"red", "blue"}

type continuousColors struct {
	scale    *Scale
	stops    []color.RGBA
	gradient palette.RGBGradient
	// hex indicates the color values are hex codes rather than
	// numbers.
	hex bool
}

func (r *continuousColors) value(v string) (float64, error) {
	if r.hex {
		if n, err := ColorHexToNumber(v); err == nil {
			return float64(n), nil
		}
	}
	if x, ok := toFloat(v); ok {
		return x, nil
	}
	return 0, &InvalidColorFormatError{v}
}

func (r *continuousColors) Resolve(v string) (color.RGBA, error) {
	x, err := r.value(v)
	if err != nil {
		return color.RGBA{}, err
	}
	u := r.scale.Map(x)
	k := len(r.stops)
	switch {
	case math.IsNaN(u) || u <= 0:
		return r.stops[0], nil
	case u >= 1:
		return r.stops[k-1], nil
	}
	return toRGBA(r.gradient.Map((1 + u*float64(k-1)) / float64(k))), nil
}

type mappedColors struct {
	colors map[string]color.RGBA
	// numeric maps the value of every numeric key, so that "2"
	// and "2.0" name the same category.
	numeric  map[float64]color.RGBA
	unmapped color.RGBA
	logf     func(format string, args ...interface{})
	warned   map[string]bool
}

func newMappedColors(cfg ColorConfig, stops []color.RGBA) (*mappedColors, error) {
	if len(cfg.Mapping) != len(stops) {
		return nil, &MappingLengthMismatchError{len(cfg.Mapping), len(stops)}
	}
	unmapped := colornames.Gray
	if cfg.Unmapped != "" {
		var err error
		if unmapped, err = ParseColor(cfg.Unmapped); err != nil {
			return nil, err
		}
	}
	r := &mappedColors{
		colors:   make(map[string]color.RGBA),
		numeric:  make(map[float64]color.RGBA),
		unmapped: unmapped,
		logf:     cfg.Logf,
		warned:   make(map[string]bool),
	}
	for i, key := range cfg.Mapping {
		// Earlier keys win, as with a positional lookup.
		if _, ok := r.colors[key]; !ok {
			r.colors[key] = stops[i]
		}
		if x, ok := toFloat(key); ok {
			if _, ok := r.numeric[x]; !ok {
				r.numeric[x] = stops[i]
			}
		}
	}
	return r, nil
}

func (r *mappedColors) Resolve(v string) (color.RGBA, error) {
	if c, ok := r.colors[v]; ok {
		return c, nil
	}
	if x, ok := toFloat(v); ok {
		if c, ok := r.numeric[x]; ok {
			return c, nil
		}
	}
	if r.logf != nil && !r.warned[v] {
		r.warned[v] = true
		r.logf("color value %q is not in the color mapping", v)
	}
	return r.unmapped, nil
}

type literalColors map[string]color.RGBA

func newLiteralColors(recs []Record) (literalColors, error) {
	r := make(literalColors)
	for _, rec := range recs {
		if _, ok := r[rec.Color]; ok {
			continue
		}
		c, err := ParseColor(rec.Color)
		if err != nil {
			return nil, err
		}
		r[rec.Color] = c
	}
	return r, nil
}

func (r literalColors) Resolve(v string) (color.RGBA, error) {
	if c, ok := r[v]; ok {
		return c, nil
	}
	return ParseColor(v)
}

// ColorHexToNumber parses a hexadecimal color code such as "#FF0000",
// with or without the leading "#", as an integer.
func ColorHexToNumber(s string) (int64, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil || h == "" {
		return 0, &InvalidColorFormatError{s}
	}
	return int64(n), nil
}

// ParseColor parses a CSS color name, "#rgb", or "#rrggbb".
func ParseColor(s string) (color.RGBA, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(t, "#") {
		if c, ok := colornames.Map[t]; ok {
			return c, nil
		}
		return color.RGBA{}, &InvalidColorFormatError{s}
	}
	h := t[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, &InvalidColorFormatError{s}
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, &InvalidColorFormatError{s}
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
}

// FormatColor formats c as "#rrggbb", ignoring alpha.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
