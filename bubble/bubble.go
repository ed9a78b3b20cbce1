// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bubble prepares bubble charts from tabular data.
//
// Each row of the data becomes a circle positioned by two numeric
// fields, sized by a third, and colored by a fourth. Plot loads the
// data, normalizes it into Records, computes Stats, builds a Scale for
// each dimension, resolves colors, and hands the resulting Chart to a
// Renderer. Drawing is left entirely to the Renderer; see the svgplot
// and ggplot packages.
package bubble

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Renderer draws a Chart to an output it owns.
type Renderer interface {
	Render(c *Chart) error
}

// Margin is the space around a Chart's plot area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left int
}

// DefaultMargin leaves room for a title and axes.
var DefaultMargin = Margin{Top: 40, Right: 20, Bottom: 40, Left: 60}

// A Chart is a fully resolved bubble chart.
type Chart struct {
	Points []Point

	// X and Y map data coordinates to pixel offsets within the
	// plot area. Size maps sizes to radii in pixels.
	X, Y, Size *Scale

	// Color maps numeric color values to gradient positions on
	// [0, 1]. It is nil for discrete colors.
	Color *Scale

	Fields Fields
	Stats  *Stats

	Width, Height int
	Margin        Margin
	Title         string
	ShowLabels    bool
}

// A Point is a Record with its resolved display color.
type Point struct {
	Record
	Fill color.RGBA
}

// Plot loads cfg.Source with l, prepares the chart, and renders it
// with r. Nothing is rendered if any step fails.
func Plot(ctx context.Context, l Loader, cfg Config, r Renderer) error {
	c, err := cfg.resolve()
	if err != nil {
		return err
	}
	rows, err := l.Load(ctx, c.Source)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	chart, err := Prepare(rows, c)
	if err != nil {
		return err
	}
	if err := r.Render(chart); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// Prepare builds a Chart from rows that have already been loaded.
func Prepare(rows []RawRecord, cfg Config) (*Chart, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	f := cfg.fields()
	recs := Normalize(rows, f, cfg.Logf)
	if dropped := len(rows) - len(recs); dropped > 0 && cfg.Logf != nil {
		cfg.Logf("%s: dropped %d of %d rows", cfg.Source, dropped, len(rows))
	}
	st, err := ComputeStats(recs)
	if err != nil {
		return nil, &EmptyDatasetError{Source: cfg.Source, Rows: len(rows)}
	}

	c := &Chart{
		Fields:     f,
		Stats:      st,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Margin:     DefaultMargin,
		Title:      cfg.Title,
		ShowLabels: cfg.ShowLabels,
	}
	w, h := c.PlotSize()

	xDomain := [2]float64{st.MinX, st.MaxX}
	if cfg.XDomain != nil {
		xDomain = *cfg.XDomain
	}
	yDomain := [2]float64{st.MinY, st.MaxY}
	if cfg.YDomain != nil {
		yDomain = *cfg.YDomain
	}
	if c.X, err = newScale(ParseScaleType(cfg.XScale), xDomain, [2]float64{0, w}, cfg.Exponent); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if c.Y, err = newScale(ParseScaleType(cfg.YScale), yDomain, [2]float64{h, 0}, cfg.Exponent); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	if c.Size, err = newScale(ParseScaleType(cfg.SizeScale), [2]float64{st.MinSize, st.MaxSize}, cfg.SizeRange, cfg.Exponent); err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}

	res, err := NewColorResolver(ColorConfig{
		Colors:   cfg.Colors,
		Discrete: cfg.Discrete,
		Mapping:  cfg.Mapping,
		Unmapped: cfg.Unmapped,
		Type:     ParseScaleType(cfg.ColorScale),
		Exponent: cfg.Exponent,
		Logf:     cfg.Logf,
	}, recs, st)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	if cc, ok := res.(*continuousColors); ok {
		c.Color = cc.scale
	}

	c.Points = make([]Point, len(recs))
	for i, rec := range recs {
		fill, err := res.Resolve(rec.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		c.Points[i] = Point{rec, fill}
	}
	return c, nil
}

// PlotSize returns the size of the plot area inside the margins.
func (c *Chart) PlotSize() (w, h float64) {
	w = float64(c.Width - c.Margin.Left - c.Margin.Right)
	h = float64(c.Height - c.Margin.Top - c.Margin.Bottom)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return
}

// Project returns the center and radius of p in chart pixel
// coordinates, including the margins.
func (c *Chart) Project(p Point) (x, y, r float64) {
	x = float64(c.Margin.Left) + c.X.Map(p.X)
	y = float64(c.Margin.Top) + c.Y.Map(p.Y)
	r = c.Size.Map(p.Size)
	return
}

// Tooltip returns the hover text of p: its label, if any, followed by
// one "field: value" line per distinct field.
func (c *Chart) Tooltip(p Point) string {
	var lines []string
	if p.Label != "" {
		lines = append(lines, p.Label)
	}
	seen := map[string]bool{}
	add := func(name, val string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		lines = append(lines, name+": "+val)
	}
	add(c.Fields.X, formatFloat(p.X))
	add(c.Fields.Y, formatFloat(p.Y))
	add(c.Fields.Size, formatFloat(p.Size))
	add(c.Fields.Color, p.Color)
	return strings.Join(lines, "\n")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
