// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggplot renders bubble charts with go-gg.
//
// go-gg only provides linear position scales, so points are handed to
// it already projected onto [0, 1] by the chart's own scales, and the
// axis ticks are labeled with the inverted data values.
package ggplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-bubble/bubble"
)

// Renderer writes bubble.Charts to an io.Writer as SVG using go-gg.
type Renderer struct {
	w io.Writer
}

// New returns a Renderer that writes to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w}
}

func (r *Renderer) Render(c *bubble.Chart) error {
	w, h := c.PlotSize()
	mindim := math.Min(w, h)

	n := len(c.Points)
	xs, ys := make([]float64, n), make([]float64, n)
	radii := make([]float64, n)
	fills := make([]color.Color, n)
	tips, labels := make([]string, n), make([]string, n)
	haveLabels := false
	for i, p := range c.Points {
		xs[i] = c.X.Map(p.X) / w
		ys[i] = 1 - c.Y.Map(p.Y)/h
		// gg sizes points as a fraction of the smaller plot
		// dimension.
		radii[i] = c.Size.Map(p.Size) / mindim
		fills[i] = p.Fill
		tips[i] = c.Tooltip(p)
		labels[i] = p.Label
		if p.Label != "" {
			haveLabels = true
		}
	}
	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("radius", radii).
		Add("fill", fills).
		Add("tooltip", tips).
		Add("label", labels).
		Done()

	plot := gg.NewPlot(tab)
	xscale := gg.NewLinearScaler().SetMin(0).SetMax(1)
	xscale.SetFormatter(func(u float64) string {
		return fmt.Sprintf("%.4g", c.X.Invert(u*w))
	})
	yscale := gg.NewLinearScaler().SetMin(0).SetMax(1)
	yscale.SetFormatter(func(u float64) string {
		return fmt.Sprintf("%.4g", c.Y.Invert((1-u)*h))
	})
	plot.SetScale("x", xscale)
	plot.SetScale("y", yscale)
	plot.SetScale("stroke", gg.NewIdentityScale())
	plot.SetScale("size", gg.NewIdentityScale())

	plot.Add(gg.AxisLabel("x", c.Fields.X), gg.AxisLabel("y", c.Fields.Y))
	if c.Title != "" {
		plot.Add(gg.Title(c.Title))
	}
	plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: "fill", Size: "radius"})
	plot.Add(gg.LayerTooltips{X: "x", Y: "y", Label: "tooltip"})
	if c.ShowLabels && haveLabels {
		plot.Save()
		plot.SetData(table.Filter(plot.Data(), func(label string) bool {
			return label != ""
		}, "label"))
		plot.Add(gg.LayerTags{X: "x", Y: "y", Label: "label"})
		plot.Restore()
	}

	return plot.WriteSVG(r.w, c.Width, c.Height)
}

// Table returns the points of c as a table with one row per point
// and the resolved fill color of each.
func Table(c *bubble.Chart) *table.Table {
	n := len(c.Points)
	labels := make([]string, n)
	xs, ys, sizes := make([]float64, n), make([]float64, n), make([]float64, n)
	colors, fills := make([]string, n), make([]string, n)
	for i, p := range c.Points {
		labels[i] = p.Label
		xs[i], ys[i], sizes[i] = p.X, p.Y, p.Size
		colors[i] = p.Color
		fills[i] = bubble.FormatColor(p.Fill)
	}
	return new(table.Builder).
		Add("label", labels).
		Add("x", xs).
		Add("y", ys).
		Add("size", sizes).
		Add("color", colors).
		Add("fill", fills).
		Done()
}
