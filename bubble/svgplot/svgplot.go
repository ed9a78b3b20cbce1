// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot renders bubble charts as standalone SVG documents.
//
// Every point is a circle carrying a <title> element, which browsers
// show as a tooltip on hover.
package svgplot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/go-bubble/bubble"
)

// Renderer writes bubble.Charts to an io.Writer as SVG.
type Renderer struct {
	w io.Writer

	// Opacity is the fill opacity of points. If 0, points are
	// drawn at 0.7 opacity so overlapping points stay visible.
	Opacity float64

	// Ticks is the maximum number of ticks per axis. If 0, it
	// is 10.
	Ticks int
}

// New returns a Renderer that writes to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// errWriter records the first write error, since svgo does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

const (
	axisStyle  = "stroke:#333;stroke-width:1"
	tickStyle  = "font-family:sans-serif;font-size:10px;fill:#333"
	labelStyle = "font-family:sans-serif;font-size:11px;fill:#000"
	titleStyle = "font-family:sans-serif;font-size:16px;text-anchor:middle"
)

func (r *Renderer) Render(c *bubble.Chart) error {
	ew := &errWriter{w: r.w}
	canvas := svg.New(ew)
	canvas.Start(c.Width, c.Height)

	if c.Title != "" {
		canvas.Text(c.Width/2, c.Margin.Top/2+6, c.Title, titleStyle)
	}
	r.axes(canvas, c)

	opacity := r.Opacity
	if opacity == 0 {
		opacity = 0.7
	}
	canvas.Group(`class="points"`)
	for _, p := range c.Points {
		x, y, rad := c.Project(p)
		if !finite(x) || !finite(y) || !finite(rad) {
			continue
		}
		canvas.Group(`class="point"`)
		canvas.Title(c.Tooltip(p))
		canvas.Circle(round(x), round(y), round(rad),
			fmt.Sprintf("fill:%s;fill-opacity:%.3g;stroke:#fff;stroke-width:0.5", bubble.FormatColor(p.Fill), opacity))
		canvas.Gend()
	}
	canvas.Gend()

	if c.ShowLabels {
		canvas.Group(`class="labels"`, labelStyle)
		for _, p := range c.Points {
			if p.Label == "" {
				continue
			}
			x, y, rad := c.Project(p)
			if !finite(x) || !finite(y) || !finite(rad) {
				continue
			}
			canvas.Text(round(x+rad+2), round(y+4), p.Label)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// axes draws the x axis along the bottom of the plot area and the y
// axis along its left side.
func (r *Renderer) axes(canvas *svg.SVG, c *bubble.Chart) {
	nticks := r.Ticks
	if nticks == 0 {
		nticks = 10
	}
	w, h := c.PlotSize()
	left, top := c.Margin.Left, c.Margin.Top
	bottom, right := top+int(h), left+int(w)

	canvas.Group(`class="axes"`, tickStyle)
	canvas.Line(left, bottom, right, bottom, axisStyle)
	for _, t := range c.X.Ticks(nticks) {
		x := left + round(c.X.Map(t))
		if x < left || x > right {
			continue
		}
		canvas.Line(x, bottom, x, bottom+5, axisStyle)
		canvas.Text(x, bottom+16, formatTick(t), "text-anchor:middle")
	}
	canvas.Text((left+right)/2, c.Height-6, c.Fields.X, "text-anchor:middle")

	canvas.Line(left, top, left, bottom, axisStyle)
	for _, t := range c.Y.Ticks(nticks) {
		y := top + round(c.Y.Map(t))
		if y < top || y > bottom {
			continue
		}
		canvas.Line(left-5, y, left, y, axisStyle)
		canvas.Text(left-7, y+3, formatTick(t), "text-anchor:end")
	}
	canvas.Text(14, (top+bottom)/2, c.Fields.Y, "text-anchor:middle;writing-mode:tb")
	canvas.Gend()
}

func formatTick(x float64) string {
	return fmt.Sprintf("%.6g", x)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
