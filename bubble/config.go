// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

// Config describes a bubble chart. Source, X, and Y are required. The
// zero value of every other field selects its default.
type Config struct {
	// Source names the data source passed to the Loader.
	Source string

	// X and Y name the fields that position each point.
	X, Y string

	// XDomain and YDomain, if non-nil, override the axis domains
	// computed from the data.
	XDomain, YDomain *[2]float64

	// Name names the label field. If "", points have no labels.
	Name string

	// Color and Size name the fields that color and size each
	// point. Each defaults to Y.
	Color, Size string

	// Colors are the gradient stops or, if Discrete is set, the
	// category colors. The default is DefaultColors.
	Colors []string

	// SizeRange is the range of point radii in pixels. The
	// default is [5, 30].
	SizeRange [2]float64

	// ShowLabels draws each point's label next to it.
	ShowLabels bool

	// Discrete colors points by category instead of by gradient.
	Discrete bool

	// Mapping lists the category keys for Colors in discrete
	// mode. See ColorConfig.
	Mapping []string

	// Unmapped is the color of categories missing from Mapping.
	// The default is gray.
	Unmapped string

	// XScale, YScale, ColorScale, and SizeScale name the scale
	// type of each dimension. See ParseScaleType.
	XScale, YScale, ColorScale, SizeScale string

	// Exponent is the exponent of "pow" scales. The default is 1.
	Exponent float64

	// Width and Height are the chart size in pixels. The default
	// is 960x500.
	Width, Height int

	// Title is drawn above the chart if non-empty.
	Title string

	// Logf, if non-nil, receives advisory messages, such as
	// dropped rows.
	Logf func(format string, args ...interface{})
}

// DefaultSizeRange is the default range of point radii.
var DefaultSizeRange = [2]float64{5, 30}

const (
	defaultWidth  = 960
	defaultHeight = 500
)

// resolve checks the required fields of c and returns a copy with
// defaults filled in. Defaults that refer to other fields are
// resolved after the fields they refer to.
func (c Config) resolve() (Config, error) {
	switch {
	case c.Source == "":
		return c, &MissingParameterError{"Source"}
	case c.X == "":
		return c, &MissingParameterError{"X"}
	case c.Y == "":
		return c, &MissingParameterError{"Y"}
	}

	if c.Color == "" {
		c.Color = c.Y
	}
	if c.Size == "" {
		c.Size = c.Y
	}
	if len(c.Colors) == 0 {
		c.Colors = DefaultColors
	}
	if c.SizeRange == [2]float64{} {
		c.SizeRange = DefaultSizeRange
	}
	if c.Exponent == 0 {
		c.Exponent = 1
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c, nil
}

// Validate reports a *MissingParameterError if a required field of c
// is not set.
func (c Config) Validate() error {
	_, err := c.resolve()
	return err
}

func (c *Config) fields() Fields {
	return Fields{X: c.X, Y: c.Y, Size: c.Size, Color: c.Color, Name: c.Name}
}
