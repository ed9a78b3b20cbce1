// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Stats records the bounds of each field over a set of Records.
type Stats struct {
	MinX, MaxX       float64
	MinY, MaxY       float64
	MinSize, MaxSize float64

	// ColorNumeric is true if every Color value is a number. If
	// it is false, MinColor and MaxColor are NaN.
	ColorNumeric       bool
	MinColor, MaxColor float64
}

// ComputeStats returns the bounds of recs. It returns an
// *EmptyDatasetError if recs is empty.
func ComputeStats(recs []Record) (*Stats, error) {
	if len(recs) == 0 {
		return nil, &EmptyDatasetError{}
	}

	xs := make([]float64, len(recs))
	ys := make([]float64, len(recs))
	sizes := make([]float64, len(recs))
	colors := make([]float64, 0, len(recs))
	numeric := true
	for i, r := range recs {
		xs[i], ys[i], sizes[i] = r.X, r.Y, r.Size
		if numeric {
			c, ok := toFloat(r.Color)
			if !ok {
				numeric = false
				continue
			}
			colors = append(colors, c)
		}
	}

	s := &Stats{ColorNumeric: numeric}
	s.MinX, s.MaxX = stats.Bounds(xs)
	s.MinY, s.MaxY = stats.Bounds(ys)
	s.MinSize, s.MaxSize = stats.Bounds(sizes)
	if numeric {
		s.MinColor, s.MaxColor = stats.Bounds(colors)
	} else {
		s.MinColor, s.MaxColor = math.NaN(), math.NaN()
	}
	return s, nil
}
