// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

// ScaleType is the transform applied by a Scale.
type ScaleType int

const (
	// Linear maps the domain to the range proportionally. It is
	// the fallback for unknown scale names.
	Linear ScaleType = iota

	// Log maps the logarithm of the domain to the range. Both
	// domain bounds must be positive.
	Log

	// Sqrt maps the signed square root of the domain to the range.
	Sqrt

	// Pow maps the domain raised to an exponent to the range.
	Pow
)

func (t ScaleType) String() string {
	switch t {
	case Linear:
		return "linear"
	case Log:
		return "log"
	case Sqrt:
		return "sqrt"
	case Pow:
		return "pow"
	}
	return "ScaleType(?)"
}

// ParseScaleType returns the ScaleType named by name, ignoring case.
// It accepts "logarithm", "log", and "l" for Log; "pow", "power", and
// "p" for Pow; and "sqrt" and "s" for Sqrt. Every other name,
// including "", is Linear.
func ParseScaleType(name string) ScaleType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "logarithm", "log", "l":
		return Log
	case "pow", "power", "p":
		return Pow
	case "sqrt", "s":
		return Sqrt
	}
	return Linear
}

// A Scale maps a continuous input domain to an output range through a
// transform. Values outside the domain are extrapolated.
//
// Domain and Range may be in either order. A descending domain maps
// its first bound to the first bound of the range.
type Scale struct {
	Type          ScaleType
	Domain, Range [2]float64

	// Exponent is the power used by Pow and Sqrt scales.
	Exponent float64

	// degenerate is set if the domain collapses to a single
	// point, in which case everything maps to the middle of
	// Range.
	degenerate bool
	// flip is set if Domain is descending. lin and log always
	// have ascending bounds.
	flip bool
	lin  scale.Linear
	log  scale.Log
}

// NewScale returns a Scale of type t. Pow scales use an exponent of 1.
func NewScale(t ScaleType, domain, rng [2]float64) (*Scale, error) {
	return newScale(t, domain, rng, 1)
}

// NewPowScale returns a Pow scale with the given exponent.
func NewPowScale(exp float64, domain, rng [2]float64) (*Scale, error) {
	return newScale(Pow, domain, rng, exp)
}

func newScale(t ScaleType, domain, rng [2]float64, exp float64) (*Scale, error) {
	s := &Scale{Type: t, Domain: domain, Range: rng}
	for _, v := range domain {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ScaleDomainError{t, domain, "bounds must be finite"}
		}
	}

	lo, hi := domain[0], domain[1]
	if lo > hi {
		lo, hi = hi, lo
		s.flip = true
	}

	switch t {
	case Log:
		if lo <= 0 {
			return nil, &ScaleDomainError{t, domain, "bounds must be positive"}
		}
		if lo == hi {
			s.degenerate = true
			return s, nil
		}
		ls, err := scale.NewLog(lo, hi, 10)
		if err != nil {
			return nil, &ScaleDomainError{t, domain, err.Error()}
		}
		s.log = ls

	case Sqrt:
		s.Exponent = 0.5
	case Pow:
		s.Exponent = exp
	default:
		s.Type = Linear
		s.Exponent = 1
	}
	if t != Log {
		tlo, thi := s.pow(lo), s.pow(hi)
		if tlo == thi || math.IsNaN(tlo) || math.IsNaN(thi) {
			s.degenerate = true
		}
		s.lin = scale.Linear{Min: tlo, Max: thi}
	}
	return s, nil
}

// pow applies the power transform, preserving sign.
func (s *Scale) pow(x float64) float64 {
	if s.Exponent == 1 {
		return x
	}
	if x < 0 {
		return -math.Pow(-x, s.Exponent)
	}
	return math.Pow(x, s.Exponent)
}

func (s *Scale) unpow(y float64) float64 {
	if s.Exponent == 1 {
		return y
	}
	if y < 0 {
		return -math.Pow(-y, 1/s.Exponent)
	}
	return math.Pow(y, 1/s.Exponent)
}

// Map maps x from the domain to the range.
func (s *Scale) Map(x float64) float64 {
	r0, r1 := s.Range[0], s.Range[1]
	if s.degenerate {
		return (r0 + r1) / 2
	}
	var u float64
	if s.Type == Log {
		u = s.log.Map(x)
	} else {
		u = s.lin.Map(s.pow(x))
	}
	if s.flip {
		u = 1 - u
	}
	return r0 + u*(r1-r0)
}

// Invert maps y from the range back to the domain.
func (s *Scale) Invert(y float64) float64 {
	r0, r1 := s.Range[0], s.Range[1]
	if s.degenerate || r0 == r1 {
		return s.Domain[0]
	}
	u := (y - r0) / (r1 - r0)
	if s.flip {
		u = 1 - u
	}
	if s.Type == Log {
		return s.log.Unmap(u)
	}
	return s.unpow(s.lin.Unmap(u))
}

// Ticks returns up to max tick positions in domain space, in
// increasing order.
func (s *Scale) Ticks(max int) []float64 {
	if s.degenerate {
		return []float64{s.Domain[0]}
	}
	o := scale.TickOptions{Max: max}
	if s.Type == Log {
		major, _ := s.log.Ticks(o)
		return major
	}
	// Pow scales tick like the untransformed domain.
	lo, hi := s.Domain[0], s.Domain[1]
	if s.flip {
		lo, hi = hi, lo
	}
	ls := scale.Linear{Min: lo, Max: hi}
	major, _ := ls.Ticks(o)
	return major
}
