// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// stringList is a comma-separated list flag. Setting it replaces any
// previous value, so later flags override $BUBBLEPLOT_FLAGS.
type stringList []string

func (x *stringList) String() string {
	return strings.Join(*x, ",")
}

func (x *stringList) Set(s string) error {
	var l []string
	for _, s1 := range strings.Split(s, ",") {
		s1 = strings.TrimSpace(s1)
		if s1 == "" {
			return fmt.Errorf("empty element in list %q", s)
		}
		l = append(l, s1)
	}
	*x = l
	return nil
}

// floatPair is a "lo,hi" flag. It is nil until set.
type floatPair struct {
	v *[2]float64
}

func (x *floatPair) String() string {
	if x.v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", x.v[0], x.v[1])
}

func (x *floatPair) Set(s string) error {
	f := strings.Split(s, ",")
	if len(f) != 2 {
		return fmt.Errorf("want lo,hi; got %q", s)
	}
	var v [2]float64
	for i, s1 := range f {
		var err error
		v[i], err = strconv.ParseFloat(strings.TrimSpace(s1), 64)
		if err != nil {
			return fmt.Errorf("bad bound %q", s1)
		}
	}
	x.v = &v
	return nil
}
