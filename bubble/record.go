// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// A RawRecord is a single row of input data, mapping field names to
// untyped values. Loaders produce string values, but programmatic
// callers may supply any Go number.
type RawRecord map[string]interface{}

// A Record is a normalized row. X, Y, and Size are always finite.
type Record struct {
	// Label is the display name of this point, or "" if there is
	// no name field or the row has no value for it.
	Label string

	X, Y, Size float64

	// Color is the literal value of the color field. It is
	// resolved to a display color by a ColorResolver.
	Color string
}

// Fields selects the columns of a RawRecord that make up a Record.
type Fields struct {
	X, Y, Size, Color string

	// Name is the label column. It may be "".
	Name string
}

// Normalize converts rows into Records, in order. Rows whose X, Y, or
// Size field is not a finite number are dropped and reported to logf,
// which may be nil.
func Normalize(rows []RawRecord, f Fields, logf func(format string, args ...interface{})) []Record {
	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		x, okX := toFloat(row[f.X])
		y, okY := toFloat(row[f.Y])
		size, okSize := toFloat(row[f.Size])
		if !okX || !okY || !okSize {
			if logf != nil {
				var bad []string
				for _, c := range []struct {
					name string
					ok   bool
				}{{f.X, okX}, {f.Y, okY}, {f.Size, okSize}} {
					if !c.ok {
						bad = append(bad, fmt.Sprintf("%s=%q", c.name, toString(row[c.name])))
					}
				}
				logf("dropping row %d: non-numeric %s", i+1, strings.Join(bad, ", "))
			}
			continue
		}

		var label string
		if f.Name != "" && truthy(row[f.Name]) {
			label = toString(row[f.Name])
		}
		recs = append(recs, Record{
			Label: label,
			X:     x,
			Y:     y,
			Size:  size,
			Color: toString(row[f.Color]),
		})
	}
	return recs
}

// toFloat coerces v to a finite float64.
func toFloat(v interface{}) (float64, bool) {
	var x float64
	switch v := v.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		var err error
		x, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
	case float64:
		x = v
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			x = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			x = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			x = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

func toString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// truthy reports whether v is a usable label: a non-empty string or a
// non-zero number.
func truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	}
	if x, ok := toFloat(v); ok {
		return x != 0
	}
	return toString(v) != ""
}
