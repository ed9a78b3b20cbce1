// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "fmt"

// MissingParameterError indicates that a required Config field was
// not set. It is returned before any data is fetched.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %s", e.Param)
}

// EmptyDatasetError indicates that no rows of the data source
// survived normalization.
type EmptyDatasetError struct {
	Source string
	// Rows is the number of raw rows read from Source.
	Rows int
}

func (e *EmptyDatasetError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("no valid rows (of %d)", e.Rows)
	}
	return fmt.Sprintf("%s: no valid rows (of %d)", e.Source, e.Rows)
}

// ScaleDomainError indicates that a Scale was given a domain its
// transform cannot represent, such as a logarithmic domain that
// includes zero.
type ScaleDomainError struct {
	Type   ScaleType
	Domain [2]float64
	Reason string
}

func (e *ScaleDomainError) Error() string {
	return fmt.Sprintf("bad %s scale domain [%g, %g]: %s", e.Type, e.Domain[0], e.Domain[1], e.Reason)
}

// MappingLengthMismatchError indicates that the discrete color
// mapping keys and colors have different lengths.
type MappingLengthMismatchError struct {
	Keys, Colors int
}

func (e *MappingLengthMismatchError) Error() string {
	return fmt.Sprintf("color mapping has %d keys but %d colors", e.Keys, e.Colors)
}

// InvalidColorFormatError indicates a color value that is neither a
// number, a hex color code, nor a known color name, depending on
// what was required.
type InvalidColorFormatError struct {
	Value string
}

func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Value)
}
