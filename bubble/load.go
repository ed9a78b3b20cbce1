// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
)

// A Loader fetches the rows of a data source.
type Loader interface {
	Load(ctx context.Context, source string) ([]RawRecord, error)
}

// CSVLoader loads delimited text with a header row from a local
// file, from standard input if the source is "-", or from an http or
// https URL.
//
// Sources ending in ".tsv" are tab-separated. All others are
// separated by Comma.
type CSVLoader struct {
	// Comma is the field separator. If 0, it is ','.
	Comma rune

	// Client is used for URL sources. If nil, http.DefaultClient
	// is used.
	Client *http.Client

	// Stdin is read for the source "-". If nil, os.Stdin is used.
	Stdin io.Reader
}

func (l *CSVLoader) Load(ctx context.Context, source string) ([]RawRecord, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	comma := l.Comma
	if comma == 0 {
		comma = ','
	}
	if strings.EqualFold(path.Ext(trimQuery(source)), ".tsv") {
		comma = '\t'
	}
	rows, err := ReadCSV(rc, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return rows, nil
}

func (l *CSVLoader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "-" {
		r := l.Stdin
		if r == nil {
			r = os.Stdin
		}
		return io.NopCloser(r), nil
	}
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", source, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %s", source, resp.Status)
	}
	return resp.Body, nil
}

func trimQuery(source string) string {
	if i := strings.IndexAny(source, "?#"); i >= 0 && strings.Contains(source, "://") {
		return source[:i]
	}
	return source
}

// ReadCSV reads delimited text from r. The first row names the
// fields. Rows shorter than the header lack the trailing fields and
// cells beyond the header are ignored.
func ReadCSV(r io.Reader, comma rune) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []RawRecord
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		row := make(RawRecord, len(header))
		for i, name := range header {
			if i >= len(cells) {
				break
			}
			row[name] = cells[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
