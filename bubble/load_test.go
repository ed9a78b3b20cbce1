// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	for _, test := range []struct {
		name  string
		in    string
		comma rune
		want  []RawRecord
	}{
		{"basic", "x,y\n1,2\n3,4\n", ',',
			[]RawRecord{{"x": "1", "y": "2"}, {"x": "3", "y": "4"}}},
		{"ragged", "x,y,z\n1,2\n3,4,5,6\n", ',',
			[]RawRecord{{"x": "1", "y": "2"}, {"x": "3", "y": "4", "z": "5"}}},
		{"bom", "\ufeffx,y\n1,2\n", ',',
			[]RawRecord{{"x": "1", "y": "2"}}},
		{"spaces", "x, y\n1, \"a, b\"\n", ',',
			[]RawRecord{{"x": "1", "y": "a, b"}}},
		{"tabs", "x\ty\n1\t2\n", '\t',
			[]RawRecord{{"x": "1", "y": "2"}}},
		{"header only", "x,y\n", ',', nil},
		{"empty", "", ',', nil},
	} {
		got, err := ReadCSV(strings.NewReader(test.in), test.comma)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("%s: want %v, got %v", test.name, test.want, got)
		}
	}

	if _, err := ReadCSV(strings.NewReader("x\n\"1\n"), ','); err == nil {
		t.Errorf("unterminated quote: want error")
	}
}

func TestCSVLoaderFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	tsvPath := filepath.Join(dir, "data.TSV")
	if err := os.WriteFile(csvPath, []byte("x;y\n1;2\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tsvPath, []byte("x\ty\n1\t2\n"), 0666); err != nil {
		t.Fatal(err)
	}

	want := []RawRecord{{"x": "1", "y": "2"}}
	l := &CSVLoader{Comma: ';'}
	for _, p := range []string{csvPath, tsvPath} {
		got, err := l.Load(context.Background(), p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if !reflect.DeepEqual(want, got) {
			t.Errorf("%s: want %v, got %v", p, want, got)
		}
	}

	if _, err := l.Load(context.Background(), filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: want not-exist error, got %v", err)
	}
}

func TestCSVLoaderStdin(t *testing.T) {
	l := &CSVLoader{Stdin: strings.NewReader("a,b\nx,y\n")}
	got, err := l.Load(context.Background(), "-")
	if err != nil {
		t.Fatal(err)
	}
	want := []RawRecord{{"a": "x", "b": "y"}}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestCSVLoaderHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.csv":
			fmt.Fprint(w, "x,y\n1,2\n")
		case "/data.tsv":
			fmt.Fprint(w, "x\ty\n3\t4\n")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := &CSVLoader{Client: srv.Client()}
	for _, test := range []struct {
		path string
		want []RawRecord
	}{
		{"/data.csv", []RawRecord{{"x": "1", "y": "2"}}},
		{"/data.tsv?v=1", []RawRecord{{"x": "3", "y": "4"}}},
	} {
		got, err := l.Load(context.Background(), srv.URL+test.path)
		if err != nil {
			t.Errorf("%s: %v", test.path, err)
			continue
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("%s: want %v, got %v", test.path, test.want, got)
		}
	}

	_, err := l.Load(context.Background(), srv.URL+"/missing.csv")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("want 404 error, got %v", err)
	}
}
