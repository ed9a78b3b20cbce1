// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bubbleplot draws a bubble chart of tabular data.
//
// bubbleplot reads delimited text with a header row from a file, a
// URL, or standard input ("-") and plots one circle per row at
// (xfield, yfield). The circle's radius follows -size and its color
// follows -color; both default to yfield. Rows whose position or size
// is not a number are skipped.
//
// Hovering over a circle in the output SVG shows its label and field
// values.
//
// Default flags may be given in $BUBBLEPLOT_FLAGS, using shell
// quoting. Flags on the command line take precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aclements/go-bubble/bubble"
	"github.com/aclements/go-bubble/bubble/ggplot"
	"github.com/aclements/go-bubble/bubble/svgplot"
)

func main() {
	log.SetPrefix("bubbleplot: ")
	log.SetFlags(0)

	var (
		colors, mapping stringList
		xrange, yrange  floatPair
		sizes           floatPair
	)
	var (
		flagName       = flag.String("name", "", "label points with `field`")
		flagSize       = flag.String("size", "", "size points by `field` (default yfield)")
		flagColor      = flag.String("color", "", "color points by `field` (default yfield)")
		flagLabels     = flag.Bool("labels", false, "draw point labels")
		flagDiscrete   = flag.Bool("discrete", false, "color by category instead of gradient")
		flagUnmapped   = flag.String("unmapped", "", "`color` of categories missing from -mapping (default gray)")
		flagXScale     = flag.String("xscale", "linear", "x scale `type` (linear, log, sqrt, pow)")
		flagYScale     = flag.String("yscale", "linear", "y scale `type`")
		flagColorScale = flag.String("colorscale", "linear", "color scale `type`")
		flagSizeScale  = flag.String("sizescale", "linear", "size scale `type`")
		flagExponent   = flag.Float64("exponent", 1, "exponent of pow scales")
		flagWidth      = flag.Int("w", 960, "chart `width` in pixels")
		flagHeight     = flag.Int("h", 500, "chart `height` in pixels")
		flagTitle      = flag.String("title", "", "chart `title`")
		flagEngine     = flag.String("engine", "svg", "renderer: svg or gg")
		flagTable      = flag.Bool("table", false, "output a table instead of a plot")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagVerbose    = flag.Bool("v", false, "report skipped rows")
	)
	flag.Var(&colors, "colors", "comma-separated `colors` of the gradient or categories (default red,blue)")
	flag.Var(&mapping, "mapping", "comma-separated category `keys` for -colors in -discrete mode")
	flag.Var(&xrange, "xrange", "x axis domain `lo,hi` (default from data)")
	flag.Var(&yrange, "yrange", "y axis domain `lo,hi` (default from data)")
	flag.Var(&sizes, "sizes", "point radius range `lo,hi` in pixels (default 5,30)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] source xfield yfield\n", os.Args[0])
		flag.PrintDefaults()
	}

	args, err := flagArgs(os.Getenv("BUBBLEPLOT_FLAGS"), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	flag.CommandLine.Parse(args)
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := bubble.Config{
		Source:     flag.Arg(0),
		X:          flag.Arg(1),
		Y:          flag.Arg(2),
		XDomain:    xrange.v,
		YDomain:    yrange.v,
		Name:       *flagName,
		Color:      *flagColor,
		Size:       *flagSize,
		Colors:     colors,
		ShowLabels: *flagLabels,
		Discrete:   *flagDiscrete,
		Mapping:    mapping,
		Unmapped:   *flagUnmapped,
		XScale:     *flagXScale,
		YScale:     *flagYScale,
		ColorScale: *flagColorScale,
		SizeScale:  *flagSizeScale,
		Exponent:   *flagExponent,
		Width:      *flagWidth,
		Height:     *flagHeight,
		Title:      *flagTitle,
	}
	if sizes.v != nil {
		cfg.SizeRange = *sizes.v
	}
	if *flagVerbose {
		cfg.Logf = log.Printf
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else if !*flagTable && terminal.IsTerminal(int(f.Fd())) {
		log.Fatal("refusing to write SVG to a terminal; use -o")
	}

	ctx := context.Background()
	loader := &bubble.CSVLoader{}

	// Output table.
	if *flagTable {
		if err := writeTable(ctx, loader, cfg, f); err != nil {
			log.Fatal(err)
		}
		return
	}

	var r bubble.Renderer
	switch *flagEngine {
	case "svg":
		r = svgplot.New(f)
	case "gg":
		r = ggplot.New(f)
	default:
		log.Fatalf("unknown engine %q", *flagEngine)
	}
	if err := bubble.Plot(ctx, loader, cfg, r); err != nil {
		log.Fatal(err)
	}
}

// writeTable prints the prepared points of cfg as a table.
func writeTable(ctx context.Context, l bubble.Loader, cfg bubble.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rows, err := l.Load(ctx, cfg.Source)
	if err != nil {
		return err
	}
	chart, err := bubble.Prepare(rows, cfg)
	if err != nil {
		return err
	}
	table.Fprint(w, ggplot.Table(chart))
	return nil
}

// flagArgs returns the arguments to parse: the shell-quoted words of
// env followed by args.
func flagArgs(env string, args []string) ([]string, error) {
	if env == "" {
		return args, nil
	}
	words, err := shellquote.Split(env)
	if err != nil {
		return nil, fmt.Errorf("parsing $BUBBLEPLOT_FLAGS: %w", err)
	}
	return append(words, args...), nil
}
