// SPDX-License-Identifier: MIT

// Command hexed prints every orientation of the 12 Hexed puzzle pieces.
//
// Usage:
//
//	hexed [-format text|yaml] [-piece NAME] [-v]
//
// With no flags the output is the plain text report: each orientation as
// rows of '#' and ' ', an empty line after each orientation, and a line of
// 30 '-' after each piece.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/hexed"
	"github.com/katalvlaran/hexed/catalog"
	"github.com/katalvlaran/hexed/piece"
	"github.com/katalvlaran/hexed/render"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var errBadFormat = errors.New("hexed: unknown output format")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "hexed:", err)
		os.Exit(1)
	}
}

// run parses args and writes the report to stdout. Diagnostics and debug
// logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hexed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", formatText, "output format: text or yaml")
	name := fs.String("piece", "", "print only the named piece (X I Z W U T V L Y N F P)")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		hexed.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer hexed.SetLogger(nil)
	}

	pieces, err := selectPieces(*name)
	if err != nil {
		return err
	}
	hexed.Logger().Debug("writing report", "format", *format, "pieces", len(pieces))

	switch *format {
	case formatText:
		return render.WriteReport(stdout, pieces)
	case formatYAML:
		return render.WriteYAML(stdout, pieces)
	default:
		return fmt.Errorf("%q: %w", *format, errBadFormat)
	}
}

func selectPieces(name string) ([]piece.Piece, error) {
	if name == "" {
		return catalog.Pieces(), nil
	}
	p, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []piece.Piece{p}, nil
}
