package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/plotter"
	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	output := fs.String("output", "", "Output SVG file (required)")
	width := fs.Int("width", 1320, "Figure width in pixels")
	height := fs.Int("height", 380, "Figure height in pixels")
	params := paramFlags(fs)
	opts := kernelFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: fdbvp plot [options]

Render the three-panel comparison figure (backward, central, forward) to an
SVG file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Default parameters
  fdbvp plot --output comparison.svg

  # Stiff regime on a fine grid
  fdbvp plot --output stiff.svg --lambda 25 --n 500
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	sol, err := solver.Solve(*params, opts)
	if err != nil {
		return err
	}

	svg := plotter.Comparison(sol, float64(*width), float64(*height))
	if err := os.WriteFile(*output, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Figure saved to %s\n", *output)
	return nil
}
