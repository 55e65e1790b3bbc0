package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/analysis"
	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	params := paramFlags(fs)
	opts := kernelFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: fdbvp summary [options]

Run the three schemes and print per-scheme trajectory diagnostics.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  fdbvp summary
  fdbvp summary --lambda 20 --n 400
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	sol, err := solver.Solve(*params, opts)
	if err != nil {
		return err
	}

	p := sol.Params
	fmt.Printf("Problem: x'(t) = -%g*x + x^%g on [0, %g], x(0)=%g, x(T)=%g\n",
		p.Lambda, p.Alpha, p.T, p.X0, p.XT)
	fmt.Printf("Grid: N=%d, h=%g (%d points)\n\n", p.N, p.H(), len(sol.T))

	for _, d := range analysis.Report(sol) {
		fmt.Printf("%s difference:\n", d.Scheme)
		if d.Finite {
			fmt.Printf("  range  [%g, %g]\n", d.Stats.Min, d.Stats.Max)
			fmt.Printf("  mean   %g (std %g)\n", d.Stats.Mean, d.Stats.Std)
		} else {
			fmt.Println("  trajectory contains NaN or Inf")
		}
		fmt.Printf("  sign flips in increments: %d\n", d.SignFlips)
		if d.Scheme == solver.SchemeForward {
			fmt.Printf("  right-boundary residual:  %g\n", d.BoundaryResidual)
		}
		fmt.Printf("  %s\n\n", d.Describe())
	}
	return nil
}
