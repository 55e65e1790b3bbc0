package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "serve":
		if err := serve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("fdbvp version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fdbvp - finite-difference scheme comparison for a nonlinear stiff BVP

Usage:
  fdbvp <command> [options]

Commands:
  serve      Serve the interactive comparison page
  plot       Render the three-panel comparison figure to an SVG file
  summary    Print per-scheme trajectory diagnostics
  help       Show this help message
  version    Show version information

Examples:
  # Interactive page on http://localhost:8080
  fdbvp serve

  # Figure for the default parameter set
  fdbvp plot --output comparison.svg

  # Stiffer regime
  fdbvp summary --lambda 20 --n 400

For command-specific help, run:
  fdbvp <command> --help`)
}

// paramFlags registers the six model parameters on a flag set, pre-filled
// with the defaults the tool starts with.
func paramFlags(fs *flag.FlagSet) *solver.Params {
	p := solver.DefaultParams()
	fs.Float64Var(&p.Lambda, "lambda", p.Lambda, "stiffness parameter lambda")
	fs.Float64Var(&p.Alpha, "alpha", p.Alpha, "degree of nonlinearity alpha (>= 2)")
	fs.Float64Var(&p.T, "time", p.T, "terminal time T")
	fs.Float64Var(&p.X0, "x0", p.X0, "boundary value x(0)")
	fs.Float64Var(&p.XT, "xT", p.XT, "boundary value x(T)")
	fs.IntVar(&p.N, "n", p.N, "grid subdivision count N")
	return &p
}

// kernelFlags registers kernel options alongside the model parameters.
func kernelFlags(fs *flag.FlagSet) *solver.Options {
	o := solver.DefaultOptions()
	fs.IntVar(&o.FixedPointIters, "iters", o.FixedPointIters,
		"fixed-point iterations per step of the backward scheme")
	return o
}
