package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/web"
)

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	params := paramFlags(fs)
	opts := kernelFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: fdbvp serve [options]

Serve the interactive comparison page. Model parameter flags set the values
the page starts with; the sidebar overrides them per request.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Default parameters on port 8080
  fdbvp serve

  # Start in a stiffer regime on another port
  fdbvp serve --addr :9000 --lambda 20
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := params.Validate(); err != nil {
		return err
	}

	s := web.NewServer(
		web.WithAddr(*addr),
		web.WithDefaults(*params),
		web.WithKernelOptions(opts),
	)
	return s.ListenAndServe()
}
