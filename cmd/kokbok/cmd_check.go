package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/external-adapters/recept"
)

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("file", "", "Cookbook file to validate")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok check --file <path>

Parse a cookbook file and report format errors with line numbers.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	recipes, err := recept.Parse(recept.SplitLines(string(data)))
	if err != nil {
		var parseErr *recept.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", *file, parseErr.Line, parseErr.Reason)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s: OK (%d recipes)\n", *file, len(recipes))
}
