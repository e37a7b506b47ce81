package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mskold/kokbok/internal/domain/entities"
	"github.com/mskold/kokbok/internal/external-adapters/recept"
	"github.com/mskold/kokbok/internal/external-adapters/yaml"
)

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	var (
		in  = fs.String("in", "", "YAML file to import")
		out = fs.String("out", "", "Cookbook file to write")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok import --in <recipes.yml> --out <kokbok.txt>

Convert a YAML recipe document into a cookbook file.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Error: --in and --out are required")
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *in, err)
		os.Exit(1)
	}

	recipes, err := yaml.Import(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		os.Exit(1)
	}

	// Cookbook files are kept sorted by name, matching what Load produces
	slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int {
		return strings.Compare(a.Name, b.Name)
	})

	lines := recept.Serialize(recipes)
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(*out, []byte(content), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d recipes to %s\n", len(recipes), *out)
}
