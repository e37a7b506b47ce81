package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/config"
	"github.com/mskold/kokbok/internal/external-adapters/recept"
	"github.com/mskold/kokbok/internal/external-adapters/yaml"
)

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var (
		configPath = fs.String("config", config.DefaultFileName, "Path to config file")
		file       = fs.String("file", "", "Cookbook file (overrides config)")
		out        = fs.String("out", "", "Output YAML file (default: stdout)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok export [options]

Export a cookbook to a YAML document.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	repo := recept.NewRepository(newLogger(cfg))

	if err := repo.Load(cookbookPath(*file, cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cookbook: %v\n", err)
		os.Exit(1)
	}

	data, err := yaml.Export(repo.GetAll())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d recipes to %s\n", repo.Count(), *out)
}
