package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/config"
	"github.com/mskold/kokbok/internal/external-adapters/recept"
)

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		configPath = fs.String("config", config.DefaultFileName, "Path to config file")
		file       = fs.String("file", "", "Cookbook file (overrides config)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok list [options]

List recipes in a cookbook, sorted by name.

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

	path := cookbookPath(*file, cfg)
	if err := repo.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cookbook: %v\n", err)
		os.Exit(1)
	}

	recipes := repo.GetAll()
	fmt.Printf("Recipes in %s (%d total):\n\n", path, len(recipes))
	for i, recipe := range recipes {
		fmt.Printf("  %3d. %-30s %d ingredients, %d steps\n",
			i, recipe.Name, len(recipe.Ingredients), len(recipe.Instructions))
	}
}
