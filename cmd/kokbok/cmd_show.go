package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/config"
	"github.com/mskold/kokbok/internal/external-adapters/recept"
)

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	var (
		configPath = fs.String("config", config.DefaultFileName, "Path to config file")
		file       = fs.String("file", "", "Cookbook file (overrides config)")
		index      = fs.Int("index", -1, "Recipe index as printed by list")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok show --index <n> [options]

Show one recipe in full.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *index < 0 {
		fmt.Fprintln(os.Stderr, "Error: --index is required")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	repo := recept.NewRepository(newLogger(cfg))

	if err := repo.Load(cookbookPath(*file, cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cookbook: %v\n", err)
		os.Exit(1)
	}

	recipe, err := repo.GetAt(*index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(recipe.Name)
	fmt.Println("\nIngredients:")
	for _, ingredient := range recipe.Ingredients {
		fmt.Printf("  %s %s %s\n", ingredient.Amount, ingredient.Unit, ingredient.Name)
	}
	fmt.Println("\nInstructions:")
	for i, step := range recipe.Instructions {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}
