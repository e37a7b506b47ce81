package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/config"
	"github.com/mskold/kokbok/internal/external-adapters/recept"
)

func runDelete(args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	var (
		configPath = fs.String("config", config.DefaultFileName, "Path to config file")
		file       = fs.String("file", "", "Cookbook file (overrides config)")
		index      = fs.Int("index", -1, "Recipe index as printed by list")
		dryRun     = fs.Bool("dry-run", false, "Delete in memory only, do not save")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok delete --index <n> [options]

Delete a recipe by index and save the cookbook back.

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
	path := cookbookPath(*file, cfg)

	if err := repo.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cookbook: %v\n", err)
		os.Exit(1)
	}

	recipe, err := repo.GetAt(*index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := repo.DeleteAt(*index); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting recipe: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %q (%d recipes left)\n", recipe.Name, repo.Count())

	if *dryRun {
		fmt.Println("Dry run: cookbook not saved")
		return
	}

	if err := repo.Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving cookbook: %v\n", err)
		os.Exit(1)
	}
}
