package main

import (
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/config"
	"github.com/mskold/kokbok/internal/domain/interfaces"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "list":
		runList(os.Args[2:])
	case "show":
		runShow(os.Args[2:])
	case "delete":
		runDelete(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "export":
		runExport(os.Args[2:])
	case "import":
		runImport(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`kokbok - Plain-text cookbook manager

Usage:
  kokbok <command> [options]

Commands:
  list     List recipes in a cookbook
  show     Show one recipe in full
  delete   Delete a recipe and save the cookbook
  check    Validate a cookbook file and report format errors
  export   Export a cookbook to YAML
  import   Import recipes from YAML into a cookbook
  verify   Verify a detached GPG signature over a cookbook

Use "kokbok <command> --help" for more information about a command.`)
}

// loadConfig resolves configuration for a command. Errors are fatal: a
// broken config file should never be silently replaced with defaults.
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(cfg *config.Config) interfaces.Logger {
	return interfaces.NewWriterLogger(os.Stderr, interfaces.ParseLevel(cfg.LogLevel))
}

// cookbookPath prefers the --file flag over the configured default
func cookbookPath(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.CookbookPath
}
