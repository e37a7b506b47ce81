package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mskold/kokbok/internal/config"
	"github.com/mskold/kokbok/internal/external-adapters/gpg"
)

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var (
		configPath = fs.String("config", config.DefaultFileName, "Path to config file")
		file       = fs.String("file", "", "Cookbook file (overrides config)")
		sig        = fs.String("sig", "", "Detached signature file (default: <file>.asc)")
		key        = fs.String("key", "", "Public key file (overrides config keyring_path)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: kokbok verify --key <pubkey.asc> [options]

Verify a detached GPG signature over a cookbook file.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)

	keyPath := *key
	if keyPath == "" {
		keyPath = cfg.KeyringPath
	}
	if keyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no key given; use --key or set keyring_path in config")
		os.Exit(1)
	}

	dataPath := cookbookPath(*file, cfg)
	sigPath := *sig
	if sigPath == "" {
		sigPath = dataPath + ".asc"
	}

	verifier := gpg.NewVerifier()
	if err := verifier.ImportKeyFromFile(keyPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing key: %v\n", err)
		os.Exit(1)
	}

	if err := verifier.VerifyDetached(dataPath, sigPath); err != nil {
		fmt.Fprintf(os.Stderr, "Verification FAILED: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Good signature on %s\n", dataPath)
}
