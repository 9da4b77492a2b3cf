// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Command gendocs generates markdown documentation for the rosmsg2asn1 CLI.
//
// Usage:
//
//	go run ./cmd/gendocs [output-dir]
//
// Default output directory is ./docs/cli.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/lounick/rosmsg2asn1/internal/commands"
	"github.com/lounick/rosmsg2asn1/internal/translate"
	"github.com/lounick/rosmsg2asn1/internal/translate/asn1"
)

func main() {
	dir := "./docs/cli"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	translators := make(translate.Register)
	translators["asn1"] = &asn1.Translator{}

	rootCmd := commands.NewRootCmd(translators, os.Getenv)
	rootCmd.DisableAutoGenTag = true

	if err := os.MkdirAll(dir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}

	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	// Rename rosmsg2asn1.md to index.md
	oldPath := dir + "/rosmsg2asn1.md"
	newPath := dir + "/index.md"
	if err := os.Rename(oldPath, newPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error renaming %s to %s: %v\n", oldPath, newPath, err)
		os.Exit(1)
	}

	fmt.Printf("Documentation generated in %s\n", dir)
}
