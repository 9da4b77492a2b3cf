// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package main is the entry point for the rosmsg2asn1 CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lounick/rosmsg2asn1/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
