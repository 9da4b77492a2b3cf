// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/lounick/rosmsg2asn1/internal/commands"
	"github.com/lounick/rosmsg2asn1/internal/translate"
	"github.com/lounick/rosmsg2asn1/internal/translate/asn1"
)

func registerTranslators() translate.Register {
	translators := make(translate.Register)
	translators["asn1"] = &asn1.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	translators := registerTranslators()
	rootCmd := commands.NewRootCmd(translators, getenv)
	return rootCmd.ExecuteContext(ctx)
}
