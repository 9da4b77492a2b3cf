// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/lounick/rosmsg2asn1/internal/prompts"
)

// Version information - set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			prompts.PrintResult([]prompts.ResultField{
				{Label: "Version", Value: Version},
				{Label: "Commit", Value: GitCommit},
				{Label: "Built", Value: BuildDate},
			}, "")
		},
	})
}
