// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lounick/rosmsg2asn1/internal/cmdctx"
)

func registerListCmd(parent *cobra.Command) {
	parent.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all messages found in the search path",
		Example: `  # List messages
  rosmsg2asn1 list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runList(ctx)
		},
	}
}

func runList(ctx *cmdctx.Context) error {
	names := ctx.Registry.List()
	if len(names) == 0 {
		fmt.Println("No messages found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PACKAGE\tMESSAGE")
	for _, name := range names {
		pkg, msg, _ := strings.Cut(name, "/")
		_, _ = fmt.Fprintf(w, "%s\t%s\n", pkg, msg)
	}
	return w.Flush()
}
