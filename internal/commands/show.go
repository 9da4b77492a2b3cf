// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lounick/rosmsg2asn1/internal/cmdctx"
)

type showOptions struct {
	format string
}

func registerShowCmd(parent *cobra.Command) {
	parent.AddCommand(newShowCmd())
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <message>",
		Short: "Show the resolved definition of a message",
		Args:  cobra.ExactArgs(1),
		Example: `  # Show a message definition
  rosmsg2asn1 show geometry_msgs/Pose

  # As JSON
  rosmsg2asn1 show --format json Pose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runShow(ctx, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "yaml", "Output format (yaml, json)")

	return cmd
}

func runShow(ctx *cmdctx.Context, opts *showOptions, name string) error {
	record, err := ctx.Registry.Resolve(name)
	if err != nil {
		return err
	}

	switch opts.format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		return enc.Encode(record)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	default:
		return fmt.Errorf("unsupported format %q (yaml, json)", opts.format)
	}
}
