// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lounick/rosmsg2asn1/internal/cmdctx"
	"github.com/lounick/rosmsg2asn1/internal/config"
	"github.com/lounick/rosmsg2asn1/internal/prompts"
	"github.com/lounick/rosmsg2asn1/internal/translate"
)

type generateOptions struct {
	output string
	format string
}

func registerGenerateCmd(parent *cobra.Command, translators translate.Register) {
	parent.AddCommand(newGenerateCmd(translators))
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [messages...]",
		Short: "Translate ROS messages and their dependencies to ASN.1",
		Long: `Translate the given ROS messages to ASN.1 modules. Messages may be given
qualified ("geometry_msgs/Pose") or bare ("Pose"); bare names must be
unambiguous across the search path. Every message type referenced by a
selected message is generated as well, exactly once.`,
		Example: `  # Interactive mode
  rosmsg2asn1 generate

  # Generate specific messages
  rosmsg2asn1 generate geometry_msgs/Pose nav_msgs/Odometry

  # Generate to a custom output directory
  rosmsg2asn1 generate -o ./asn1 std_msgs/Header`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Directory to save the ASN.1 messages")
	cmd.Flags().StringVar(&opts.format, "format", "asn1", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, args []string) error {
	ctx, err := cmdctx.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	translator, err := translators.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translators.Available(), ", "))
	}

	selected := args
	if len(selected) == 0 {
		if err := prompts.RunGenerateForm(&selected, ctx.Registry.List()); err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("no messages selected")
	}

	output := opts.output
	if !cmd.Flags().Changed("output") && ctx.Config.Output != "" {
		output = ctx.Config.Output
	}

	generator := &translate.Generator{
		Resolver:   ctx.Registry,
		Translator: translator,
		Sink:       &translate.DirSink{Dir: output, Ext: translator.FileExtension()},
		Logger:     ctx.Logger,
	}

	fmt.Printf("Generating %d message(s) and their dependencies...\n", len(selected))
	report := generator.Run(selected)

	for _, name := range report.Generated {
		short := name
		if i := strings.LastIndexByte(short, '/'); i >= 0 {
			short = short[i+1:]
		}
		fmt.Printf("  %s\n", filepath.Join(output, short+translator.FileExtension()))
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Generated", Value: fmt.Sprintf("%d message(s)", len(report.Generated))},
		{Label: "Output", Value: output},
	}, "")

	if len(report.Failures) > 0 {
		failures := make([]string, 0, len(report.Failures))
		for _, f := range report.Failures {
			failures = append(failures, fmt.Sprintf("%s: %v", f.Name, f.Err))
		}
		prompts.PrintFailures(failures)
		return fmt.Errorf("failed to generate %d message(s)", len(report.Failures))
	}

	return nil
}
