// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/lounick/rosmsg2asn1/internal/cmdctx"
	"github.com/lounick/rosmsg2asn1/internal/logging"
	"github.com/lounick/rosmsg2asn1/internal/translate"
)

// rootOptions holds the persistent root-command flags.
type rootOptions struct {
	verbose bool
	log     bool
	logFile string
	msgPath []string
	getenv  func(string) string
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	opts := &rootOptions{getenv: getenv}

	rootCmd := &cobra.Command{
		Use:   "rosmsg2asn1",
		Short: "Generate ASN.1 type modules from ROS message definitions",
		Long: `rosmsg2asn1 translates ROS message definitions into ASN.1 DEFINITIONS
modules for the TASTE toolchain, following nested message references so every
dependency is generated as well.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return preRunLoad(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output of operation")
	pf.BoolVarP(&opts.log, "log", "l", false, "Log the operation at the default path "+logging.DefaultLogFile)
	pf.StringVar(&opts.logFile, "logfile", "", "Set path to log the operation")
	pf.StringSliceVar(&opts.msgPath, "msg-path", nil, "Directories to search for message packages (defaults to config, then $ROS_PACKAGE_PATH)")

	registerGenerateCmd(rootCmd, translators)
	registerListCmd(rootCmd)
	registerShowCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// preRunLoad resolves the command context from the root flags and stores it
// in the command's context before any subcommand runs.
func preRunLoad(cmd *cobra.Command, opts *rootOptions) error {
	logFile := opts.logFile
	if logFile == "" && opts.log {
		logFile = logging.DefaultLogFile
	}

	ctx, err := cmdctx.Load(cmd.Context(), cmdctx.LoadOptions{
		MsgPath: opts.msgPath,
		Verbose: opts.verbose,
		LogFile: logFile,
		Getenv:  opts.getenv,
	})
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
