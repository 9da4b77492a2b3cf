// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package logging builds the CLI logger from the verbosity and log-file
// options.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogFile is where --log writes when no explicit path is given.
const DefaultLogFile = "/tmp/rosmsg2asn1.log"

// New constructs the CLI logger. Verbose lowers the level to Debug; logFile,
// when non-empty, duplicates output to that file in addition to stderr.
func New(verbose bool, logFile string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}
	return cfg.Build()
}
