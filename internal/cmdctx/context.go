// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package cmdctx provides the resolved command context (configuration,
// message registry, logger) threaded through cobra commands.
package cmdctx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lounick/rosmsg2asn1/internal/config"
	"github.com/lounick/rosmsg2asn1/internal/logging"
	"github.com/lounick/rosmsg2asn1/internal/rosmsg"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration, message registry, and logger for
// one CLI invocation.
type Context struct {
	Config   *config.Config
	Registry *rosmsg.Registry
	Logger   *zap.Logger
}

// LoadOptions are the root-command flags and OS dependencies that shape the
// command context.
type LoadOptions struct {
	// MsgPath overrides the configured and environment search path when
	// non-empty.
	MsgPath []string
	Verbose bool
	LogFile string
	Getenv  func(string) string
}

// Load resolves the configuration, message registry, and logger, and returns
// a new context.Context carrying them. A missing config file is not an
// error; defaults apply.
func Load(ctx context.Context, opts LoadOptions) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := config.Default()
	configPath := filepath.Join(cwd, config.FileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		if validateErr := cfg.Validate(); validateErr != nil {
			return nil, fmt.Errorf("invalid configuration: %w", validateErr)
		}
	}

	logger, err := logging.New(opts.Verbose, opts.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	searchPath := opts.MsgPath
	if len(searchPath) == 0 {
		searchPath = cfg.MsgPath
	}
	if len(searchPath) == 0 && opts.Getenv != nil {
		searchPath = filepath.SplitList(opts.Getenv("ROS_PACKAGE_PATH"))
	}

	registry, err := rosmsg.NewRegistry(searchPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("indexed message packages",
		zap.Strings("search_path", searchPath),
		zap.Int("messages", len(registry.List())))

	cmdCtx := &Context{
		Config:   cfg,
		Registry: registry,
		Logger:   logger,
	}

	return context.WithValue(ctx, contextKey{}, cmdCtx), nil
}

// From extracts the Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if cmdCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return cmdCtx
	}
	return nil
}

// With returns a context.Context carrying the given Context. Intended for
// tests that build a command context directly.
func With(ctx context.Context, cmdCtx *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, cmdCtx)
}
