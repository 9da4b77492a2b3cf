// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultLevel(t *testing.T) {
	logger, err := New(false, "")
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_Verbose(t *testing.T) {
	logger, err := New(true, "")
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")

	logger, err := New(false, logFile)
	require.NoError(t, err)

	logger.Info("generation started")
	_ = logger.Sync() // stderr may not support sync; the file write is what matters

	data, err := os.ReadFile(logFile) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(data), "generation started")
}
