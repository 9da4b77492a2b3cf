// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package translate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink persists generated artifacts keyed by record name.
type Sink interface {
	Persist(name string, data []byte) error
}

// DirSink writes artifacts into a directory, one file per record. The file
// name is the unqualified record name plus Ext. Existing files are
// overwritten.
type DirSink struct {
	Dir string
	Ext string
}

// Persist writes the artifact for name, creating the directory if needed.
func (s *DirSink) Persist(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	return os.WriteFile(filepath.Join(s.Dir, name+s.Ext), data, 0o600)
}
