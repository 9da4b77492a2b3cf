// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package translate provides the message-to-notation translation core: the
// field classifier, the translator registry, and the worklist generator that
// walks the transitive closure of referenced records.
package translate

import (
	"fmt"
	"sort"
)

// Translator defines the interface all notation translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "asn1")
	Name() string

	// Translate converts one record schema to the target notation.
	Translate(record *RecordSchema) (*Result, error)

	// FileExtension returns the appropriate file extension (e.g., ".asn")
	FileExtension() string
}

// Register maps translator names to implementations.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
