// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package rosmsg

import (
	"fmt"
	"strings"
)

// NotFoundError indicates that no message with the requested name exists in
// the search path.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("couldn't find the message %q", e.Name)
}

// AmbiguousError indicates that an unqualified message name matched
// definitions in more than one package.
type AmbiguousError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("found %d messages named %q: [%s]; qualify the one you want with its package name",
		len(e.Matches), e.Name, strings.Join(e.Matches, ", "))
}

// MetadataError indicates a message definition whose text could not be
// parsed into a record schema.
type MetadataError struct {
	Package string
	Message string
	Line    int
	Reason  string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid definition %s/%s at line %d: %s", e.Package, e.Message, e.Line, e.Reason)
}
