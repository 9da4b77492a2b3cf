// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package translate

import "fmt"

// MalformedTypeError indicates an array suffix whose bound is not a
// non-negative integer literal, e.g. "int32[x]" or "int32[4".
type MalformedTypeError struct {
	Type string
}

func (e *MalformedTypeError) Error() string {
	return fmt.Sprintf("malformed array bound in type %q", e.Type)
}

// ComposedTypeError indicates a non-primitive type reference without a
// package qualifier. Without the qualifier the type cannot be routed to an
// import library.
type ComposedTypeError struct {
	Type string
}

func (e *ComposedTypeError) Error() string {
	return fmt.Sprintf("composed type %q has no package qualifier", e.Type)
}
