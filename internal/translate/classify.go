// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package translate

import (
	"strconv"
	"strings"
)

// Arity describes the array shape of a field type.
type Arity int

const (
	// Scalar is a plain, non-array field.
	Scalar Arity = iota
	// Fixed is an array with a declared size, e.g. "int32[4]".
	Fixed
	// Variable is an array without a declared size, e.g. "int32[]".
	Variable
)

// Classify splits a raw field type into its base type and array shape.
// The returned bound is only meaningful for Fixed arities.
func Classify(rawType string) (base string, arity Arity, bound int, err error) {
	idx := strings.IndexByte(rawType, '[')
	if idx == -1 {
		return rawType, Scalar, 0, nil
	}

	end := strings.IndexByte(rawType, ']')
	if end < idx {
		return "", Scalar, 0, &MalformedTypeError{Type: rawType}
	}

	base = rawType[:idx]
	inner := rawType[idx+1 : end]
	if inner == "" {
		return base, Variable, 0, nil
	}

	n, convErr := strconv.Atoi(inner)
	if convErr != nil || n < 0 {
		return "", Scalar, 0, &MalformedTypeError{Type: rawType}
	}
	return base, Fixed, n, nil
}
