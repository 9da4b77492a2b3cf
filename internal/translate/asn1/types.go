// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package asn1

// notationTypes maps every ROS primitive type to its ASN.1 equivalent.
// The table is fixed; it is never extended at runtime.
var notationTypes = map[string]string{
	"bool":     "T-Boolean",
	"int8":     "T-Int8",
	"uint8":    "T-UInt8",
	"int16":    "T-Int16",
	"uint16":   "T-UInt16",
	"int32":    "T-Int32",
	"uint32":   "T-UInt32",
	"int64":    "T-Int64",
	"uint64":   "T-UInt64",
	"float32":  "T-Float",
	"float64":  "T-Double",
	"string":   "T-String",
	"time":     "Time",
	"duration": "Duration",
	"byte":     "T-Int8",
	"char":     "T-UInt8",
}

// libraries partitions the ASN.1 primitive types across the TASTE import
// libraries. The partition is part of the output contract: generated IMPORTS
// clauses are only valid against these library names.
var libraries = map[string]string{
	"T-Boolean": "TASTE-BasicTypes",
	"T-Int8":    "TASTE-BasicTypes",
	"T-UInt8":   "TASTE-BasicTypes",
	"T-Int32":   "TASTE-BasicTypes",
	"T-UInt32":  "TASTE-BasicTypes",
	"T-Int16":   "TASTE-ExtendedTypes",
	"T-UInt16":  "TASTE-ExtendedTypes",
	"T-Int64":   "TASTE-ExtendedTypes",
	"T-UInt64":  "TASTE-ExtendedTypes",
	"T-Float":   "TASTE-ExtendedTypes",
	"T-Double":  "TASTE-ExtendedTypes",
	"T-String":  "TASTE-ExtendedTypes",
	"Time":      "Time-Types",
	"Duration":  "Time-Types",
}

// MapPrimitive maps a ROS primitive type to its ASN.1 type and the library
// it must be imported from. ok is false when typeName is not a primitive.
func MapPrimitive(typeName string) (notation, library string, ok bool) {
	notation, ok = notationTypes[typeName]
	if !ok {
		return "", "", false
	}
	return notation, libraries[notation], true
}

// IsPrimitive reports whether typeName is a ROS primitive type.
func IsPrimitive(typeName string) bool {
	_, ok := notationTypes[typeName]
	return ok
}
