// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package translate

// RecordSchema is a read-only view of one message definition, constructed by
// a Resolver from externally supplied metadata. It is never mutated after
// construction.
type RecordSchema struct {
	Package string      `json:"package" yaml:"package"`
	Name    string      `json:"name" yaml:"name"`
	Fields  []FieldSpec `json:"fields" yaml:"fields"`
}

// FullName returns the package-qualified record identifier, e.g.
// "geometry_msgs/Pose".
func (r *RecordSchema) FullName() string {
	return r.Package + "/" + r.Name
}

// FieldSpec is a single field of a record as declared in the source
// definition. Type is the raw declaration, e.g. "int32", "float32[4]",
// "geometry_msgs/Point" or "int32[]".
type FieldSpec struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Result is the outcome of translating one record: the generated module text
// and the non-primitive type references the record depends on, deduplicated
// in first-seen order.
type Result struct {
	Text []byte
	Deps []string
}
