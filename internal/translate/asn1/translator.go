// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package asn1 translates message record schemas to ASN.1 DEFINITIONS
// modules in the TASTE dialect.
package asn1

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/lounick/rosmsg2asn1/internal/translate"
)

//go:embed asn1.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join": strings.Join,
}

var tmpl = template.Must(template.New("asn1.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "asn1.go.tmpl"))

// variableBound caps the size of synthesized sequences for variable-length
// arrays. ASN.1 has no unbounded SEQUENCE OF usable as a field type without
// a named, bounded wrapper.
const variableBound = 256

// Translator translates record schemas to ASN.1 module definitions.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "asn1"
}

// FileExtension returns the file extension for ASN.1 module files.
func (t *Translator) FileExtension() string {
	return ".asn"
}

// moduleData is the input passed to the module template.
type moduleData struct {
	Name      string
	Imports   []importClause
	Sequences []sequenceDef
	Fields    []fieldDef
}

// sequenceDef is a synthesized bounded-sequence type wrapping an array field.
type sequenceDef struct {
	Name  string
	Bound int
	Elem  string
}

type fieldDef struct {
	Name string
	Type string
}

// resolvedField carries one field through classification and array rewriting.
type resolvedField struct {
	name  string // field name as declared
	typ   string // ASN.1 type, possibly replaced by a synthesized sequence
	arity translate.Arity
	bound int
}

// Translate converts one record schema to an ASN.1 module. The returned
// dependencies are the record's package-qualified non-primitive type
// references, deduplicated in first-seen order.
func (t *Translator) Translate(record *translate.RecordSchema) (*translate.Result, error) {
	imports := newImportMap()
	deps := []string{}
	depSeen := make(map[string]bool)

	fields := make([]resolvedField, 0, len(record.Fields))
	for _, f := range record.Fields {
		base, arity, bound, err := translate.Classify(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}

		var notation, library string
		if nt, lib, ok := MapPrimitive(base); ok {
			notation, library = nt, lib
		} else {
			slash := strings.IndexByte(base, '/')
			if slash < 0 {
				return nil, fmt.Errorf("field %s: %w", f.Name, &translate.ComposedTypeError{Type: base})
			}
			notation = base[slash+1:]
			library = notation + "-Types"
			if !depSeen[base] {
				depSeen[base] = true
				deps = append(deps, base)
			}
		}

		imports.add(library, notation)
		fields = append(fields, resolvedField{name: f.Name, typ: notation, arity: arity, bound: bound})
	}

	data := moduleData{
		Name:    record.Name,
		Imports: imports.clauses(),
	}

	// Array rewriting precedes body emission: every array field becomes a
	// named bounded sequence and the field itself becomes scalar. Fixed-size
	// arrays are emitted before variable-size ones.
	for i := range fields {
		if fields[i].arity != translate.Fixed {
			continue
		}
		name := "L" + hyphenate(fields[i].name)
		data.Sequences = append(data.Sequences, sequenceDef{Name: name, Bound: fields[i].bound, Elem: fields[i].typ})
		fields[i].typ = name
		fields[i].arity = translate.Scalar
	}
	for i := range fields {
		if fields[i].arity != translate.Variable {
			continue
		}
		name := "V" + hyphenate(fields[i].name)
		data.Sequences = append(data.Sequences, sequenceDef{Name: name, Bound: variableBound, Elem: fields[i].typ})
		fields[i].typ = name
		fields[i].arity = translate.Scalar
	}

	// After rewriting, every field must have scalar arity. A single-field
	// record violating this would silently lose its body, so it is reported.
	for i := range fields {
		if fields[i].arity != translate.Scalar {
			return nil, fmt.Errorf("internal inconsistency: field %s of %s not reduced to scalar arity", fields[i].name, record.Name)
		}
	}

	for _, f := range fields {
		name := f.name
		// "type" is an ASN.1 keyword; disambiguate with the field's type name.
		if name == "type" {
			name += "-" + f.typ
		}
		// A field named after its own type would shadow the type definition.
		if strings.EqualFold(name, f.typ) {
			name += "-field"
		}
		data.Fields = append(data.Fields, fieldDef{Name: hyphenate(name), Type: f.typ})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "asn1.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return &translate.Result{Text: buf.Bytes(), Deps: deps}, nil
}

// hyphenate rewrites source word separators to the ASN.1 identifier
// convention.
func hyphenate(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}
