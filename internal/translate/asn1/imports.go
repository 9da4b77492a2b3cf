// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package asn1

// importClause is one library's contribution to the IMPORTS declaration.
type importClause struct {
	Library string
	Types   []string
}

// importMap accumulates the types each library must provide, preserving
// first-insertion order of both libraries and types so output is
// deterministic.
type importMap struct {
	order   []string
	byLib   map[string][]string
	present map[string]map[string]bool
}

func newImportMap() *importMap {
	return &importMap{
		byLib:   make(map[string][]string),
		present: make(map[string]map[string]bool),
	}
}

// add records that typeName must be imported from library. A type already
// present for that library is not duplicated.
func (m *importMap) add(library, typeName string) {
	if _, ok := m.byLib[library]; !ok {
		m.order = append(m.order, library)
		m.present[library] = make(map[string]bool)
	}
	if m.present[library][typeName] {
		return
	}
	m.present[library][typeName] = true
	m.byLib[library] = append(m.byLib[library], typeName)
}

// clauses returns one clause per library in first-insertion order.
func (m *importMap) clauses() []importClause {
	clauses := make([]importClause, 0, len(m.order))
	for _, lib := range m.order {
		clauses = append(clauses, importClause{Library: lib, Types: m.byLib[lib]})
	}
	return clauses
}
