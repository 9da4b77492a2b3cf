// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

// Package rosmsg locates and parses ROS message definitions from a search
// path of package directories.
package rosmsg

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/lounick/rosmsg2asn1/internal/translate"
)

// ParseDefinition parses the text of a .msg file into a record schema.
// Field lines have the form "type name". Lines starting with "#" and blank
// lines are ignored; lines containing "=" declare constants, which are not
// fields and are skipped.
func ParseDefinition(pkg, name string, data []byte) (*translate.RecordSchema, error) {
	record := &translate.RecordSchema{
		Package: pkg,
		Name:    name,
		Fields:  []translate.FieldSpec{},
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Constant declarations keep everything after "=", including "#",
		// so they must be recognized before comment stripping.
		eq := strings.IndexByte(line, '=')
		hash := strings.IndexByte(line, '#')
		if eq >= 0 && (hash < 0 || eq < hash) {
			continue
		}
		if hash >= 0 {
			line = strings.TrimSpace(line[:hash])
			if line == "" {
				continue
			}
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, &MetadataError{
				Package: pkg,
				Message: name,
				Line:    lineNo,
				Reason:  "expected \"type name\", got " + strings.Join(parts, " "),
			}
		}
		record.Fields = append(record.Fields, translate.FieldSpec{Name: parts[1], Type: parts[0]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return record, nil
}
