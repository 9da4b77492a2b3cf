// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package rosmsg

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/lounick/rosmsg2asn1/internal/translate"
)

// entry locates one message definition file within its filesystem.
type entry struct {
	fsys fs.FS
	path string
}

// Registry indexes the message definitions found under a search path of ROS
// package roots. A package is a directory containing a msg/ subdirectory of
// .msg files. Earlier roots shadow later ones, matching overlay semantics.
type Registry struct {
	index map[string]map[string]entry // package -> message -> file
}

// NewRegistry scans each root in searchPath and indexes its packages.
// Roots that do not exist are skipped.
func NewRegistry(searchPath []string) (*Registry, error) {
	r := &Registry{index: make(map[string]map[string]entry)}
	for _, root := range searchPath {
		if root == "" {
			continue
		}
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if err := r.scan(os.DirFS(root)); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
	}
	return r, nil
}

// scan indexes every <pkg>/msg/*.msg file in fsys.
func (r *Registry) scan(fsys fs.FS) error {
	pkgs, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		if !pkg.IsDir() {
			continue
		}
		msgDir := pkg.Name() + "/msg"
		files, err := fs.ReadDir(fsys, msgDir)
		if err != nil {
			continue // not a message package
		}

		for _, f := range files {
			name, ok := strings.CutSuffix(f.Name(), ".msg")
			if !ok || f.IsDir() {
				continue
			}
			if r.index[pkg.Name()] == nil {
				r.index[pkg.Name()] = make(map[string]entry)
			}
			if _, exists := r.index[pkg.Name()][name]; exists {
				continue
			}
			r.index[pkg.Name()][name] = entry{fsys: fsys, path: msgDir + "/" + f.Name()}
		}
	}
	return nil
}

// Resolve looks up a message by name. A qualified "pkg/Name" selects exactly
// that definition; a bare name is searched across all indexed packages and
// must match exactly one.
func (r *Registry) Resolve(name string) (*translate.RecordSchema, error) {
	if pkg, msg, ok := strings.Cut(name, "/"); ok {
		e, found := r.index[pkg][msg]
		if !found {
			return nil, &NotFoundError{Name: name}
		}
		return r.load(pkg, msg, e)
	}

	var matches []string
	for pkg, msgs := range r.index {
		if _, ok := msgs[name]; ok {
			matches = append(matches, pkg+"/"+name)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Name: name}
	case 1:
		pkg, msg, _ := strings.Cut(matches[0], "/")
		return r.load(pkg, msg, r.index[pkg][msg])
	default:
		return nil, &AmbiguousError{Name: name, Matches: matches}
	}
}

func (r *Registry) load(pkg, msg string, e entry) (*translate.RecordSchema, error) {
	data, err := fs.ReadFile(e.fsys, e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition of %s/%s: %w", pkg, msg, err)
	}
	return ParseDefinition(pkg, msg, data)
}

// List returns every indexed message as "pkg/Name", sorted.
func (r *Registry) List() []string {
	var names []string
	for pkg, msgs := range r.index {
		for msg := range msgs {
			names = append(names, pkg+"/"+msg)
		}
	}
	sort.Strings(names)
	return names
}
