// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pysrc is the Python front end: it resolves dotted module names to
// files, extracts top-level functions with tree-sitter, and inserts
// placeholder docstrings.
package pysrc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// moduleName matches dotted Python module identifiers.
var moduleName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Resolve finds the file of the dotted module id under the given search
// roots, checked in order. "pkg.mod" resolves to pkg/mod/__init__.py or
// pkg/mod.py; within one root a package shadows a module of the same name,
// matching the import system.
func Resolve(roots []string, id string) (*types.Module, error) {
	if !moduleName.MatchString(id) {
		return nil, fmt.Errorf("%w: %q is not a valid module name", types.ErrResolution, id)
	}

	rel := filepath.Join(strings.Split(id, ".")...)
	for _, root := range roots {
		for _, candidate := range []string{filepath.Join(rel, "__init__.py"), rel + ".py"} {
			path, err := filepath.Abs(filepath.Join(root, candidate))
			if err != nil {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("%w: reading %s: %v", types.ErrResolution, path, err)
			}
			return &types.Module{
				ID:       id,
				Language: types.LangPython,
				Dir:      filepath.Dir(path),
				Files:    []*types.SourceFile{types.NewSourceFile(path, string(data))},
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s could not be found", types.ErrResolution, id)
}
