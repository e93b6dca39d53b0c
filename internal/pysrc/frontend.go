// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pysrc

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// Frontend documents Python modules.
type Frontend struct {
	Dir  string   // First search root
	Path []string // Additional search roots; relative entries are joined to Dir
}

// roots returns the module search roots in lookup order.
func (f *Frontend) roots() []string {
	dir := f.Dir
	if dir == "" {
		dir = "."
	}
	roots := []string{dir}
	for _, p := range f.Path {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		roots = append(roots, p)
	}
	return roots
}

// Resolve finds the module file named by id.
func (f *Frontend) Resolve(ctx context.Context, id string) (*types.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Resolve(f.roots(), id)
}

// Callables enumerates the module's top-level functions.
func (f *Frontend) Callables(mod *types.Module) ([]types.Callable, error) {
	return ExtractCallables(context.Background(), mod)
}

// Source returns the isolated source of c.
func (f *Frontend) Source(mod *types.Module, c types.Callable) (string, error) {
	return mod.Source(c)
}

// Inject adds the marker docstring to an undocumented function.
func (f *Frontend) Inject(src, name, marker string) (string, error) {
	return InjectDocstring(src, name, marker)
}

// Check verifies the rewritten module still parses.
func (f *Frontend) Check(file *types.SourceFile) error {
	if _, err := parse(context.Background(), []byte(file.Output)); err != nil {
		return fmt.Errorf("%w: rewritten %s: %v", types.ErrParse, file.Path, err)
	}
	return nil
}
