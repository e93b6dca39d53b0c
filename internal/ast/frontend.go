// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"context"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// Frontend documents Go packages.
type Frontend struct {
	Dir          string // Directory package patterns are resolved from
	ExportedOnly bool   // Skip unexported functions and methods
}

// Resolve loads the package named by id.
func (f *Frontend) Resolve(ctx context.Context, id string) (*types.Module, error) {
	return Resolve(ctx, f.Dir, id)
}

// Callables enumerates the package's top-level functions and methods.
func (f *Frontend) Callables(mod *types.Module) ([]types.Callable, error) {
	return ExtractCallables(mod, f.ExportedOnly)
}

// Source returns the isolated source of c.
func (f *Frontend) Source(mod *types.Module, c types.Callable) (string, error) {
	return mod.Source(c)
}

// Inject adds the marker doc comment to an undocumented declaration.
func (f *Frontend) Inject(src, name, marker string) (string, error) {
	return InjectDoc(src, name, marker)
}

// Check verifies the rewritten file still parses.
func (f *Frontend) Check(file *types.SourceFile) error {
	return CheckSource(file.Path, file.Output)
}
