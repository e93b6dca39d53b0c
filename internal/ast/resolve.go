// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// Resolve loads the single Go package named by pattern, relative to dir,
// and reads its non-test Go files. pattern is an import path or a relative
// package path such as "./internal/foo"; wildcards are rejected.
func Resolve(ctx context.Context, dir, pattern string) (*types.Module, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty package pattern", types.ErrResolution)
	}
	if strings.Contains(pattern, "...") {
		return nil, fmt.Errorf("%w: %s: wildcard patterns name more than one package", types.ErrResolution, pattern)
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles,
		Dir:     dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrResolution, pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w: %s matched %d packages", types.ErrResolution, pattern, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", types.ErrResolution, pattern, pkg.Errors[0].Msg)
	}
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("%w: %s has no Go files", types.ErrResolution, pattern)
	}

	paths := append([]string(nil), pkg.GoFiles...)
	sort.Strings(paths)

	mod := &types.Module{
		ID:       pattern,
		Language: types.LangGo,
		Dir:      filepath.Dir(paths[0]),
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", types.ErrResolution, p, err)
		}
		mod.Files = append(mod.Files, types.NewSourceFile(p, string(data)))
	}

	return mod, nil
}
