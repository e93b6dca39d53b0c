// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/petar-djukic/codedoc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModule lays out a throwaway Go module under a temp directory.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["go.mod"] = "module example.com/calc\n\ngo 1.21\n"
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestResolve(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"calc/b.go":      "package calc\n\nfunc B() {}\n",
		"calc/a.go":      "package calc\n\nfunc A() {}\n",
		"calc/a_test.go": "package calc\n\nfunc helperForTest() {}\n",
	})

	mod, err := Resolve(context.Background(), dir, "./calc")
	require.NoError(t, err)

	assert.Equal(t, "./calc", mod.ID)
	assert.Equal(t, types.LangGo, mod.Language)
	require.Len(t, mod.Files, 2)
	assert.Equal(t, "a.go", filepath.Base(mod.Files[0].Path))
	assert.Equal(t, "b.go", filepath.Base(mod.Files[1].Path))
	assert.Equal(t, "package calc\n\nfunc A() {}\n", mod.Files[0].Original)
	assert.Equal(t, mod.Files[0].Original, mod.Files[0].Output)
}

func TestResolve_ImportPath(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"calc/calc.go": "package calc\n\nfunc Add(a, b int) int { return a + b }\n",
	})

	mod, err := Resolve(context.Background(), dir, "example.com/calc/calc")
	require.NoError(t, err)
	require.Len(t, mod.Files, 1)
}

func TestResolve_Errors(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"calc/calc.go": "package calc\n",
	})

	tests := []struct {
		name    string
		pattern string
	}{
		{name: "empty pattern", pattern: ""},
		{name: "wildcard", pattern: "./..."},
		{name: "missing package", pattern: "./does_not_exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(context.Background(), dir, tt.pattern)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrResolution))
		})
	}
}

func TestFrontend_DocumentsResolvedPackage(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"calc/calc.go": "package calc\n\n// Add returns a + b.\nfunc Add(a, b int) int {\n\treturn a + b\n}\n\nfunc Sub(a, b int) int {\n\treturn a - b\n}\n",
	})
	fe := &Frontend{Dir: dir}

	mod, err := fe.Resolve(context.Background(), "./calc")
	require.NoError(t, err)
	callables, err := fe.Callables(mod)
	require.NoError(t, err)
	require.Len(t, callables, 2)

	for _, c := range callables {
		src, err := fe.Source(mod, c)
		require.NoError(t, err)
		out, err := fe.Inject(src, c.Name, testMarker)
		require.NoError(t, err)
		if c.Name == "Add" {
			assert.Equal(t, src, out)
		} else {
			assert.Equal(t, "// Added by CodeDoc\n"+src, out)
		}
	}
}
