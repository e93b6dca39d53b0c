// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codedoc

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestDocument_Python(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"calc/__init__.py": "",
		"calc/ops.py":      "def add(a, b):\n    return a + b\n\n\ndef sub(a, b):\n    \"\"\"Return a - b.\"\"\"\n    return a - b\n",
	})

	doc, err := New(Config{Language: "python", Dir: dir})
	require.NoError(t, err)

	res, err := doc.Document(context.Background(), "calc.ops")
	require.NoError(t, err)

	assert.Equal(t, "calc.ops", res.Module)
	assert.Equal(t, "python", res.Language)
	assert.Equal(t, []string{"add"}, res.Documented)
	assert.Equal(t, []string{"sub"}, res.AlreadyDocumented)
	assert.True(t, res.Persisted)

	data, err := os.ReadFile(filepath.Join(dir, "calc", "ops.py"))
	require.NoError(t, err)
	assert.Equal(t, "def add(a, b):\n    \"\"\"Added by CodeDoc\"\"\"\n    return a + b\n\n\ndef sub(a, b):\n    \"\"\"Return a - b.\"\"\"\n    return a - b\n", string(data))
}

func TestDocument_Go(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"go.mod":       "module example.com/calc\n\ngo 1.21\n",
		"calc/calc.go": "package calc\n\n// Add returns a + b.\nfunc Add(a, b int) int {\n\treturn a + b\n}\n\nfunc Sub(a, b int) int {\n\treturn a - b\n}\n",
	})

	doc, err := New(Config{Dir: dir, Marker: "TODO: document"})
	require.NoError(t, err)

	res, err := doc.Document(context.Background(), "./calc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sub"}, res.Documented)
	assert.Equal(t, []string{"Add"}, res.AlreadyDocumented)

	data, err := os.ReadFile(filepath.Join(dir, "calc", "calc.go"))
	require.NoError(t, err)
	assert.Equal(t, "package calc\n\n// Add returns a + b.\nfunc Add(a, b int) int {\n\treturn a + b\n}\n\n// TODO: document\nfunc Sub(a, b int) int {\n\treturn a - b\n}\n", string(data))
}

func TestDocument_DryRun(t *testing.T) {
	src := "def add(a, b):\n    return a + b\n"
	dir := writeFiles(t, map[string]string{"calc.py": src})

	doc, err := New(Config{Language: "python", Dir: dir, DryRun: true})
	require.NoError(t, err)

	res, err := doc.Document(context.Background(), "calc")
	require.NoError(t, err)
	assert.False(t, res.Persisted)
	assert.Contains(t, res.Diff, "+    \"\"\"Added by CodeDoc\"\"\"")

	data, err := os.ReadFile(filepath.Join(dir, "calc.py"))
	require.NoError(t, err)
	assert.Equal(t, src, string(data))

	// The diff is for human output only.
	encoded, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "Diff")
}

func TestDocument_ResolutionError(t *testing.T) {
	doc, err := New(Config{Language: "python", Dir: t.TempDir()})
	require.NoError(t, err)

	res, err := doc.Document(context.Background(), "does_not_exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResolution))
	require.NotNil(t, res)
	assert.Equal(t, "does_not_exist", res.Module)
	assert.False(t, res.Persisted)
}
