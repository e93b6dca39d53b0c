// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pysrc

import (
	"context"
	"errors"
	"testing"

	"github.com/petar-djukic/codedoc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModuleSource = `import functools


def add(a, b):
    return a + b


def sub(a, b):
    """Return a - b."""
    return a - b


@functools.cache
def fib(n):
    return n if n < 2 else fib(n - 1) + fib(n - 2)


def __private__():
    pass


class Calculator:
    def total(self):
        return 0


def add(a, b, c=0):
    return a + b + c
`

func pyModule(src string) *types.Module {
	return &types.Module{
		ID:       "calc",
		Language: types.LangPython,
		Dir:      "/src",
		Files:    []*types.SourceFile{types.NewSourceFile("/src/calc.py", src)},
	}
}

func TestExtractCallables(t *testing.T) {
	mod := pyModule(testModuleSource)

	callables, err := ExtractCallables(context.Background(), mod)
	require.NoError(t, err)

	var names []string
	for _, c := range callables {
		names = append(names, c.Name)
		assert.Equal(t, types.Function, c.Kind)
		assert.Equal(t, "/src/calc.py", c.File)
	}
	assert.Equal(t, []string{"sub", "fib", "add"}, names)
}

func TestExtractCallables_Spans(t *testing.T) {
	mod := pyModule(testModuleSource)

	callables, err := ExtractCallables(context.Background(), mod)
	require.NoError(t, err)
	require.Len(t, callables, 3)

	fib := callables[1]
	assert.Equal(t, 14, fib.Line)
	src, err := mod.Source(fib)
	require.NoError(t, err)
	assert.Equal(t, "@functools.cache\ndef fib(n):\n    return n if n < 2 else fib(n - 1) + fib(n - 2)", src)

	// The later definition of a duplicated name is the one kept.
	add := callables[2]
	src, err = mod.Source(add)
	require.NoError(t, err)
	assert.Equal(t, "def add(a, b, c=0):\n    return a + b + c", src)
}

func TestExtractCallables_ParseError(t *testing.T) {
	mod := pyModule("def ok():\n    pass\n\ndef broken(:\n    pass\n")

	_, err := ExtractCallables(context.Background(), mod)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParse))
}

func TestExtractCallables_Empty(t *testing.T) {
	callables, err := ExtractCallables(context.Background(), pyModule("X = 1\n"))
	require.NoError(t, err)
	assert.Empty(t, callables)
}
