// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pysrc

import (
	"errors"
	"testing"

	"github.com/petar-djukic/codedoc/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMarker = "Added by CodeDoc"

func TestInjectDocstring(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		src  string
		want string
	}{
		{
			name: "undocumented",
			fn:   "add",
			src:  "def add(a, b):\n    return a + b",
			want: "def add(a, b):\n    \"\"\"Added by CodeDoc\"\"\"\n    return a + b",
		},
		{
			name: "assignment is not documentation",
			fn:   "setup",
			src:  "def setup():\n    x = 1\n    return x",
			want: "def setup():\n    \"\"\"Added by CodeDoc\"\"\"\n    x = 1\n    return x",
		},
		{
			name: "augmented assignment is not documentation",
			fn:   "bump",
			src:  "def bump():\n    global n\n    n += 1",
			want: "def bump():\n    \"\"\"Added by CodeDoc\"\"\"\n    global n\n    n += 1",
		},
		{
			name: "nested definition first",
			fn:   "outer",
			src:  "def outer():\n    def inner():\n        pass\n    return inner",
			want: "def outer():\n    \"\"\"Added by CodeDoc\"\"\"\n    def inner():\n        pass\n    return inner",
		},
		{
			name: "body on the def line",
			fn:   "one",
			src:  "def one(): return 1",
			want: "def one():\n    \"\"\"Added by CodeDoc\"\"\"\n    return 1",
		},
		{
			name: "tab indentation",
			fn:   "tabbed",
			src:  "def tabbed():\n\tpass",
			want: "def tabbed():\n\t\"\"\"Added by CodeDoc\"\"\"\n\tpass",
		},
		{
			name: "decorators kept",
			fn:   "cached",
			src:  "@functools.cache\n@trace(level=2)\ndef cached(n):\n    return n * 2",
			want: "@functools.cache\n@trace(level=2)\ndef cached(n):\n    \"\"\"Added by CodeDoc\"\"\"\n    return n * 2",
		},
		{
			name: "async def",
			fn:   "fetch",
			src:  "async def fetch(url):\n    return await get(url)",
			want: "async def fetch(url):\n    \"\"\"Added by CodeDoc\"\"\"\n    return await get(url)",
		},
		{
			name: "comment before first statement",
			fn:   "calc",
			src:  "def calc(x):\n    # double it\n    return x * 2",
			want: "def calc(x):\n    # double it\n    \"\"\"Added by CodeDoc\"\"\"\n    return x * 2",
		},
		{
			name: "trailing newline kept",
			fn:   "noop",
			src:  "def noop():\n    pass\n",
			want: "def noop():\n    \"\"\"Added by CodeDoc\"\"\"\n    pass\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InjectDocstring(tt.src, tt.fn, testMarker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInjectDocstring_AlreadyDocumented(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "triple-quoted docstring", src: "def sub(a, b):\n    '''Return a - b.'''\n    return a-b"},
		{name: "single-quoted string", src: "def sub(a, b):\n    'doc'\n    return a  -  b"},
		{name: "any bare expression", src: "def sub(a, b):\n    print(a)\n    return a - b"},
		{name: "docstring on the def line", src: "def sub(a, b): \"doc\"; return a - b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InjectDocstring(tt.src, "sub", testMarker)
			require.NoError(t, err)
			assert.Equal(t, tt.src, got)
		})
	}
}

func TestInjectDocstring_Idempotent(t *testing.T) {
	once, err := InjectDocstring("def f():\n    pass\n", "f", testMarker)
	require.NoError(t, err)

	twice, err := InjectDocstring(once, "f", testMarker)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestInjectDocstring_Errors(t *testing.T) {
	_, err := InjectDocstring("def broken(:\n    pass", "broken", testMarker)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParse))

	_, err = InjectDocstring("def other():\n    pass", "missing", testMarker)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrCallableNotFound))
}

func TestDocstring(t *testing.T) {
	assert.Equal(t, `"""TODO: describe"""`, Docstring("TODO: describe"))
}
