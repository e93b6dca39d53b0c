// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codedoc

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petar-djukic/codedoc/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiff(t *testing.T) {
	got := unifiedDiff("calc.py", "a\nb\nc\n", "a\nB\nc\n")
	assert.Equal(t, "--- a/calc.py\n+++ b/calc.py\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n", got)
}

func TestUnifiedDiff_Identical(t *testing.T) {
	assert.Empty(t, unifiedDiff("calc.py", "a\n", "a\n"))
}

func TestUnifiedDiff_SeparateHunks(t *testing.T) {
	var oldLines, newLines []string
	for i := 1; i <= 10; i++ {
		oldLines = append(oldLines, fmt.Sprintf("l%d", i))
		newLines = append(newLines, fmt.Sprintf("l%d", i))
	}
	newLines[0] = "L1"
	newLines[9] = "L10"

	got := unifiedDiff("f.txt", strings.Join(oldLines, "\n")+"\n", strings.Join(newLines, "\n")+"\n")
	assert.Equal(t, 2, strings.Count(got, "@@ -"))
	assert.Contains(t, got, "@@ -1,4 +1,4 @@\n-l1\n+L1\n l2\n l3\n l4\n")
	assert.Contains(t, got, "@@ -7,4 +7,4 @@\n l7\n l8\n l9\n-l10\n+L10\n")
	assert.NotContains(t, got, " l5\n")
}

func TestRenderDiff_RelativePaths(t *testing.T) {
	dir := filepath.Join("/", "src", "calc")
	changed := types.NewSourceFile(filepath.Join(dir, "pkg", "calc.go"), "a\n")
	changed.Output = "b\n"

	got := renderDiff(dir, []*types.SourceFile{changed})
	assert.True(t, strings.HasPrefix(got, "--- a/pkg/calc.go\n+++ b/pkg/calc.go\n"))
}
