// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codedoc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 3

// diffLine is one line of a line-level diff.
type diffLine struct {
	op   byte // ' ', '-' or '+'
	text string
}

// renderDiff renders a unified diff for every changed file, with paths
// relative to dir where possible.
func renderDiff(dir string, files []*types.SourceFile) string {
	var b strings.Builder
	for _, f := range files {
		name := f.Path
		if rel, err := filepath.Rel(dir, f.Path); err == nil {
			name = rel
		}
		b.WriteString(unifiedDiff(filepath.ToSlash(name), f.Original, f.Output))
	}
	return b.String()
}

// unifiedDiff renders a line-level unified diff of oldText to newText.
// Identical texts produce an empty string.
func unifiedDiff(name, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	lines := diffLines(oldText, newText)

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.op == ' ' {
			continue
		}
		for j := max(0, i-diffContext); j <= min(len(lines)-1, i+diffContext); j++ {
			keep[j] = true
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", name, name)

	oldLine, newLine := 1, 1
	for i := 0; i < len(lines); {
		if !keep[i] {
			oldLine, newLine = advance(lines[i], oldLine, newLine)
			i++
			continue
		}

		end := i
		for end < len(lines) && keep[end] {
			end++
		}
		hunk := lines[i:end]

		oldCount, newCount := 0, 0
		for _, l := range hunk {
			if l.op != '+' {
				oldCount++
			}
			if l.op != '-' {
				newCount++
			}
		}
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", oldLine, oldCount, newLine, newCount)
		for _, l := range hunk {
			b.WriteByte(l.op)
			b.WriteString(l.text)
			b.WriteByte('\n')
			oldLine, newLine = advance(l, oldLine, newLine)
		}
		i = end
	}

	return b.String()
}

// advance moves the old and new line counters past l.
func advance(l diffLine, oldLine, newLine int) (int, int) {
	if l.op != '+' {
		oldLine++
	}
	if l.op != '-' {
		newLine++
	}
	return oldLine, newLine
}

// diffLines computes a line-mode diff with go-diff and flattens it into
// individual lines.
func diffLines(oldText, newText string) []diffLine {
	dmp := diffmatchpatch.New()
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(rOld, rNew, false))
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []diffLine
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, diffLine{op: op, text: text})
		}
	}
	return lines
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
