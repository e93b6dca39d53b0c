// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editor splices rewritten callable text into a module's working
// output and persists the result.
package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// Replace substitutes the first occurrence of old in content with new.
// Later identical fragments are left for their own replacement pass.
// Returns a *types.SpanMismatch when old does not occur in content.
func Replace(content, old, new string) (string, error) {
	idx := -1
	if old != "" {
		idx = strings.Index(content, old)
	}
	if idx < 0 {
		return "", buildMismatch(content, old, -1)
	}
	return content[:idx] + new + content[idx+len(old):], nil
}

// ReplaceAt substitutes old with new at byte offset in content. The text at
// offset must be exactly old; otherwise a *types.SpanMismatch is returned and
// content is left untouched.
func ReplaceAt(content string, offset int, old, new string) (string, error) {
	end := offset + len(old)
	if offset < 0 || end > len(content) || content[offset:end] != old {
		return "", buildMismatch(content, old, offset)
	}
	return content[:offset] + new + content[end:], nil
}

// Occurrences returns how many non-overlapping times fragment occurs in content.
func Occurrences(content, fragment string) int {
	if fragment == "" {
		return 0
	}
	return strings.Count(content, fragment)
}

// buildMismatch describes a fragment that is not where it was expected,
// pointing at the most similar lines of content.
func buildMismatch(content, search string, offset int) *types.SpanMismatch {
	w := closestWindow(content, search)
	return &types.SpanMismatch{
		SearchText:       search,
		Offset:           offset,
		ClosestMatch:     w.text,
		Similarity:       w.sim,
		ClosestLineStart: w.first,
		ClosestLineEnd:   w.last,
	}
}

// WriteFile writes data to a temp file in the same directory, then renames
// it to the target path. The original file's permissions are preserved; a
// new file gets 0644.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".codedoc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
