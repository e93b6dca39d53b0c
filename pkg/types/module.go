// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Language identifies the source language of a module.
type Language string

const (
	LangGo     Language = "go"
	LangPython Language = "python"
)

// ParseLanguage converts a user-supplied language name into a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangGo, "golang":
		return LangGo, nil
	case LangPython, "py":
		return LangPython, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}

// SourceFile holds one file of a module under transformation.
type SourceFile struct {
	Path     string // Absolute path on disk
	Original string // Snapshot read at resolution time; never mutated
	Output   string // Working output; starts equal to Original
}

// NewSourceFile creates a SourceFile whose output starts as the original text.
func NewSourceFile(path, content string) *SourceFile {
	return &SourceFile{Path: path, Original: content, Output: content}
}

// Changed reports whether the working output differs from the original.
func (f *SourceFile) Changed() bool {
	return f.Output != f.Original
}

// Module is the loaded source unit under transformation.
type Module struct {
	ID       string      // Identifier the module was requested by
	Language Language    // Source language
	Dir      string      // Directory containing the module's files
	Files    []*SourceFile
}

// File returns the source file with the given path, or nil.
func (m *Module) File(path string) *SourceFile {
	for _, f := range m.Files {
		if f.Path == path {
			return f
		}
	}
	return nil
}

// ChangedFiles returns the files whose output differs from the original,
// in module order.
func (m *Module) ChangedFiles() []*SourceFile {
	var changed []*SourceFile
	for _, f := range m.Files {
		if f.Changed() {
			changed = append(changed, f)
		}
	}
	return changed
}

// Source returns the isolated source text of c as it appears in the
// original snapshot of its file.
func (m *Module) Source(c Callable) (string, error) {
	if c.External {
		return "", fmt.Errorf("%w: %s has no body in %s", ErrSourceUnavailable, c.Name, c.File)
	}
	f := m.File(c.File)
	if f == nil {
		return "", fmt.Errorf("%w: %s is defined in %s, which is not part of module %s",
			ErrSourceUnavailable, c.Name, c.File, m.ID)
	}
	if c.Span.Start < 0 || c.Span.End > len(f.Original) || c.Span.Start >= c.Span.End {
		return "", fmt.Errorf("%w: %s has invalid span %d-%d", ErrSourceUnavailable, c.Name, c.Span.Start, c.Span.End)
	}
	return f.Original[c.Span.Start:c.Span.End], nil
}
