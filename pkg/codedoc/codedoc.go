// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package codedoc defines the public interface for codedoc, a tool that adds
// placeholder documentation to every undocumented top-level function of a
// Go package or Python module.
package codedoc

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	gitpkg "github.com/petar-djukic/codedoc/internal/git"
	"github.com/petar-djukic/codedoc/pkg/types"
)

// DefaultMarker is the placeholder documentation text.
const DefaultMarker = "Added by CodeDoc"

// Error types for the codedoc API. All but ErrInvalidConfig are returned
// wrapped; test for them with errors.Is.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrResolution        = types.ErrResolution
	ErrSourceUnavailable = types.ErrSourceUnavailable
	ErrParse             = types.ErrParse
	ErrCallableNotFound  = types.ErrCallableNotFound
	ErrSpanMismatch      = types.ErrSpanMismatch
	ErrDirtyFiles        = gitpkg.ErrDirtyWorkTree
)

// Config configures a Documenter.
type Config struct {
	Language     string      // "go" (default) or "python"
	Dir          string      // Directory modules are resolved from (default ".")
	PythonPath   []string    // Extra Python search roots
	Marker       string      // Placeholder text (default DefaultMarker)
	Strategy     string      // "span" (default) or "text"
	DryRun       bool        // Render a diff instead of writing files
	ExportedOnly bool        // Go only: skip unexported functions and methods
	RequireClean bool        // Refuse to overwrite files with uncommitted changes
	Commit       bool        // Commit rewritten files
	Logger       *log.Logger // Optional; defaults to discarding output
}

// Skipped records a callable that was excluded from transformation.
type Skipped struct {
	Name   string
	Reason string
}

// Result holds the outcome of a Documenter.Document invocation.
type Result struct {
	Module            string
	Language          string
	ModifiedFiles     []string // Files whose text changed
	Documented        []string // Callables that received the marker
	AlreadyDocumented []string // Callables left byte-identical
	Skipped           []Skipped
	Persisted         bool   // True if the modified files were written
	Committed         bool   // True if the rewrite was committed
	Diff              string `json:"-"` // Unified diff of the rewrite (dry run only)
}

// Documenter adds placeholder documentation to modules.
type Documenter interface {
	// Document resolves the module named by id, documents every
	// undocumented callable, and writes the module back (or renders a
	// diff in dry-run mode). No file is written if any step fails.
	Document(ctx context.Context, id string) (*Result, error)
}
