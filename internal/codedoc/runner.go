// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package codedoc implements the documentation runner, wiring a language
// front end, the span locator, and persistence to document one module.
package codedoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/petar-djukic/codedoc/internal/editor"
	gitpkg "github.com/petar-djukic/codedoc/internal/git"
	"github.com/petar-djukic/codedoc/pkg/types"
)

// Strategy selects how rewritten callables are located in the working output.
type Strategy string

const (
	// StrategySpan splices each callable at its tracked byte span.
	StrategySpan Strategy = "span"
	// StrategyText replaces the first textual occurrence of the callable.
	StrategyText Strategy = "text"
)

// ParseStrategy converts a user-supplied strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySpan, StrategyText:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategySpan, StrategyText)
	}
}

// Frontend is the language-specific collaborator the runner drives.
type Frontend interface {
	// Resolve loads the module named by id. Errors wrap types.ErrResolution.
	Resolve(ctx context.Context, id string) (*types.Module, error)
	// Callables enumerates the module's public top-level callables in a
	// fixed order.
	Callables(mod *types.Module) ([]types.Callable, error)
	// Source returns a callable's isolated source text. Errors wrap
	// types.ErrSourceUnavailable when the callable has none.
	Source(mod *types.Module, c types.Callable) (string, error)
	// Inject returns src with marker documentation added, or src unchanged
	// when the callable is already documented.
	Inject(src, name, marker string) (string, error)
	// Check verifies that a rewritten file still parses.
	Check(file *types.SourceFile) error
}

// VCS abstracts the git operations used around persistence.
type VCS interface {
	DirtyFiles(paths []string) ([]string, error)
	Commit(paths []string, message string) error
}

// Deps holds injected dependencies and options for the runner.
type Deps struct {
	Frontend     Frontend
	Logger       *log.Logger // Defaults to a discarding logger
	Marker       string      // Placeholder documentation text
	Strategy     Strategy    // Defaults to StrategySpan
	Persist      bool        // Write changed files; otherwise render a diff
	RequireClean bool        // Refuse to overwrite files with uncommitted changes
	Commit       bool        // Commit rewritten files
	VCS          VCS         // Overrides opening the git repository; used by tests
}

// Runner documents modules.
type Runner struct {
	deps Deps
	log  *log.Logger
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if deps.Strategy == "" {
		deps.Strategy = StrategySpan
	}
	return &Runner{deps: deps, log: logger}
}

// Run resolves the module named by id, documents every undocumented
// callable, verifies the rewritten files, and then persists them or
// renders a diff. Nothing is written unless every step succeeds.
func (r *Runner) Run(ctx context.Context, id string) (*types.Report, error) {
	fe := r.deps.Frontend

	mod, err := fe.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	report := &types.Report{Module: id, Language: mod.Language}

	callables, err := fe.Callables(mod)
	if err != nil {
		return report, fmt.Errorf("enumerating callables of %s: %w", id, err)
	}
	r.log.Debug("resolved module", "module", id, "files", len(mod.Files), "callables", len(callables))

	trackers := make(map[string]*editor.Tracker)
	for _, c := range callables {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src, err := fe.Source(mod, c)
		if errors.Is(err, types.ErrSourceUnavailable) {
			r.log.Warn("skipping callable", "callable", c.Name, "err", err)
			report.Skipped = append(report.Skipped, types.SkippedCallable{Name: c.Name, Reason: err.Error()})
			continue
		}
		if err != nil {
			return report, fmt.Errorf("reading source of %s: %w", c.Name, err)
		}

		updated, err := fe.Inject(src, c.Name, r.deps.Marker)
		if err != nil {
			return report, fmt.Errorf("documenting %s in %s: %w", c.Name, c.File, err)
		}
		if updated == src {
			report.AlreadyDocumented = append(report.AlreadyDocumented, c.Name)
			continue
		}

		if err := r.splice(mod, c, src, updated, trackers); err != nil {
			return report, err
		}
		report.Documented = append(report.Documented, c.Name)
		r.log.Debug("documented", "callable", c.Name, "file", c.File, "line", c.Line)
	}

	changed := mod.ChangedFiles()
	for _, f := range changed {
		if err := fe.Check(f); err != nil {
			return report, err
		}
		report.ModifiedFiles = append(report.ModifiedFiles, f.Path)
	}

	if !r.deps.Persist {
		report.Diff = renderDiff(mod.Dir, changed)
		return report, nil
	}
	if len(changed) == 0 {
		r.log.Info("nothing to document", "module", id, "documented", len(report.AlreadyDocumented))
		return report, nil
	}
	return report, r.persist(mod, report, changed)
}

// splice substitutes updated for old in the working output of c's file.
func (r *Runner) splice(mod *types.Module, c types.Callable, old, updated string, trackers map[string]*editor.Tracker) error {
	f := mod.File(c.File)
	if f == nil {
		return fmt.Errorf("%w: %s belongs to unknown file %s", types.ErrSpanMismatch, c.Name, c.File)
	}

	var out string
	var err error
	switch r.deps.Strategy {
	case StrategyText:
		if n := editor.Occurrences(f.Output, old); n > 1 {
			r.log.Warn("source occurs more than once; replacing the first occurrence",
				"callable", c.Name, "occurrences", n)
		}
		out, err = editor.Replace(f.Output, old, updated)
	default:
		tr := trackers[f.Path]
		if tr == nil {
			tr = &editor.Tracker{}
			trackers[f.Path] = tr
		}
		var offset int
		offset, err = tr.Offset(c.Span)
		if err == nil {
			out, err = editor.ReplaceAt(f.Output, offset, old, updated)
		}
		if err == nil {
			tr.Record(c.Span, len(updated))
		}
	}

	if err != nil {
		var mm *types.SpanMismatch
		if errors.As(err, &mm) {
			mm.FilePath = f.Path
			mm.Callable = c.Name
		}
		return fmt.Errorf("splicing %s: %w", c.Name, err)
	}

	f.Output = out
	return nil
}

// persist writes every changed file and optionally guards and commits the
// rewrite with git.
func (r *Runner) persist(mod *types.Module, report *types.Report, changed []*types.SourceFile) error {
	paths := make([]string, len(changed))
	for i, f := range changed {
		paths[i] = f.Path
	}

	var vcs VCS
	if r.deps.RequireClean || r.deps.Commit {
		v, err := r.openVCS(mod.Dir)
		if err != nil {
			return err
		}
		vcs = v
	}

	if r.deps.RequireClean {
		dirty, err := vcs.DirtyFiles(paths)
		if err != nil {
			return fmt.Errorf("checking working tree: %w", err)
		}
		if len(dirty) > 0 {
			return fmt.Errorf("%w: %s", gitpkg.ErrDirtyWorkTree, strings.Join(dirty, ", "))
		}
	}

	for _, f := range changed {
		if err := editor.WriteFile(f.Path, []byte(f.Output)); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	report.Persisted = true
	r.log.Info("rewrote module", "module", mod.ID, "files", len(changed), "documented", len(report.Documented))

	if r.deps.Commit {
		msg := gitpkg.GenerateMessage(mod.ID, report.Documented, paths)
		if err := vcs.Commit(paths, msg); err != nil {
			return fmt.Errorf("committing rewrite: %w", err)
		}
		report.Committed = true
	}

	return nil
}

// openVCS returns the injected VCS or opens the repository containing dir.
func (r *Runner) openVCS(dir string) (VCS, error) {
	if r.deps.VCS != nil {
		return r.deps.VCS, nil
	}
	repo, err := gitpkg.Open(gitpkg.Config{WorkDir: dir})
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}
	return repo, nil
}
