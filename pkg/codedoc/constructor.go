// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codedoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/petar-djukic/codedoc/internal/ast"
	internalcodedoc "github.com/petar-djukic/codedoc/internal/codedoc"
	"github.com/petar-djukic/codedoc/internal/pysrc"
	"github.com/petar-djukic/codedoc/pkg/types"
)

const defaultDir = "."

// New validates the config and returns a ready-to-use Documenter.
func New(cfg Config) (Documenter, error) {
	applyDefaults(&cfg)

	lang, strategy, err := validateConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var fe internalcodedoc.Frontend
	switch lang {
	case types.LangPython:
		fe = &pysrc.Frontend{Dir: cfg.Dir, Path: cfg.PythonPath}
	default:
		fe = &ast.Frontend{Dir: cfg.Dir, ExportedOnly: cfg.ExportedOnly}
	}

	runner := internalcodedoc.NewRunner(internalcodedoc.Deps{
		Frontend:     fe,
		Logger:       cfg.Logger,
		Marker:       cfg.Marker,
		Strategy:     strategy,
		Persist:      !cfg.DryRun,
		RequireClean: cfg.RequireClean,
		Commit:       cfg.Commit,
	})

	return &documenterAdapter{runner: runner}, nil
}

// documenterAdapter adapts internal/codedoc.Runner to the public Documenter interface.
type documenterAdapter struct {
	runner *internalcodedoc.Runner
}

func (a *documenterAdapter) Document(ctx context.Context, id string) (*Result, error) {
	report, err := a.runner.Run(ctx, id)
	if report == nil {
		return &Result{Module: id}, err
	}

	res := &Result{
		Module:            report.Module,
		Language:          string(report.Language),
		ModifiedFiles:     report.ModifiedFiles,
		Documented:        report.Documented,
		AlreadyDocumented: report.AlreadyDocumented,
		Persisted:         report.Persisted,
		Committed:         report.Committed,
		Diff:              report.Diff,
	}
	for _, s := range report.Skipped {
		res.Skipped = append(res.Skipped, Skipped{Name: s.Name, Reason: s.Reason})
	}
	return res, err
}

// validateConfig checks option values and parses the enumerated ones.
func validateConfig(cfg Config) (types.Language, internalcodedoc.Strategy, error) {
	lang, err := types.ParseLanguage(cfg.Language)
	if err != nil {
		return "", "", err
	}

	strategy, err := internalcodedoc.ParseStrategy(cfg.Strategy)
	if err != nil {
		return "", "", err
	}

	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		return "", "", fmt.Errorf("Dir %q does not exist or is not a directory", cfg.Dir)
	}

	if err := validateMarker(cfg.Marker, lang); err != nil {
		return "", "", err
	}

	if lang != types.LangGo && cfg.ExportedOnly {
		return "", "", fmt.Errorf("ExportedOnly applies to Go packages only")
	}

	return lang, strategy, nil
}

// validateMarker rejects markers that cannot be rendered as a single
// comment line or string literal.
func validateMarker(marker string, lang types.Language) error {
	if strings.TrimSpace(marker) == "" {
		return fmt.Errorf("Marker must not be blank")
	}
	if strings.ContainsAny(marker, "\r\n") {
		return fmt.Errorf("Marker must be a single line")
	}
	if lang == types.LangPython {
		if strings.Contains(marker, `"""`) || strings.HasSuffix(marker, `\`) || strings.HasSuffix(marker, `"`) {
			return fmt.Errorf("Marker %q cannot be placed in a triple-quoted docstring", marker)
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = string(types.LangGo)
	}
	if cfg.Dir == "" {
		cfg.Dir = defaultDir
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.Strategy == "" {
		cfg.Strategy = string(internalcodedoc.StrategySpan)
	}
}
