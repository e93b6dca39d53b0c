// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// SkippedCallable records a callable excluded from transformation.
type SkippedCallable struct {
	Name   string // Callable name
	Reason string // Why it was skipped
}

// Report describes the outcome of documenting one module.
type Report struct {
	Module            string
	Language          Language
	ModifiedFiles     []string          // Files whose output changed
	Documented        []string          // Callables that received the marker
	AlreadyDocumented []string          // Callables left untouched
	Skipped           []SkippedCallable // Callables excluded from transformation
	Persisted         bool              // True once changed files were written
	Committed         bool              // True if the rewrite was committed
	Diff              string            // Unified diff (dry run only)
}
