// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"fmt"
)

// Error kinds shared by the front ends and the orchestrator.
var (
	ErrResolution        = errors.New("module could not be resolved")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrParse             = errors.New("parse failure")
	ErrCallableNotFound  = errors.New("callable definition not found")
	ErrSpanMismatch      = errors.New("span mismatch")
)

// SpanMismatch describes why a callable's text could not be located in the
// working output, with the closest region found for diagnostics.
type SpanMismatch struct {
	FilePath         string  // File whose output was searched
	Callable         string  // Callable being spliced (filled by the orchestrator)
	SearchText       string  // What we searched for
	Offset           int     // Expected offset, or -1 for a text search
	ClosestMatch     string  // Best partial match found (empty if none)
	Similarity       float64 // Similarity score of closest match
	ClosestLineStart int     // Starting line of the closest match (1-based)
	ClosestLineEnd   int     // Ending line of the closest match (1-based)
}

func (d *SpanMismatch) Error() string {
	where := d.FilePath
	if d.Callable != "" {
		where = fmt.Sprintf("%s (%s)", d.FilePath, d.Callable)
	}
	if d.ClosestMatch == "" {
		return fmt.Sprintf("%v: source of %s not found in working output", ErrSpanMismatch, where)
	}
	return fmt.Sprintf("%v: source of %s not found in working output (closest match at lines %d-%d, similarity %.2f)",
		ErrSpanMismatch, where, d.ClosestLineStart, d.ClosestLineEnd, d.Similarity)
}

// Is makes errors.Is(err, ErrSpanMismatch) match any *SpanMismatch.
func (d *SpanMismatch) Is(target error) bool {
	return target == ErrSpanMismatch
}
