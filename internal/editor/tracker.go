// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// appliedEdit records one replacement in original-text coordinates.
type appliedEdit struct {
	span  types.Span
	delta int // len(new) - len(old)
}

// Tracker maps spans of a file's original text to offsets in its working
// output, given the replacements applied so far. Spans handed to a Tracker
// must not overlap.
type Tracker struct {
	edits []appliedEdit
}

// Offset returns where span currently starts in the working output.
func (t *Tracker) Offset(span types.Span) (int, error) {
	offset := span.Start
	for _, e := range t.edits {
		if e.span.Overlaps(span) {
			return 0, fmt.Errorf("%w: span %d-%d overlaps an earlier replacement at %d-%d",
				types.ErrSpanMismatch, span.Start, span.End, e.span.Start, e.span.End)
		}
		if e.span.End <= span.Start {
			offset += e.delta
		}
	}
	return offset, nil
}

// Record notes that span was replaced by text of length newLen.
func (t *Tracker) Record(span types.Span, newLen int) {
	t.edits = append(t.edits, appliedEdit{span: span, delta: newLen - span.Len()})
}

// Len returns the number of recorded replacements.
func (t *Tracker) Len() int {
	return len(t.edits)
}
