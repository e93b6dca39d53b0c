// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// window is a run of whole lines of content compared against a fragment.
type window struct {
	text  string
	sim   float64
	first int // 1-based first line
	last  int // 1-based last line
}

// closestWindow slides a window as tall as search over the lines of content
// and returns the most similar one. The zero window means nothing resembles
// search at all.
func closestWindow(content, search string) window {
	if search == "" || content == "" {
		return window{}
	}

	lines := strings.Split(content, "\n")
	height := min(strings.Count(search, "\n")+1, len(lines))

	var best window
	for i := 0; i+height <= len(lines); i++ {
		text := strings.Join(lines[i:i+height], "\n")
		if s := similarity(text, search); s > best.sim {
			best = window{text: text, sim: s, first: i + 1, last: i + height}
		}
	}
	return best
}

// similarity is 1 minus the Levenshtein distance between a and b, as
// computed by go-diff, over the rune length of the longer string.
func similarity(a, b string) float64 {
	switch {
	case a == b:
		return 1
	case a == "" || b == "":
		return 0
	}

	dmp := diffmatchpatch.New()
	distance := dmp.DiffLevenshtein(dmp.DiffMain(a, b, false))
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return 1 - float64(distance)/float64(longest)
}
