// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across codedoc packages.
package types

import "strings"

// CallableKind identifies the category of a callable.
type CallableKind int

const (
	Function CallableKind = iota // Top-level function
	Method                       // Method declaration (has receiver)
)

// String returns the human-readable name of the callable kind.
func (k CallableKind) String() string {
	switch k {
	case Function:
		return "Function"
	case Method:
		return "Method"
	default:
		return "Unknown"
	}
}

// Span is a half-open byte range [Start, End) into a file's original text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Callable is one top-level callable discovered in a module.
type Callable struct {
	Name     string       // Unique within the module ("Add", "Server.Start")
	Kind     CallableKind // Function or method
	File     string       // Path of the owning SourceFile
	Line     int          // Line of the definition keyword (1-based)
	Span     Span         // Definition span including doc comments and decorators
	External bool         // Implemented outside inspectable source (no body)
}

// reservedAffix marks names that are never enumerated.
const reservedAffix = "__"

// IsReserved reports whether name starts or ends with the reserved
// double-underscore marker.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, reservedAffix) || strings.HasSuffix(name, reservedAffix)
}
