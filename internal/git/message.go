// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"strings"
)

const maxSubjectLength = 72

// GenerateMessage creates a conventional commit message for a rewrite of
// module that documented the given callables in files.
func GenerateMessage(module string, documented, files []string) string {
	msg := buildSubject(module)
	if body := buildBody(documented, files); body != "" {
		msg += "\n\n" + body
	}
	return msg
}

// buildSubject creates the first line of the commit message.
// Format: "docs: ..." (max 72 chars).
func buildSubject(module string) string {
	subject := fmt.Sprintf("docs: add placeholder documentation to %s", module)
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}
	return subject
}

// buildBody lists the documented callables and modified files.
func buildBody(documented, files []string) string {
	var buf strings.Builder
	if len(documented) > 0 {
		buf.WriteString("Documented:\n")
		for _, name := range documented {
			buf.WriteString(fmt.Sprintf("- %s\n", name))
		}
	}
	if len(files) > 0 {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("Modified files:\n")
		for _, f := range files {
			buf.WriteString(fmt.Sprintf("- %s\n", f))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}
