// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pysrc

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// bodyIndent is added to the def line's indentation when a body written on
// the def line has to be moved onto its own line.
const bodyIndent = "    "

// InjectDocstring parses the isolated source of one top-level function and
// returns it with a """marker""" docstring as the first body statement when
// the first statement is not already a bare expression. Documented
// functions are returned byte-identical. Decorators and the remaining body
// are kept verbatim.
func InjectDocstring(src, name, marker string) (string, error) {
	code := []byte(src)
	root, err := parse(context.Background(), code)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrParse, name, err)
	}

	fn := findFunction(root, code, name)
	if fn == nil {
		return "", fmt.Errorf("%w: %s", types.ErrCallableNotFound, name)
	}

	stmt := firstStatement(fn.ChildByFieldName("body"))
	if stmt == nil {
		return "", fmt.Errorf("%w: %s: function body has no statements", types.ErrParse, name)
	}
	if isBareExpression(stmt) {
		return src, nil
	}

	return insertDocstring(src, fn, stmt, Docstring(marker)), nil
}

// Docstring renders marker as a triple-quoted string literal.
func Docstring(marker string) string {
	return `"""` + marker + `"""`
}

// firstStatement returns the first named child of a block that is not a comment.
func firstStatement(body *sitter.Node) *sitter.Node {
	if body == nil {
		return nil
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() != nodeComment {
			return child
		}
	}
	return nil
}

// insertDocstring places doc on its own line before stmt.
func insertDocstring(src string, fn, stmt *sitter.Node, doc string) string {
	at := int(stmt.StartByte())
	lineStart := strings.LastIndexByte(src[:at], '\n') + 1
	if indent := src[lineStart:at]; strings.TrimSpace(indent) == "" {
		return src[:lineStart] + indent + doc + "\n" + src[lineStart:]
	}

	// The body shares the def line.
	defStart := int(fn.StartByte())
	defLine := strings.LastIndexByte(src[:defStart], '\n') + 1
	indent := leadingWhitespace(src[defLine:]) + bodyIndent
	head := strings.TrimRight(src[:at], " \t")
	return head + "\n" + indent + doc + "\n" + indent + src[at:]
}

// leadingWhitespace returns the run of spaces and tabs at the start of s.
func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
