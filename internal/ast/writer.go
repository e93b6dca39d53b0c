// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// FormatFile renders an *ast.File to a byte slice using go/format.Node,
// producing gofmt-compliant output.
func FormatFile(fset *token.FileSet, file *ast.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("formatting AST: %w", err)
	}
	return buf.Bytes(), nil
}

// CheckSource verifies that content is still a parseable Go file.
func CheckSource(path, content string) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, path, content, parser.ParseComments); err != nil {
		return fmt.Errorf("%w: rewritten %s: %v", types.ErrParse, path, err)
	}
	return nil
}
