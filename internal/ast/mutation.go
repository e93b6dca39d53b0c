// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// fragmentHeader turns an isolated declaration into a parseable file.
const fragmentHeader = "package _\n\n"

// InjectDoc parses the isolated source of one function declaration and
// returns it with a "// marker" doc comment when the function has no
// documentation. Documented functions are returned byte-identical. The
// rewritten declaration is re-rendered with go/format.
//
// Returns an error wrapping types.ErrParse if src is not a valid
// declaration, or types.ErrCallableNotFound if no function named name is
// declared in it.
func InjectDoc(src, name, marker string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", fragmentHeader+src, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrParse, name, err)
	}

	fd := findFunc(file, name)
	if fd == nil {
		return "", fmt.Errorf("%w: %s", types.ErrCallableNotFound, name)
	}
	if HasDoc(fd.Doc) {
		return src, nil
	}

	addDocComment(file, fd, marker)

	out, err := FormatFile(fset, file)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return trimFragment(string(out), src), nil
}

// findFunc locates a function or method declaration by its FuncName.
func findFunc(file *ast.File, name string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && FuncName(fd) == name {
			return fd
		}
	}
	return nil
}

// addDocComment makes "// marker" the first line of fd's doc comment.
// Directives already attached to fd stay in the group after the marker.
func addDocComment(file *ast.File, fd *ast.FuncDecl, marker string) {
	anchor := fd.Pos()
	var existing []*ast.Comment
	if fd.Doc != nil {
		anchor = fd.Doc.Pos()
		existing = fd.Doc.List
		removeCommentGroup(file, fd.Doc)
	}

	// The slot before anchor is the newline ending fragmentHeader's blank line.
	c := &ast.Comment{Slash: anchor - 1, Text: "// " + marker}
	fd.Doc = &ast.CommentGroup{List: append([]*ast.Comment{c}, existing...)}

	file.Comments = append(file.Comments, fd.Doc)
	sort.Slice(file.Comments, func(i, j int) bool {
		return file.Comments[i].Pos() < file.Comments[j].Pos()
	})
}

// removeCommentGroup removes a specific comment group from the file's Comments slice.
func removeCommentGroup(file *ast.File, cg *ast.CommentGroup) {
	for i, c := range file.Comments {
		if c == cg {
			file.Comments = append(file.Comments[:i], file.Comments[i+1:]...)
			return
		}
	}
}

// trimFragment strips the package clause added by fragmentHeader and
// restores the trailing newlines of the original fragment.
func trimFragment(out, src string) string {
	out = strings.TrimPrefix(out, "package _")
	out = strings.TrimLeft(out, "\n")
	out = strings.TrimRight(out, "\n")
	return out + src[len(strings.TrimRight(src, "\n")):]
}
