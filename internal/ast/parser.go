// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ast is the Go front end: it resolves packages, extracts their
// top-level functions and methods, and injects placeholder doc comments.
package ast

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// ExtractCallables parses every file of mod and returns its top-level
// functions and methods in file order, then source order. Generated files
// are skipped, as are init, blank and reserved names. When exportedOnly is
// set, unexported functions and methods are skipped too.
func ExtractCallables(mod *types.Module, exportedOnly bool) ([]types.Callable, error) {
	var callables []types.Callable

	for _, sf := range mod.Files {
		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, sf.Path, sf.Original, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrParse, sf.Path, err)
		}
		if ast.IsGenerated(file) {
			continue
		}

		tf := fset.File(file.Pos())
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || skipFunc(fd, exportedOnly) {
				continue
			}
			callables = append(callables, extractCallable(fset, tf, sf.Path, fd))
		}
	}

	return callables, nil
}

// skipFunc reports whether fd is excluded from enumeration.
func skipFunc(fd *ast.FuncDecl, exportedOnly bool) bool {
	name := fd.Name.Name
	switch {
	case name == "_":
		return true
	case name == "init" && fd.Recv == nil:
		return true
	case types.IsReserved(name):
		return true
	case exportedOnly && !fd.Name.IsExported():
		return true
	}
	return false
}

// extractCallable builds a Callable for fd. The span starts at the doc
// comment when there is one, so that directives travel with the function.
func extractCallable(fset *token.FileSet, tf *token.File, path string, fd *ast.FuncDecl) types.Callable {
	kind := types.Function
	if fd.Recv != nil {
		kind = types.Method
	}

	start := fd.Pos()
	if fd.Doc != nil {
		start = fd.Doc.Pos()
	}

	return types.Callable{
		Name:     FuncName(fd),
		Kind:     kind,
		File:     path,
		Line:     fset.Position(fd.Pos()).Line,
		Span:     types.Span{Start: tf.Offset(start), End: tf.Offset(fd.End())},
		External: fd.Body == nil,
	}
}

// FuncName returns the package-unique name of a function declaration:
// "Name" for functions and "Recv.Name" for methods. Pointer receivers and
// type parameter lists are stripped, so "func (s *Set[T]) Add()" is "Set.Add".
func FuncName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	return receiverName(fd.Recv.List[0].Type) + "." + fd.Name.Name
}

// receiverName renders the base type name of a receiver expression.
func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// HasDoc reports whether a comment group carries documentation text.
// Groups made only of directives such as //go:noinline do not count.
func HasDoc(cg *ast.CommentGroup) bool {
	return docText(cg) != ""
}

// docText extracts the text from a comment group, trimming whitespace.
func docText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}
