// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pysrc

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/petar-djukic/codedoc/pkg/types"
)

// Node types of the tree-sitter Python grammar used here.
const (
	nodeFunction   = "function_definition"
	nodeDecorated  = "decorated_definition"
	nodeExpression = "expression_statement"
	nodeComment    = "comment"
	nodeAssign     = "assignment"
	nodeAugAssign  = "augmented_assignment"
)

var errSyntax = errors.New("syntax error")

// parse runs the tree-sitter Python parser over src. Trees containing
// error nodes are rejected.
func parse(ctx context.Context, src []byte) (*sitter.Node, error) {
	root, err := sitter.ParseCtx(ctx, src, python.GetLanguage())
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("parser returned no tree")
	}
	if root.HasError() {
		return nil, errSyntax
	}
	return root, nil
}

// ExtractCallables returns the top-level function definitions of every
// file in mod, in source order. Decorated functions span their decorators.
// When a name is defined more than once, the last definition wins, as it
// is the one bound at import time.
func ExtractCallables(ctx context.Context, mod *types.Module) ([]types.Callable, error) {
	var callables []types.Callable

	for _, sf := range mod.Files {
		src := []byte(sf.Original)
		root, err := parse(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", types.ErrParse, sf.Path, err)
		}

		var found []types.Callable
		last := make(map[string]int)
		for i := 0; i < int(root.NamedChildCount()); i++ {
			outer, fn := functionNode(root.NamedChild(i))
			if fn == nil {
				continue
			}
			name := functionName(fn, src)
			if name == "" || types.IsReserved(name) {
				continue
			}
			last[name] = len(found)
			found = append(found, types.Callable{
				Name: name,
				Kind: types.Function,
				File: sf.Path,
				Line: int(fn.StartPoint().Row) + 1,
				Span: types.Span{Start: int(outer.StartByte()), End: int(outer.EndByte())},
			})
		}

		for i, c := range found {
			if last[c.Name] == i {
				callables = append(callables, c)
			}
		}
	}

	return callables, nil
}

// functionNode returns the outermost node of a top-level function
// definition (the decorated_definition when decorators are present) and the
// function_definition itself. Both are nil for anything else.
func functionNode(node *sitter.Node) (outer, fn *sitter.Node) {
	if node == nil {
		return nil, nil
	}
	switch node.Type() {
	case nodeFunction:
		return node, node
	case nodeDecorated:
		def := node.ChildByFieldName("definition")
		if def != nil && def.Type() == nodeFunction {
			return node, def
		}
	}
	return nil, nil
}

// functionName returns the identifier of a function_definition.
func functionName(fn *sitter.Node, src []byte) string {
	name := fn.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return name.Content(src)
}

// findFunction locates the top-level function_definition named name.
func findFunction(root *sitter.Node, src []byte, name string) *sitter.Node {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		_, fn := functionNode(root.NamedChild(i))
		if fn != nil && functionName(fn, src) == name {
			return fn
		}
	}
	return nil
}

// isBareExpression reports whether stmt is an expression statement that is
// not an assignment. The grammar wraps assignments in expression_statement.
func isBareExpression(stmt *sitter.Node) bool {
	if stmt == nil || stmt.Type() != nodeExpression {
		return false
	}
	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		switch stmt.NamedChild(i).Type() {
		case nodeAssign, nodeAugAssign:
			return false
		}
	}
	return true
}
