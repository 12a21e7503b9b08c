// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package rubyparse

import (
	"bytes"
	"iter"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/threadsafety/internal/syntax"
)

// leafKinds maps tree-sitter node types without relevant children.
var leafKinds = map[string]syntax.Kind{
	"instance_variable": syntax.KindIvar,
	"class_variable":    syntax.KindCvar,
	"global_variable":   syntax.KindGvar,
	"identifier":        syntax.KindIdentifier,
	"constant":          syntax.KindConst,
	"integer":           syntax.KindInteger,
	"float":             syntax.KindFloat,
	"rational":          syntax.KindNumber,
	"complex":           syntax.KindNumber,
	"nil":               syntax.KindNil,
	"true":              syntax.KindTrue,
	"false":             syntax.KindFalse,
	"self":              syntax.KindSelf,
	"heredoc_beginning": syntax.KindHeredoc,
}

// textKinds maps tree-sitter node types for literals that may contain interpolation.
var textKinds = map[string]syntax.Kind{
	"string":           syntax.KindString,
	"bare_string":      syntax.KindString,
	"subshell":         syntax.KindXString,
	"simple_symbol":    syntax.KindSymbol,
	"hash_key_symbol":  syntax.KindSymbol,
	"delimited_symbol": syntax.KindSymbol,
	"bare_symbol":      syntax.KindSymbol,
	"regex":            syntax.KindRegexp,
}

// converter turns a tree-sitter concrete syntax tree into a [syntax.Node] tree.
type converter struct {
	src      []byte
	comments []syntax.Comment
}

func (c *converter) convert(n *sitter.Node) *syntax.Node {
	if n == nil {
		return nil
	}

	switch t := n.Type(); t {
	case "comment":
		return nil

	case "program":
		node := syntax.NewNode(syntax.KindProgram, span(n))
		c.body(node, n)
		c.collectComments(n)

		return node

	case "class", "module":
		return c.class(n)

	case "singleton_class":
		value := n.ChildByFieldName("value")
		node := syntax.NewNode(syntax.KindSingletonClass, span(n)).Add(syntax.EdgeValue, c.convert(value))
		c.body(node, n, value)

		return node

	case "method", "singleton_method":
		return c.def(n)

	case "call", "method_call":
		return c.call(n)

	case "element_reference":
		return c.elementReference(n)

	case "block", "do_block":
		params := n.ChildByFieldName("parameters")
		node := syntax.NewNode(syntax.KindBlock, span(n)).Add(syntax.EdgeParams, c.convert(params))
		c.body(node, n, params)

		return node

	case "method_parameters", "block_parameters", "lambda_parameters":
		return c.generic(syntax.KindParams, n)

	case "scope_resolution":
		return c.scopeResolution(n)

	case "assignment":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")

		kind := syntax.KindAssign
		if left != nil && left.Type() == "left_assignment_list" {
			kind = syntax.KindMultiAssign
		}

		return syntax.NewNode(kind, span(n)).
			Add(syntax.EdgeLeft, c.convert(left)).
			Add(syntax.EdgeRight, c.convert(right))

	case "operator_assignment":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		op := c.operator(n, left, right)

		return syntax.NewNode(syntax.KindOpAssign, span(n)).
			SetName(op.text, op.span).
			Add(syntax.EdgeLeft, c.convert(left)).
			Add(syntax.EdgeRight, c.convert(right))

	case "left_assignment_list", "destructured_left_assignment":
		return c.list(syntax.NewNode(syntax.KindMlhs, span(n)), n, syntax.EdgeElement)

	case "right_assignment_list":
		return c.list(syntax.NewNode(syntax.KindArray, span(n)), n, syntax.EdgeElement)

	case "array", "string_array", "symbol_array":
		node := syntax.NewNode(syntax.KindArray, span(n)).SetFlags(syntax.Bracketed)

		return c.list(node, n, syntax.EdgeElement)

	case "hash":
		return c.list(syntax.NewNode(syntax.KindHash, span(n)), n, syntax.EdgeElement)

	case "pair":
		return syntax.NewNode(syntax.KindPair, span(n)).
			Add(syntax.EdgeKey, c.convert(n.ChildByFieldName("key"))).
			Add(syntax.EdgeValue, c.convert(n.ChildByFieldName("value")))

	case "splat_argument", "rest_assignment":
		node := syntax.NewNode(syntax.KindSplat, span(n))
		for child := range named(n) {
			c.add(node, syntax.EdgeValue, child)
		}

		return node

	case "range":
		return c.rangeLiteral(n)

	case "binary":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		op := c.operator(n, left, right)

		return syntax.NewNode(syntax.KindBinary, span(n)).
			SetName(op.text, op.span).
			Add(syntax.EdgeLeft, c.convert(left)).
			Add(syntax.EdgeRight, c.convert(right))

	case "unary":
		operand := n.ChildByFieldName("operand")
		op := c.operator(n, nil, operand)

		return syntax.NewNode(syntax.KindUnary, span(n)).
			SetName(op.text, op.span).
			Add(syntax.EdgeValue, c.convert(operand))

	case "parenthesized_statements":
		return c.generic(syntax.KindParens, n)

	case "interpolation":
		return c.generic(syntax.KindInterpolation, n)

	case "chained_string":
		node := syntax.NewNode(syntax.KindString, span(n))
		for child := range named(n) {
			part := c.convert(child)
			if part.Has(syntax.Interpolated) {
				node.SetFlags(syntax.Interpolated)
			}

			node.Add(syntax.EdgeElement, part)
		}

		return node

	case "ERROR":
		return c.generic(syntax.KindError, n)

	default:
		if kind, ok := leafKinds[t]; ok {
			return syntax.NewNode(kind, span(n)).SetName(c.text(n), span(n))
		}

		if kind, ok := textKinds[t]; ok {
			return c.textLiteral(kind, n)
		}

		return c.generic(syntax.KindStatement, n)
	}
}

// class converts class and module definitions.
func (c *converter) class(n *sitter.Node) *syntax.Node {
	kind := syntax.KindClass
	if n.Type() == "module" {
		kind = syntax.KindModule
	}

	node := syntax.NewNode(kind, span(n))

	name := n.ChildByFieldName("name")
	if nn := c.convert(name); nn != nil {
		node.SetName(nn.Name(), nn.NameSpan()).Add(syntax.EdgeName, nn)
	}

	superclass := n.ChildByFieldName("superclass")
	if superclass != nil {
		for child := range named(superclass) {
			node.Add(syntax.EdgeSuperclass, c.convert(child))
		}
	}

	c.body(node, n, name, superclass)

	return node
}

// def converts instance and singleton method definitions.
func (c *converter) def(n *sitter.Node) *syntax.Node {
	kind := syntax.KindDef

	object := n.ChildByFieldName("object")
	if n.Type() == "singleton_method" {
		kind = syntax.KindDefs
	}

	node := syntax.NewNode(kind, span(n))

	name := n.ChildByFieldName("name")
	if name != nil {
		node.SetName(c.text(name), span(name))
	}

	params := n.ChildByFieldName("parameters")

	node.Add(syntax.EdgeReceiver, c.convert(object)).Add(syntax.EdgeParams, c.convert(params))
	c.body(node, n, object, name, params)

	return node
}

// call converts method calls, normalizing the legacy method_call wrapper.
func (c *converter) call(n *sitter.Node) *syntax.Node {
	receiver := n.ChildByFieldName("receiver")
	method := n.ChildByFieldName("method")
	arguments := n.ChildByFieldName("arguments")
	block := n.ChildByFieldName("block")

	var inner *sitter.Node
	if n.Type() == "method_call" && method != nil && method.Type() == "call" {
		inner = method
		receiver, method = inner.ChildByFieldName("receiver"), inner.ChildByFieldName("method")
	}

	node := syntax.NewNode(syntax.KindCall, span(n))

	if method != nil {
		node.SetName(c.text(method), span(method))
	}

	if receiver != nil {
		node.Add(syntax.EdgeReceiver, c.convert(receiver))

		if method != nil && method.StartByte() >= receiver.EndByte() &&
			bytes.Contains(c.src[receiver.EndByte():method.StartByte()], []byte(".")) {
			node.SetFlags(syntax.Dot)
		}
	}

	if arguments != nil {
		c.list(node, arguments, syntax.EdgeArg)
	}

	node.Add(syntax.EdgeBlock, c.convert(block))

	for child := range named(n) {
		switch {
		case same(child, receiver), same(child, method), same(child, arguments), same(child, block), same(child, inner):

		case child.Type() == "block" || child.Type() == "do_block":
			node.Add(syntax.EdgeBlock, c.convert(child))

		case child.Type() == "argument_list":
			c.list(node, child, syntax.EdgeArg)

		default:
			c.add(node, syntax.EdgeNone, child)
		}
	}

	return node
}

// elementReference converts recv[args] into a call of the [] method.
func (c *converter) elementReference(n *sitter.Node) *syntax.Node {
	object := n.ChildByFieldName("object")

	node := syntax.NewNode(syntax.KindCall, span(n))
	if object != nil {
		node.SetName("[]", syntax.Span{Start: int(object.EndByte()), End: int(n.EndByte())})
	} else {
		node.SetName("[]", span(n))
	}

	node.Add(syntax.EdgeReceiver, c.convert(object))

	for child := range named(n) {
		switch {
		case same(child, object):

		case child.Type() == "block" || child.Type() == "do_block":
			node.Add(syntax.EdgeBlock, c.convert(child))

		default:
			c.add(node, syntax.EdgeArg, child)
		}
	}

	return node
}

// scopeResolution converts Scope::Name and ::Name constant paths.
func (c *converter) scopeResolution(n *sitter.Node) *syntax.Node {
	node := syntax.NewNode(syntax.KindConst, span(n))

	if name := n.ChildByFieldName("name"); name != nil {
		node.SetName(c.text(name), span(name))
	}

	if scope := n.ChildByFieldName("scope"); scope != nil {
		node.Add(syntax.EdgeScope, c.convert(scope))
	} else {
		node.SetFlags(syntax.TopLevel)
	}

	return node
}

func (c *converter) rangeLiteral(n *sitter.Node) *syntax.Node {
	begin, end := n.ChildByFieldName("begin"), n.ChildByFieldName("end")
	op := c.operator(n, begin, end)

	node := syntax.NewNode(syntax.KindRange, span(n)).
		SetName(op.text, op.span).
		Add(syntax.EdgeBegin, c.convert(begin)).
		Add(syntax.EdgeEnd, c.convert(end))

	if op.text == "..." {
		node.SetFlags(syntax.Exclusive)
	}

	return node
}

// textLiteral converts strings, symbols and regular expressions.
// The name of a literal without interpolation is its value.
func (c *converter) textLiteral(kind syntax.Kind, n *sitter.Node) *syntax.Node {
	node := syntax.NewNode(kind, span(n))

	var (
		value strings.Builder
		parts int
	)

	for child := range named(n) {
		switch child.Type() {
		case "interpolation":
			node.SetFlags(syntax.Interpolated).Add(syntax.EdgeBody, c.convert(child))

		case "string_content", "escape_sequence":
			value.WriteString(c.text(child)) // ignore error
			parts++
		}
	}

	switch {
	case node.Has(syntax.Interpolated):

	case parts > 0:
		node.SetName(value.String(), span(n))

	default:
		text := c.text(n)
		if kind == syntax.KindSymbol {
			text = strings.TrimSuffix(strings.TrimPrefix(text, ":"), ":")
		}

		if kind == syntax.KindString && len(text) >= 2 && (text[0] == '\'' || text[0] == '"') {
			text = text[1 : len(text)-1]
		}

		node.SetName(text, span(n))
	}

	return node
}

// generic converts any other construct, keeping all named children as body.
func (c *converter) generic(kind syntax.Kind, n *sitter.Node) *syntax.Node {
	node := syntax.NewNode(kind, span(n))
	c.body(node, n)

	return node
}

// body adds the named children of n to parent, flattening nested statement bodies.
func (c *converter) body(parent *syntax.Node, n *sitter.Node, skip ...*sitter.Node) {
	for child := range named(n) {
		switch {
		case slices.ContainsFunc(skip, func(s *sitter.Node) bool { return same(s, child) }):

		case child.Type() == "body_statement" || child.Type() == "block_body":
			c.body(parent, child)

		default:
			c.add(parent, syntax.EdgeBody, child)
		}
	}
}

// list adds the named children of n to node under edge e.
func (c *converter) list(node *syntax.Node, n *sitter.Node, e syntax.Edge) *syntax.Node {
	for child := range named(n) {
		c.add(node, e, child)
	}

	return node
}

// add converts child and attaches it under e. Heredoc bodies are extras
// that may appear anywhere; they never take a positional role.
func (c *converter) add(parent *syntax.Node, e syntax.Edge, child *sitter.Node) {
	if child.Type() == "heredoc_body" {
		e = syntax.EdgeNone
	}

	parent.Add(e, c.convert(child))
}

type operatorToken struct {
	text string
	span syntax.Span
}

// operator returns the operator token of n, located between left and right.
func (c *converter) operator(n, left, right *sitter.Node) operatorToken {
	if op := n.ChildByFieldName("operator"); op != nil {
		return operatorToken{c.text(op), span(op)}
	}

	start, end := int(n.StartByte()), int(n.EndByte())
	if left != nil {
		start = int(left.EndByte())
	}

	if right != nil {
		end = int(right.StartByte())
	}

	if start > end {
		return operatorToken{}
	}

	raw := c.src[start:end]
	trimmed := bytes.TrimLeft(raw, " \t\r\n\\")
	start += len(raw) - len(trimmed)
	trimmed = bytes.TrimRight(trimmed, " \t\r\n\\")

	return operatorToken{string(trimmed), syntax.Span{Start: start, End: start + len(trimmed)}}
}

// collectComments records all comments below n in source order.
func (c *converter) collectComments(n *sitter.Node) {
	stack := []*sitter.Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.Type() == "comment" {
			c.comment(top)

			continue
		}

		for i := int(top.NamedChildCount()) - 1; i >= 0; i-- {
			if child := top.NamedChild(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

func (c *converter) comment(n *sitter.Node) {
	s := span(n)
	lineStart := bytes.LastIndexByte(c.src[:s.Start], '\n') + 1
	trailing := len(bytes.TrimSpace(c.src[lineStart:s.Start])) > 0

	c.comments = append(c.comments, syntax.Comment{Span: s, Text: c.text(n), Trailing: trailing})
}

func (c *converter) text(n *sitter.Node) string { return n.Content(c.src) }

func span(n *sitter.Node) syntax.Span {
	return syntax.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

// same reports whether a and b denote the same concrete syntax node.
func same(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// named yields the named children of n.
func named(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			child := n.NamedChild(i)
			if child == nil {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}
