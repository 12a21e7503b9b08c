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

package syntax

import "iter"

// Edge names the role a child plays in its parent, similar to [edge.Kind] for Go syntax trees.
//
// [edge.Kind]: https://pkg.go.dev/golang.org/x/tools/go/ast/edge#Kind
type Edge uint8

const (
	EdgeNone       Edge = iota
	EdgeReceiver        // call receiver, singleton method object
	EdgeArg             // call argument
	EdgeBlock           // block attached to a call
	EdgeName            // class or module name
	EdgeSuperclass      // class superclass
	EdgeBody            // statement in a body
	EdgeParams          // method or block parameters
	EdgeLeft            // assignment target, binary left operand
	EdgeRight           // assigned value, binary right operand
	EdgeValue           // splat, unary and singleton class operand
	EdgeBegin           // range begin
	EdgeEnd             // range end
	EdgeScope           // constant namespace
	EdgeKey             // hash pair key
	EdgeElement         // array or left-hand side element
)

// Flags carry shape details that matchers and the patch synthesizer depend on.
type Flags uint8

const (
	// Bracketed marks arrays written with delimiters ([...], %w(...), %i(...)).
	Bracketed Flags = 1 << iota

	// Dot marks calls written with an explicit '.' or '&.' operator.
	Dot

	// TopLevel marks constants written with a leading '::'.
	TopLevel

	// Interpolated marks strings and symbols with #{...} parts.
	Interpolated

	// Exclusive marks three-dot ranges.
	Exclusive
)

// Span is a half-open byte range [Start, End) in the original source.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Start }

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool { return s.Start <= o.Start && o.End <= s.End }

// Text returns the source text covered by the span, or "" if it is out of range.
func (s Span) Text(src []byte) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}

	return string(src[s.Start:s.End])
}

// Node is an immutable syntax tree node.
//
// Nodes are assembled once with [NewNode] and [Node.Add] while a tree is built
// and must not be modified afterwards. The parent link is a lookup aid only;
// a tree is owned by its root.
type Node struct {
	kind     Kind
	name     string
	span     Span
	nameSpan Span
	flags    Flags

	parent   *Node
	edge     Edge
	children []*Node
}

// NewNode creates a detached node.
func NewNode(kind Kind, span Span) *Node {
	return &Node{kind: kind, span: span, nameSpan: span}
}

// SetName records the node's name and the span of the name token.
func (n *Node) SetName(name string, span Span) *Node {
	n.name, n.nameSpan = name, span

	return n
}

// SetFlags adds shape flags.
func (n *Node) SetFlags(flags Flags) *Node {
	n.flags |= flags

	return n
}

// Add attaches children under the given edge. Nil children and children
// that already have a parent are skipped.
func (n *Node) Add(e Edge, children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c.parent != nil || c == n {
			continue
		}

		c.parent, c.edge = n, e
		n.children = append(n.children, c)
	}

	return n
}

// Kind returns the node kind. It is safe to call on a nil node.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindInvalid
	}

	return n.kind
}

// Is reports whether the node is of the given kind.
func (n *Node) Is(kind Kind) bool { return n.Kind() == kind }

// Name returns the method, variable, constant or operator text of the node.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}

	return n.name
}

// Span returns the byte range of the node.
func (n *Node) Span() Span { return n.span }

// NameSpan returns the byte range of the name token, or the node span when there is none.
func (n *Node) NameSpan() Span { return n.nameSpan }

// Has reports whether all given flags are set.
func (n *Node) Has(flags Flags) bool { return n != nil && n.flags&flags == flags }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// ParentEdge returns the role of this node in its parent.
func (n *Node) ParentEdge() Edge { return n.edge }

// Children returns the ordered children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// ChildAt returns the i-th child attached under edge e, or nil.
// A negative index counts from the last matching child.
func (n *Node) ChildAt(e Edge, i int) *Node {
	if n == nil {
		return nil
	}

	if i < 0 {
		for j := len(n.children) - 1; j >= 0; j-- {
			if n.children[j].edge != e {
				continue
			}

			if i++; i == 0 {
				return n.children[j]
			}
		}

		return nil
	}

	for _, c := range n.children {
		if c.edge != e {
			continue
		}

		if i == 0 {
			return c
		}

		i--
	}

	return nil
}

// ChildrenAt yields the children attached under edge e.
func (n *Node) ChildrenAt(e Edge) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		for _, c := range n.children {
			if c.edge == e && !yield(c) {
				return
			}
		}
	}
}

// CountAt returns the number of children attached under edge e.
func (n *Node) CountAt(e Edge) int {
	count := 0
	for range n.ChildrenAt(e) {
		count++
	}

	return count
}

// Receiver returns the explicit receiver of a call or singleton method definition.
func (n *Node) Receiver() *Node { return n.ChildAt(EdgeReceiver, 0) }

// Block returns the block attached to a call.
func (n *Node) Block() *Node { return n.ChildAt(EdgeBlock, 0) }

// Args yields the arguments of a call.
func (n *Node) Args() iter.Seq[*Node] { return n.ChildrenAt(EdgeArg) }

// Left returns the left operand or assignment target.
func (n *Node) Left() *Node { return n.ChildAt(EdgeLeft, 0) }

// Right returns the right operand or assigned value.
func (n *Node) Right() *Node { return n.ChildAt(EdgeRight, 0) }

// Value returns the operand of a splat, unary operator or singleton class.
func (n *Node) Value() *Node { return n.ChildAt(EdgeValue, 0) }

// Command reports whether n is a call with an implicit receiver named one of names.
func (n *Node) Command(names ...string) bool {
	if !n.Is(KindCall) && !n.Is(KindIdentifier) {
		return false
	}

	if n.Receiver() != nil {
		return false
	}

	for _, name := range names {
		if n.name == name {
			return true
		}
	}

	return false
}
