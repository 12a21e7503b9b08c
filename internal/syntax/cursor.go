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

import (
	"iter"
	"slices"
)

// Ancestors yields the ancestors of n, innermost first, ending with the root.
// Each call returns a fresh sequence.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Path returns the materialized ancestor chain of n, innermost first.
func (n *Node) Path() []*Node {
	return slices.Collect(n.Ancestors())
}

// ChildOfKind returns the first direct child of the given kind.
func (n *Node) ChildOfKind(kind Kind) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.children {
		if c.kind == kind {
			return c
		}
	}

	return nil
}

// IsDescendantOf reports whether n is a proper descendant of b.
func (n *Node) IsDescendantOf(b *Node) bool {
	if b == nil {
		return false
	}

	for p := range n.Ancestors() {
		if p == b {
			return true
		}
	}

	return false
}

// Enclosing returns the innermost ancestor of one of the given kinds.
func (n *Node) Enclosing(kinds ...Kind) *Node {
	for p := range n.Ancestors() {
		if slices.Contains(kinds, p.kind) {
			return p
		}
	}

	return nil
}

// LeftSiblings yields the siblings preceding n, nearest first.
func (n *Node) LeftSiblings() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil || n.parent == nil {
			return
		}

		siblings := n.parent.children
		i := slices.Index(siblings, n)
		for j := i - 1; j >= 0; j-- {
			if !yield(siblings[j]) {
				return
			}
		}
	}
}

// RightSiblings yields the siblings following n, nearest first.
func (n *Node) RightSiblings() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil || n.parent == nil {
			return
		}

		siblings := n.parent.children
		i := slices.Index(siblings, n)
		if i < 0 {
			return
		}

		for _, s := range siblings[i+1:] {
			if !yield(s) {
				return
			}
		}
	}
}

// Preorder yields n and all its descendants in depth-first pre-order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		stack := []*Node{n}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(top) {
				return
			}

			for i := len(top.children) - 1; i >= 0; i-- {
				stack = append(stack, top.children[i])
			}
		}
	}
}
