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

import "slices"

// Directive is the state of a file-scoped magic comment.
type Directive uint8

const (
	// DirectiveUnset means the magic comment is absent.
	DirectiveUnset Directive = iota

	// DirectiveTrue means the magic comment is present with value true.
	DirectiveTrue

	// DirectiveFalse means the magic comment is present with any other value.
	DirectiveFalse
)

// Comment is a source comment.
type Comment struct {
	Span Span
	Text string

	// Trailing is set when code precedes the comment on the same line.
	Trailing bool
}

// Tree is a parsed source file.
type Tree struct {
	Root   *Node
	Source []byte

	// FrozenStringLiteral is the state of the `# frozen_string_literal:` magic comment.
	FrozenStringLiteral Directive

	// Comments in source order.
	Comments []Comment

	// HasErrors is set when the parser had to recover from syntax errors.
	HasErrors bool

	lines []int
}

// NewTree assembles a tree and computes its line table.
func NewTree(root *Node, src []byte, comments []Comment) *Tree {
	lines := []int{0}
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &Tree{Root: root, Source: src, Comments: comments, lines: lines}
}

// Line returns the 1-based line number of a byte offset.
func (t *Tree) Line(offset int) int {
	i, found := slices.BinarySearch(t.lines, offset)
	if found {
		return i + 1
	}

	return i
}

// LineStart returns the byte offset of the 1-based line, clamped to the source.
func (t *Tree) LineStart(line int) int {
	switch {
	case line < 1:
		return 0

	case line > len(t.lines):
		return len(t.Source)

	default:
		return t.lines[line-1]
	}
}

// Lines returns the number of lines in the source.
func (t *Tree) Lines() int { return len(t.lines) }

// Text returns the source text of a node.
func (t *Tree) Text(n *Node) string {
	if n == nil {
		return ""
	}

	return n.Span().Text(t.Source)
}
