// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/token"
	"regexp"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree       *syntax.Tree
	handle     *token.File
	generated  bool
	directives Directives
}

// NewCurrentFile creates a new [CurrentFile] from a *[token.File] registered for the
// source of tree.
func NewCurrentFile(handle *token.File, tree *syntax.Tree) CurrentFile {
	if handle == nil || tree == nil || handle.Size() != len(tree.Source) {
		return CurrentFile{}
	}

	return CurrentFile{
		tree:       tree,
		handle:     handle,
		generated:  IsGenerated(tree),
		directives: ParseDirectives(tree),
	}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Tree returns the syntax tree of the file.
func (c CurrentFile) Tree() *syntax.Tree {
	return c.tree
}

// Pos converts a byte offset into a [token.Pos], clamped to the file.
func (c CurrentFile) Pos(offset int) token.Pos {
	return c.handle.Pos(min(max(offset, 0), c.handle.Size()))
}

// Range returns the [analysis.Range] of span.
func (c CurrentFile) Range(span syntax.Span) analysis.Range {
	return posRange{c.Pos(span.Start), c.Pos(span.End)}
}

// Disabled reports whether findings of the rule starting at span are suppressed
// by a `# rubocop:disable` comment.
func (c CurrentFile) Disabled(id rule.ID, span syntax.Span) bool {
	if c.tree == nil {
		return false
	}

	return c.directives.Disabled(id, c.tree.Line(span.Start))
}

type posRange struct{ pos, end token.Pos }

func (r posRange) Pos() token.Pos { return r.pos }

func (r posRange) End() token.Pos { return r.end }

var generatedPattern = regexp.MustCompile(`^#\s*(?:Code generated .* DO NOT EDIT\.?\s*$|(?i:this file is auto-?generated\b))`)

// IsGenerated reports whether the file has a comment marking it as generated
// before the first statement.
func IsGenerated(tree *syntax.Tree) bool {
	end := len(tree.Source)
	if first := tree.Root.ChildAt(syntax.EdgeBody, 0); first != nil {
		end = first.Span().Start
	}

	for _, comment := range tree.Comments {
		if comment.Span.Start >= end {
			break
		}

		if generatedPattern.MatchString(comment.Text) {
			return true
		}
	}

	return false
}
