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

// Package rubyparse converts Ruby source into a [syntax.Tree] using the tree-sitter Ruby grammar.
package rubyparse

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime/trace"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"fillmore-labs.com/threadsafety/internal/syntax"
)

// ErrParse is returned when the source could not be parsed at all.
var ErrParse = errors.New("ruby parse failed")

// Parse parses Ruby source into a read-only [syntax.Tree].
//
// Syntax errors do not fail the parse; the affected regions become
// [syntax.KindError] nodes and [syntax.Tree.HasErrors] is set.
// Parse is safe for concurrent use.
func Parse(ctx context.Context, src []byte) (*syntax.Tree, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	// A tree-sitter parser must not be shared between goroutines.
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(ruby.GetLanguage())

	st, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if st == nil {
		return nil, ErrParse
	}
	defer st.Close()

	root := st.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w: empty tree", ErrParse)
	}

	c := converter{src: src}
	program := c.convert(root)

	hasErrors := root.HasError()

	// tree-sitter recovers some inputs with an ERROR root
	if !program.Is(syntax.KindProgram) {
		c.collectComments(root)

		program = syntax.NewNode(syntax.KindProgram, syntax.Span{Start: 0, End: len(src)}).Add(syntax.EdgeBody, program)
		hasErrors = true
	}

	tree := syntax.NewTree(program, src, c.comments)
	tree.FrozenStringLiteral = FrozenStringLiteral(src)
	tree.HasErrors = hasErrors

	return tree, nil
}

var magicFrozen = regexp.MustCompile(`(?i)\bfrozen[_-]string[_-]literal\s*:\s*([a-z]+)`)

// FrozenStringLiteral returns the state of the `# frozen_string_literal:` magic comment.
// Only the leading comment block of a file is considered.
func FrozenStringLiteral(src []byte) syntax.Directive {
	for line := range strings.Lines(string(src)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "#") {
			break
		}

		m := magicFrozen.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if strings.EqualFold(m[1], "true") {
			return syntax.DirectiveTrue
		}

		return syntax.DirectiveFalse
	}

	return syntax.DirectiveUnset
}
