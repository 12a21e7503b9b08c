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

// Package testsource provides utilities for parsing Ruby source code in tests.
//
// It is designed to simplify testing of the threadsafety analyzer by handling common
// boilerplate code for parsing Ruby fragments and locating nodes in the result.
package testsource

import (
	"bytes"
	"testing"

	"fillmore-labs.com/threadsafety/internal/rubyparse"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

const testname = "Test"

// Parse parses a complete Ruby source file.
func Parse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	tree, err := rubyparse.Parse(tb.Context(), []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return tree
}

// Wrap parses a Ruby source code fragment into a tree.
// The provided source `src` is wrapped in a body `<keyword> Test ... end`,
// where keyword is "class" or "module". This allows testing body-level
// code fragments without manually constructing the surrounding definition.
//
// Returns the parsed tree and the wrapping definition node.
func Wrap(tb testing.TB, keyword, src string) (tree *syntax.Tree, def *syntax.Node) {
	tb.Helper()

	tree = Parse(tb, wrapSource(keyword, src).String())

	def = tree.Root.ChildAt(syntax.EdgeBody, 0)
	if !def.Is(syntax.KindClass) && !def.Is(syntax.KindModule) {
		tb.Fatalf("Can't find %s %s", keyword, testname)
	}

	return tree, def
}

// Find returns the first node in pre-order of the given kind whose source text is text.
func Find(tb testing.TB, tree *syntax.Tree, kind syntax.Kind, text string) *syntax.Node {
	tb.Helper()

	for n := range tree.Root.Preorder() {
		if n.Is(kind) && tree.Text(n) == text {
			return n
		}
	}

	tb.Fatalf("Can't find %v %q", kind, text)

	return nil
}

func wrapSource(keyword, src string) *bytes.Buffer {
	var (
		header = keyword + " " + testname + "\n"
		suffix = "\nend\n"
	)

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src) + len(suffix))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}
