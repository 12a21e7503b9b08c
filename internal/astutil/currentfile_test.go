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

package astutil_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/threadsafety/internal/astutil"
	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/syntax"
	"fillmore-labs.com/threadsafety/internal/testsource"
)

const directiveSource = `class Test
  Thread.new # rubocop:disable ThreadSafety/NewThread
  Thread.new
  # rubocop:disable ThreadSafety/MutableClassInstanceVariable, Style/Foo -- shared on purpose
  @a = []
  Thread.new # rubocop:disable all
  # rubocop:enable ThreadSafety/MutableClassInstanceVariable
  @b = []
  # rubocop:todo ThreadSafety
  @c = []
end
`

func TestDirectives(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, directiveSource)
	d := ParseDirectives(tree)

	tests := [...]struct {
		name string
		id   rule.ID
		line int
		want bool
	}{
		{"trailing", rule.NewThread, 2, true},
		{"trailing_next_line", rule.NewThread, 3, false},
		{"trailing_other_rule", rule.MutableClassInstanceVariable, 2, false},
		{"range", rule.MutableClassInstanceVariable, 5, true},
		{"range_end", rule.MutableClassInstanceVariable, 8, false},
		{"trailing_all", rule.NewThread, 6, true},
		{"trailing_all_other", rule.InstanceVariableInClassMethod, 6, true},
		{"department_to_eof", rule.MutableClassInstanceVariable, 10, true},
		{"department_other", rule.ClassAndModuleAttributes, 11, true},
		{"before_department", rule.ClassAndModuleAttributes, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := d.Disabled(tt.id, tt.line); got != tt.want {
				t.Errorf("Got Disabled(%v, %d) = %t, want %t", tt.id, tt.line, got, tt.want)
			}
		})
	}
}

func TestIsGenerated(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name, src string
		want      bool
	}{
		{"code_generated", "# Code generated by protoc-gen-twirp_ruby. DO NOT EDIT.\nclass Test; end\n", true},
		{"auto_generated", "# frozen_string_literal: true\n# This file is auto-generated from the current state of the database.\nActiveRecord::Schema.define {}\n", true},
		{"after_code", "class Test; end\n# Code generated by hand. DO NOT EDIT.\n", false},
		{"plain", "# A test class.\nclass Test; end\n", false},
		{"only_comments", "# Code generated by tool. DO NOT EDIT.\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsGenerated(testsource.Parse(t, tt.src)); got != tt.want {
				t.Errorf("Got IsGenerated %t, want %t", got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, directiveSource)

	fset := token.NewFileSet()
	handle := fset.AddFile("test.rb", -1, len(tree.Source))
	handle.SetLinesForContent(tree.Source)

	c := NewCurrentFile(handle, tree)
	if !c.Valid() {
		t.Fatal("Expected valid current file")
	}

	n := testsource.Find(t, tree, syntax.KindCall, "Thread.new")

	rng := c.Range(n.Span())
	if got, want := fset.Position(rng.Pos()).Line, 2; got != want {
		t.Errorf("Got line %d, want %d", got, want)
	}

	if got, want := int(rng.End()-rng.Pos()), n.Span().Len(); got != want {
		t.Errorf("Got range length %d, want %d", got, want)
	}

	if !c.Disabled(rule.NewThread, n.Span()) {
		t.Error("Expected NewThread to be disabled on line 2")
	}

	if got := c.Pos(len(tree.Source) + 10); got != handle.Pos(handle.Size()) {
		t.Errorf("Got clamped position %d, want %d", got, handle.Pos(handle.Size()))
	}

	if other := NewCurrentFile(fset.AddFile("other.rb", -1, 1), tree); other.Valid() {
		t.Error("Expected size mismatch to invalidate the file")
	}
}
