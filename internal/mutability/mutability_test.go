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

package mutability_test

import (
	"testing"

	"fillmore-labs.com/threadsafety/analyzer/level"
	. "fillmore-labs.com/threadsafety/internal/mutability"
	"fillmore-labs.com/threadsafety/internal/syntax"
	"fillmore-labs.com/threadsafety/internal/testsource"
)

func value(t *testing.T, expr string) *syntax.Node {
	t.Helper()

	_, class := testsource.Wrap(t, "class", "@v = "+expr)

	assign := class.ChildAt(syntax.EdgeBody, 0)
	if !assign.Is(syntax.KindAssign) {
		t.Fatalf("Got %v, want assignment for %q", assign.Kind(), expr)
	}

	return assign.Right()
}

func TestClassify(t *testing.T) {
	t.Parallel()

	const (
		mutable   = DefinitelyMutable
		immutable = DefinitelyImmutable
		unknown   = Unknown
	)

	tests := [...]struct {
		expr            string
		literals, strict Verdict
	}{
		{"[1, 2, 3]", mutable, mutable},
		{"%w(a b c)", mutable, mutable},
		{"%i(a b c)", mutable, mutable},
		{"{ a: 1, b: 2 }", mutable, mutable},
		{"'str'", mutable, mutable},
		{`"#{30 + 12}nd"`, mutable, mutable},
		{"`ls`", mutable, mutable},
		{"1..99", mutable, mutable},
		{"1...99", mutable, mutable},
		{"(1..99)", mutable, mutable},
		{"*1..10", mutable, mutable},
		{"*(1..10)", mutable, mutable},
		{"YYY, ZZZ", mutable, mutable},
		{"[Queue.new]", mutable, mutable},

		{"1", immutable, immutable},
		{"2.1", immutable, immutable},
		{":sym", immutable, immutable},
		{"nil", immutable, immutable},
		{"CONST", immutable, immutable},
		{"::CONST", immutable, immutable},
		{"Namespace::CONST", immutable, immutable},
		{"[1, 2].freeze", immutable, immutable},
		{"Something.new.freeze", immutable, immutable},
		{"ENV['foo']", immutable, immutable},
		{"ENV['foo'] || 'bar'", immutable, immutable},
		{"FOO + 2", immutable, immutable},
		{"1 + 2", immutable, immutable},
		{"1.2 + 3.4", immutable, immutable},
		{"FOO == BAR", immutable, immutable},
		{"!foo", immutable, immutable},
		{"'foo'.count", immutable, immutable},
		{"'foo'.count('f')", immutable, immutable},
		{"[1, 2, 3].count { |n| n > 2 }", immutable, immutable},
		{"'foo'.length", immutable, immutable},
		{"'foo'.size", immutable, immutable},
		{"Struct.new", immutable, immutable},
		{"::Struct.new(:a, :b)", immutable, immutable},
		{"Struct.new(:node) do\n  def assignment?\n    true\n  end\nend", immutable, immutable},
		{"Queue.new", immutable, immutable},
		{"::Queue.new", immutable, immutable},
		{"ThreadSafe::Array.new", immutable, immutable},
		{"::ThreadSafe::Hash.new", immutable, immutable},
		{"ThreadSafe::Hash.new { false }", immutable, immutable},
		{"Concurrent::Map.new(initial_capacity: 4)", immutable, immutable},
		{"Concurrent::ThreadSafe::Util::Adder.new", immutable, immutable},

		{"FOO + BAR", unknown, mutable},
		{"FOO - BAR", unknown, mutable},
		{"'foo' + BAR", unknown, mutable},
		{"FOO + 'bar'", unknown, mutable},
		{"@a + @b + @c", unknown, mutable},
		{"'foo' + 'bar' + 'baz'", mutable, mutable},
		{"Something.new", unknown, mutable},
		{"foo || []", unknown, mutable},
		{"something", unknown, unknown},
		{"foo.bar", unknown, unknown},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			expr := value(t, tt.expr)

			for _, c := range [...]struct {
				policy level.Policy
				want   Verdict
			}{
				{level.Literals, tt.literals},
				{level.Strict, tt.strict},
			} {
				if got := New(c.policy, DefaultAllowList(), false).Classify(expr); got != c.want {
					t.Errorf("Got %s under %s, want %s", got, c.policy, c.want)
				}
			}
		})
	}
}

func TestFrozenStrings(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		expr string
		want Verdict
	}{
		{"'str'", DefinitelyImmutable},
		{`"#{a}"`, DefinitelyImmutable},
		{"<<-HERE\n  content\nHERE", DefinitelyImmutable},
		{"['str']", DefinitelyMutable},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			c := New(level.Strict, nil, true)
			if got := c.Classify(value(t, tt.expr)); got != tt.want {
				t.Errorf("Got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFrozenStringsDirective(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name           string
		src            string
		runtimeDefault bool
		want           bool
	}{
		{"missing", "x = 1\n", false, false},
		{"true", "# frozen_string_literal: true\nx = 1\n", false, true},
		{"false", "# frozen_string_literal: false\nx = 1\n", false, false},
		{"runtime", "x = 1\n", true, true},
		{"runtime_false", "# frozen_string_literal: false\nx = 1\n", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			if got := FrozenStrings(tree, tt.runtimeDefault); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestFreezeIsImmutable(t *testing.T) {
	t.Parallel()

	for _, expr := range [...]string{"[1, 2]", "'str'", "{ a: 1 }", "(1..2)", "(FOO + BAR)", "Something.new"} {
		for _, policy := range [...]level.Policy{level.Literals, level.Strict} {
			c := New(policy, DefaultAllowList(), false)

			if got := c.Classify(value(t, expr+".freeze")); got != DefinitelyImmutable {
				t.Errorf("Got %s for %s.freeze under %s, want %s", got, expr, policy, DefinitelyImmutable)
			}
		}
	}
}

func TestAllowList(t *testing.T) {
	t.Parallel()

	allow := ParseAllowList(" Queue, ::Foo::Bar ,Concurrent::*,")

	tests := [...]struct {
		path string
		want bool
	}{
		{"Queue", true},
		{"::Queue", true},
		{"Thread::Queue", false},
		{"Foo::Bar", true},
		{"Concurrent::Map", true},
		{"Concurrent::ThreadSafe::Util::Adder", true},
		{"Concurrent", false},
		{"ConcurrentMap", false},
	}

	for _, tt := range tests {
		if got := allow.Match(tt.path); got != tt.want {
			t.Errorf("Got Match(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}

	if got, want := allow.String(), "Queue,::Foo::Bar,Concurrent::*"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
