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

package syntax_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/threadsafety/internal/syntax"
)

// fixture builds the tree for
//
//	class A
//	  x
//	  def m; @v; end
//	  y
//	end
type fixture struct {
	root, class, x, def, ivar, y *Node
}

func newFixture() fixture {
	var f fixture

	f.ivar = NewNode(KindIvar, Span{19, 21}).SetName("@v", Span{19, 21})
	f.def = NewNode(KindDef, Span{12, 26}).SetName("m", Span{16, 17}).Add(EdgeBody, f.ivar)
	f.x = NewNode(KindIdentifier, Span{10, 11}).SetName("x", Span{10, 11})
	f.y = NewNode(KindIdentifier, Span{29, 30}).SetName("y", Span{29, 30})
	name := NewNode(KindConst, Span{6, 7}).SetName("A", Span{6, 7})
	f.class = NewNode(KindClass, Span{0, 34}).Add(EdgeName, name).Add(EdgeBody, f.x, f.def, f.y)
	f.root = NewNode(KindProgram, Span{0, 35}).Add(EdgeBody, f.class)

	return f
}

func kinds(seq func(func(*Node) bool)) []Kind {
	var ks []Kind
	for n := range seq {
		ks = append(ks, n.Kind())
	}

	return ks
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	f := newFixture()

	got := kinds(f.ivar.Ancestors())
	want := []Kind{KindDef, KindClass, KindProgram}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ancestors() mismatch (-want +got):\n%s", diff)
	}

	if again := kinds(f.ivar.Ancestors()); !slices.Equal(again, got) {
		t.Errorf("Got %v on second walk, want %v", again, got)
	}

	if path := f.ivar.Path(); len(path) != 3 || path[0] != f.def || path[2] != f.root {
		t.Errorf("Got path %v, want [def class program]", path)
	}

	if got := kinds(f.root.Ancestors()); len(got) != 0 {
		t.Errorf("Got root ancestors %v, want none", got)
	}
}

func TestSiblings(t *testing.T) {
	t.Parallel()

	f := newFixture()

	tests := []struct {
		name string
		seq  func(func(*Node) bool)
		want []string
	}{
		{"left of def", f.def.LeftSiblings(), []string{"x", "A"}},
		{"right of def", f.def.RightSiblings(), []string{"y"}},
		{"left of root", f.root.LeftSiblings(), nil},
		{"right of y", f.y.RightSiblings(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for n := range tt.seq {
				got = append(got, n.Name())
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Siblings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	f := newFixture()

	got := kinds(f.root.Preorder())
	want := []Kind{KindProgram, KindClass, KindConst, KindIdentifier, KindDef, KindIvar, KindIdentifier}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Preorder() mismatch (-want +got):\n%s", diff)
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	f := newFixture()

	if !f.ivar.IsDescendantOf(f.class) {
		t.Error("Expected ivar to be a descendant of class")
	}

	if f.class.IsDescendantOf(f.ivar) {
		t.Error("Expected class not to be a descendant of ivar")
	}

	if f.ivar.IsDescendantOf(f.ivar) {
		t.Error("Expected a node not to be its own descendant")
	}

	if got := f.class.ChildOfKind(KindDef); got != f.def {
		t.Errorf("Got ChildOfKind %v, want def", got)
	}

	if got := f.class.ChildOfKind(KindBlock); got != nil {
		t.Errorf("Got ChildOfKind %v, want nil", got)
	}

	if got := f.ivar.Enclosing(KindClass, KindModule); got != f.class {
		t.Errorf("Got Enclosing %v, want class", got)
	}

	if got := f.class.ChildAt(EdgeBody, -1); got != f.y {
		t.Errorf("Got last body child %v, want y", got)
	}

	if got := f.class.ChildAt(EdgeBody, 1); got != f.def {
		t.Errorf("Got second body child %v, want def", got)
	}

	if got := f.class.CountAt(EdgeBody); got != 3 {
		t.Errorf("Got %d body children, want 3", got)
	}

	if got := f.ivar.Parent(); got != f.def || f.ivar.ParentEdge() != EdgeBody {
		t.Errorf("Got parent %v/%v, want def/body", got, f.ivar.ParentEdge())
	}
}

func TestAddSkipsAttached(t *testing.T) {
	t.Parallel()

	f := newFixture()

	other := NewNode(KindStatement, Span{})
	other.Add(EdgeBody, f.ivar, nil)

	if other.Len() != 0 {
		t.Errorf("Got %d children, want 0", other.Len())
	}

	if f.ivar.Parent() != f.def {
		t.Error("Expected ivar to keep its parent")
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	src := []byte("a\nbc\n\nd")
	tree := NewTree(NewNode(KindProgram, Span{0, len(src)}), src, nil)

	tests := []struct {
		offset, want int
	}{
		{0, 1}, {1, 1}, {2, 2}, {4, 2}, {5, 3}, {6, 4}, {7, 4},
	}

	for _, tt := range tests {
		if got := tree.Line(tt.offset); got != tt.want {
			t.Errorf("Line(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}

	if got, want := tree.LineStart(3), 5; got != want {
		t.Errorf("LineStart(3) = %d, want %d", got, want)
	}

	if got, want := tree.Lines(), 4; got != want {
		t.Errorf("Lines() = %d, want %d", got, want)
	}
}
