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

package report_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadsafety/analyzer/level"
	"fillmore-labs.com/threadsafety/internal/astutil"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/mutability"
	. "fillmore-labs.com/threadsafety/internal/report"
	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/testsource"
)

const source = `class Test
  @a = [1]
  @b = {} # rubocop:disable ThreadSafety/MutableClassInstanceVariable

  def self.m
    @a
  end
end
`

func process(t *testing.T, src string, option config.Behavior) (*token.FileSet, []analysis.Diagnostic) {
	t.Helper()

	tree := testsource.Parse(t, src)

	fset := token.NewFileSet()
	handle := fset.AddFile("test.rb", -1, len(tree.Source))
	handle.SetLinesForContent(tree.Source)

	currentFile := astutil.NewCurrentFile(handle, tree)

	m := mutability.New(level.Literals, nil, false)

	findings, err := rule.All().Run(t.Context(), rule.NewContext(tree, m))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:   fset,
		Report: func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	ProcessFindings(t.Context(), p, currentFile, findings, option)

	return fset, diagnostics
}

func TestProcessFindings(t *testing.T) {
	t.Parallel()

	fset, diagnostics := process(t, source, config.DefaultBehavior())

	if len(diagnostics) != 2 {
		t.Fatalf("Got %d diagnostics, want 2", len(diagnostics))
	}

	mutable, ivar := diagnostics[0], diagnostics[1]

	if got, want := mutable.Message, "Freeze mutable objects assigned to class instance variables. (ThreadSafety/MutableClassInstanceVariable)"; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}

	if got, want := mutable.Category, "ThreadSafety/MutableClassInstanceVariable"; got != want {
		t.Errorf("Got category %q, want %q", got, want)
	}

	if got, want := fset.Position(mutable.Pos), (token.Position{Filename: "test.rb", Offset: 18, Line: 2, Column: 8}); got != want {
		t.Errorf("Got position %v, want %v", got, want)
	}

	if len(mutable.SuggestedFixes) != 1 || len(mutable.SuggestedFixes[0].TextEdits) != 1 {
		t.Fatalf("Got fixes %v, want one edit", mutable.SuggestedFixes)
	}

	edit := mutable.SuggestedFixes[0].TextEdits[0]
	if got, want := string(edit.NewText), ".freeze"; got != want || edit.Pos != mutable.End || edit.End != mutable.End {
		t.Errorf("Got edit %q at %d-%d, want %q at %d", got, edit.Pos, edit.End, want, mutable.End)
	}

	if len(mutable.Related) != 1 || mutable.Related[0].Message != "In this class Test" {
		t.Errorf("Got related %v, want class Test", mutable.Related)
	}

	if got, want := ivar.Category, "ThreadSafety/InstanceVariableInClassMethod"; got != want {
		t.Errorf("Got category %q, want %q", got, want)
	}

	if len(ivar.Related) != 1 || ivar.Related[0].Message != "In this singleton method m" {
		t.Errorf("Got related %v, want singleton method m", ivar.Related)
	}

	if len(ivar.SuggestedFixes) != 0 {
		t.Errorf("Got fixes %v, want none", ivar.SuggestedFixes)
	}
}

func TestProcessFindingsIgnoreDirectives(t *testing.T) {
	t.Parallel()

	_, diagnostics := process(t, source, config.NewBitMask(config.IgnoreDirectives))

	if len(diagnostics) != 3 {
		t.Errorf("Got %d diagnostics, want 3", len(diagnostics))
	}
}

func TestProcessFindingsGenerated(t *testing.T) {
	t.Parallel()

	_, diagnostics := process(t, "# Code generated by tool. DO NOT EDIT.\nclass Test\n  @a = [1]\nend\n", config.DefaultBehavior())

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	if fixes := diagnostics[0].SuggestedFixes; len(fixes) != 0 {
		t.Errorf("Got fixes %v in generated file, want none", fixes)
	}
}
