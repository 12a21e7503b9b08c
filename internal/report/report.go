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

// Package report converts rule findings into analysis diagnostics.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadsafety/internal/astutil"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/fix"
	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/scope"
)

// ProcessFindings emits diagnostics for the findings of one file.
//
// Findings on lines disabled by `# rubocop:disable` comments are dropped unless
// directives are ignored. Suggested fixes are omitted for generated files.
func ProcessFindings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []rule.Finding, option config.Behavior) {
	defer trace.StartRegion(ctx, "Report").End()

	directives := !option.Enabled(config.IgnoreDirectives)
	fixes := !currentFile.Generated()

	for _, f := range findings {
		if directives && currentFile.Disabled(f.Rule, f.Span) {
			continue
		}

		p.Report(Diagnostic(currentFile, f, fixes))
	}
}

// Diagnostic converts a finding into an [analysis.Diagnostic].
func Diagnostic(currentFile astutil.CurrentFile, f rule.Finding, withFix bool) analysis.Diagnostic {
	rng := currentFile.Range(f.Span)

	diagnostic := analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: f.Rule.String(),
		Message:  createMessage(f),
	}

	if f.Related != nil {
		related := currentFile.Range(f.Related.Span())
		diagnostic.Related = []analysis.RelatedInformation{{
			Pos:     related.Pos(),
			End:     related.End(),
			Message: "In this " + scope.Name(f.Related),
		}}
	}

	if withFix && len(f.Patch) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   "Freeze the assigned value",
			TextEdits: createEdits(currentFile, f.Patch),
		}}
	}

	return diagnostic
}

// createMessage constructs the diagnostic message, qualified with the rule name.
func createMessage(f rule.Finding) string {
	return fmt.Sprintf("%s (%s)", f.Message, f.Rule)
}

// createEdits converts a patch into text edits of the current file.
func createEdits(currentFile astutil.CurrentFile, patch fix.Patch) []analysis.TextEdit {
	edits := make([]analysis.TextEdit, 0, len(patch))
	for _, e := range patch {
		rng := currentFile.Range(e.Span)
		edits = append(edits, analysis.TextEdit{Pos: rng.Pos(), End: rng.End(), NewText: []byte(e.NewText)})
	}

	return edits
}
