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

package analyzer

import (
	"context"
	"slices"

	"fillmore-labs.com/threadsafety/internal/astutil"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/fix"
	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/run"
)

// Finding is a thread-safety violation in a Ruby source.
type Finding = rule.Finding

// Check parses a Ruby source and returns the findings of the configured rules in
// traversal order, honoring `# rubocop:disable` comments unless disabled with [WithDirectives].
func Check(ctx context.Context, src []byte, opts ...Option) ([]Finding, error) {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	tree, findings, err := r.Check(ctx, src)
	if tree == nil || r.Behavior.Enabled(config.IgnoreDirectives) {
		return findings, err
	}

	directives := astutil.ParseDirectives(tree)
	findings = slices.DeleteFunc(findings, func(f Finding) bool {
		return directives.Disabled(f.Rule, tree.Line(f.Span.Start))
	})

	return findings, err
}

// Fix applies the patches of all findings to src in a single pass.
// The findings must stem from a [Check] of the same source.
func Fix(src []byte, findings []Finding) ([]byte, error) {
	var patch fix.Patch
	for _, f := range findings {
		patch = append(patch, f.Patch...)
	}

	return fix.Apply(src, patch...)
}
