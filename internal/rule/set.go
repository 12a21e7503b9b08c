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

package rule

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/threadsafety/internal/syntax"
)

// ErrMalformedTree is returned when a node violates the shape a rule expects.
var ErrMalformedTree = errors.New("malformed syntax tree")

// Set is an ordered collection of rules.
type Set []Rule

// NewSet returns the rules with the given identifiers, in the order given.
func NewSet(ids ...ID) Set {
	s := make(Set, 0, len(ids))
	for _, id := range ids {
		if r := For(id); r != nil {
			s = append(s, r)
		}
	}

	return s
}

// All returns a [Set] with every rule.
func All() Set { return NewSet(IDs()...) }

// Run visits the tree in pre-order and returns the findings of all rules.
// Findings of one node are ordered by source position.
//
// A rule failing on a node yields no findings for that node; the failure is
// returned wrapped in [ErrMalformedTree] together with the findings of the
// remaining rules and nodes.
func (s Set) Run(ctx context.Context, c *Context) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer trace.StartRegion(ctx, "rules").End()

	var (
		findings []Finding
		errs     []error
	)

	for n := range c.Tree.Root.Preorder() {
		start := len(findings)

		for _, r := range s {
			var err error
			if findings, err = match(r, c, n, findings); err != nil {
				errs = append(errs, err)
			}
		}

		slices.SortStableFunc(findings[start:], func(a, b Finding) int {
			return cmp.Compare(a.Span.Start, b.Span.Start)
		})
	}

	return findings, errors.Join(errs...)
}

// match runs a single rule, discarding partial results when it panics.
func match(r Rule, c *Context, n *syntax.Node, findings []Finding) (result []Finding, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = findings
			err = fmt.Errorf("%w: %v on %v at offset %d: %v", ErrMalformedTree, r.ID(), n.Kind(), n.Span().Start, p)
		}
	}()

	return r.Match(c, n, findings), nil
}
