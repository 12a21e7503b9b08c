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

// Package rule implements the thread-safety detectors over Ruby syntax trees.
package rule

import (
	"fillmore-labs.com/threadsafety/internal/fix"
	"fillmore-labs.com/threadsafety/internal/mutability"
	"fillmore-labs.com/threadsafety/internal/scope"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

// Finding is a reported violation.
type Finding struct {
	Rule    ID
	Node    *syntax.Node
	Span    syntax.Span
	Message string

	// Patch is the autocorrection, nil when the finding is not fixable.
	Patch fix.Patch

	// Related is the definition that makes the finding apply, if any.
	Related *syntax.Node
}

// Context is the per-tree state shared by all rules.
type Context struct {
	Tree       *syntax.Tree
	Scopes     *scope.Classifier
	Mutability mutability.Classifier
}

// NewContext creates a [Context] for one tree.
func NewContext(tree *syntax.Tree, m mutability.Classifier) *Context {
	return &Context{Tree: tree, Scopes: scope.NewClassifier(), Mutability: m}
}

// Rule is a detector mapping nodes to findings.
type Rule interface {
	ID() ID

	// Match appends the findings for n to findings.
	Match(c *Context, n *syntax.Node, findings []Finding) []Finding
}

// For returns the rule with the given identifier, or nil.
func For(id ID) Rule {
	switch id {
	case ClassAndModuleAttributes:
		return attributes{}

	case InstanceVariableInClassMethod:
		return ivarInClassMethod{}

	case NewThread:
		return newThread{}

	case MutableClassInstanceVariable:
		return mutableClassIvar{}

	default:
		return nil
	}
}

func newFinding(id ID, n *syntax.Node, span syntax.Span) Finding {
	return Finding{Rule: id, Node: n, Span: span, Message: id.Message()}
}
