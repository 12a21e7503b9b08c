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
	"slices"

	"fillmore-labs.com/threadsafety/internal/fix"
	"fillmore-labs.com/threadsafety/internal/scope"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

var (
	// moduleAttributes are shared class-level attribute macros.
	moduleAttributes = []string{
		"mattr_writer", "mattr_accessor",
		"cattr_writer", "cattr_accessor",
		"class_attribute",
	}

	// writableAttributes are attribute macros defining writers, shared when used in a singleton class.
	writableAttributes = []string{
		"attr", "attr_accessor", "attr_writer",
		"attr_internal", "attr_internal_accessor", "attr_internal_writer",
	}
)

type attributes struct{}

func (attributes) ID() ID { return ClassAndModuleAttributes }

func (r attributes) Match(c *Context, n *syntax.Node, findings []Finding) []Finding {
	switch {
	case n.Command(moduleAttributes...):
		if c.Scopes.Classify(n) != scope.TopLevel {
			return findings
		}

	case n.Command(writableAttributes...):
		if !scope.InSingletonClass(n) {
			return findings
		}

	default:
		return findings
	}

	return append(findings, newFinding(r.ID(), n, n.Span()))
}

type ivarInClassMethod struct{}

func (ivarInClassMethod) ID() ID { return InstanceVariableInClassMethod }

func (r ivarInClassMethod) Match(c *Context, n *syntax.Node, findings []Finding) []Finding {
	var span syntax.Span

	switch {
	case n.Is(syntax.KindIvar):
		span = n.NameSpan()

	case n.Command("instance_variable_get") && n.CountAt(syntax.EdgeArg) == 1,
		n.Command("instance_variable_set") && n.CountAt(syntax.EdgeArg) == 2:
		span = n.Span()

	default:
		return findings
	}

	if c.Scopes.Effective(n) != scope.ClassLevelMethod {
		return findings
	}

	f := newFinding(r.ID(), n, span)
	f.Related = scope.Context(n)

	return append(findings, f)
}

// threadConstructors start a thread when called on Thread.
var threadConstructors = []string{"new", "start", "fork"}

type newThread struct{}

func (newThread) ID() ID { return NewThread }

func (r newThread) Match(_ *Context, n *syntax.Node, findings []Finding) []Finding {
	if !n.Is(syntax.KindCall) || !slices.Contains(threadConstructors, n.Name()) {
		return findings
	}

	recv := n.Receiver()
	if !recv.Is(syntax.KindConst) || recv.Name() != "Thread" || recv.ChildAt(syntax.EdgeScope, 0) != nil {
		return findings
	}

	span := syntax.Span{Start: recv.Span().Start, End: n.NameSpan().End}

	return append(findings, newFinding(r.ID(), n, span))
}

type mutableClassIvar struct{}

func (mutableClassIvar) ID() ID { return MutableClassInstanceVariable }

func (r mutableClassIvar) Match(c *Context, n *syntax.Node, findings []Finding) []Finding {
	switch n.Kind() {
	case syntax.KindOpAssign:
		if n.Name() != "||=" {
			return findings
		}

		fallthrough

	case syntax.KindAssign:
		if !n.Left().Is(syntax.KindIvar) {
			return findings
		}

		class := scope.ClassBody(n)
		if class == nil {
			return findings
		}

		return r.check(c, class, n.Right(), findings)

	case syntax.KindMultiAssign:
		values := n.Right()
		if !values.Is(syntax.KindArray) {
			return findings
		}

		class := scope.ClassBody(n)
		if class == nil {
			return findings
		}

		i := 0
		for target := range n.Left().ChildrenAt(syntax.EdgeElement) {
			value := values.ChildAt(syntax.EdgeElement, i)
			if target.Is(syntax.KindSplat) || value == nil || value.Is(syntax.KindSplat) {
				break
			}

			if target.Is(syntax.KindIvar) {
				findings = r.check(c, class, value, findings)
			}

			i++
		}

		return findings

	default:
		return findings
	}
}

func (r mutableClassIvar) check(c *Context, class, value *syntax.Node, findings []Finding) []Finding {
	if value == nil || !c.Mutability.Classify(value).Mutable() {
		return findings
	}

	f := newFinding(r.ID(), value, value.Span())
	f.Patch = fix.Freeze(c.Tree.Source, value)
	f.Related = class

	return append(findings, f)
}
