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

// Package mutability classifies Ruby expressions as provably mutable or immutable.
package mutability

import (
	"fillmore-labs.com/threadsafety/analyzer/level"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

// Verdict is the mutability classification of an expression.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Unknown means no proof either way; it is never reported.
	Unknown Verdict = iota // unknown

	// DefinitelyMutable means the expression produces a new mutable object.
	DefinitelyMutable // mutable

	// DefinitelyImmutable means the expression produces a frozen or primitive value.
	DefinitelyImmutable // immutable
)

// Mutable reports whether the verdict proves mutability.
func (v Verdict) Mutable() bool { return v == DefinitelyMutable }

// Classifier classifies expressions under a strictness policy.
// It holds no per-tree state and is safe for concurrent use.
type Classifier struct {
	policy        level.Policy
	allow         AllowList
	frozenStrings bool
}

// New creates a [Classifier].
//
// frozenStrings specifies that string literals are frozen, either because the file
// carries a `# frozen_string_literal: true` magic comment or the runtime freezes them by default.
func New(policy level.Policy, allow AllowList, frozenStrings bool) Classifier {
	return Classifier{policy: policy, allow: allow, frozenStrings: frozenStrings}
}

// FrozenStrings reports whether string literals in tree are frozen.
func FrozenStrings(tree *syntax.Tree, runtimeDefault bool) bool {
	return runtimeDefault || tree.FrozenStringLiteral == syntax.DirectiveTrue
}

// Classify returns the mutability verdict for expr.
func (c Classifier) Classify(expr *syntax.Node) Verdict {
	switch kind := expr.Kind(); kind {
	case syntax.KindArray, syntax.KindHash, syntax.KindXString, syntax.KindRange:
		return DefinitelyMutable

	case syntax.KindString, syntax.KindHeredoc:
		if c.frozenStrings {
			return DefinitelyImmutable
		}

		return DefinitelyMutable

	case syntax.KindConst:
		return DefinitelyImmutable

	case syntax.KindParens:
		if inner := Unparen(expr); inner != expr {
			return c.Classify(inner)
		}

		return Unknown

	case syntax.KindSplat:
		if Unparen(expr.Value()).Is(syntax.KindRange) {
			return DefinitelyMutable
		}

		return Unknown

	case syntax.KindCall:
		return c.call(expr)

	case syntax.KindBinary:
		return c.binary(expr)

	case syntax.KindUnary:
		return c.unary(expr)

	default:
		if kind.Literal() {
			return DefinitelyImmutable
		}

		return Unknown
	}
}

// call classifies method calls.
func (c Classifier) call(expr *syntax.Node) Verdict {
	recv := expr.Receiver()
	if recv == nil {
		return Unknown
	}

	switch expr.Name() {
	case "freeze":
		return DefinitelyImmutable

	case "count", "length", "size":
		return DefinitelyImmutable

	case "[]":
		if isENV(recv) {
			return DefinitelyImmutable
		}

	case "new":
		if recv.Is(syntax.KindConst) {
			return c.constructor(ConstPath(recv))
		}
	}

	return Unknown
}

// constructor classifies Const.new calls.
func (c Classifier) constructor(path string) Verdict {
	switch path {
	case "Struct", "Class", "Module", "Data":
		// Type definitions, not instances.
		return DefinitelyImmutable

	case "":
		return Unknown
	}

	if c.allow.Match(path) {
		return DefinitelyImmutable
	}

	if c.policy == level.Strict {
		return DefinitelyMutable
	}

	return Unknown
}

// binary classifies operator expressions.
func (c Classifier) binary(expr *syntax.Node) Verdict {
	left, right := expr.Left(), expr.Right()

	switch op := expr.Name(); op {
	case "==", "===", "!=", "<", "<=", ">", ">=", "<=>", "=~", "!~":
		return DefinitelyImmutable

	case "+", "-", "*", "/", "%", "**", "<<", ">>", "&", "|", "^":
		l, r := c.Classify(left), c.Classify(right)

		switch {
		case (numeric(left) || numeric(right)) && !l.Mutable() && !r.Mutable():
			return DefinitelyImmutable

		case c.policy == level.Strict:
			return DefinitelyMutable

		case l.Mutable() && r.Mutable():
			return DefinitelyMutable

		default:
			return Unknown
		}

	case "&&", "||", "and", "or":
		if (op == "||" || op == "or") && isENVReference(left) {
			return DefinitelyImmutable
		}

		if c.policy != level.Strict {
			return Unknown
		}

		l, r := c.Classify(left), c.Classify(right)

		switch {
		case l.Mutable() || r.Mutable():
			return DefinitelyMutable

		case l == DefinitelyImmutable && r == DefinitelyImmutable:
			return DefinitelyImmutable

		default:
			return Unknown
		}

	default:
		return Unknown
	}
}

// unary classifies prefix operator expressions.
func (c Classifier) unary(expr *syntax.Node) Verdict {
	switch expr.Name() {
	case "!", "not":
		return DefinitelyImmutable

	case "-", "+", "~":
		if c.Classify(expr.Value()) == DefinitelyImmutable {
			return DefinitelyImmutable
		}
	}

	return Unknown
}

// Unparen returns the single expression inside nested parentheses, or expr itself.
func Unparen(expr *syntax.Node) *syntax.Node {
	for expr.Is(syntax.KindParens) && expr.CountAt(syntax.EdgeBody) == 1 {
		expr = expr.ChildAt(syntax.EdgeBody, 0)
	}

	return expr
}

// ConstPath returns the constant path of n without a leading "::", or "" when
// n is not a constant or its namespace is dynamic.
func ConstPath(n *syntax.Node) string {
	if !n.Is(syntax.KindConst) {
		return ""
	}

	scope := n.ChildAt(syntax.EdgeScope, 0)
	if scope == nil {
		return n.Name()
	}

	prefix := ConstPath(scope)
	if prefix == "" {
		return ""
	}

	return prefix + "::" + n.Name()
}

func numeric(n *syntax.Node) bool {
	n = Unparen(n)
	if n.Is(syntax.KindUnary) {
		n = n.Value()
	}

	return n.Kind().Numeric()
}

func isENV(n *syntax.Node) bool {
	return ConstPath(n) == "ENV"
}

// isENVReference reports whether n is ENV[...].
func isENVReference(n *syntax.Node) bool {
	n = Unparen(n)

	return n.Is(syntax.KindCall) && n.Name() == "[]" && isENV(n.Receiver())
}
