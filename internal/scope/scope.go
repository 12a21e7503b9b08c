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

// Package scope classifies the definition context of Ruby syntax nodes.
package scope

import (
	"slices"

	"fillmore-labs.com/threadsafety/internal/syntax"
)

// Scope is the lexical execution context of a node.
type Scope uint8

//go:generate go tool stringer -type Scope -linecomment
const (
	// TopLevel is code outside any method definition, including class and module bodies.
	TopLevel Scope = iota // top level

	// InstanceMethod is code in an ordinary method or a define_method block.
	InstanceMethod // instance method

	// ClassLevelMethod is code in a method whose self is a class or module.
	ClassLevelMethod // class-level method

	// SynchronizedBlock is code guarded by a synchronize block.
	SynchronizedBlock // synchronized block
)

// Classifier computes scopes for the nodes of one tree.
//
// Results are memoized per definition context, so a Classifier must not be
// shared between trees or used concurrently.
type Classifier struct {
	memo map[*syntax.Node]Scope
}

// NewClassifier creates a [Classifier] for a single tree.
func NewClassifier() *Classifier {
	return &Classifier{memo: make(map[*syntax.Node]Scope)}
}

// Classify returns the definition context of n, ignoring synchronize blocks.
func (c *Classifier) Classify(n *syntax.Node) Scope {
	ctx := Context(n)
	if ctx == nil {
		return TopLevel
	}

	if s, ok := c.memo[ctx]; ok {
		return s
	}

	s := classify(ctx)
	c.memo[ctx] = s

	return s
}

// Effective returns [SynchronizedBlock] for synchronized nodes, otherwise the result of [Classifier.Classify].
func (c *Classifier) Effective(n *syntax.Node) Scope {
	if IsSynchronized(n) {
		return SynchronizedBlock
	}

	return c.Classify(n)
}

// Context returns the innermost method definition or block enclosing n.
// All nodes sharing a context have the same [Scope].
func Context(n *syntax.Node) *syntax.Node {
	return n.Enclosing(syntax.KindDef, syntax.KindDefs, syntax.KindBlock)
}

// classify computes the scope of code directly inside ctx.
func classify(ctx *syntax.Node) Scope {
	var (
		nearestDef *syntax.Node
		classLevel bool
	)

	for _, p := range slices.Insert(ctx.Path(), 0, ctx) {
		switch p.Kind() {
		case syntax.KindBlock:
			switch {
			case DefinesMethod(p, "define_method"):
				// Only a define_method inside the nearest method definition makes an instance method.
				if nearestDef == nil && !classLevel {
					return InstanceMethod
				}

			case DefinesMethod(p, "define_singleton_method"):
				classLevel = true
			}

		case syntax.KindDefs:
			classLevel = true

		case syntax.KindDef:
			if nearestDef == nil {
				nearestDef = p
			}
		}
	}

	switch {
	case classLevel:
		return ClassLevelMethod

	case nearestDef == nil:
		return TopLevel

	case classLevelDef(nearestDef):
		return ClassLevelMethod

	default:
		return InstanceMethod
	}
}

// classLevelDef reports whether an ordinary method definition defines a class-level method.
func classLevelDef(def *syntax.Node) bool {
	container := def.Enclosing(syntax.KindClass, syntax.KindModule, syntax.KindSingletonClass)

	switch container.Kind() {
	case syntax.KindSingletonClass:
		return true

	case syntax.KindModule:
		if container.Name() == "ClassMethods" {
			return true
		}
	}

	return moduleFunction(def)
}

// moduleFunction reports whether a module_function declarator applies to def.
func moduleFunction(def *syntax.Node) bool {
	// module_function def name
	if p := def.Parent(); def.ParentEdge() == syntax.EdgeArg && p.Command("module_function") {
		return true
	}

	for s := range def.LeftSiblings() {
		if s.Command("module_function") && s.CountAt(syntax.EdgeArg) == 0 {
			return true
		}
	}

	name := def.Name()
	for s := range def.RightSiblings() {
		if !s.Command("module_function") {
			continue
		}

		for arg := range s.Args() {
			if NameLiteral(arg) == name {
				return true
			}
		}
	}

	return false
}

// NameLiteral returns the value of a symbol or string literal without interpolation, or "".
func NameLiteral(n *syntax.Node) string {
	switch n.Kind() {
	case syntax.KindSymbol, syntax.KindString:
		if n.Has(syntax.Interpolated) {
			return ""
		}

		return n.Name()

	default:
		return ""
	}
}

// DefinesMethod reports whether block is attached to a call of one of the named
// method-defining methods with an implicit or self receiver.
func DefinesMethod(block *syntax.Node, names ...string) bool {
	if !block.Is(syntax.KindBlock) || block.ParentEdge() != syntax.EdgeBlock {
		return false
	}

	call := block.Parent()
	if !call.Is(syntax.KindCall) {
		return false
	}

	if recv := call.Receiver(); recv != nil && !recv.Is(syntax.KindSelf) {
		return false
	}

	return slices.Contains(names, call.Name())
}

// IsSynchronized reports whether n is inside a block attached to a call named synchronize, with any receiver.
func IsSynchronized(n *syntax.Node) bool {
	for p := range n.Ancestors() {
		if p.Is(syntax.KindBlock) && p.ParentEdge() == syntax.EdgeBlock && p.Parent().Name() == "synchronize" {
			return true
		}
	}

	return false
}

// ClassBody returns the class or module whose body directly contains n,
// looking through conditionals and other statements, or nil when n is inside
// a method definition, a singleton class or a dynamic method definition block.
// Instance variables of a singleton class body belong to the singleton class,
// not to the enclosing class.
func ClassBody(n *syntax.Node) *syntax.Node {
	for p := range n.Ancestors() {
		switch p.Kind() {
		case syntax.KindClass, syntax.KindModule:
			return p

		case syntax.KindDef, syntax.KindDefs, syntax.KindSingletonClass:
			return nil

		case syntax.KindBlock:
			if DefinesMethod(p, "define_method", "define_singleton_method") {
				return nil
			}
		}
	}

	return nil
}

// InSingletonClass reports whether n is directly inside a singleton class body,
// outside any method, class or module definition nested in it.
func InSingletonClass(n *syntax.Node) bool {
	for p := range n.Ancestors() {
		switch p.Kind() {
		case syntax.KindSingletonClass:
			return true

		case syntax.KindDef, syntax.KindDefs, syntax.KindClass, syntax.KindModule:
			return false
		}
	}

	return false
}
