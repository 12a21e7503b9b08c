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

package config

import "fillmore-labs.com/threadsafety/internal/rule"

// RuleFlags represents specific rules.
type RuleFlags uint8

const (
	// ClassAttributesRule enables detection of shared class and module attributes.
	ClassAttributesRule RuleFlags = 1 << iota

	// InstanceVariablesRule enables detection of instance variables in class-level methods.
	InstanceVariablesRule

	// NewThreadRule enables detection of thread creation.
	NewThreadRule

	// MutableClassIvarsRule enables detection of mutable values assigned to class instance variables.
	MutableClassIvarsRule
)

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns all rules enabled.
func DefaultRules() Rules {
	return NewBitMask(ClassAttributesRule, InstanceVariablesRule, NewThreadRule, MutableClassIvarsRule)
}

// RuleFlag returns the flag enabling the rule with the given identifier.
func RuleFlag(id rule.ID) RuleFlags {
	switch id {
	case rule.ClassAndModuleAttributes:
		return ClassAttributesRule

	case rule.InstanceVariableInClassMethod:
		return InstanceVariablesRule

	case rule.NewThread:
		return NewThreadRule

	case rule.MutableClassInstanceVariable:
		return MutableClassIvarsRule

	default:
		return 0
	}
}

// IDs returns the identifiers of the enabled rules.
func IDs(r Rules) []rule.ID {
	var ids []rule.ID
	for _, id := range rule.IDs() {
		if r.Enabled(RuleFlag(id)) {
			ids = append(ids, id)
		}
	}

	return ids
}

// BehaviorFlags represents configuration options for the analyzer.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// FrozenStringLiterals specifies that the target runtime freezes string literals by default.
	FrozenStringLiterals

	// IgnoreDirectives specifies that `# rubocop:disable` comments are not honored.
	IgnoreDirectives
)

// Behavior is the set of enabled behavior switches.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavior switches.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}
