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

package gclplugin

import (
	threadsafety "fillmore-labs.com/threadsafety/analyzer"
	"fillmore-labs.com/threadsafety/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Strictness selects the mutability policy, "literals" or "strict".
	Strictness *level.Policy `json:"strictness,omitzero"`
	// SafeConstructors replaces the constructors known to return thread-safe objects.
	SafeConstructors *[]string `json:"safe-constructors,omitzero"`
	// FrozenStringLiterals assumes string literals are frozen by default.
	FrozenStringLiterals *bool `json:"frozen-string-literals,omitzero"`
	// Directives enables `# rubocop:disable` comments.
	Directives *bool `json:"directives,omitzero"`
	// ClassAttributes enables class and module attribute checks.
	ClassAttributes *bool `json:"class-attributes,omitzero"`
	// InstanceVariables enables checks for instance variables in class methods.
	InstanceVariables *bool `json:"instance-variables,omitzero"`
	// NewThread enables thread creation checks.
	NewThread *bool `json:"new-thread,omitzero"`
	// MutableClassIvars enables checks for mutable class instance variables.
	MutableClassIvars *bool `json:"mutable-class-ivars,omitzero"`
}

// Options converts [Settings] into a list of [threadsafety.Option] for the threadsafety analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []threadsafety.Option {
	var opts []threadsafety.Option

	opts = appendOption(opts, s.Strictness, threadsafety.WithPolicy)
	opts = appendOption(opts, s.SafeConstructors, safeConstructors)
	opts = appendOption(opts, s.FrozenStringLiterals, threadsafety.WithFrozenStringLiterals)
	opts = appendOption(opts, s.Directives, threadsafety.WithDirectives)
	opts = appendOption(opts, s.ClassAttributes, threadsafety.WithClassAttributes)
	opts = appendOption(opts, s.InstanceVariables, threadsafety.WithInstanceVariables)
	opts = appendOption(opts, s.NewThread, threadsafety.WithNewThread)
	opts = appendOption(opts, s.MutableClassIvars, threadsafety.WithMutableClassIvars)

	return opts
}

func safeConstructors(constructors []string) threadsafety.Option {
	return threadsafety.WithSafeConstructors(constructors...)
}

// appendOption appends a non-nil setting to a [threadsafety.Option] list.
func appendOption[T any](opts []threadsafety.Option, value *T, constructor func(T) threadsafety.Option) []threadsafety.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
