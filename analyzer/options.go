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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/threadsafety/analyzer/level"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/mutability"
	"fillmore-labs.com/threadsafety/internal/run"
)

// Option configures specific behavior of a [New] threadsafety analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPolicy is an [Option] to configure how aggressively values are considered mutable.
func WithPolicy(policy level.Policy) Option { return policyOption{policy: policy} }

type policyOption struct{ policy level.Policy }

func (o policyOption) apply(r *run.Options) {
	r.Policy = o.policy
}

func (o policyOption) LogAttr() slog.Attr {
	return slog.String("strictness", o.policy.String())
}

// WithSafeConstructors is an [Option] to replace the constructors known to return
// thread-safe objects under [level.Strict].
func WithSafeConstructors(constructors ...string) Option {
	return safeConstructorsOption{constructors: mutability.AllowList(constructors)}
}

type safeConstructorsOption struct{ constructors mutability.AllowList }

func (o safeConstructorsOption) apply(r *run.Options) {
	r.AllowList = o.constructors
}

func (o safeConstructorsOption) LogAttr() slog.Attr {
	return slog.String("safe-constructors", o.constructors.String())
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFrozenStringLiterals is an [Option] to assume that string literals are frozen
// even without a `# frozen_string_literal: true` comment.
func WithFrozenStringLiterals(frozen bool) Option { return frozenOption{frozen: frozen} }

type frozenOption struct{ frozen bool }

func (o frozenOption) apply(r *run.Options) {
	r.Behavior.Set(config.FrozenStringLiterals, o.frozen)
}

func (o frozenOption) LogAttr() slog.Attr {
	return slog.Bool("frozen-string-literals", o.frozen)
}

// WithDirectives is an [Option] to configure whether `# rubocop:disable` comments are honored.
func WithDirectives(directives bool) Option { return directivesOption{directives: directives} }

type directivesOption struct{ directives bool }

func (o directivesOption) apply(r *run.Options) {
	r.Behavior.Set(config.IgnoreDirectives, !o.directives)
}

func (o directivesOption) LogAttr() slog.Attr {
	return slog.Bool("directives", o.directives)
}

// WithClassAttributes is an [Option] to configure whether class and module attributes are reported.
func WithClassAttributes(enabled bool) Option {
	return ruleOption{name: "class-attributes", rule: config.ClassAttributesRule, enabled: enabled}
}

// WithInstanceVariables is an [Option] to configure whether instance variables in class methods are reported.
func WithInstanceVariables(enabled bool) Option {
	return ruleOption{name: "instance-variables", rule: config.InstanceVariablesRule, enabled: enabled}
}

// WithNewThread is an [Option] to configure whether thread creation is reported.
func WithNewThread(enabled bool) Option {
	return ruleOption{name: "new-thread", rule: config.NewThreadRule, enabled: enabled}
}

// WithMutableClassIvars is an [Option] to configure whether mutable class instance variables are reported.
func WithMutableClassIvars(enabled bool) Option {
	return ruleOption{name: "mutable-class-ivars", rule: config.MutableClassIvarsRule, enabled: enabled}
}

type ruleOption struct {
	name    string
	rule    config.RuleFlags
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}
