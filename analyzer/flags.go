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
	"flag"

	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.TextVar(&r.Policy, "strictness", r.Policy, "mutability `policy`: literals or strict")
	flags.Var(NewAllowListValue(&r.AllowList), "safe-constructors", "comma-separated `constructors` returning thread-safe objects")

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.FrozenStringLiterals), "frozen-string-literals", "assume string literals are frozen by default")
	flags.Var(NewBehaviorValue(&r.Behavior, config.IgnoreDirectives), "ignore-directives", "report findings suppressed by rubocop:disable comments")

	flags.Var(NewRuleValue(&r.Rules, config.ClassAttributesRule), "class-attributes", "report class and module attributes")
	flags.Var(NewRuleValue(&r.Rules, config.InstanceVariablesRule), "instance-variables", "report instance variables in class methods")
	flags.Var(NewRuleValue(&r.Rules, config.NewThreadRule), "new-thread", "report thread creation")
	flags.Var(NewRuleValue(&r.Rules, config.MutableClassIvarsRule), "mutable-class-ivars", "report mutable class instance variables")
}
