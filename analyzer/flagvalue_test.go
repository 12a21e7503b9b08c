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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/threadsafety/analyzer"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/mutability"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.RuleFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.NewThreadRule,
			args:    []string{"-class-attributes"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ClassAttributesRule,
			args:    []string{"-class-attributes=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: 0,
			args:    []string{"-class-attributes=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Rules
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ClassAttributesRule
			fv := NewRuleValue(&flags, value)
			fs.Var(fv, "class-attributes", "report class and module attributes")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("ClassAttributesRule enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&flags, config.IncludeGenerated), "generated", "check generated files")

	if err := fs.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestAllowListValue(t *testing.T) {
	t.Parallel()

	list := mutability.DefaultAllowList()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fv := NewAllowListValue(&list)
	fs.Var(fv, "safe-constructors", "thread-safe constructors")

	if err := fs.Parse([]string{"-safe-constructors= Queue, App::* ,"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := fv.String(), "Queue,App::*"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if !list.Match("App::Registry") || list.Match("Concurrent::Map") {
		t.Errorf("Got allow-list %v, want replaced entries", list)
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Rules
	flags.Set(config.NewThreadRule, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewRuleValue(&flags, config.NewThreadRule)
	fs.Var(fv, "new-thread", "report thread creation")

	const expectedUsage = `
  -new-thread
    	report thread creation (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
