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

package config_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/rule"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated)

	b.Set(IgnoreDirectives, true)
	b.Set(IncludeGenerated, false)

	if b.Enabled(IncludeGenerated) {
		t.Error("Expected IncludeGenerated to be disabled")
	}

	if !b.Enabled(IgnoreDirectives) {
		t.Error("Expected IgnoreDirectives to be enabled")
	}

	if b.Enabled(FrozenStringLiterals) {
		t.Error("Expected FrozenStringLiterals to be disabled")
	}

	if b.Empty() {
		t.Error("Expected a non-empty bitmask")
	}

	if got := slices.Collect(b.Flags()); !slices.Equal(got, []BehaviorFlags{IgnoreDirectives}) {
		t.Errorf("Got flags %v, want [IgnoreDirectives]", got)
	}

	b.Disable(IgnoreDirectives)

	if !b.Empty() {
		t.Error("Expected an empty bitmask")
	}
}

func TestIDs(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	if diff := cmp.Diff(rule.IDs(), IDs(rules)); diff != "" {
		t.Errorf("Default rules mismatch (-want +got):\n%s", diff)
	}

	rules.Disable(InstanceVariablesRule)
	rules.Disable(MutableClassIvarsRule)

	want := []rule.ID{rule.ClassAndModuleAttributes, rule.NewThread}
	if diff := cmp.Diff(want, IDs(rules)); diff != "" {
		t.Errorf("Enabled rules mismatch (-want +got):\n%s", diff)
	}
}
