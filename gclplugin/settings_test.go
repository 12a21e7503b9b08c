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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	threadsafety "fillmore-labs.com/threadsafety/analyzer"
	. "fillmore-labs.com/threadsafety/gclplugin"
)

const allSettings = `{
	"strictness": "strict",
	"safe-constructors": ["Queue", "Concurrent::*"],
	"frozen-string-literals": true,
	"directives": false,
	"class-attributes": true,
	"instance-variables": true,
	"new-thread": false,
	"mutable-class-ivars": true
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), threadsafety.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsInvalidStrictness(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := json.Unmarshal([]byte(`{"strictness": "paranoid"}`), &s); err == nil {
		t.Error("Expected error for unknown strictness")
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	plugin, err := New(map[string]any{"strictness": "strict", "new-thread": false})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	analyzers, err := plugin.BuildAnalyzers()
	if err != nil {
		t.Fatalf("Can't build analyzers: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "threadsafety" {
		t.Errorf("Got analyzers %v, want threadsafety", analyzers)
	}

	if got := analyzers[0].Flags.Lookup("strictness").Value.String(); got != "strict" {
		t.Errorf("Got strictness %q, want %q", got, "strict")
	}

	if got := analyzers[0].Flags.Lookup("new-thread").Value.String(); got != "false" {
		t.Errorf("Got new-thread %q, want %q", got, "false")
	}
}
