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

package run

import (
	"fillmore-labs.com/threadsafety/analyzer/level"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/mutability"
)

// Options represent configuration options for the threadsafety analyzer.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.Rules

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Policy selects how aggressively non-literal constructors are classified as mutable.
	Policy level.Policy

	// AllowList holds constructors known to return thread-safe objects under [level.Strict].
	AllowList mutability.AllowList
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:     config.DefaultRules(),
		Behavior:  config.DefaultBehavior(),
		Policy:    level.Literals,
		AllowList: mutability.DefaultAllowList(),
	}
}
