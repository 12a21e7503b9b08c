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

package mutability

import (
	"slices"
	"strings"
)

// AllowList holds constant paths of constructors known to return thread-safe objects.
// An entry ending in "::*" matches every constant below that namespace.
type AllowList []string

// DefaultAllowList returns the standard library and concurrent-ruby thread-safe constructors.
func DefaultAllowList() AllowList {
	return AllowList{
		"Queue",
		"SizedQueue",
		"Thread::Queue",
		"Thread::SizedQueue",
		"Mutex",
		"Thread::Mutex",
		"Monitor",
		"ConditionVariable",
		"Thread::ConditionVariable",
		"ThreadSafe::Hash",
		"ThreadSafe::Array",
		"Concurrent::*",
	}
}

// ParseAllowList parses a comma-separated list of constant paths.
func ParseAllowList(s string) AllowList {
	var a AllowList
	for entry := range strings.SplitSeq(s, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			a = append(a, entry)
		}
	}

	return a
}

// Match reports whether the constant path matches an entry.
func (a AllowList) Match(path string) bool {
	path = strings.TrimPrefix(path, "::")

	return slices.ContainsFunc(a, func(entry string) bool {
		entry = strings.TrimPrefix(entry, "::")

		if namespace, ok := strings.CutSuffix(entry, "*"); ok && strings.HasSuffix(namespace, "::") {
			return strings.HasPrefix(path, namespace)
		}

		return path == entry
	})
}

// String returns the comma-separated entries.
func (a AllowList) String() string {
	return strings.Join(a, ",")
}
