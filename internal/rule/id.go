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

package rule

import "strings"

// Department is the common prefix of all rule names.
const Department = "ThreadSafety"

// ID identifies a rule.
type ID uint8

//go:generate go tool stringer -type ID -linecomment
const (
	// ClassAndModuleAttributes flags class and module attribute macros.
	ClassAndModuleAttributes ID = iota // ThreadSafety/ClassAndModuleAttributes

	// InstanceVariableInClassMethod flags instance variables used by class-level methods.
	InstanceVariableInClassMethod // ThreadSafety/InstanceVariableInClassMethod

	// NewThread flags code starting threads.
	NewThread // ThreadSafety/NewThread

	// MutableClassInstanceVariable flags mutable values assigned to class instance variables.
	MutableClassInstanceVariable // ThreadSafety/MutableClassInstanceVariable
)

// IDs returns all rule identifiers in reporting order.
func IDs() []ID {
	return []ID{ClassAndModuleAttributes, InstanceVariableInClassMethod, NewThread, MutableClassInstanceVariable}
}

// Name returns the rule name without the department prefix.
func (id ID) Name() string {
	return strings.TrimPrefix(id.String(), Department+"/")
}

// Message returns the diagnostic message of the rule.
func (id ID) Message() string {
	switch id {
	case ClassAndModuleAttributes:
		return "Avoid mutating class and module attributes."

	case InstanceVariableInClassMethod:
		return "Avoid instance variables in class methods."

	case NewThread:
		return "Avoid starting new threads."

	case MutableClassInstanceVariable:
		return "Freeze mutable objects assigned to class instance variables."

	default:
		return ""
	}
}

// ParseID looks up a rule by its qualified or unqualified name, ignoring case.
func ParseID(name string) (ID, bool) {
	for _, id := range IDs() {
		if strings.EqualFold(name, id.String()) || strings.EqualFold(name, id.Name()) {
			return id, true
		}
	}

	return 0, false
}
