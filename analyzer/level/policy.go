// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

// Package level defines text-configurable analysis levels.
package level

import (
	"fmt"
	"strings"
)

// Policy specifies how aggressively expressions are considered mutable.
type Policy uint8

const (
	// Literals only flags literal collections, strings, ranges and operator expressions over them.
	Literals Policy = iota

	// Strict additionally flags object-constructing calls not on the allow-list of thread-safe constructors.
	Strict
)

// MarshalText implements [encoding.TextMarshaler].
func (o Policy) MarshalText() ([]byte, error) {
	switch o {
	case Literals:
		return []byte("literals"), nil

	case Strict:
		return []byte("strict"), nil

	default:
		return nil, fmt.Errorf("unknown strictness policy %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "literals", "false", "off":
		*o = Literals

	case "strict", "true", "on":
		*o = Strict

	default:
		return fmt.Errorf("unknown strictness policy %q", string(text))
	}

	return nil
}

// String returns the textual form of the policy.
func (o Policy) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Policy(%d)", o)
	}

	return string(text)
}
