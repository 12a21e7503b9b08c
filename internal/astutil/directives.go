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

package astutil

import (
	"math"
	"regexp"
	"strings"

	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

type lineRange struct{ from, to int }

// Directives holds the lines where rules are disabled by comments.
type Directives struct {
	disabled map[rule.ID][]lineRange
}

// Disabled reports whether the rule is disabled on the 1-based line.
func (d Directives) Disabled(id rule.ID, line int) bool {
	for _, r := range d.disabled[id] {
		if r.from <= line && line <= r.to {
			return true
		}
	}

	return false
}

// ParseDirectives collects `# rubocop:disable` and `# rubocop:enable` comments.
//
// A disable comment following code applies to its own line, otherwise it
// disables the rules up to the matching enable comment or the end of the file.
func ParseDirectives(tree *syntax.Tree) Directives {
	var (
		d    = Directives{disabled: make(map[rule.ID][]lineRange)}
		open = make(map[rule.ID]int)
	)

	for _, comment := range tree.Comments {
		action, ids := commentDirective(comment.Text)
		if len(ids) == 0 {
			continue
		}

		line := tree.Line(comment.Span.Start)

		for _, id := range ids {
			switch action {
			case disable:
				if comment.Trailing {
					d.disabled[id] = append(d.disabled[id], lineRange{line, line})

					continue
				}

				if _, ok := open[id]; !ok {
					open[id] = line
				}

			case enable:
				if from, ok := open[id]; ok {
					d.disabled[id] = append(d.disabled[id], lineRange{from, line})
					delete(open, id)
				}
			}
		}
	}

	for id, from := range open {
		d.disabled[id] = append(d.disabled[id], lineRange{from, math.MaxInt})
	}

	return d
}

type directive uint8

const (
	disable directive = iota + 1
	enable
)

var directivePattern = regexp.MustCompile(`^#\s*rubocop\s*:\s*(disable|todo|enable)\s+(.+)`)

// commentDirective parses a rubocop directive comment, returning the affected rules.
func commentDirective(text string) (action directive, ids []rule.ID) {
	matches := directivePattern.FindStringSubmatch(text)
	if matches == nil {
		return 0, nil
	}

	switch matches[1] {
	case "enable":
		action = enable

	default:
		action = disable
	}

	names, _, _ := strings.Cut(matches[2], "--")

	// Parse comma-separated cop list
	for name := range strings.SplitSeq(names, ",") {
		switch name = strings.TrimSpace(name); name {
		case "all", rule.Department:
			return action, rule.IDs()

		default:
			if id, ok := ruleByName(name); ok {
				ids = append(ids, id)
			}
		}
	}

	return action, ids
}

func ruleByName(name string) (rule.ID, bool) {
	for _, id := range rule.IDs() {
		if name == id.String() {
			return id, true
		}
	}

	return 0, false
}
