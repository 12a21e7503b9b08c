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

// Package fix synthesizes and applies source-preserving text edits.
package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/threadsafety/internal/syntax"
)

var (
	// ErrOverlappingEdits is returned when edits of a patch set overlap.
	ErrOverlappingEdits = errors.New("overlapping edits")

	// ErrInvalidEdit is returned when an edit lies outside the source.
	ErrInvalidEdit = errors.New("invalid edit range")
)

// Edit replaces the bytes in Span of the original source with NewText.
// An empty span is an insertion.
type Edit struct {
	Span    syntax.Span
	NewText string
}

// Insert creates an insertion at byte offset pos.
func Insert(pos int, text string) Edit {
	return Edit{Span: syntax.Span{Start: pos, End: pos}, NewText: text}
}

// Replace creates a replacement of span.
func Replace(span syntax.Span, text string) Edit {
	return Edit{Span: span, NewText: text}
}

// Patch is a set of non-overlapping edits against the original source.
type Patch []Edit

// Freeze returns a patch that freezes the value of expr, adding brackets or
// parentheses where operator precedence or literal sugar requires them.
func Freeze(src []byte, expr *syntax.Node) Patch {
	span := expr.Span()

	switch expr.Kind() {
	case syntax.KindSplat:
		return materialize(src, expr.Value(), span)

	case syntax.KindArray:
		if expr.Has(syntax.Bracketed) {
			break
		}

		if elem := expr.ChildAt(syntax.EdgeElement, 0); expr.CountAt(syntax.EdgeElement) == 1 && elem.Is(syntax.KindSplat) {
			return materialize(src, elem.Value(), span)
		}

		return Patch{Insert(span.Start, "["), Insert(span.End, "].freeze")}

	case syntax.KindRange, syntax.KindBinary, syntax.KindUnary:
		return wrap(span)

	case syntax.KindString:
		if expr.CountAt(syntax.EdgeElement) > 1 {
			// adjacent string literals
			return wrap(span)
		}

	case syntax.KindCall:
		if commandWithArguments(src, expr) {
			return wrap(span)
		}
	}

	// Heredoc spans end at the opening marker.
	return Patch{Insert(span.End, ".freeze")}
}

// wrap parenthesizes span and freezes the result.
func wrap(span syntax.Span) Patch {
	return Patch{Insert(span.Start, "("), Insert(span.End, ").freeze")}
}

// materialize replaces a splat expansion of value with a frozen array.
func materialize(src []byte, value *syntax.Node, span syntax.Span) Patch {
	inner := value.Span().Text(src)
	if !value.Is(syntax.KindParens) {
		inner = "(" + inner + ")"
	}

	return Patch{Replace(span, inner+".to_a.freeze")}
}

// commandWithArguments reports whether a call passes arguments without parentheses,
// so that appending .freeze would bind to the last argument.
func commandWithArguments(src []byte, call *syntax.Node) bool {
	if call.Name() == "[]" || call.Block() != nil || call.CountAt(syntax.EdgeArg) == 0 {
		return false
	}

	span := call.Span()

	return span.End > span.Start && span.End <= len(src) && src[span.End-1] != ')'
}

// Apply rewrites src with all edits in a single left-to-right pass.
// Edit positions refer to the original source; the input is not modified.
func Apply(src []byte, edits ...Edit) ([]byte, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Span.Start, b.Span.Start), cmp.Compare(a.Span.End, b.Span.End))
	})

	growth := 0
	for _, e := range sorted {
		growth += len(e.NewText)
	}

	var out bytes.Buffer
	out.Grow(len(src) + growth)

	pos := 0
	for _, e := range sorted {
		switch {
		case e.Span.Start < 0 || e.Span.End < e.Span.Start || e.Span.End > len(src):
			return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrInvalidEdit, e.Span.Start, e.Span.End, len(src))

		case e.Span.Start < pos:
			return nil, fmt.Errorf("%w at offset %d", ErrOverlappingEdits, e.Span.Start)
		}

		out.Write(src[pos:e.Span.Start]) // ignore error
		out.WriteString(e.NewText)       // ignore error
		pos = e.Span.End
	}

	out.Write(src[pos:]) // ignore error

	return out.Bytes(), nil
}
