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

package scope

import "fillmore-labs.com/threadsafety/internal/syntax"

// Name returns a human-readable name for a definition context.
func Name(node *syntax.Node) string {
	switch node.Kind() {
	// keep-sorted start newline_separated=yes
	case syntax.KindBlock:
		if call := node.Parent(); call.Is(syntax.KindCall) {
			return call.Name() + " block"
		}

		return "block"

	case syntax.KindClass:
		return "class " + node.Name()

	case syntax.KindDef:
		return "method " + node.Name()

	case syntax.KindDefs:
		return "singleton method " + node.Name()

	case syntax.KindInvalid:
		return "<nil>"

	case syntax.KindModule:
		return "module " + node.Name()

	case syntax.KindProgram:
		return "file"

	case syntax.KindSingletonClass:
		return "singleton class"

	default:
		return node.Kind().String()
		// keep-sorted end
	}
}
