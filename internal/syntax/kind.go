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

package syntax

// Kind is the closed set of node kinds produced by the parser adapter.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	KindInvalid Kind = iota

	KindProgram        // whole file
	KindClass          // class Name < Super ... end
	KindModule         // module Name ... end
	KindSingletonClass // class << value ... end
	KindDef            // def name ... end
	KindDefs           // def recv.name ... end
	KindCall           // method invocation, including element reference
	KindBlock          // { ... } or do ... end attached to a call
	KindParams         // method or block parameters

	KindIvar       // @name
	KindCvar       // @@name
	KindGvar       // $name
	KindIdentifier // local variable or receiver-less call without arguments
	KindConst      // Name, Scope::Name or ::Name

	KindAssign      // lhs = rhs
	KindOpAssign    // lhs op= rhs
	KindMultiAssign // a, b = rhs
	KindMlhs        // left-hand side of a multiple assignment
	KindSplat       // *value

	KindArray         // [a, b], %w(), %i() or bracket-less a, b
	KindHash          // { k => v }
	KindPair          // k => v
	KindString        // 'str', "str #{x}"
	KindXString       // `cmd`
	KindHeredoc       // <<~HERE opening marker
	KindInterpolation // #{...}
	KindSymbol        // :sym
	KindRegexp        // /re/
	KindInteger       // 1
	KindFloat         // 1.0
	KindNumber        // rational and complex literals
	KindNil           // nil
	KindTrue          // true
	KindFalse         // false
	KindSelf          // self
	KindRange         // a..b, a...b

	KindBinary // lhs op rhs
	KindUnary  // op operand
	KindParens // ( ... )

	KindStatement // any other construct, transparent for matchers
	KindError     // unparsable region
)

// Literal reports whether the kind is a primitive literal that is always immutable.
func (k Kind) Literal() bool {
	switch k {
	case KindInteger, KindFloat, KindNumber, KindSymbol, KindRegexp,
		KindNil, KindTrue, KindFalse:
		return true

	default:
		return false
	}
}

// Numeric reports whether the kind is a numeric literal.
func (k Kind) Numeric() bool {
	switch k {
	case KindInteger, KindFloat, KindNumber:
		return true

	default:
		return false
	}
}

// MethodLike reports whether the kind defines a method.
func (k Kind) MethodLike() bool {
	return k == KindDef || k == KindDefs
}

// ClassLike reports whether the kind opens a class, module or singleton class body.
func (k Kind) ClassLike() bool {
	switch k {
	case KindClass, KindModule, KindSingletonClass:
		return true

	default:
		return false
	}
}
