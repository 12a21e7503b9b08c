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

// Package syntax defines the read-only Ruby syntax tree the rules operate on.
//
// Trees are built once per source file by a parser adapter and are never
// modified afterwards, so they may be shared freely between goroutines.
// Navigation helpers mirror [inspector.Cursor]: ancestor walks, sibling walks,
// pre-order traversal and child selection by [Edge].
//
// [inspector.Cursor]: https://pkg.go.dev/golang.org/x/tools/go/ast/inspector#Cursor
package syntax
