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

// Package analyzer implements the threadsafety static analysis pass.
//
// # Overview
//
// ThreadSafety reports Ruby constructs that are unsafe when code runs in
// multiple threads, like in Puma or Sidekiq processes. The Ruby sources are
// found next to the Go files of the analyzed package.
//
// # Rules
//
//   - ThreadSafety/ClassAndModuleAttributes: mattr_*, cattr_* and class_attribute
//     macros, and attribute writers in singleton classes, share state between threads.
//   - ThreadSafety/InstanceVariableInClassMethod: instance variables of class-level
//     methods are shared, unless guarded by a synchronize block.
//   - ThreadSafety/NewThread: threads should be managed by the framework.
//   - ThreadSafety/MutableClassInstanceVariable: mutable values assigned to class
//     instance variables should be frozen.
//
// # Example
//
// Before:
//
//	class Config
//	  @defaults = { timeout: 5 }
//	end
//
// After applying threadsafety's suggested fix:
//
//	class Config
//	  @defaults = { timeout: 5 }.freeze
//	end
//
// # Strictness
//
// With -strictness=literals only literal collections, strings, ranges and
// operator expressions over them are considered mutable. With -strictness=strict
// constructor calls like Foo.new are mutable too, unless listed in -safe-constructors.
//
// Findings are suppressed by `# rubocop:disable ThreadSafety/<Rule>` comments.
package analyzer
