// Copyright 2025 go-highway Authors
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

// Package assert holds the precondition checks used across the module.
//
// Checks are active by default and panic on violation. Building with the
// ml_noassert tag turns every check into a no-op, matching the
// "unchecked in optimized builds" contract of the public packages.
package assert

import "fmt"

// Precondition panics with the formatted message when cond is false and
// checks are enabled.
func Precondition(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("precondition failed: "+format, args...))
	}
}

// Index checks 0 <= i < n.
func Index(i, n int, what string) {
	if Enabled && (i < 0 || i >= n) {
		panic(fmt.Sprintf("precondition failed: %s index %d out of range [0,%d)", what, i, n))
	}
}
