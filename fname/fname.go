// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fname interns function names into small comparable handles.
// It is peripheral glue (spec.md §1): neither ADA nor LTL depend on
// it, but the surrounding simulator uses it to identify functions
// without repeatedly comparing strings, and it is the home of the
// reserved "_start" entry-point constant named in spec.md §6.
//
// Unlike ADA and LTL, interning is not single-threaded-by-contract:
// multiple simulator front-ends may intern names concurrently, so the
// table is guarded by a mutex.
package fname

import "sync"

// Name is an interned function name. The zero Name is not valid;
// obtain one from Intern.
type Name struct {
	id int
}

var (
	mu     sync.Mutex
	byName = map[string]Name{}
	byID   = []string{}
)

// Intern returns the Name handle for s, creating one if s has not been
// interned yet.
func Intern(s string) Name {
	mu.Lock()
	defer mu.Unlock()
	if n, ok := byName[s]; ok {
		return n
	}
	n := Name{id: len(byID)}
	byID = append(byID, s)
	byName[s] = n
	return n
}

// Lookup returns the string a Name was interned from.
func Lookup(n Name) string {
	mu.Lock()
	defer mu.Unlock()
	if n.id < 0 || n.id >= len(byID) {
		return ""
	}
	return byID[n.id]
}

// String renders n for debugging, equivalent to Lookup(n).
func (n Name) String() string { return Lookup(n) }

// entryPointLiteral is the simulator's reserved entry-point function
// name (spec.md §6).
const entryPointLiteral = "_start"

// EntryPoint is the interned Name for the reserved entry-point
// function "_start".
var EntryPoint = Intern(entryPointLiteral)

// IsEntryPoint reports whether n names the reserved entry point.
func IsEntryPoint(n Name) bool {
	return n == EntryPoint
}
