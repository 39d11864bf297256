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

package fname

import (
	"sync"
	"testing"
)

func TestInternIsIdempotent(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	if a != b {
		t.Errorf("interning the same string twice should return the same handle")
	}
	if Lookup(a) != "foo" {
		t.Errorf("Lookup(a) = %q, want %q", Lookup(a), "foo")
	}
}

func TestEntryPoint(t *testing.T) {
	if !IsEntryPoint(EntryPoint) {
		t.Errorf("EntryPoint should be its own entry point")
	}
	if IsEntryPoint(Intern("main")) {
		t.Errorf("\"main\" should not be the entry point")
	}
	if Lookup(EntryPoint) != "_start" {
		t.Errorf("EntryPoint should intern to \"_start\", got %q", Lookup(EntryPoint))
	}
}

func TestInternConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	names := []string{"a", "b", "c", "d"}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Intern(names[i%len(names)])
		}(i)
	}
	wg.Wait()
	for _, n := range names {
		if Lookup(Intern(n)) != n {
			t.Errorf("Lookup(Intern(%q)) = %q", n, Lookup(Intern(n)))
		}
	}
}
