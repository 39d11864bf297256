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

package config

import "testing"

func TestLoadKnownPresets(t *testing.T) {
	for _, name := range []string{X8664Linux, AArch64Linux, I386Linux} {
		l, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if sz, _ := l.PointerSize(); sz == 0 {
			t.Errorf("Load(%q).PointerSize() = 0", name)
		}
	}
}

func TestLoadUnknownPreset(t *testing.T) {
	if _, err := Load("made-up-triple"); err == nil {
		t.Error("expected an error for an unknown preset name")
	}
}

func TestPresetsDiffer(t *testing.T) {
	l32, err := Load(I386Linux)
	if err != nil {
		t.Fatal(err)
	}
	l64, err := Load(X8664Linux)
	if err != nil {
		t.Fatal(err)
	}
	p32, _ := l32.PointerSize()
	p64, _ := l64.PointerSize()
	if p32 != 4 {
		t.Errorf("i386 pointer size = %d, want 4", p32)
	}
	if p64 != 8 {
		t.Errorf("x86_64 pointer size = %d, want 8", p64)
	}
}
