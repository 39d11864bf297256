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

package datalayout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/llvm-symex/typecore/ltl"
)

const x8664 = "e-m:e-p:64:64-i64:64-i128:128-n8:16:32:64-S128"

func TestParseBasicSizes(t *testing.T) {
	l, err := Parse(x8664)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sz, al := l.IntSize(64); sz != 8 || al != 8 {
		t.Errorf("IntSize(64) = (%d,%d), want (8,8)", sz, al)
	}
	if sz, al := l.PointerSize(); sz != 8 || al != 8 {
		t.Errorf("PointerSize() = (%d,%d), want (8,8)", sz, al)
	}
}

func TestParseAccumulatesErrors(t *testing.T) {
	_, err := Parse("e-p:64:64-i??:bad-@nonsense")
	if err == nil {
		t.Fatal("expected errors from malformed entries")
	}
}

func TestMkStructInfoPadsForAlignment(t *testing.T) {
	l, err := Parse(x8664)
	if err != nil {
		t.Fatal(err)
	}
	// { i8, i32 } should pad field 1 up to offset 4 and the struct to
	// a multiple of 4.
	layout := l.MkStructInfo(false, []ltl.MemType{
		ltl.IntType{Width: 8},
		ltl.IntType{Width: 32},
	})
	if diff := cmp.Diff([]uint64{0, 4}, layout.Offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
	if layout.Size != 8 {
		t.Errorf("size = %d, want 8", layout.Size)
	}
}

func TestMkStructInfoPackedHasNoPadding(t *testing.T) {
	l, err := Parse(x8664)
	if err != nil {
		t.Fatal(err)
	}
	layout := l.MkStructInfo(true, []ltl.MemType{
		ltl.IntType{Width: 8},
		ltl.IntType{Width: 32},
	})
	if layout.Offsets[0] != 0 || layout.Offsets[1] != 1 {
		t.Errorf("packed offsets = %v, want [0 1]", layout.Offsets)
	}
	if layout.Size != 5 {
		t.Errorf("packed size = %d, want 5", layout.Size)
	}
}
