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

package ltl

import (
	"testing"

	"github.com/llvm-symex/typecore/diag"
)

// fakeDataLayout is a minimal stand-in for the external data-layout
// service, good enough to exercise StructInfo construction without
// pulling in internal/datalayout's target-specific tables.
type fakeDataLayout struct{}

func (fakeDataLayout) MkStructInfo(packed bool, fields []MemType) StructLayout {
	var size uint64
	for range fields {
		size += 8
	}
	return StructLayout{Size: size, Align: 8, Offsets: nil}
}

func (fakeDataLayout) IntSize(width uint32) (uint64, uint64)  { return uint64(width) / 8, uint64(width) / 8 }
func (fakeDataLayout) FloatSize() (uint64, uint64)            { return 4, 4 }
func (fakeDataLayout) DoubleSize() (uint64, uint64)           { return 8, 8 }
func (fakeDataLayout) PointerSize() (uint64, uint64)          { return 8, 8 }

func TestLinearAliases(t *testing.T) {
	decls := []Decl{
		{ID: "A", Raw: IntRaw{Width: 32}},
		{ID: "B", Raw: AliasRaw{ID: "A"}},
	}
	report, ctx := MkContext(fakeDataLayout{}, nil, decls)
	if !report.IsEmpty() {
		t.Fatalf("expected no errors, got %v", report.Errors())
	}
	sym, ok := LookupAlias(ctx, "B")
	if !ok {
		t.Fatal("B missing from aliasMap")
	}
	mt, ok := AsMemType(ctx, sym)
	if !ok {
		t.Fatal("asMemType(B) failed")
	}
	if got, ok := mt.(IntType); !ok || got.Width != 32 {
		t.Errorf("asMemType(B) = %#v, want Int(32)", mt)
	}
}

func TestUnsupportedPrimitive(t *testing.T) {
	decls := []Decl{
		{ID: "A", Raw: OtherPrimitiveRaw{Name: "x86_fp80"}},
	}
	report, ctx := MkContext(fakeDataLayout{}, nil, decls)
	if report.IsEmpty() {
		t.Fatal("expected an UnsupportedType error")
	}
	errs := report.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.UnsupportedType {
		t.Errorf("errors = %v", errs)
	}
	sym, _ := LookupAlias(ctx, "A")
	if _, ok := sym.(UnsupportedSym); !ok {
		t.Errorf("aliasMap[A] = %#v, want UnsupportedSym", sym)
	}
}

func TestDanglingReference(t *testing.T) {
	decls := []Decl{
		{ID: "A", Raw: AliasRaw{ID: "B"}},
	}
	report, ctx := MkContext(fakeDataLayout{}, nil, decls)
	if report.IsEmpty() {
		t.Fatal("expected an UnresolvableIdent error")
	}
	found := false
	for _, e := range report.Errors() {
		if e.Subject == "B" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want one naming B", report.Errors())
	}
	sym, _ := LookupAlias(ctx, "A")
	us, ok := sym.(UnsupportedSym)
	if !ok {
		t.Fatalf("aliasMap[A] = %#v, want UnsupportedSym", sym)
	}
	if ar, ok := us.Raw.(AliasRaw); !ok || ar.ID != "B" {
		t.Errorf("UnsupportedSym.Raw = %#v, want AliasRaw{B}", us.Raw)
	}
}

func TestSelfCycleThroughPointer(t *testing.T) {
	// Node = { i32, Node* }
	nodeRaw := StructRaw{Fields: []RawType{
		IntRaw{Width: 32},
		PtrRaw{Elem: AliasRaw{ID: "Node"}},
	}}
	decls := []Decl{{ID: "Node", Raw: nodeRaw}}
	report, ctx := MkContext(fakeDataLayout{}, nil, decls)
	if !report.IsEmpty() {
		t.Fatalf("expected no errors, got %v", report.Errors())
	}
	sym, _ := LookupAlias(ctx, "Node")
	mtSym, ok := sym.(MemTypeSym)
	if !ok {
		t.Fatalf("aliasMap[Node] = %#v, want MemTypeSym", sym)
	}
	st, ok := mtSym.MT.(StructType)
	if !ok {
		t.Fatalf("Node = %#v, want StructType", mtSym.MT)
	}
	if len(st.Info.Fields) != 2 {
		t.Fatalf("Node fields = %v, want 2", st.Info.Fields)
	}
	if _, ok := st.Info.Fields[0].(IntType); !ok {
		t.Errorf("field 0 = %#v, want IntType", st.Info.Fields[0])
	}
	ptr, ok := st.Info.Fields[1].(PtrType)
	if !ok {
		t.Fatalf("field 1 = %#v, want PtrType", st.Info.Fields[1])
	}
	alias, ok := ptr.Elem.(AliasSym)
	if !ok || alias.ID != "Node" {
		t.Errorf("pointee = %#v, want AliasSym{Node}", ptr.Elem)
	}
	// Lookup through the context expands the alias back to the struct.
	expanded, ok := AsMemType(ctx, ptr.Elem)
	if !ok {
		t.Fatal("asMemType(Alias(Node)) failed")
	}
	if _, ok := expanded.(StructType); !ok {
		t.Errorf("expanded pointee = %#v, want StructType", expanded)
	}
}

func TestPureCycleWithoutPointerIndirection(t *testing.T) {
	// A -> B -> A, no pointer edge anywhere.
	decls := []Decl{
		{ID: "A", Raw: AliasRaw{ID: "B"}},
		{ID: "B", Raw: AliasRaw{ID: "A"}},
	}
	report, ctx := MkContext(fakeDataLayout{}, nil, decls)
	// Every member of an unbreakable cycle is named, not just the one
	// the closing back-edge happens to point at.
	subjects := map[string]bool{}
	for _, e := range report.Errors() {
		if e.Kind == diag.UnresolvableIdent {
			subjects[e.Subject] = true
		}
	}
	if !subjects["A"] || !subjects["B"] {
		t.Errorf("errors = %v, want UnresolvableIdent naming both A and B", report.Errors())
	}
	for _, id := range []Ident{"A", "B"} {
		sym, ok := LookupAlias(ctx, id)
		if !ok {
			t.Fatalf("%s missing from aliasMap", id)
		}
		if _, ok := sym.(UnsupportedSym); !ok {
			t.Errorf("aliasMap[%s] = %#v, want UnsupportedSym", id, sym)
		}
	}
}

func TestLiftTypeQueryMode(t *testing.T) {
	decls := []Decl{{ID: "A", Raw: IntRaw{Width: 64}}}
	_, ctx := MkContext(fakeDataLayout{}, nil, decls)
	mt, ok := LiftMemType(ctx, AliasRaw{ID: "A"})
	if !ok {
		t.Fatal("liftMemType(Alias(A)) failed")
	}
	if got, ok := mt.(IntType); !ok || got.Width != 64 {
		t.Errorf("liftMemType(Alias(A)) = %#v, want Int(64)", mt)
	}
	if _, ok := LiftMemType(ctx, AliasRaw{ID: "Missing"}); ok {
		t.Error("liftMemType on a dangling reference should degrade to false")
	}
}

func TestCompatMemTypes(t *testing.T) {
	cases := []struct {
		name string
		a, b MemType
		want bool
	}{
		{"same width ints", IntType{Width: 32}, IntType{Width: 32}, true},
		{"different width ints", IntType{Width: 32}, IntType{Width: 64}, false},
		{"pointers ignore pointee", PtrType{Elem: MemTypeSym{MT: IntType{Width: 8}}}, PtrType{Elem: MemTypeSym{MT: IntType{Width: 64}}}, true},
	}
	for _, c := range cases {
		if got := CompatMemTypes(c.a, c.b); got != c.want {
			t.Errorf("%s: CompatMemTypes = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCompatRetTypesVoid(t *testing.T) {
	if !CompatRetTypes(nil, nil) {
		t.Error("void should be compatible with void")
	}
	if CompatRetTypes(nil, IntType{Width: 32}) {
		t.Error("void should not be compatible with Int(32)")
	}
}
