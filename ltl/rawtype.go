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

// Package ltl implements the LLVM Type Lifter: resolving a module's
// named type declarations (possibly mutually referential) into a
// closed, self-consistent symbolic type system, plus the read-only
// query layer consumers use against the resulting context.
package ltl

import "fmt"

// Ident names a declared type, e.g. the "Node" in LLVM's "%Node = type { ... }".
type Ident string

// RawType is the opaque type the parsed LLVM AST hands to the lifter
// (spec.md §1's external "parsed LLVM AST" collaborator). It is a
// sealed interface; the constructors below mirror the raw type
// constructors spec.md §4.4 names.
type RawType interface {
	isRawType()
	// key returns a canonical, stable string form used to dedupe
	// "unsupported raw type" reports (spec.md §3.2's
	// unsupported: Set<rawType>; see SPEC_FULL.md §8 on keying a
	// non-comparable set by its string form).
	key() string
}

// IntRaw is a primitive integer type of the given bit width.
type IntRaw struct{ Width uint32 }

func (IntRaw) isRawType()      {}
func (r IntRaw) key() string   { return fmt.Sprintf("i%d", r.Width) }

// FloatRaw is LLVM's single-precision float primitive.
type FloatRaw struct{}

func (FloatRaw) isRawType()    {}
func (FloatRaw) key() string   { return "float" }

// DoubleRaw is LLVM's double-precision float primitive.
type DoubleRaw struct{}

func (DoubleRaw) isRawType()   {}
func (DoubleRaw) key() string  { return "double" }

// VoidRaw is the void pseudo-type, legal only in return position.
type VoidRaw struct{}

func (VoidRaw) isRawType()     {}
func (VoidRaw) key() string    { return "void" }

// MetadataRaw is LLVM's metadata pseudo-type.
type MetadataRaw struct{}

func (MetadataRaw) isRawType() {}
func (MetadataRaw) key() string { return "metadata" }

// OtherPrimitiveRaw is any primitive the lifter does not model, named
// by its LLVM spelling (e.g. "x86_fp80", "ppc_fp128").
type OtherPrimitiveRaw struct{ Name string }

func (OtherPrimitiveRaw) isRawType()    {}
func (r OtherPrimitiveRaw) key() string { return r.Name }

// AliasRaw references another named type declaration by identifier.
type AliasRaw struct{ ID Ident }

func (AliasRaw) isRawType()    {}
func (r AliasRaw) key() string { return "%" + string(r.ID) }

// ArrayRaw is a fixed-length array of N elements of type Elem.
type ArrayRaw struct {
	N    uint64
	Elem RawType
}

func (ArrayRaw) isRawType() {}
func (r ArrayRaw) key() string {
	return fmt.Sprintf("[%d x %s]", r.N, rawKey(r.Elem))
}

// VectorRaw is a fixed-length SIMD vector of N elements of type Elem.
type VectorRaw struct {
	N    uint64
	Elem RawType
}

func (VectorRaw) isRawType() {}
func (r VectorRaw) key() string {
	return fmt.Sprintf("<%d x %s>", r.N, rawKey(r.Elem))
}

// PtrRaw is a pointer to Elem. Elem need not resolve to a MemType
// (spec.md §9's open question): pointers to Opaque and to unresolved
// aliases are legal.
type PtrRaw struct{ Elem RawType }

func (PtrRaw) isRawType() {}
func (r PtrRaw) key() string {
	return rawKey(r.Elem) + "*"
}

// StructRaw is an (unpacked) struct with the given field types in
// order.
type StructRaw struct{ Fields []RawType }

func (StructRaw) isRawType() {}
func (r StructRaw) key() string {
	return "{" + rawKeys(r.Fields) + "}"
}

// PackedStructRaw is a packed struct (no inter-field padding).
type PackedStructRaw struct{ Fields []RawType }

func (PackedStructRaw) isRawType() {}
func (r PackedStructRaw) key() string {
	return "<{" + rawKeys(r.Fields) + "}>"
}

// FunRaw is a function signature.
type FunRaw struct {
	Ret    RawType
	Args   []RawType
	Vararg bool
}

func (FunRaw) isRawType() {}
func (r FunRaw) key() string {
	suffix := ""
	if r.Vararg {
		suffix = ", ..."
	}
	return fmt.Sprintf("%s (%s%s)", rawKey(r.Ret), rawKeys(r.Args), suffix)
}

// OpaqueRaw is a named type with no known structure.
type OpaqueRaw struct{}

func (OpaqueRaw) isRawType()    {}
func (OpaqueRaw) key() string   { return "opaque" }

func rawKey(t RawType) string {
	if t == nil {
		return "<nil>"
	}
	return t.key()
}

func rawKeys(ts []RawType) string {
	s := ""
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += rawKey(t)
	}
	return s
}

var (
	_ RawType = IntRaw{}
	_ RawType = FloatRaw{}
	_ RawType = DoubleRaw{}
	_ RawType = VoidRaw{}
	_ RawType = MetadataRaw{}
	_ RawType = OtherPrimitiveRaw{}
	_ RawType = AliasRaw{}
	_ RawType = ArrayRaw{}
	_ RawType = VectorRaw{}
	_ RawType = PtrRaw{}
	_ RawType = StructRaw{}
	_ RawType = PackedStructRaw{}
	_ RawType = FunRaw{}
	_ RawType = OpaqueRaw{}
)
