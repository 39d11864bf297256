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

// MemType is a type with a concrete in-memory representation: a size
// and an alignment (spec.md §3.2). It is a sealed interface; the eight
// concrete shapes below are the only implementations.
type MemType interface {
	isMemType()
}

// IntType is an integer of the given bit width.
type IntType struct{ Width uint32 }

func (IntType) isMemType() {}

// FloatType is LLVM's single-precision float.
type FloatType struct{}

func (FloatType) isMemType() {}

// DoubleType is LLVM's double-precision float.
type DoubleType struct{}

func (DoubleType) isMemType() {}

// PtrType is a pointer to Elem. Elem need not itself be a MemType: a
// pointer to an OpaqueSym or to an unresolved AliasSym is legal (see
// the doc comment on PtrRaw).
type PtrType struct{ Elem SymType }

func (PtrType) isMemType() {}

// ArrayType is a fixed-length array of N elements of type Elem.
type ArrayType struct {
	N    uint64
	Elem MemType
}

func (ArrayType) isMemType() {}

// VecType is a fixed-length SIMD vector of N elements of type Elem.
type VecType struct {
	N    uint64
	Elem MemType
}

func (VecType) isMemType() {}

// StructType wraps a fully resolved StructInfo.
type StructType struct{ Info StructInfo }

func (StructType) isMemType() {}

// MetadataType is LLVM's metadata pseudo-type, given a concrete
// (degenerate) in-memory shape so it can appear as a MemType.
type MetadataType struct{}

func (MetadataType) isMemType() {}

var (
	_ MemType = IntType{}
	_ MemType = FloatType{}
	_ MemType = DoubleType{}
	_ MemType = PtrType{}
	_ MemType = ArrayType{}
	_ MemType = VecType{}
	_ MemType = StructType{}
	_ MemType = MetadataType{}
)

// RetType is a function's return type: a MemType, or nil to model
// spec.md §3.2's Option<MemType> "None" (void). It is a plain alias so
// a nil MemType-typed value (no wrapper) represents void directly,
// rather than introducing a second optionality encoding.
type RetType = MemType

// FunDecl is a resolved function signature.
type FunDecl struct {
	Ret    RetType
	Args   []MemType
	Vararg bool
}

// StructLayout is the size/alignment/offset information the
// data-layout service derives for a struct's fields (spec.md §6's
// mkStructInfo). It is produced, not computed, by this package: LTL
// treats it as an opaque service response.
type StructLayout struct {
	Size    uint64
	Align   uint64
	Offsets []uint64
}

// StructInfo is a fully resolved struct: its fields plus the layout
// the data-layout service derived for them.
type StructInfo struct {
	Packed bool
	Fields []MemType
	Layout StructLayout
}

// ValMd is an opaque metadata value keyed by the unnamed-metadata map
// (spec.md §6). LTL never inspects its contents.
type ValMd any

// Decl is one named type declaration handed to mkContext.
type Decl struct {
	ID  Ident
	Raw RawType
}

// DataLayout is the external data-layout service (spec.md §1's "a
// data-layout module providing size/alignment of primitives"). It is
// declared here, in the consuming package, rather than in its
// concrete implementation's package, so that ltl has no import
// dependency on whatever package implements it (mirroring how
// ada.BVDomain/ada.BVOps are declared in ada and implemented
// externally by internal/bvdomain).
type DataLayout interface {
	// MkStructInfo derives the layout for a struct with the given
	// fields, honoring the packed flag (no inter-field padding when
	// packed).
	MkStructInfo(packed bool, fields []MemType) StructLayout
	// IntSize returns the size and alignment, in bytes, of an integer
	// of the given bit width.
	IntSize(width uint32) (size, align uint64)
	// FloatSize and DoubleSize return the size and alignment, in
	// bytes, of the two floating-point primitives.
	FloatSize() (size, align uint64)
	DoubleSize() (size, align uint64)
	// PointerSize returns the size and alignment, in bytes, of a
	// pointer (assumed uniform across pointee types).
	PointerSize() (size, align uint64)
}
