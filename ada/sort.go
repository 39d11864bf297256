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

package ada

import (
	"fmt"
	"math/big"
)

// Kind tags which of the base sorts a Sort represents.
type Kind int

const (
	// BoolKind is the sort of booleans.
	BoolKind Kind = iota
	// NatKind is the sort of naturals (integers >= 0).
	NatKind
	// IntegerKind is the sort of (signed) integers.
	IntegerKind
	// RealKind is the sort of rationals.
	RealKind
	// BVKind is the sort of fixed-width bit-vectors.
	BVKind
	// ComplexKind is the sort of pairs of reals.
	ComplexKind
	// ArrayKind is the sort of arrays (index sort is ignored; only
	// the element sort matters for the abstract domain).
	ArrayKind
	// StructKind is the sort of fixed-shape structs.
	StructKind
)

// BVDomain is the opaque bit-vector abstract value provided by the BVD
// external collaborator (spec.md §1, "out of scope"). ADA treats it as
// a capability-typed blob: it never inspects it except through BVOps.
type BVDomain interface {
	// Width returns the bit width this domain value was built for.
	Width() uint32
	// String renders the domain for debugging.
	String() string
}

// BVOps is the capability BVD exposes to ADA for a given width: the
// four operations named in spec.md §6 (any, singleton, union,
// domainsOverlap).
type BVOps interface {
	Any(width uint32) BVDomain
	Singleton(width uint32, n *big.Int) BVDomain
	Union(width uint32, a, b BVDomain) BVDomain
	Overlap(a, b BVDomain) bool
}

// Sort is the tagged sort representative that indexes the
// AbstractValue family (spec.md §3.1) and parameterizes the generic
// dispatch operations (Join, Overlap, Top, Single, Contains).
type Sort struct {
	kind   Kind
	width  uint32 // BVKind only
	ops    BVOps  // BVKind only: capability to build/combine BV domains
	elem   *Sort  // ArrayKind only
	fields []Sort // StructKind only
}

// Bool is the Bool sort representative.
func Bool() Sort { return Sort{kind: BoolKind} }

// Nat is the Nat sort representative.
func Nat() Sort { return Sort{kind: NatKind} }

// IntegerSort is the Integer sort representative.
func IntegerSort() Sort { return Sort{kind: IntegerKind} }

// Real is the Real sort representative.
func Real() Sort { return Sort{kind: RealKind} }

// Complex is the Complex sort representative.
func Complex() Sort { return Sort{kind: ComplexKind} }

// BV is the BV<width> sort representative, carrying the BVOps
// capability used to build/combine domain values for that width.
func BV(width uint32, ops BVOps) Sort {
	return Sort{kind: BVKind, width: width, ops: ops}
}

// Array is the Array(idx, elem) sort representative; the index sort is
// not represented (spec.md §3.1: "index ignored").
func Array(elem Sort) Sort {
	e := elem
	return Sort{kind: ArrayKind, elem: &e}
}

// Struct is the Struct(fields...) sort representative.
func Struct(fields ...Sort) Sort {
	fs := make([]Sort, len(fields))
	copy(fs, fields)
	return Sort{kind: StructKind, fields: fs}
}

// Kind returns the tag of s.
func (s Sort) Kind() Kind { return s.kind }

// Width returns the bit width of a BVKind sort. Panics on other kinds.
func (s Sort) Width() uint32 {
	s.mustBeKind(BVKind)
	return s.width
}

// Ops returns the BVOps capability of a BVKind sort. Panics on other
// kinds.
func (s Sort) Ops() BVOps {
	s.mustBeKind(BVKind)
	return s.ops
}

// Elem returns the element sort of an ArrayKind sort. Panics on other
// kinds.
func (s Sort) Elem() Sort {
	s.mustBeKind(ArrayKind)
	return *s.elem
}

// Fields returns the field sorts of a StructKind sort. Panics on other
// kinds.
func (s Sort) Fields() []Sort {
	s.mustBeKind(StructKind)
	return s.fields
}

func (s Sort) mustBeKind(k Kind) {
	if s.kind != k {
		panic(fmt.Sprintf("ada: sort %v is not %v", s.kind, k))
	}
}

// String renders the sort for debugging and error messages.
func (s Sort) String() string {
	switch s.kind {
	case BoolKind:
		return "bool"
	case NatKind:
		return "nat"
	case IntegerKind:
		return "integer"
	case RealKind:
		return "real"
	case BVKind:
		return fmt.Sprintf("bv%d", s.width)
	case ComplexKind:
		return "complex"
	case ArrayKind:
		return fmt.Sprintf("array(%s)", s.elem.String())
	case StructKind:
		parts := make([]string, len(s.fields))
		for i, f := range s.fields {
			parts[i] = f.String()
		}
		return fmt.Sprintf("struct(%v)", parts)
	default:
		return "unknown-sort"
	}
}
