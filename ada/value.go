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
	"strings"
)

// Abstract is the sort-indexed abstract value family from spec.md
// §3.1. Every sort has exactly one concrete Go type implementing this
// interface; the isAbstract marker method (mirroring the teacher's
// ast.Term/ast.BaseTerm sealed-interface idiom) prevents types outside
// this package from satisfying it.
type Abstract interface {
	isAbstract()
	// Sort returns the sort representative this value belongs to.
	Sort() Sort
	// String renders the value for debugging.
	String() string
}

// BoolValue is the abstract value for the Bool sort: a tri-state.
type BoolValue struct{ State TriState }

func (BoolValue) isAbstract()    {}
func (BoolValue) Sort() Sort     { return Bool() }
func (b BoolValue) String() string { return b.State.String() }

// NatValue is the abstract value for the Nat sort.
type NatValue struct{ Range NatRange }

func (NatValue) isAbstract()      {}
func (NatValue) Sort() Sort       { return Nat() }
func (n NatValue) String() string { return n.Range.String() }

// IntValue is the abstract value for the Integer sort.
type IntValue struct{ Range ValueRange[Integer] }

func (IntValue) isAbstract()      {}
func (IntValue) Sort() Sort       { return IntegerSort() }
func (i IntValue) String() string { return i.Range.String() }

// RealValue is the abstract value for the Real sort.
type RealValue struct{ RAV RAV }

func (RealValue) isAbstract()      {}
func (RealValue) Sort() Sort       { return Real() }
func (r RealValue) String() string { return r.RAV.String() }

// BVValue is the abstract value for a BV<w> sort: an opaque domain
// supplied by the BVD external collaborator.
type BVValue struct{ Domain BVDomain }

func (BVValue) isAbstract() {}
func (b BVValue) Sort() Sort {
	return Sort{kind: BVKind, width: b.Domain.Width()}
}
func (b BVValue) String() string { return b.Domain.String() }

// ComplexValue is the abstract value for the Complex sort: a pair of
// RAVs (real part, imaginary part).
type ComplexValue struct{ Re, Im RAV }

func (ComplexValue) isAbstract() {}
func (ComplexValue) Sort() Sort  { return Complex() }
func (c ComplexValue) String() string {
	return fmt.Sprintf("(%s + %si)", c.Re.String(), c.Im.String())
}

// ArrayValue is the abstract value for an Array(idx, elem) sort: the
// element's abstract value, with the index sort ignored.
type ArrayValue struct {
	ElemSort Sort
	Elem     Abstract
}

func (ArrayValue) isAbstract()      {}
func (a ArrayValue) Sort() Sort     { return Array(a.ElemSort) }
func (a ArrayValue) String() string { return fmt.Sprintf("array(%s)", a.Elem.String()) }

// StructValue is the abstract value for a Struct(fields...) sort: a
// vector of per-field abstract values.
type StructValue struct{ Fields []Abstract }

func (StructValue) isAbstract() {}
func (s StructValue) Sort() Sort {
	sorts := make([]Sort, len(s.Fields))
	for i, f := range s.Fields {
		sorts[i] = f.Sort()
	}
	return Struct(sorts...)
}
func (s StructValue) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("struct(%s)", strings.Join(parts, ", "))
}

var (
	_ Abstract = BoolValue{}
	_ Abstract = NatValue{}
	_ Abstract = IntValue{}
	_ Abstract = RealValue{}
	_ Abstract = BVValue{}
	_ Abstract = ComplexValue{}
	_ Abstract = ArrayValue{}
	_ Abstract = StructValue{}
)
