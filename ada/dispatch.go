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

import "fmt"

// Join returns the least upper bound of a and b in the lattice for
// sort. Both values must already belong to sort (and, for Array/Struct,
// to sort's nested shape); a mismatch is a programmer error in the
// caller and is reported as an error rather than a panic.
func Join(sort Sort, a, b Abstract) (Abstract, error) {
	switch sort.Kind() {
	case BoolKind:
		av, bv, err := asBool(a, b)
		if err != nil {
			return nil, err
		}
		return BoolValue{State: joinTri(av.State, bv.State)}, nil
	case NatKind:
		av, bv, err := asNat(a, b)
		if err != nil {
			return nil, err
		}
		return NatValue{Range: NatJoinRange(av.Range, bv.Range)}, nil
	case IntegerKind:
		av, bv, err := asInt(a, b)
		if err != nil {
			return nil, err
		}
		return IntValue{Range: JoinRange(av.Range, bv.Range)}, nil
	case RealKind:
		av, bv, err := asReal(a, b)
		if err != nil {
			return nil, err
		}
		return RealValue{RAV: RavJoin(av.RAV, bv.RAV)}, nil
	case BVKind:
		av, bv, err := asBV(a, b)
		if err != nil {
			return nil, err
		}
		return BVValue{Domain: sort.Ops().Union(sort.Width(), av.Domain, bv.Domain)}, nil
	case ComplexKind:
		av, bv, err := asComplex(a, b)
		if err != nil {
			return nil, err
		}
		return ComplexValue{Re: RavJoin(av.Re, bv.Re), Im: RavJoin(av.Im, bv.Im)}, nil
	case ArrayKind:
		av, bv, err := asArray(a, b)
		if err != nil {
			return nil, err
		}
		elem, err := Join(sort.Elem(), av.Elem, bv.Elem)
		if err != nil {
			return nil, err
		}
		return ArrayValue{ElemSort: sort.Elem(), Elem: elem}, nil
	case StructKind:
		av, bv, err := asStruct(a, b)
		if err != nil {
			return nil, err
		}
		return zipStruct(sort, av, bv, Join)
	default:
		return nil, fmt.Errorf("ada: Join: unknown sort kind %v", sort.Kind())
	}
}

// Overlap reports whether a and b could denote the same concrete
// value in sort's domain.
func Overlap(sort Sort, a, b Abstract) (bool, error) {
	switch sort.Kind() {
	case BoolKind:
		av, bv, err := asBool(a, b)
		if err != nil {
			return false, err
		}
		if av.State == Unknown || bv.State == Unknown {
			return true, nil
		}
		return av.State == bv.State, nil
	case NatKind:
		av, bv, err := asNat(a, b)
		if err != nil {
			return false, err
		}
		return NatOverlap(av.Range, bv.Range), nil
	case IntegerKind:
		av, bv, err := asInt(a, b)
		if err != nil {
			return false, err
		}
		return OverlapRange(av.Range, bv.Range), nil
	case RealKind:
		av, bv, err := asReal(a, b)
		if err != nil {
			return false, err
		}
		return RavOverlap(av.RAV, bv.RAV), nil
	case BVKind:
		av, bv, err := asBV(a, b)
		if err != nil {
			return false, err
		}
		return sort.Ops().Overlap(av.Domain, bv.Domain), nil
	case ComplexKind:
		av, bv, err := asComplex(a, b)
		if err != nil {
			return false, err
		}
		return RavOverlap(av.Re, bv.Re) && RavOverlap(av.Im, bv.Im), nil
	case ArrayKind:
		av, bv, err := asArray(a, b)
		if err != nil {
			return false, err
		}
		return Overlap(sort.Elem(), av.Elem, bv.Elem)
	case StructKind:
		av, bv, err := asStruct(a, b)
		if err != nil {
			return false, err
		}
		fields := sort.Fields()
		if len(av.Fields) != len(fields) || len(bv.Fields) != len(fields) {
			return false, fmt.Errorf("ada: Overlap: struct arity mismatch")
		}
		for i, f := range fields {
			ok, err := Overlap(f, av.Fields[i], bv.Fields[i])
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, fmt.Errorf("ada: Overlap: unknown sort kind %v", sort.Kind())
	}
}

// Top returns the greatest abstract value for sort.
func Top(sort Sort) Abstract {
	switch sort.Kind() {
	case BoolKind:
		return BoolValue{State: Unknown}
	case NatKind:
		return NatValue{Range: NatTop()}
	case IntegerKind:
		return IntValue{Range: MultiRange(Unbounded[Integer](), Unbounded[Integer]())}
	case RealKind:
		return RealValue{RAV: RavTop()}
	case BVKind:
		return BVValue{Domain: sort.Ops().Any(sort.Width())}
	case ComplexKind:
		return ComplexValue{Re: RavTop(), Im: RavTop()}
	case ArrayKind:
		return ArrayValue{ElemSort: sort.Elem(), Elem: Top(sort.Elem())}
	case StructKind:
		fields := sort.Fields()
		vals := make([]Abstract, len(fields))
		for i, f := range fields {
			vals[i] = Top(f)
		}
		return StructValue{Fields: vals}
	default:
		panic(fmt.Sprintf("ada: Top: unknown sort kind %v", sort.Kind()))
	}
}

// Single returns the minimal abstract value containing exactly the
// concrete value c, for sort.
func Single(sort Sort, c Concrete) (Abstract, error) {
	switch sort.Kind() {
	case BoolKind:
		cb, ok := c.(ConcreteBool)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteBool, got %T", c)
		}
		return BoolValue{State: TriFromBool(bool(cb))}, nil
	case NatKind:
		cn, ok := c.(ConcreteNat)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteNat, got %T", c)
		}
		return NatValue{Range: NatSingle(cn.N)}, nil
	case IntegerKind:
		ci, ok := c.(ConcreteInt)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteInt, got %T", c)
		}
		return IntValue{Range: SingleRange(ci.N)}, nil
	case RealKind:
		cr, ok := c.(ConcreteReal)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteReal, got %T", c)
		}
		return RealValue{RAV: RavSingle(cr.Q)}, nil
	case BVKind:
		cb, ok := c.(ConcreteBV)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteBV, got %T", c)
		}
		return BVValue{Domain: sort.Ops().Singleton(sort.Width(), cb.N)}, nil
	case ComplexKind:
		cc, ok := c.(ConcreteComplex)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteComplex, got %T", c)
		}
		return ComplexValue{Re: RavSingle(cc.Re), Im: RavSingle(cc.Im)}, nil
	case ArrayKind:
		if _, ok := c.(ConcreteArray); !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteArray, got %T", c)
		}
		// The concrete carrier for Array is unit (spec.md §3.1): there
		// is no concrete element to pin down, so the minimal abstract
		// value is the element sort's Top.
		return ArrayValue{ElemSort: sort.Elem(), Elem: Top(sort.Elem())}, nil
	case StructKind:
		cs, ok := c.(ConcreteStruct)
		if !ok {
			return nil, fmt.Errorf("ada: Single: want ConcreteStruct, got %T", c)
		}
		fields := sort.Fields()
		if len(cs.Fields) != len(fields) {
			return nil, fmt.Errorf("ada: Single: struct arity mismatch: want %d, got %d", len(fields), len(cs.Fields))
		}
		vals := make([]Abstract, len(fields))
		for i, f := range fields {
			v, err := Single(f, cs.Fields[i])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return StructValue{Fields: vals}, nil
	default:
		return nil, fmt.Errorf("ada: Single: unknown sort kind %v", sort.Kind())
	}
}

// Contains reports whether abs contains the concrete value c, for
// sort. It is defined as Overlap(sort, Single(sort, c), abs).
func Contains(sort Sort, c Concrete, abs Abstract) (bool, error) {
	single, err := Single(sort, c)
	if err != nil {
		return false, err
	}
	return Overlap(sort, single, abs)
}

// zipStruct applies op field-wise to two struct values of the same
// shape, used by both Join and (inline) Overlap for StructKind.
func zipStruct(sort Sort, a, b StructValue, op func(Sort, Abstract, Abstract) (Abstract, error)) (Abstract, error) {
	fields := sort.Fields()
	if len(a.Fields) != len(fields) || len(b.Fields) != len(fields) {
		return nil, fmt.Errorf("ada: struct arity mismatch")
	}
	vals := make([]Abstract, len(fields))
	for i, f := range fields {
		v, err := op(f, a.Fields[i], b.Fields[i])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return StructValue{Fields: vals}, nil
}

func asBool(a, b Abstract) (BoolValue, BoolValue, error) {
	av, ok1 := a.(BoolValue)
	bv, ok2 := b.(BoolValue)
	if !ok1 || !ok2 {
		return BoolValue{}, BoolValue{}, fmt.Errorf("ada: want BoolValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asNat(a, b Abstract) (NatValue, NatValue, error) {
	av, ok1 := a.(NatValue)
	bv, ok2 := b.(NatValue)
	if !ok1 || !ok2 {
		return NatValue{}, NatValue{}, fmt.Errorf("ada: want NatValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asInt(a, b Abstract) (IntValue, IntValue, error) {
	av, ok1 := a.(IntValue)
	bv, ok2 := b.(IntValue)
	if !ok1 || !ok2 {
		return IntValue{}, IntValue{}, fmt.Errorf("ada: want IntValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asReal(a, b Abstract) (RealValue, RealValue, error) {
	av, ok1 := a.(RealValue)
	bv, ok2 := b.(RealValue)
	if !ok1 || !ok2 {
		return RealValue{}, RealValue{}, fmt.Errorf("ada: want RealValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asBV(a, b Abstract) (BVValue, BVValue, error) {
	av, ok1 := a.(BVValue)
	bv, ok2 := b.(BVValue)
	if !ok1 || !ok2 {
		return BVValue{}, BVValue{}, fmt.Errorf("ada: want BVValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asComplex(a, b Abstract) (ComplexValue, ComplexValue, error) {
	av, ok1 := a.(ComplexValue)
	bv, ok2 := b.(ComplexValue)
	if !ok1 || !ok2 {
		return ComplexValue{}, ComplexValue{}, fmt.Errorf("ada: want ComplexValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asArray(a, b Abstract) (ArrayValue, ArrayValue, error) {
	av, ok1 := a.(ArrayValue)
	bv, ok2 := b.(ArrayValue)
	if !ok1 || !ok2 {
		return ArrayValue{}, ArrayValue{}, fmt.Errorf("ada: want ArrayValue, got %T and %T", a, b)
	}
	return av, bv, nil
}

func asStruct(a, b Abstract) (StructValue, StructValue, error) {
	av, ok1 := a.(StructValue)
	bv, ok2 := b.(StructValue)
	if !ok1 || !ok2 {
		return StructValue{}, StructValue{}, fmt.Errorf("ada: want StructValue, got %T and %T", a, b)
	}
	return av, bv, nil
}
