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

// RAV is the abstract value for the Real sort: a range of rationals
// plus a tri-state flag tracking whether every element is an integer.
type RAV struct {
	Range     ValueRange[Rational]
	IsInteger TriState
}

// RangeIsInteger computes integrality from the range alone (spec.md
// §4.1 rangeIsInteger): Yes if singleton with denominator 1; No if the
// range spans strictly less than one unit between two non-integer
// endpoints; else Unknown. Only defined for rationals.
func RangeIsInteger(r ValueRange[Rational]) TriState {
	if r.IsSingle() {
		if r.SingleValue().IsIntegral() {
			return True
		}
		return False
	}
	lo, hi := r.Lo(), r.Hi()
	if lo.IsUnbounded() || hi.IsUnbounded() {
		return Unknown
	}
	loV, hiV := lo.Value(), hi.Value()
	if loV.IsIntegral() || hiV.IsIntegral() {
		return Unknown
	}
	// floor(lo)+1 >= ceil(hi) means the interior contains no integer.
	if loV.Floor().Add(IntegerFromInt64(1)).Cmp(hiV.Ceil()) >= 0 {
		return False
	}
	return Unknown
}

// RavSingle constructs the RAV for a single known rational.
func RavSingle(q Rational) RAV {
	return RAV{Range: SingleRange(q), IsInteger: TriFromBool(q.IsIntegral())}
}

// RavConcreteRange constructs the RAV for the inclusive range [lo, hi].
func RavConcreteRange(lo, hi Rational) RAV {
	r := MultiRange(Inclusive(lo), Inclusive(hi))
	return RAV{Range: r, IsInteger: RangeIsInteger(r)}
}

// RavTop is the unconstrained RAV: any rational, integrality unknown.
func RavTop() RAV {
	r := MultiRange(Unbounded[Rational](), Unbounded[Rational]())
	return RAV{Range: r, IsInteger: Unknown}
}

// RavJoin joins two RAVs: ranges join, integrality joins as x if
// x == y else Unknown.
func RavJoin(x, y RAV) RAV {
	return RAV{
		Range:     JoinRange(x.Range, y.Range),
		IsInteger: joinTri(x.IsInteger, y.IsInteger),
	}
}

// RavAdd adds two RAVs: the range operation propagates, and
// IsInteger is Yes only when both operands are Yes; otherwise it
// falls back to RangeIsInteger on the result.
func RavAdd(x, y RAV) RAV {
	r := AddRange(x.Range, y.Range)
	if x.IsInteger == True && y.IsInteger == True {
		return RAV{Range: r, IsInteger: True}
	}
	return RAV{Range: r, IsInteger: RangeIsInteger(r)}
}

// RavScalarMul multiplies a RAV by a concrete scalar k: IsInteger is
// Yes when the operand is Yes and k has denominator 1; otherwise falls
// back to RangeIsInteger on the result.
func RavScalarMul(x RAV, k Rational) RAV {
	r := ScalarMulRange(x.Range, k)
	if x.IsInteger == True && k.IsIntegral() {
		return RAV{Range: r, IsInteger: True}
	}
	return RAV{Range: r, IsInteger: RangeIsInteger(r)}
}

// RavMul multiplies two RAVs: the range operation propagates, and
// IsInteger is Yes only when both operands are Yes; otherwise it falls
// back to RangeIsInteger on the result.
func RavMul(x, y RAV) RAV {
	r := MulRange(x.Range, y.Range)
	if x.IsInteger == True && y.IsInteger == True {
		return RAV{Range: r, IsInteger: True}
	}
	return RAV{Range: r, IsInteger: RangeIsInteger(r)}
}

// RavOverlap reports whether x and y could denote the same concrete
// rational.
func RavOverlap(x, y RAV) bool {
	return OverlapRange(x.Range, y.Range)
}

// String renders the RAV for debugging.
func (r RAV) String() string {
	return fmt.Sprintf("%s(integer=%s)", r.Range.String(), r.IsInteger.String())
}
