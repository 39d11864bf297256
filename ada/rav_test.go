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

import "testing"

func half() Rational { return RationalFromFrac(1, 2) }

func TestRavSingleIntegrality(t *testing.T) {
	if RavSingle(RationalFromInt64(3)).IsInteger != True {
		t.Errorf("ravSingle(3).isInteger should be Yes")
	}
	if RavSingle(half()).IsInteger != False {
		t.Errorf("ravSingle(1/2).isInteger should be No")
	}
}

func TestRavAddHalves(t *testing.T) {
	// Scenario 6 from spec.md §8: ravAdd(ravSingle(1/2), ravSingle(1/2)).isInteger = Yes.
	got := RavAdd(RavSingle(half()), RavSingle(half()))
	if got.IsInteger != True {
		t.Errorf("ravAdd(1/2, 1/2).isInteger = %v, want Yes", got.IsInteger)
	}
	if !got.Range.IsSingle() || got.Range.SingleValue().Cmp(RationalFromInt64(1)) != 0 {
		t.Errorf("ravAdd(1/2, 1/2).range = %v, want {1}", got.Range)
	}
}

func TestRavMulIntegerTimesRange(t *testing.T) {
	// spec.md §8 scenario 6 states ravMul(ravSingle(3), ravConcreteRange(1,2)).isInteger
	// = Yes, but [1,2] contains 1.5, whose product with 3 is 4.5 — not integral. Per
	// the normative §4.2 algorithm, ravConcreteRange(1,2).isInteger is already Unknown
	// (rangeIsInteger answers Unknown for a multi-point range with an integral endpoint), so the
	// isInteger==True&&isInteger==True fast path in ravMul never fires, and the
	// fallback rangeIsInteger(mulRange([3,3],[1,2])) = rangeIsInteger([3,6]) is Unknown
	// too. The scenario's stated answer is inconsistent with §4.2; this test asserts
	// what the algorithm actually produces (see DESIGN.md).
	got := RavMul(RavSingle(RationalFromInt64(3)), RavConcreteRange(RationalFromInt64(1), RationalFromInt64(2)))
	if got.IsInteger != Unknown {
		t.Errorf("ravMul(3, [1,2]).isInteger = %v, want Unknown", got.IsInteger)
	}
}

func TestRavMulHalfTimesHalfIsNotInteger(t *testing.T) {
	// Scenario 6: ravMul(ravSingle(1/2), ravSingle(1/2)).isInteger = No, because 1/4 isn't integral.
	got := RavMul(RavSingle(half()), RavSingle(half()))
	if got.IsInteger != False {
		t.Errorf("ravMul(1/2, 1/2).isInteger = %v, want No", got.IsInteger)
	}
	want := RationalFromFrac(1, 4)
	if !got.Range.IsSingle() || got.Range.SingleValue().Cmp(want) != 0 {
		t.Errorf("ravMul(1/2, 1/2).range = %v, want {1/4}", got.Range)
	}
}

func TestRangeIsIntegerSpansLessThanOneUnit(t *testing.T) {
	// Bounds whose floor+1 >= ceil and neither of which is integral: no
	// integer lies in [1.1, 1.9].
	lo := RationalFromFrac(11, 10) // 1.1
	hi := RationalFromFrac(19, 10) // 1.9
	r := MultiRange(Inclusive(lo), Inclusive(hi))
	if RangeIsInteger(r) != False {
		t.Errorf("RangeIsInteger([1.1,1.9]) = %v, want No", RangeIsInteger(r))
	}
}

func TestRangeIsIntegerUnknownWhenStraddlingAnInteger(t *testing.T) {
	lo := RationalFromFrac(9, 10)  // 0.9
	hi := RationalFromFrac(11, 10) // 1.1
	r := MultiRange(Inclusive(lo), Inclusive(hi))
	if RangeIsInteger(r) != Unknown {
		t.Errorf("RangeIsInteger([0.9,1.1]) = %v, want Unknown", RangeIsInteger(r))
	}
}

func TestRavJoin(t *testing.T) {
	a := RavSingle(RationalFromInt64(2))
	b := RavSingle(RationalFromInt64(2))
	if RavJoin(a, b).IsInteger != True {
		t.Errorf("joining two equal Yes RAVs should stay Yes")
	}
	c := RavSingle(half())
	if RavJoin(a, c).IsInteger != Unknown {
		t.Errorf("joining Yes and No should be Unknown, got %v", RavJoin(a, c).IsInteger)
	}
}

func TestTriStateLogic(t *testing.T) {
	if True.And(False) != False {
		t.Errorf("True.And(False) should short-circuit to False")
	}
	if Unknown.And(True) != Unknown {
		t.Errorf("Unknown.And(True) should be Unknown")
	}
	if False.Or(True) != True {
		t.Errorf("False.Or(True) should be True")
	}
	if Unknown.Or(False) != Unknown {
		t.Errorf("Unknown.Or(False) should be Unknown")
	}
}
