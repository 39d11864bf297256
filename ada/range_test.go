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
	"testing"
)

func iv(n int64) Integer { return IntegerFromInt64(n) }

func multi(lo, hi int64) ValueRange[Integer] {
	return MultiRange(Inclusive(iv(lo)), Inclusive(iv(hi)))
}

func TestJoinRangeCollapsesEqualSingletons(t *testing.T) {
	r := JoinRange(SingleRange(iv(5)), SingleRange(iv(5)))
	if !r.IsSingle() || r.SingleValue().Cmp(iv(5)) != 0 {
		t.Errorf("JoinRange(5,5) = %v, want singleton 5", r)
	}
}

func TestJoinRangeIdempotent(t *testing.T) {
	r := multi(-3, 7)
	got := JoinRange(r, r)
	if got.String() != r.String() {
		t.Errorf("JoinRange(r,r) = %v, want %v", got, r)
	}
}

func TestJoinRangeCommutative(t *testing.T) {
	x, y := multi(-3, 7), multi(2, 20)
	if JoinRange(x, y).String() != JoinRange(y, x).String() {
		t.Errorf("JoinRange not commutative for %v, %v", x, y)
	}
}

func TestAddRangeCommutative(t *testing.T) {
	x, y := multi(-3, 7), multi(2, 20)
	if AddRange(x, y).String() != AddRange(y, x).String() {
		t.Errorf("AddRange not commutative for %v, %v", x, y)
	}
}

func TestAddRangeSingletonShiftsMulti(t *testing.T) {
	got := AddRange(SingleRange(iv(10)), multi(-3, 7))
	want := multi(7, 17)
	if got.String() != want.String() {
		t.Errorf("AddRange(10, [-3,7]) = %v, want %v", got, want)
	}
}

func TestMulRangeStraddleByStraddle(t *testing.T) {
	// Scenario 5 from spec.md §8: mulRange(Multi(-2,3), Multi(-4,5)) = Multi(-12,15).
	got := MulRange(multi(-2, 3), multi(-4, 5))
	want := multi(-12, 15)
	if got.String() != want.String() {
		t.Errorf("MulRange(-2..3, -4..5) = %v, want %v", got, want)
	}
}

func TestMulRangeCommutative(t *testing.T) {
	x, y := multi(-2, 3), multi(-4, 5)
	if MulRange(x, y).String() != MulRange(y, x).String() {
		t.Errorf("MulRange not commutative")
	}
}

func TestMulRangeBothPositive(t *testing.T) {
	got := MulRange(multi(2, 5), multi(3, 4))
	want := multi(6, 20)
	if got.String() != want.String() {
		t.Errorf("MulRange(2..5, 3..4) = %v, want %v", got, want)
	}
}

func TestMulRangeBothNegative(t *testing.T) {
	got := MulRange(multi(-5, -2), multi(-4, -3))
	want := multi(6, 20)
	if got.String() != want.String() {
		t.Errorf("MulRange(-5..-2, -4..-3) = %v, want %v", got, want)
	}
}

func TestMulRangeMixedSigns(t *testing.T) {
	// x reaches negative only (up to 0), y is strictly positive.
	got := MulRange(multi(-5, 0), multi(2, 3))
	want := multi(-15, 0)
	if got.String() != want.String() {
		t.Errorf("MulRange(-5..0, 2..3) = %v, want %v", got, want)
	}
}

func TestMulRangeUnboundedTimesNonZero(t *testing.T) {
	r := MultiRange(Unbounded[Integer](), Inclusive(iv(5)))
	got := MulRange(r, SingleRange(iv(2)))
	if !got.Lo().IsUnbounded() {
		t.Errorf("MulRange(unbounded scaled by 2) should stay unbounded below, got %v", got)
	}
}

func TestMulRangeUnboundedTimesZero(t *testing.T) {
	r := MultiRange(Unbounded[Integer](), Unbounded[Integer]())
	got := ScalarMulRange(r, iv(0))
	if !got.IsSingle() || got.SingleValue().Sign() != 0 {
		t.Errorf("0 * unbounded should collapse to singleton 0, got %v", got)
	}
}

func TestScalarMulNegativeFlipsBounds(t *testing.T) {
	got := ScalarMulRange(multi(2, 5), iv(-3))
	want := multi(-15, -6)
	if got.String() != want.String() {
		t.Errorf("ScalarMulRange(2..5, -3) = %v, want %v", got, want)
	}
}

func TestOverlapDisjoint(t *testing.T) {
	if OverlapRange(multi(0, 4), multi(5, 9)) {
		t.Errorf("expected [0,4] and [5,9] to be disjoint")
	}
	if !OverlapRange(multi(0, 5), multi(5, 9)) {
		t.Errorf("expected [0,5] and [5,9] to overlap at 5")
	}
}

func TestOverlapUnboundedNeverDisjoint(t *testing.T) {
	r := MultiRange(Unbounded[Integer](), Unbounded[Integer]())
	if !OverlapRange(r, multi(100, 200)) {
		t.Errorf("unbounded range must overlap everything")
	}
}

func TestCheckEq(t *testing.T) {
	if res, ok := CheckEqRange(multi(0, 4), multi(5, 9)); !ok || res {
		t.Errorf("CheckEqRange disjoint ranges = (%v,%v), want (false,true)", res, ok)
	}
	if res, ok := CheckEqRange(SingleRange(iv(3)), SingleRange(iv(3))); !ok || !res {
		t.Errorf("CheckEqRange equal singletons = (%v,%v), want (true,true)", res, ok)
	}
	if res, ok := CheckEqRange(SingleRange(iv(3)), SingleRange(iv(4))); !ok || res {
		t.Errorf("CheckEqRange distinct singletons = (%v,%v), want (false,true)", res, ok)
	}
	if _, ok := CheckEqRange(multi(0, 10), multi(5, 20)); ok {
		t.Errorf("CheckEqRange overlapping multis should be unknown")
	}
}

func TestCheckLe(t *testing.T) {
	if res, ok := CheckLeRange(multi(0, 4), multi(5, 9)); !ok || !res {
		t.Errorf("CheckLeRange([0,4],[5,9]) = (%v,%v), want (true,true)", res, ok)
	}
	if res, ok := CheckLeRange(multi(5, 9), multi(0, 4)); !ok || res {
		t.Errorf("CheckLeRange([5,9],[0,4]) = (%v,%v), want (false,true)", res, ok)
	}
	if _, ok := CheckLeRange(multi(0, 10), multi(5, 20)); ok {
		t.Errorf("CheckLeRange overlapping multis should be unknown")
	}
}

func TestContainsSingle(t *testing.T) {
	r := SingleRange(iv(7))
	if !ContainsRange(r, iv(7)) {
		t.Errorf("contains(single(7), 7) should be true")
	}
	if ContainsRange(r, iv(8)) {
		t.Errorf("contains(single(7), 8) should be false")
	}
}

func TestSoundnessAddMul(t *testing.T) {
	r := multi(-2, 3)
	s := multi(1, 4)
	a, b := iv(2), iv(3) // a in r, b in s
	if !ContainsRange(r, a) || !ContainsRange(s, b) {
		t.Fatal("test setup invariant violated")
	}
	if !ContainsRange(AddRange(r, s), a.Add(b)) {
		t.Errorf("a+b should be contained in add(r,s)")
	}
	if !ContainsRange(MulRange(r, s), a.Mul(b)) {
		t.Errorf("a*b should be contained in mul(r,s)")
	}
	if !ContainsRange(JoinRange(r, s), a) {
		t.Errorf("a should be contained in join(r,s)")
	}
}
