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

// ValueRange is either Single(t) or Multi(lo, hi), for a totally
// ordered ring T. Single(t) and Multi(Inclusive(t), Inclusive(t)) are
// equal in meaning; constructors always normalize to Single.
type ValueRange[T Num[T]] struct {
	single bool
	at     T
	lo, hi ValueBound[T]
}

// SingleRange constructs a singleton range.
func SingleRange[T Num[T]](t T) ValueRange[T] {
	return ValueRange[T]{single: true, at: t}
}

// MultiRange constructs a range with the given bounds, normalizing to
// Single if lo and hi are both inclusive and equal.
func MultiRange[T Num[T]](lo, hi ValueBound[T]) ValueRange[T] {
	if !lo.IsUnbounded() && !hi.IsUnbounded() && lo.Value().Cmp(hi.Value()) == 0 {
		return SingleRange[T](lo.Value())
	}
	return ValueRange[T]{lo: lo, hi: hi}
}

// IsSingle reports whether r denotes exactly one value.
func (r ValueRange[T]) IsSingle() bool { return r.single }

// SingleValue returns the singleton value. Only meaningful if
// r.IsSingle().
func (r ValueRange[T]) SingleValue() T { return r.at }

// Lo returns the lower bound, as Inclusive(v) for a singleton.
func (r ValueRange[T]) Lo() ValueBound[T] {
	if r.single {
		return Inclusive(r.at)
	}
	return r.lo
}

// Hi returns the upper bound, as Inclusive(v) for a singleton.
func (r ValueRange[T]) Hi() ValueBound[T] {
	if r.single {
		return Inclusive(r.at)
	}
	return r.hi
}

// String renders the range for debugging.
func (r ValueRange[T]) String() string {
	if r.single {
		return fmt.Sprintf("{%s}", r.at.String())
	}
	return fmt.Sprintf("[%s, %s]", r.lo.String(), r.hi.String())
}

// JoinRange computes the least upper bound of x and y: singletons with
// equal values collapse to a singleton, otherwise the result spans
// min(lo)..max(hi).
func JoinRange[T Num[T]](x, y ValueRange[T]) ValueRange[T] {
	if x.IsSingle() && y.IsSingle() && x.SingleValue().Cmp(y.SingleValue()) == 0 {
		return x
	}
	return MultiRange(minBound(x.Lo(), y.Lo()), maxBound(x.Hi(), y.Hi()))
}

// AddRange computes pointwise addition: singleton+multi shifts both
// bounds of the multi side by the scalar.
func AddRange[T Num[T]](x, y ValueRange[T]) ValueRange[T] {
	if x.IsSingle() && y.IsSingle() {
		return SingleRange(x.SingleValue().Add(y.SingleValue()))
	}
	return MultiRange(addBound(x.Lo(), y.Lo()), addBound(x.Hi(), y.Hi()))
}

// ScalarMulRange multiplies every element of r by the finite scalar k.
func ScalarMulRange[T Num[T]](r ValueRange[T], k T) ValueRange[T] {
	switch k.Sign() {
	case 0:
		return SingleRange(k)
	case 1:
		return MultiRange(mulBoundByScalar(r.Lo(), k), mulBoundByScalar(r.Hi(), k))
	default: // negative: swap bounds so lo stays the minimum
		return MultiRange(mulBoundByScalar(r.Hi(), k), mulBoundByScalar(r.Lo(), k))
	}
}

// signReach reports, for a range's lower and upper bound, whether it
// reaches into the non-positives (neg) and whether it reaches into the
// non-negatives (pos). Both can be true (straddles zero).
func signReach[T Num[T]](lo, hi ValueBound[T]) (neg, pos bool) {
	neg = lo.IsUnbounded() || lo.Value().Sign() <= 0
	pos = hi.IsUnbounded() || hi.Value().Sign() >= 0
	return neg, pos
}

// mulFiniteBounds multiplies two finite bounds; panics if either is
// unbounded (callers only invoke this once they've established the
// product is finite along that path).
func mulFiniteBounds[T Num[T]](a, b ValueBound[T]) ValueBound[T] {
	return Inclusive(a.Value().Mul(b.Value()))
}

// mulUnboundedSide returns Unbounded unless the finite operand is
// exactly zero, in which case multiplying by "infinity" collapses to
// zero (0 * Unbounded = 0, per spec).
func mulUnboundedSide[T Num[T]](finite ValueBound[T]) ValueBound[T] {
	if !finite.IsUnbounded() && finite.Value().Sign() == 0 {
		return Inclusive(finite.Value())
	}
	return Unbounded[T]()
}

// mulBoundPair multiplies bound a by bound b, handling the case where
// either side (but not necessarily both) is unbounded.
func mulBoundPair[T Num[T]](a, b ValueBound[T]) ValueBound[T] {
	if a.IsUnbounded() && b.IsUnbounded() {
		return Unbounded[T]()
	}
	if a.IsUnbounded() {
		return mulUnboundedSide(b)
	}
	if b.IsUnbounded() {
		return mulUnboundedSide(a)
	}
	return mulFiniteBounds(a, b)
}

// MulRange implements interval multiplication by case-splitting on the
// sign reach of each operand, per spec.md §4.1.
func MulRange[T Num[T]](x, y ValueRange[T]) ValueRange[T] {
	if x.IsSingle() {
		return ScalarMulRange(y, x.SingleValue())
	}
	if y.IsSingle() {
		return ScalarMulRange(x, y.SingleValue())
	}
	lx, ux := x.Lo(), x.Hi()
	ly, uy := y.Lo(), y.Hi()
	xNeg, xPos := signReach(lx, ux)
	yNeg, yPos := signReach(ly, uy)
	straddleBoth := xNeg && xPos && yNeg && yPos

	// The lower and upper bounds each have their own case-priority
	// chain (spec.md §4.1); they are not mirror images of a single
	// shared branch selection except in the straddle-by-straddle and
	// both-negative/both-positive cases.
	var lo ValueBound[T]
	switch {
	case straddleBoth:
		lo = minBound(mulBoundPair(lx, uy), mulBoundPair(ux, ly))
	case xNeg && yPos:
		lo = mulBoundPair(lx, uy)
	case xPos && yNeg:
		lo = mulBoundPair(ux, ly)
	case !xPos && !yPos: // both negative-only
		lo = mulBoundPair(ux, uy)
	default: // both positive-only
		lo = mulBoundPair(lx, ly)
	}

	var hi ValueBound[T]
	switch {
	case straddleBoth:
		hi = maxBound(mulBoundPair(lx, ly), mulBoundPair(ux, uy))
	case xNeg && yNeg: // both reach negative, at most one straddles
		hi = mulBoundPair(lx, ly)
	case xPos && yPos: // both reach positive, at most one straddles
		hi = mulBoundPair(ux, uy)
	case xPos && yNeg:
		hi = mulBoundPair(lx, uy)
	default: // remaining case: xNeg && yPos
		hi = mulBoundPair(ux, ly)
	}
	return MultiRange(lo, hi)
}

// disjoint reports whether x and y share no value: hi_x < lo_y or
// hi_y < lo_x, with Unbounded on the relevant side never making them
// disjoint.
func disjoint[T Num[T]](x, y ValueRange[T]) bool {
	hx, ly := x.Hi(), y.Lo()
	if !hx.IsUnbounded() && !ly.IsUnbounded() && hx.Value().Cmp(ly.Value()) < 0 {
		return true
	}
	hy, lx := y.Hi(), x.Lo()
	if !hy.IsUnbounded() && !lx.IsUnbounded() && hy.Value().Cmp(lx.Value()) < 0 {
		return true
	}
	return false
}

// OverlapRange reports whether x and y could denote the same concrete
// value.
func OverlapRange[T Num[T]](x, y ValueRange[T]) bool {
	return !disjoint(x, y)
}

// CheckEqRange implements rangeCheckEq: Some(false) if disjoint,
// Some(x==y) if both singletons, else unknown (ok=false).
func CheckEqRange[T Num[T]](x, y ValueRange[T]) (result, ok bool) {
	if disjoint(x, y) {
		return false, true
	}
	if x.IsSingle() && y.IsSingle() {
		return x.SingleValue().Cmp(y.SingleValue()) == 0, true
	}
	return false, false
}

// CheckLeRange implements rangeCheckLe: Some(true) if hi_x <= lo_y,
// Some(false) if hi_y < lo_x, else unknown (ok=false).
func CheckLeRange[T Num[T]](x, y ValueRange[T]) (result, ok bool) {
	hx, ly := x.Hi(), y.Lo()
	if !hx.IsUnbounded() && !ly.IsUnbounded() && hx.Value().Cmp(ly.Value()) <= 0 {
		return true, true
	}
	hy, lx := y.Hi(), x.Lo()
	if !hy.IsUnbounded() && !lx.IsUnbounded() && hy.Value().Cmp(lx.Value()) < 0 {
		return false, true
	}
	return false, false
}

// ContainsRange reports whether the concrete value c lies within r.
func ContainsRange[T Num[T]](r ValueRange[T], c T) bool {
	return OverlapRange(r, SingleRange(c))
}
