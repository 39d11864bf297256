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

// NatRange mirrors ValueRange[Integer] but enforces a hard lower bound
// of 0: NatSingle(n >= 0) or NatMulti(lo >= 0, hi) with hi >= lo when
// hi is finite.
type NatRange struct {
	inner ValueRange[Integer]
}

// NatSingle constructs the range for a single natural n. n must be >= 0;
// this is not checked.
func NatSingle(n Integer) NatRange {
	return NatRange{SingleRange(n)}
}

// NatMulti constructs a natural range [lo, hi] (hi may be Unbounded).
// The caller is responsible for lo >= 0 and, if hi is finite, hi >= lo;
// these are the NatValueRange invariants from spec.md §3.1.
func NatMulti(lo Integer, hi ValueBound[Integer]) NatRange {
	return NatRange{MultiRange(Inclusive(lo), hi)}
}

// NatTop is the unconstrained natural range [0, +inf).
func NatTop() NatRange {
	return NatMulti(IntegerFromInt64(0), Unbounded[Integer]())
}

// Range exposes the underlying integer range, for callers that want to
// reuse the general range algebra.
func (n NatRange) Range() ValueRange[Integer] { return n.inner }

// IsSingle reports whether n denotes exactly one value.
func (n NatRange) IsSingle() bool { return n.inner.IsSingle() }

// SingleValue returns the singleton value; only meaningful if
// n.IsSingle().
func (n NatRange) SingleValue() Integer { return n.inner.SingleValue() }

// NatJoinRange joins two natural ranges, normalizing to NatSingle iff
// both sides are the same singleton (spec.md §4.2).
func NatJoinRange(x, y NatRange) NatRange {
	if x.IsSingle() && y.IsSingle() && x.SingleValue().Cmp(y.SingleValue()) == 0 {
		return x
	}
	return NatRange{JoinRange(x.inner, y.inner)}
}

// NatAdd adds two natural ranges; the sum of naturals is always a
// natural so this simply delegates to AddRange.
func NatAdd(x, y NatRange) NatRange {
	return NatRange{AddRange(x.inner, y.inner)}
}

// NatOverlap reports whether x and y could denote the same concrete
// natural.
func NatOverlap(x, y NatRange) bool {
	return OverlapRange(x.inner, y.inner)
}

// NatContains reports whether n lies within r.
func NatContains(r NatRange, n Integer) bool {
	return ContainsRange(r.inner, n)
}

// String renders the range for debugging.
func (n NatRange) String() string {
	return fmt.Sprintf("nat%s", n.inner.String())
}
