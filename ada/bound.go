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

// ValueBound is either Unbounded or Inclusive(t), for a totally ordered
// ring T (Integer or Rational in this package). It is kept as an
// explicit variant rather than a sentinel extreme value so that bound
// arithmetic stays total and never silently overflows or saturates.
type ValueBound[T Num[T]] struct {
	unbounded bool
	value     T
}

// Unbounded constructs the unbounded value of this type.
func Unbounded[T Num[T]]() ValueBound[T] {
	return ValueBound[T]{unbounded: true}
}

// Inclusive constructs a finite, inclusive bound at v.
func Inclusive[T Num[T]](v T) ValueBound[T] {
	return ValueBound[T]{value: v}
}

// IsUnbounded reports whether b is the unbounded bound.
func (b ValueBound[T]) IsUnbounded() bool { return b.unbounded }

// Value returns the finite value of b. Only meaningful when
// !b.IsUnbounded(); callers must check first.
func (b ValueBound[T]) Value() T { return b.value }

// String renders the bound, "unbounded" or the finite value.
func (b ValueBound[T]) String() string {
	if b.unbounded {
		return "unbounded"
	}
	return b.value.String()
}

// liftBound combines two bounds with a binary operator on the finite
// values: if either side is Unbounded, the result is Unbounded.
func liftBound[T Num[T]](x, y ValueBound[T], op func(a, b T) T) ValueBound[T] {
	if x.unbounded || y.unbounded {
		return Unbounded[T]()
	}
	return Inclusive(op(x.value, y.value))
}

// addBound is bound-lifted addition.
func addBound[T Num[T]](x, y ValueBound[T]) ValueBound[T] {
	return liftBound(x, y, func(a, b T) T { return a.Add(b) })
}

// minBound returns the pointwise minimum of two bounds: Unbounded wins
// (it represents -infinity when used as a lower bound).
func minBound[T Num[T]](x, y ValueBound[T]) ValueBound[T] {
	if x.unbounded || y.unbounded {
		return Unbounded[T]()
	}
	if x.value.Cmp(y.value) <= 0 {
		return x
	}
	return y
}

// maxBound returns the pointwise maximum of two bounds: Unbounded wins
// (it represents +infinity when used as an upper bound).
func maxBound[T Num[T]](x, y ValueBound[T]) ValueBound[T] {
	if x.unbounded || y.unbounded {
		return Unbounded[T]()
	}
	if x.value.Cmp(y.value) >= 0 {
		return x
	}
	return y
}

// mulBoundByScalar scales a bound by a finite scalar k. Sign of k
// determines whether the bound flips between min/max role; that
// decision is made by the caller (scalarMulRange), this just multiplies.
func mulBoundByScalar[T Num[T]](b ValueBound[T], k T) ValueBound[T] {
	if b.unbounded {
		return Unbounded[T]()
	}
	return Inclusive(b.value.Mul(k))
}

// leFiniteBound reports whether x <= y when both bounds are finite;
// if either side is Unbounded it reports true.
func leFiniteBound[T Num[T]](x, y ValueBound[T]) bool {
	if x.unbounded || y.unbounded {
		return true
	}
	return x.value.Cmp(y.value) <= 0
}
