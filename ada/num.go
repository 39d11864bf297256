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

// Package ada implements the Abstract Domain Algebra: a lattice of
// abstract values over a fixed set of base sorts (booleans, naturals,
// integers, reals, bit-vectors, complex numbers, arrays, structs),
// with join, overlap, containment and arithmetic-propagation operators.
//
// Every operation in this package is a total, pure function over
// immutable values; nothing here touches the network, a file, or a
// mutable global, and every exported type is safe to share across
// goroutines without synchronization.
package ada

import (
	"fmt"
	"math/big"
)

// Num is the totally-ordered ring interface that ValueBound and
// ValueRange are generic over. T is always one of the two
// instantiations below (Integer, Rational); the self-referential
// constraint is the usual Go idiom for "operations return my own type".
type Num[T any] interface {
	// Add returns the sum of the receiver and other.
	Add(other T) T
	// Mul returns the product of the receiver and other.
	Mul(other T) T
	// Neg returns the additive inverse.
	Neg() T
	// Cmp returns -1, 0 or +1 as the receiver is less than, equal to,
	// or greater than other.
	Cmp(other T) int
	// Sign returns -1, 0 or +1 as the receiver is negative, zero, or
	// positive.
	Sign() int
	// String returns a canonical textual form.
	String() string
}

// Integer is an arbitrary-precision integer. The zero value is not
// meaningful; use NewInteger or IntegerFromInt64.
type Integer struct {
	v *big.Int
}

// NewInteger wraps a big.Int. The argument is not retained.
func NewInteger(v *big.Int) Integer {
	return Integer{new(big.Int).Set(v)}
}

// IntegerFromInt64 constructs an Integer from a machine int64.
func IntegerFromInt64(n int64) Integer {
	return Integer{big.NewInt(n)}
}

// BigInt returns the underlying big.Int. The result must not be mutated.
func (i Integer) BigInt() *big.Int { return i.v }

// Add implements Num.
func (i Integer) Add(o Integer) Integer { return Integer{new(big.Int).Add(i.v, o.v)} }

// Mul implements Num.
func (i Integer) Mul(o Integer) Integer { return Integer{new(big.Int).Mul(i.v, o.v)} }

// Neg implements Num.
func (i Integer) Neg() Integer { return Integer{new(big.Int).Neg(i.v)} }

// Cmp implements Num.
func (i Integer) Cmp(o Integer) int { return i.v.Cmp(o.v) }

// Sign implements Num.
func (i Integer) Sign() int { return i.v.Sign() }

// String implements Num.
func (i Integer) String() string { return i.v.String() }

// Min returns the lesser of i and o.
func (i Integer) Min(o Integer) Integer {
	if i.Cmp(o) <= 0 {
		return i
	}
	return o
}

// Max returns the greater of i and o.
func (i Integer) Max(o Integer) Integer {
	if i.Cmp(o) >= 0 {
		return i
	}
	return o
}

// Rational is an arbitrary-precision rational number. The zero value is
// not meaningful; use NewRational or RationalFromInt64.
type Rational struct {
	v *big.Rat
}

// NewRational wraps a big.Rat. The argument is not retained.
func NewRational(v *big.Rat) Rational {
	return Rational{new(big.Rat).Set(v)}
}

// RationalFromInt64 constructs an integral Rational.
func RationalFromInt64(n int64) Rational {
	return Rational{new(big.Rat).SetInt64(n)}
}

// RationalFromFrac constructs num/den.
func RationalFromFrac(num, den int64) Rational {
	return Rational{new(big.Rat).SetFrac64(num, den)}
}

// BigRat returns the underlying big.Rat. The result must not be mutated.
func (r Rational) BigRat() *big.Rat { return r.v }

// Add implements Num.
func (r Rational) Add(o Rational) Rational { return Rational{new(big.Rat).Add(r.v, o.v)} }

// Mul implements Num.
func (r Rational) Mul(o Rational) Rational { return Rational{new(big.Rat).Mul(r.v, o.v)} }

// Neg implements Num.
func (r Rational) Neg() Rational { return Rational{new(big.Rat).Neg(r.v)} }

// Cmp implements Num.
func (r Rational) Cmp(o Rational) int { return r.v.Cmp(o.v) }

// Sign implements Num.
func (r Rational) Sign() int { return r.v.Sign() }

// String implements Num.
func (r Rational) String() string { return r.v.RatString() }

// Min returns the lesser of r and o.
func (r Rational) Min(o Rational) Rational {
	if r.Cmp(o) <= 0 {
		return r
	}
	return o
}

// Max returns the greater of r and o.
func (r Rational) Max(o Rational) Rational {
	if r.Cmp(o) >= 0 {
		return r
	}
	return o
}

// IsIntegral reports whether r has denominator 1.
func (r Rational) IsIntegral() bool {
	return r.v.IsInt()
}

// Floor returns the greatest Integer <= r.
func (r Rational) Floor() Integer {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.v.Num(), r.v.Denom(), m)
	return Integer{q}
}

// Ceil returns the least Integer >= r.
func (r Rational) Ceil() Integer {
	f := r.Floor()
	if r.IsIntegral() {
		return f
	}
	return f.Add(IntegerFromInt64(1))
}

// ToRational widens an Integer to a Rational.
func (i Integer) ToRational() Rational {
	return Rational{new(big.Rat).SetInt(i.v)}
}

var _ fmt.Stringer = Integer{}
var _ fmt.Stringer = Rational{}
