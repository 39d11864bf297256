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

// Package bvdomain is a reference stand-in for the BVD external
// collaborator named in spec.md §1: a domain of fixed-width
// bit-vectors supporting Any, Singleton, Union and Overlap. spec.md
// explicitly puts implementing the bit-vector domain itself out of
// scope for ADA/LTL; this package exists only so the module is
// self-contained and testable without a production BVD attached. A
// real downstream BVD would likely track known/unknown bit patterns;
// this one tracks an interval hull over [0, 2^w), which is adequate to
// exercise ada.BVOps/ada.BVDomain but is not a claim about production
// bit-vector domain precision.
package bvdomain

import (
	"fmt"
	"math/big"

	"github.com/llvm-symex/typecore/ada"
)

// Domain is an interval [Lo, Hi] over the unsigned range [0, 2^Width).
type Domain struct {
	width  uint32
	lo, hi *big.Int
}

// Width implements ada.BVDomain.
func (d Domain) Width() uint32 { return d.width }

// String implements ada.BVDomain.
func (d Domain) String() string {
	return fmt.Sprintf("bv%d[%s,%s]", d.width, d.lo.String(), d.hi.String())
}

// Lo returns the lower bound of the interval.
func (d Domain) Lo() *big.Int { return d.lo }

// Hi returns the upper bound of the interval.
func (d Domain) Hi() *big.Int { return d.hi }

func maxUnsigned(width uint32) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return max.Sub(max, big.NewInt(1))
}

// Ops is the bvdomain.Domain implementation of ada.BVOps.
type Ops struct{}

// Any implements ada.BVOps: the full [0, 2^w) range.
func (Ops) Any(width uint32) ada.BVDomain {
	return Domain{width: width, lo: big.NewInt(0), hi: maxUnsigned(width)}
}

// Singleton implements ada.BVOps: the one-point range {n mod 2^w}.
func (Ops) Singleton(width uint32, n *big.Int) ada.BVDomain {
	v := new(big.Int).Mod(n, new(big.Int).Lsh(big.NewInt(1), uint(width)))
	return Domain{width: width, lo: v, hi: new(big.Int).Set(v)}
}

// Union implements ada.BVOps as an interval hull of a and b.
func (Ops) Union(width uint32, a, b ada.BVDomain) ada.BVDomain {
	da, db := a.(Domain), b.(Domain)
	lo := da.lo
	if db.lo.Cmp(lo) < 0 {
		lo = db.lo
	}
	hi := da.hi
	if db.hi.Cmp(hi) > 0 {
		hi = db.hi
	}
	return Domain{width: width, lo: lo, hi: hi}
}

// Overlap implements ada.BVOps as an interval-intersection test.
func (Ops) Overlap(a, b ada.BVDomain) bool {
	da, db := a.(Domain), b.(Domain)
	return !(da.hi.Cmp(db.lo) < 0 || db.hi.Cmp(da.lo) < 0)
}

var (
	_ ada.BVDomain = Domain{}
	_ ada.BVOps    = Ops{}
)
