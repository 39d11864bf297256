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
	"math/big"
)

// Concrete is the ordinary (non-abstract) carrier for a sort, used as
// the input to Single and Contains. Like Abstract, it is a sealed
// interface with one concrete Go type per sort.
type Concrete interface {
	isConcrete()
	String() string
}

// ConcreteBool is the concrete carrier for Bool.
type ConcreteBool bool

func (ConcreteBool) isConcrete()    {}
func (c ConcreteBool) String() string { return fmt.Sprintf("%t", bool(c)) }

// ConcreteNat is the concrete carrier for Nat. N must be >= 0.
type ConcreteNat struct{ N Integer }

func (ConcreteNat) isConcrete()      {}
func (c ConcreteNat) String() string { return c.N.String() }

// ConcreteInt is the concrete carrier for Integer.
type ConcreteInt struct{ N Integer }

func (ConcreteInt) isConcrete()      {}
func (c ConcreteInt) String() string { return c.N.String() }

// ConcreteReal is the concrete carrier for Real.
type ConcreteReal struct{ Q Rational }

func (ConcreteReal) isConcrete()      {}
func (c ConcreteReal) String() string { return c.Q.String() }

// ConcreteBV is the concrete carrier for BV<w>: an integer-as-bit-vector.
type ConcreteBV struct {
	Width uint32
	N     *big.Int
}

func (ConcreteBV) isConcrete() {}
func (c ConcreteBV) String() string {
	return fmt.Sprintf("0x%x:bv%d", c.N, c.Width)
}

// ConcreteComplex is the concrete carrier for Complex: a pair of
// rationals.
type ConcreteComplex struct{ Re, Im Rational }

func (ConcreteComplex) isConcrete() {}
func (c ConcreteComplex) String() string {
	return fmt.Sprintf("(%s + %si)", c.Re.String(), c.Im.String())
}

// ConcreteArray is the concrete carrier for Array: unit, per spec.md
// §3.1 ("unit for arrays") — the abstract domain reasons only about
// the element sort, never about a whole array's contents at this
// layer, so there is nothing beyond presence to carry concretely.
type ConcreteArray struct{}

func (ConcreteArray) isConcrete()      {}
func (ConcreteArray) String() string   { return "()" }

// ConcreteStruct is the concrete carrier for Struct: a vector of
// per-field concrete values.
type ConcreteStruct struct{ Fields []Concrete }

func (ConcreteStruct) isConcrete() {}
func (c ConcreteStruct) String() string {
	return fmt.Sprintf("%v", c.Fields)
}

var (
	_ Concrete = ConcreteBool(false)
	_ Concrete = ConcreteNat{}
	_ Concrete = ConcreteInt{}
	_ Concrete = ConcreteReal{}
	_ Concrete = ConcreteBV{}
	_ Concrete = ConcreteComplex{}
	_ Concrete = ConcreteArray{}
	_ Concrete = ConcreteStruct{}
)
