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

package ltl

// SymType is the lifted, symbolic form of an LLVM type (spec.md
// §3.2). It is a sealed interface; the six concrete shapes below are
// the only implementations.
type SymType interface {
	isSymType()
}

// MemTypeSym wraps a concrete in-memory type.
type MemTypeSym struct{ MT MemType }

func (MemTypeSym) isSymType() {}

// AliasSym is an unresolved or recursive reference to a named type.
// It is returned unexpanded by tcType; expansion happens lazily, at
// query time or when a MemType/RetType is required.
type AliasSym struct{ ID Ident }

func (AliasSym) isSymType() {}

// FunSym wraps a resolved function signature.
type FunSym struct{ Decl FunDecl }

func (FunSym) isSymType() {}

// VoidSym is the void pseudo-type, legal only in return position.
type VoidSym struct{}

func (VoidSym) isSymType() {}

// OpaqueSym is a named type with no known structure; legal to form
// pointers to.
type OpaqueSym struct{}

func (OpaqueSym) isSymType() {}

// UnsupportedSym is a sentinel recording that lifting Raw failed.
type UnsupportedSym struct{ Raw RawType }

func (UnsupportedSym) isSymType() {}

var (
	_ SymType = MemTypeSym{}
	_ SymType = AliasSym{}
	_ SymType = FunSym{}
	_ SymType = VoidSym{}
	_ SymType = OpaqueSym{}
	_ SymType = UnsupportedSym{}
)
