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

import "github.com/llvm-symex/typecore/diag"

// LLVMContext is the immutable result of resolving a module's type
// declarations (spec.md §3.2). Queries against it never mutate it and
// never revisit the resolver's bindings — they operate purely off
// aliasMap.
type LLVMContext struct {
	dataLayout  DataLayout
	metadataMap map[int]ValMd
	aliasMap    map[Ident]SymType
}

// MkContext resolves decls against dl and metadataMap into an
// LLVMContext, returning every diagnostic raised along the way. The
// returned context is always usable, even when some declarations
// lifted to UnsupportedType sentinels (spec.md §4.6).
func MkContext(dl DataLayout, metadataMap map[int]ValMd, decls []Decl) (*diag.Report, *LLVMContext) {
	return mkContext(dl, metadataMap, decls)
}

// LookupAlias is a direct map probe against the resolved alias map.
func LookupAlias(ctx *LLVMContext, id Ident) (SymType, bool) {
	sym, ok := ctx.aliasMap[id]
	return sym, ok
}

// LookupMetadata is a direct map probe against the unnamed-metadata
// map.
func LookupMetadata(ctx *LLVMContext, i int) (ValMd, bool) {
	md, ok := ctx.metadataMap[i]
	return md, ok
}

// AsMemType follows Alias hops from sym to a MemType, using ctx's
// already-resolved alias map. It never mutates ctx. A bounded visited
// set guards against the degenerate case of a caller-constructed
// AliasSym cycle that never went through mkContext (ordinary contexts
// cannot contain one: mkContext turns every true cycle into an
// UnsupportedSym before it reaches aliasMap).
func AsMemType(ctx *LLVMContext, sym SymType) (MemType, bool) {
	visited := map[Ident]bool{}
	for {
		switch s := sym.(type) {
		case MemTypeSym:
			return s.MT, true
		case AliasSym:
			if visited[s.ID] {
				return nil, false
			}
			visited[s.ID] = true
			next, ok := ctx.aliasMap[s.ID]
			if !ok {
				return nil, false
			}
			sym = next
		default:
			return nil, false
		}
	}
}

// AsRetType follows Alias hops from sym to a MemType or VoidType.
func AsRetType(ctx *LLVMContext, sym SymType) (RetType, bool) {
	visited := map[Ident]bool{}
	for {
		switch s := sym.(type) {
		case MemTypeSym:
			return s.MT, true
		case VoidSym:
			return nil, true
		case AliasSym:
			if visited[s.ID] {
				return nil, false
			}
			visited[s.ID] = true
			next, ok := ctx.aliasMap[s.ID]
			if !ok {
				return nil, false
			}
			sym = next
		default:
			return nil, false
		}
	}
}

// LiftType runs a query-mode lift of raw against ctx: a fresh resolver
// seeded with bindings = Resolved(aliasMap), so any Alias reference
// raw contains resolves against ctx without re-running mkContext's
// fixed point. If any error is recorded during the lift, the result is
// discarded and LiftType returns (nil, false) (spec.md §4.5, §7).
func LiftType(ctx *LLVMContext, raw RawType) (SymType, bool) {
	r := &resolver{
		dl:       ctx.dataLayout,
		bindings: make(map[Ident]*binding, len(ctx.aliasMap)),
		report:   diag.NewReport(),
	}
	for id, sym := range ctx.aliasMap {
		r.bindings[id] = &binding{state: stateResolved, resolved: sym}
	}
	sym := r.tcType(raw)
	if !r.report.IsEmpty() {
		return nil, false
	}
	return sym, true
}

// LiftMemType composes LiftType with AsMemType.
func LiftMemType(ctx *LLVMContext, raw RawType) (MemType, bool) {
	sym, ok := LiftType(ctx, raw)
	if !ok {
		return nil, false
	}
	return AsMemType(ctx, sym)
}

// LiftRetType composes LiftType with AsRetType.
func LiftRetType(ctx *LLVMContext, raw RawType) (RetType, bool) {
	sym, ok := LiftType(ctx, raw)
	if !ok {
		return nil, false
	}
	return AsRetType(ctx, sym)
}
