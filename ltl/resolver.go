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

// identState is the three-state marker on a binding (spec.md §9):
// Pending until first visited, Active while its own resolution is in
// flight (the cycle detector), Resolved once a SymType has been
// computed. Do not rely on stack recursion alone to catch cycles —
// the Active marker is what makes tcIdent re-entrant-safe.
type identState int

const (
	statePending identState = iota
	stateActive
	stateResolved
)

// binding is one entry of the resolver's transient bindings map.
type binding struct {
	state    identState
	raw      RawType
	resolved SymType
}

// resolver holds the state that lives only for the duration of one
// mkContext call (or one query-mode lift). It is never exposed
// outside this package: callers only ever see the immutable
// LLVMContext that mkContext returns.
type resolver struct {
	dl       DataLayout
	bindings map[Ident]*binding
	report   *diag.Report
	// active is the stack of identifiers currently mid-resolution
	// (state Active), in call order. It exists only so that when a
	// back-edge closes a cycle, every identifier still on the path
	// back to the re-entered one can be named, not just the one the
	// back-edge happens to point at.
	active []Ident
}

func newResolver(dl DataLayout, decls []Decl) *resolver {
	r := &resolver{
		dl:       dl,
		bindings: make(map[Ident]*binding, len(decls)),
		report:   diag.NewReport(),
	}
	for _, d := range decls {
		r.bindings[d.ID] = &binding{state: statePending, raw: d.Raw}
	}
	return r
}

// mkContext resolves decls against dl and metadataMap into an
// immutable LLVMContext, returning every UnsupportedType and
// UnresolvableIdent diagnostic raised along the way (spec.md §4.4).
// It always returns a usable context, even when some declarations
// lifted to UnsupportedType sentinels.
func mkContext(dl DataLayout, metadataMap map[int]ValMd, decls []Decl) (*diag.Report, *LLVMContext) {
	r := newResolver(dl, decls)
	aliasMap := make(map[Ident]SymType, len(decls))
	for _, d := range decls {
		aliasMap[d.ID] = r.tcIdent(d.ID)
	}
	r.resolveAliasChains(decls, aliasMap)
	md := make(map[int]ValMd, len(metadataMap))
	for k, v := range metadataMap {
		md[k] = v
	}
	ctx := &LLVMContext{
		dataLayout:  dl,
		metadataMap: md,
		aliasMap:    aliasMap,
	}
	return r.report, ctx
}

// tcIdent is the cycle-breaking step (spec.md §4.4). Case (3) handles
// both true cycles (Active re-entry) and dangling references (no
// binding at all): the result is an unsupported sentinel, not a
// failure of the whole lift. A cycle additionally names every
// identifier still on the in-flight path back to the re-entered one
// (spec.md §8: a pure cycle reports UnresolvableIdent for every member,
// not just the one the back-edge happens to point at).
func (r *resolver) tcIdent(id Ident) SymType {
	b, ok := r.bindings[id]
	if !ok {
		r.report.Add(diag.Error{Kind: diag.UnresolvableIdent, Subject: string(id)})
		return UnsupportedSym{Raw: AliasRaw{ID: id}}
	}
	switch b.state {
	case stateResolved:
		return b.resolved
	case stateActive:
		r.reportCycle(id)
		return UnsupportedSym{Raw: AliasRaw{ID: id}}
	default: // statePending
		b.state = stateActive
		r.active = append(r.active, id)
		sym := r.tcType(b.raw)
		r.active = r.active[:len(r.active)-1]
		b.state = stateResolved
		b.resolved = sym
		return sym
	}
}

// reportCycle records an UnresolvableIdent for id and for every
// identifier still Active between id's first visit and the current
// re-entry, i.e. the whole cycle the back-edge just closed.
func (r *resolver) reportCycle(id Ident) {
	start := 0
	for i, a := range r.active {
		if a == id {
			start = i
			break
		}
	}
	for _, a := range r.active[start:] {
		r.report.Add(diag.Error{Kind: diag.UnresolvableIdent, Subject: string(a)})
	}
}

// resolveAliasChains is a post-pass over bare top-level aliases —
// declarations whose own raw type is itself an AliasRaw, and which
// therefore left aliasMap holding an unexpanded AliasSym rather than
// something tcMemType/tcType already forced to a concrete shape. A
// chain of such aliases that dangles or closes a cycle would
// otherwise silently sit in aliasMap as AliasSym forever (spec.md §8
// scenarios 3 and the pure-cycle property); this walks each chain once
// and degrades every link to an UnsupportedSym sentinel when it does.
//
// A pointer's pointee is never a target here: PtrRaw's elem is stored
// directly as a bare SymType inside PtrType, never as a standalone
// aliasMap entry, so this pass cannot (and must not) reach into it.
func (r *resolver) resolveAliasChains(decls []Decl, aliasMap map[Ident]SymType) {
	settled := make(map[Ident]bool, len(decls))
	for _, d := range decls {
		if settled[d.ID] {
			continue
		}
		var chain []Ident
		cur := d.ID
		for {
			alias, ok := aliasMap[cur].(AliasSym)
			if !ok {
				// Not (or no longer) a bare alias: chain ends cleanly.
				break
			}
			chain = append(chain, cur)
			target := alias.ID
			if i := indexOf(chain, target); i >= 0 {
				r.flagCycle(chain[i:], aliasMap)
				break
			}
			if _, declared := aliasMap[target]; !declared {
				r.flagDangling(chain, target, aliasMap)
				break
			}
			cur = target
		}
		for _, id := range chain {
			settled[id] = true
		}
	}
}

func indexOf(ids []Ident, id Ident) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

// flagCycle handles a chain of bare aliases that loops back on itself:
// every identifier on the cycle is reported as UnresolvableIdent and
// degrades to an UnsupportedSym naming its own immediate target.
func (r *resolver) flagCycle(cycle []Ident, aliasMap map[Ident]SymType) {
	for _, id := range cycle {
		r.report.Add(diag.Error{Kind: diag.UnresolvableIdent, Subject: string(id)})
		target := aliasMap[id].(AliasSym).ID
		aliasMap[id] = UnsupportedSym{Raw: AliasRaw{ID: target}}
	}
}

// flagDangling handles a chain of bare aliases whose final hop points
// at an identifier with no declaration at all: only that identifier is
// reported, matching spec.md §8 scenario 3 (a single-hop dangling
// reference reports UnresolvableIdent(B), not UnresolvableIdent(A)).
func (r *resolver) flagDangling(chain []Ident, missing Ident, aliasMap map[Ident]SymType) {
	r.report.Add(diag.Error{Kind: diag.UnresolvableIdent, Subject: string(missing)})
	target := missing
	for i := len(chain) - 1; i >= 0; i-- {
		aliasMap[chain[i]] = UnsupportedSym{Raw: AliasRaw{ID: target}}
		target = chain[i]
	}
}

// tcType is the structural case analysis over a raw type (spec.md
// §4.4). Alias references are returned unexpanded; every other shape
// is resolved eagerly.
func (r *resolver) tcType(raw RawType) SymType {
	switch t := raw.(type) {
	case IntRaw:
		return MemTypeSym{MT: IntType{Width: t.Width}}
	case FloatRaw:
		return MemTypeSym{MT: FloatType{}}
	case DoubleRaw:
		return MemTypeSym{MT: DoubleType{}}
	case VoidRaw:
		return VoidSym{}
	case MetadataRaw:
		return MemTypeSym{MT: MetadataType{}}
	case OtherPrimitiveRaw:
		return r.unsupported(t)
	case AliasRaw:
		// Returned unexpanded (spec.md §4.4): expansion happens lazily,
		// either through resolveMemType/resolveRetType when a concrete
		// MemType is required (array/vector elements, struct fields,
		// function signatures — these still chase hops via tcIdent, so
		// a non-pointer-indirected cycle there is still caught by the
		// Active marker), through mkContext's post-pass over bare
		// top-level aliases (resolveAliasChains, below), or at query
		// time. A pointer's pointee is deliberately never forced past
		// this point, which is what lets a self-referential struct
		// like `{ i32, Node* }` resolve at all.
		return AliasSym{ID: t.ID}
	case ArrayRaw:
		elem, ok := r.tcMemType(t.Elem)
		if !ok {
			return r.unsupported(t)
		}
		return MemTypeSym{MT: ArrayType{N: t.N, Elem: elem}}
	case VectorRaw:
		elem, ok := r.tcMemType(t.Elem)
		if !ok {
			return r.unsupported(t)
		}
		return MemTypeSym{MT: VecType{N: t.N, Elem: elem}}
	case PtrRaw:
		return MemTypeSym{MT: PtrType{Elem: r.tcType(t.Elem)}}
	case StructRaw:
		fields, ok := r.tcMemTypes(t.Fields)
		if !ok {
			return r.unsupported(t)
		}
		layout := r.dl.MkStructInfo(false, fields)
		return MemTypeSym{MT: StructType{Info: StructInfo{Packed: false, Fields: fields, Layout: layout}}}
	case PackedStructRaw:
		fields, ok := r.tcMemTypes(t.Fields)
		if !ok {
			return r.unsupported(t)
		}
		layout := r.dl.MkStructInfo(true, fields)
		return MemTypeSym{MT: StructType{Info: StructInfo{Packed: true, Fields: fields, Layout: layout}}}
	case FunRaw:
		retSym := r.tcType(t.Ret)
		ret, ok := r.resolveRetType(retSym)
		if !ok {
			return r.unsupported(t)
		}
		args, ok := r.tcMemTypes(t.Args)
		if !ok {
			return r.unsupported(t)
		}
		return FunSym{Decl: FunDecl{Ret: ret, Args: args, Vararg: t.Vararg}}
	case OpaqueRaw:
		return OpaqueSym{}
	default:
		return r.unsupported(t)
	}
}

func (r *resolver) unsupported(raw RawType) SymType {
	r.report.Add(diag.Error{Kind: diag.UnsupportedType, Subject: rawKey(raw)})
	return UnsupportedSym{Raw: raw}
}

// tcMemType resolves raw through tcType, then expands any Alias hops
// until a MemType is reached.
func (r *resolver) tcMemType(raw RawType) (MemType, bool) {
	return r.resolveMemType(r.tcType(raw))
}

func (r *resolver) tcMemTypes(raws []RawType) ([]MemType, bool) {
	out := make([]MemType, len(raws))
	for i, raw := range raws {
		mt, ok := r.tcMemType(raw)
		if !ok {
			return nil, false
		}
		out[i] = mt
	}
	return out, true
}

// resolveMemType expands Alias hops until reaching a MemType, or
// gives up with ok=false (spec.md §4.4).
func (r *resolver) resolveMemType(sym SymType) (MemType, bool) {
	for {
		switch s := sym.(type) {
		case MemTypeSym:
			return s.MT, true
		case AliasSym:
			sym = r.tcIdent(s.ID)
		default:
			return nil, false
		}
	}
}

// resolveRetType expands Alias hops until reaching a MemType or
// VoidType, or gives up with ok=false.
func (r *resolver) resolveRetType(sym SymType) (RetType, bool) {
	for {
		switch s := sym.(type) {
		case MemTypeSym:
			return s.MT, true
		case VoidSym:
			return nil, true
		case AliasSym:
			sym = r.tcIdent(s.ID)
		default:
			return nil, false
		}
	}
}
