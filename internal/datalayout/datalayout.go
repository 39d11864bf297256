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

// Package datalayout implements LTL's external data-layout service
// (spec.md §1, §6): primitive size/alignment tables and struct-layout
// derivation, parsed from an LLVM-style data-layout string such as
// "e-m:e-p:64:64-i64:64-n8:16:32:64-S128".
//
// This is a reference implementation, not a production one: it models
// the handful of primitive-spec letters (p, i, f, a, n, S) that the
// rest of this module exercises, and ignores target features (vector
// ABI alignment, non-integral pointers, multiple address spaces) a
// full LLVM DataLayout would need. See config for canned presets built
// on top of it.
package datalayout

import (
	"fmt"
	"strconv"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"go.uber.org/multierr"

	"github.com/llvm-symex/typecore/ltl"
)

// alignUp rounds size up to the nearest multiple of align (align must be
// a power of two).
func alignUp(size, align uint64) uint64 {
	if align == 0 {
		return size
	}
	return (size + align - 1) &^ (align - 1)
}

// spec is one parsed "letter:size[:abi[:pref]]" primitive-spec entry.
type spec struct {
	size, abiAlign uint64
}

// Layout is a concrete ltl.DataLayout, the sizes/alignments for a
// single target's primitive types plus pointer width.
type Layout struct {
	endianLittle bool
	pointer      spec
	ints         map[uint32]spec
	floats       map[uint32]spec // keyed by bit width: 32 -> float, 64 -> double
	aggregateAbi uint64          // "a:" entry, struct alignment floor
	stackAlign   uint64          // "S" entry
}

// defaultLayout is returned (with errors recorded) when parsing fails
// outright, so callers that ignore the error still get a usable,
// if approximate, layout.
func defaultLayout() *Layout {
	return &Layout{
		endianLittle: true,
		pointer:      spec{size: 8, abiAlign: 8},
		ints: map[uint32]spec{
			1: {size: 1, abiAlign: 1}, 8: {size: 1, abiAlign: 1},
			16: {size: 2, abiAlign: 2}, 32: {size: 4, abiAlign: 4}, 64: {size: 8, abiAlign: 8},
		},
		floats: map[uint32]spec{
			32: {size: 4, abiAlign: 4}, 64: {size: 8, abiAlign: 8},
		},
		aggregateAbi: 8,
		stackAlign:   16,
	}
}

// Parse parses an LLVM-style data-layout string, accumulating one
// diagnostic per malformed entry via multierr rather than aborting at
// the first one — a malformed "n8:16" entry shouldn't hide a
// malformed "i64" entry later in the same string. seenPrefix records
// which primitive-spec letters have been applied; a duplicate entry
// (e.g. two "p:" entries) is not reported, and the later one wins.
func Parse(text string) (*Layout, error) {
	l := defaultLayout()
	l.ints = map[uint32]spec{}
	l.floats = map[uint32]spec{}

	var errs error
	seenPrefix := stringset.New()
	for _, entry := range strings.Split(text, "-") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if err := l.applyEntry(entry, seenPrefix); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if len(l.ints) == 0 {
		d := defaultLayout()
		l.ints = d.ints
	}
	if len(l.floats) == 0 {
		d := defaultLayout()
		l.floats = d.floats
	}
	if l.aggregateAbi == 0 {
		l.aggregateAbi = 8
	}
	return l, errs
}

func (l *Layout) applyEntry(entry string, seenPrefix stringset.Set) error {
	switch entry[0] {
	case 'e':
		l.endianLittle = true
		return nil
	case 'E':
		l.endianLittle = false
		return nil
	case 'p':
		seenPrefix.Add("p")
		sz, abi, err := parseSizeTriple(strings.TrimPrefix(entry, "p"))
		if err != nil {
			return fmt.Errorf("data layout: pointer spec %q: %w", entry, err)
		}
		l.pointer = spec{size: sz / 8, abiAlign: abi / 8}
		return nil
	case 'i':
		return l.applyWidthTable(entry, "i", l.ints)
	case 'f':
		return l.applyWidthTable(entry, "f", l.floats)
	case 'a':
		_, abi, err := parseSizeTriple(strings.TrimPrefix(entry, "a"))
		if err != nil {
			return fmt.Errorf("data layout: aggregate spec %q: %w", entry, err)
		}
		l.aggregateAbi = abi / 8
		return nil
	case 'S':
		v, err := strconv.ParseUint(entry[1:], 10, 64)
		if err != nil {
			return fmt.Errorf("data layout: stack spec %q: %w", entry, err)
		}
		l.stackAlign = v / 8
		return nil
	case 'n', 'm':
		// Native integer widths / mangling scheme: recorded by neither
		// MemType nor StructInfo, so parsed-and-discarded.
		return nil
	default:
		return fmt.Errorf("data layout: unrecognized entry %q", entry)
	}
}

func (l *Layout) applyWidthTable(entry, letter string, table map[uint32]spec) error {
	rest := strings.TrimPrefix(entry, letter)
	parts := strings.Split(rest, ":")
	if len(parts) == 0 {
		return fmt.Errorf("data layout: malformed %q entry %q", letter, entry)
	}
	width, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return fmt.Errorf("data layout: malformed %q width in %q: %w", letter, entry, err)
	}
	sz, abi, err := parseSizeTriple(strings.Join(parts[1:], ":"))
	if err != nil {
		// ABI size defaults to the declared width when unspecified, per
		// LLVM's data-layout grammar.
		sz, abi = uint64(width), uint64(width)
	}
	table[uint32(width)] = spec{size: sz / 8, abiAlign: abi / 8}
	return nil
}

// parseSizeTriple parses "abi[:pref]" (bit sizes) from the remainder
// of a primitive-spec entry after its leading letter and width, if
// any, have been stripped.
func parseSizeTriple(rest string) (size, abi uint64, err error) {
	rest = strings.TrimPrefix(rest, ":")
	parts := strings.Split(rest, ":")
	if len(parts) == 0 || parts[0] == "" {
		return 0, 0, fmt.Errorf("empty size spec")
	}
	v, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return v, v, nil
}

// IntSize implements ltl.DataLayout.
func (l *Layout) IntSize(width uint32) (size, align uint64) {
	if s, ok := l.ints[width]; ok {
		return s.size, s.abiAlign
	}
	bytes := alignUp(uint64(width), 8) / 8
	return bytes, bytes
}

// FloatSize implements ltl.DataLayout.
func (l *Layout) FloatSize() (size, align uint64) {
	s := l.floats[32]
	return s.size, s.abiAlign
}

// DoubleSize implements ltl.DataLayout.
func (l *Layout) DoubleSize() (size, align uint64) {
	s := l.floats[64]
	return s.size, s.abiAlign
}

// PointerSize implements ltl.DataLayout.
func (l *Layout) PointerSize() (size, align uint64) {
	return l.pointer.size, l.pointer.abiAlign
}

// MkStructInfo implements ltl.DataLayout: it lays out fields in
// declaration order, inserting ABI padding before each field (and at
// the end, for the struct's own alignment) unless packed is set.
func (l *Layout) MkStructInfo(packed bool, fields []ltl.MemType) ltl.StructLayout {
	var offset, structAlign uint64 = 0, 1
	if !packed {
		structAlign = l.aggregateAbi
		if structAlign == 0 {
			structAlign = 1
		}
	}
	offsets := make([]uint64, len(fields))
	for i, f := range fields {
		sz, al := l.sizeAlign(f)
		if !packed {
			offset = alignUp(offset, al)
			if al > structAlign {
				structAlign = al
			}
		}
		offsets[i] = offset
		offset += sz
	}
	total := offset
	if !packed {
		total = alignUp(total, structAlign)
	}
	return ltl.StructLayout{Size: total, Align: structAlign, Offsets: offsets}
}

// sizeAlign returns the size and alignment, in bytes, of a resolved
// MemType, recursing through aggregates.
func (l *Layout) sizeAlign(mt ltl.MemType) (size, align uint64) {
	switch t := mt.(type) {
	case ltl.IntType:
		return l.IntSize(t.Width)
	case ltl.FloatType:
		return l.FloatSize()
	case ltl.DoubleType:
		return l.DoubleSize()
	case ltl.MetadataType:
		return 0, 1
	case ltl.PtrType:
		return l.PointerSize()
	case ltl.ArrayType:
		elemSz, elemAl := l.sizeAlign(t.Elem)
		return elemSz * t.N, elemAl
	case ltl.VecType:
		elemSz, elemAl := l.sizeAlign(t.Elem)
		return elemSz * t.N, elemAl
	case ltl.StructType:
		return t.Info.Layout.Size, t.Info.Layout.Align
	default:
		return 0, 1
	}
}
