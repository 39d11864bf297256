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

// Package diag holds the two structured error kinds the LLVM Type
// Lifter can raise (spec.md §7): an unsupported raw type, or an
// unresolvable identifier. Neither kind is ever thrown; both are
// accumulated into a Report and handed back to the caller alongside
// whatever partial result was still produced.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"google.golang.org/protobuf/types/known/structpb"
)

// Kind tags which of the two structured error kinds an Error is.
type Kind int

const (
	// UnsupportedType reports that a raw type constructor could not be
	// mapped to any SymType/MemType.
	UnsupportedType Kind = iota
	// UnresolvableIdent reports that an alias reference either pointed
	// at an undeclared identifier or participated in a cycle that
	// could not be broken without a pointer indirection.
	UnresolvableIdent
)

// String names the kind, matching spec.md §7's vocabulary.
func (k Kind) String() string {
	switch k {
	case UnsupportedType:
		return "UnsupportedType"
	case UnresolvableIdent:
		return "UnresolvableIdent"
	default:
		return "UnknownDiagnostic"
	}
}

// Error is one structured diagnostic record.
type Error struct {
	Kind Kind
	// Subject is the printable form of the thing that failed: a raw
	// type's canonical text for UnsupportedType, or an identifier
	// name for UnresolvableIdent.
	Subject string
}

// Format renders e as a printable, one-line diagnostic.
func (e Error) Format() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
}

// key is the dedup key used by Report.Add (spec.md §7: "accumulated as
// sets so duplicate reports collapse").
func (e Error) key() string {
	return fmt.Sprintf("%d\x00%s", e.Kind, e.Subject)
}

// Report is an accumulated, deduplicated set of Errors produced by a
// single mkContext (or query-mode lift) call.
type Report struct {
	seen    map[string]bool
	ordered []Error
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{seen: make(map[string]bool)}
}

// Add records e, collapsing exact duplicates.
func (r *Report) Add(e Error) {
	k := e.key()
	if r.seen[k] {
		return
	}
	r.seen[k] = true
	r.ordered = append(r.ordered, e)
}

// IsEmpty reports whether no errors were recorded.
func (r *Report) IsEmpty() bool {
	return r == nil || len(r.ordered) == 0
}

// Errors returns the recorded errors, sorted deterministically by kind
// then subject (spec.md §4.4 step 3, "formattedErrors(state)").
func (r *Report) Errors() []Error {
	if r == nil {
		return nil
	}
	out := make([]Error, len(r.ordered))
	copy(out, r.ordered)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// Format renders the whole report as one printable block.
func (r *Report) Format() string {
	if r.IsEmpty() {
		return ""
	}
	lines := make([]string, 0, len(r.ordered))
	for _, e := range r.Errors() {
		lines = append(lines, e.Format())
	}
	return strings.Join(lines, "\n")
}

// AsError flattens the report into a single error built with
// multierr, so callers that just want Go-idiomatic errors.Is/As
// composition don't need to walk the structured list themselves.
func (r *Report) AsError() error {
	if r.IsEmpty() {
		return nil
	}
	var merr error
	for _, e := range r.Errors() {
		merr = multierr.Append(merr, fmt.Errorf("%s", e.Format()))
	}
	return merr
}

// ToProto serializes the report as a generic protobuf Struct, for a
// downstream consumer (e.g. a solver backend in another language)
// that already speaks protobuf but has no reason to share this
// package's Go types.
func (r *Report) ToProto() (*structpb.Struct, error) {
	errs := r.Errors()
	list := make([]any, len(errs))
	for i, e := range errs {
		list[i] = map[string]any{
			"kind":    e.Kind.String(),
			"subject": e.Subject,
		}
	}
	return structpb.NewStruct(map[string]any{
		"errors": list,
	})
}
