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

// Binary symsh is an interactive shell for exercising ADA operations
// and LTL lifting by hand, against a small built-in demo module
// (parsing real LLVM type syntax is out of scope; see spec Non-goals).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/golang/glog"

	"github.com/llvm-symex/typecore/ada"
	"github.com/llvm-symex/typecore/config"
	"github.com/llvm-symex/typecore/ltl"
)

var presetFlag = flag.String("preset", config.X8664Linux, "data-layout preset to load (x86_64-linux, aarch64-linux, i386-linux)")

const prompt = "symsh> "

// demoDecls is a small, fixed module used to exercise the resolver
// without a real LLVM frontend attached: a linear alias, an
// unsupported primitive, a dangling reference, and a self-referential
// struct broken by a pointer (the four end-to-end scenarios named in
// spec.md §8).
func demoDecls() []ltl.Decl {
	return []ltl.Decl{
		{ID: "Int32Alias", Raw: ltl.AliasRaw{ID: "Int32"}},
		{ID: "Int32", Raw: ltl.IntRaw{Width: 32}},
		{ID: "Extended", Raw: ltl.OtherPrimitiveRaw{Name: "x86_fp80"}},
		{ID: "Dangling", Raw: ltl.AliasRaw{ID: "NoSuchType"}},
		{ID: "Node", Raw: ltl.StructRaw{Fields: []ltl.RawType{
			ltl.IntRaw{Width: 32},
			ltl.PtrRaw{Elem: ltl.AliasRaw{ID: "Node"}},
		}}},
	}
}

type shell struct {
	out    io.Writer
	dl     ltl.DataLayout
	ctx    *ltl.LLVMContext
	errs   []string
	preset string
}

func newShell(out io.Writer, presetName string) (*shell, error) {
	dl, err := config.Load(presetName)
	if err != nil {
		return nil, err
	}
	s := &shell{out: out, dl: dl, preset: presetName}
	s.rebuild()
	return s, nil
}

func (s *shell) rebuild() {
	report, ctx := ltl.MkContext(s.dl, nil, demoDecls())
	s.ctx = ctx
	s.errs = nil
	for _, e := range report.Errors() {
		s.errs = append(s.errs, e.Format())
	}
	log.V(1).Infof("symsh: rebuilt context against preset %q, %d diagnostics", s.preset, len(s.errs))
}

func (s *shell) run(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "help":
		s.help()
	case "preset":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: preset <name>")
			return true
		}
		dl, err := config.Load(fields[1])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true
		}
		s.dl = dl
		s.preset = fields[1]
		s.rebuild()
		fmt.Fprintf(s.out, "loaded preset %q\n", fields[1])
	case "decls":
		for _, d := range demoDecls() {
			fmt.Fprintf(s.out, "  %s\n", d.ID)
		}
	case "alias":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: alias <id>")
			return true
		}
		sym, ok := ltl.LookupAlias(s.ctx, ltl.Ident(fields[1]))
		if !ok {
			fmt.Fprintf(s.out, "%s: not declared\n", fields[1])
			return true
		}
		fmt.Fprintf(s.out, "%s = %#v\n", fields[1], sym)
	case "compat":
		if len(fields) != 3 {
			fmt.Fprintln(s.out, "usage: compat <id1> <id2>")
			return true
		}
		ok, err := s.compat(ltl.Ident(fields[1]), ltl.Ident(fields[2]))
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true
		}
		fmt.Fprintf(s.out, "%v\n", ok)
	case "errors":
		if len(s.errs) == 0 {
			fmt.Fprintln(s.out, "(none)")
			return true
		}
		for _, e := range s.errs {
			fmt.Fprintf(s.out, "  %s\n", e)
		}
	case "range-join":
		s.rangeOp(fields[1:], ada.JoinRange[ada.Integer])
	case "range-mul":
		s.rangeOp(fields[1:], ada.MulRange[ada.Integer])
	case "range-add":
		s.rangeOp(fields[1:], ada.AddRange[ada.Integer])
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q; try \"help\"\n", fields[0])
	}
	return true
}

func (s *shell) compat(a, b ltl.Ident) (bool, error) {
	symA, ok := ltl.LookupAlias(s.ctx, a)
	if !ok {
		return false, fmt.Errorf("%s: not declared", a)
	}
	symB, ok := ltl.LookupAlias(s.ctx, b)
	if !ok {
		return false, fmt.Errorf("%s: not declared", b)
	}
	mtA, ok := ltl.AsMemType(s.ctx, symA)
	if !ok {
		return false, fmt.Errorf("%s: not a MemType", a)
	}
	mtB, ok := ltl.AsMemType(s.ctx, symB)
	if !ok {
		return false, fmt.Errorf("%s: not a MemType", b)
	}
	return ltl.CompatMemTypes(mtA, mtB), nil
}

// rangeOp parses "lo1 hi1 lo2 hi2" as integers and applies op,
// printing the resulting ValueRange's String form.
func (s *shell) rangeOp(args []string, op func(ada.ValueRange[ada.Integer], ada.ValueRange[ada.Integer]) ada.ValueRange[ada.Integer]) {
	if len(args) != 4 {
		fmt.Fprintln(s.out, "usage: <cmd> <lo1> <hi1> <lo2> <hi2>")
		return
	}
	nums := make([]int64, 4)
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			fmt.Fprintf(s.out, "error: %q is not an integer\n", a)
			return
		}
		nums[i] = n
	}
	mk := func(lo, hi int64) ada.ValueRange[ada.Integer] {
		return ada.MultiRange(
			ada.Inclusive(ada.IntegerFromInt64(lo)),
			ada.Inclusive(ada.IntegerFromInt64(hi)),
		)
	}
	result := op(mk(nums[0], nums[1]), mk(nums[2], nums[3]))
	fmt.Fprintf(s.out, "%s\n", result.String())
}

func (s *shell) help() {
	fmt.Fprint(s.out, `commands:
  help                              show this text
  preset <name>                     reload the data-layout preset
  decls                             list the demo module's declared identifiers
  alias <id>                        show the lifted SymType for an identifier
  compat <id1> <id2>                bit-level compatibility between two MemTypes
  errors                            show diagnostics from the last mkContext run
  range-join <lo1> <hi1> <lo2> <hi2>  join two integer ranges
  range-add  <lo1> <hi1> <lo2> <hi2>  add two integer ranges
  range-mul  <lo1> <hi1> <lo2> <hi2>  multiply two integer ranges
  quit / exit                       leave the shell
`)
}

func main() {
	flag.Parse()
	sh, err := newShell(os.Stdout, *presetFlag)
	if err != nil {
		log.Exitf("symsh: %v", err)
	}
	rl, err := readline.New(prompt)
	if err != nil {
		log.Exitf("symsh: %v", err)
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		readline.AddHistory(line)
		if !sh.run(strings.TrimSpace(line)) {
			break
		}
	}
}
