// Copyright 2024 The Lens Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ltest

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/miracade/lens/asm"
	"github.com/miracade/lens/compiler"
	"github.com/miracade/lens/vm"
)

// Verb names the assertion a case makes about its program.
type Verb int

const (
	VerbOutputs Verb = iota
	VerbConcludes
	VerbFails
)

func (v Verb) String() string {
	switch v {
	case VerbOutputs:
		return "outputs"
	case VerbConcludes:
		return "concludes"
	case VerbFails:
		return "fails"
	default:
		return "unknown"
	}
}

// Case is one ">>>"-delimited entry in a .ltest file.
type Case struct {
	Title  string
	Verb   Verb
	Args   []byte
	Source string
}

// Result is the outcome of running a single Case.
type Result struct {
	Passed bool
	Got    []byte
	Err    error
	Detail string
}

// maxCycles bounds every run so a case whose program never halts and
// never emits enough output fails instead of hanging a test binary.
const maxCycles = 1 << 16

// Parse splits text into its cases. A header line has the form
//
//	>>> title verb arg arg ...
//
// where verb is one of "outputs", "concludes", or "fails" and each arg
// is a decimal byte value (0-255). Lines before the first header are
// ignored; everything between one header and the next is the case's
// source, verbatim.
func Parse(text string) ([]Case, error) {
	var cases []Case
	var cur *Case
	var body []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Source = strings.Join(body, "\n")
		cases = append(cases, *cur)
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ">>>") {
			if cur != nil {
				body = append(body, line)
			}
			continue
		}

		flush()
		fields := strings.Fields(strings.TrimPrefix(trimmed, ">>>"))
		if len(fields) < 2 {
			return nil, errors.Errorf("malformed case header %q", line)
		}

		c := Case{Title: fields[0]}
		switch fields[1] {
		case "outputs":
			c.Verb = VerbOutputs
		case "concludes":
			c.Verb = VerbConcludes
		case "fails":
			c.Verb = VerbFails
		default:
			return nil, errors.Errorf("case %q: unknown verb %q", c.Title, fields[1])
		}
		for _, a := range fields[2:] {
			n, err := strconv.Atoi(a)
			if err != nil || n < 0 || n > 255 {
				return nil, errors.Errorf("case %q: bad byte argument %q", c.Title, a)
			}
			c.Args = append(c.Args, byte(n))
		}

		cur = &c
		body = nil
	}
	flush()
	return cases, nil
}

// RunCase compiles, assembles, and (unless the verb is "fails") runs c,
// then checks its verb's assertion.
func RunCase(c Case) Result {
	if c.Verb == VerbFails {
		return runFails(c)
	}

	asmText, err := compiler.Compile(c.Source)
	if err != nil {
		return Result{Err: errors.Wrap(err, "compile")}
	}
	img, err := asm.Assemble(c.Title, strings.NewReader(asmText))
	if err != nil {
		return Result{Err: errors.Wrap(err, "assemble")}
	}
	inst := vm.New(img)

	switch c.Verb {
	case VerbOutputs:
		return runOutputs(inst, c.Args)
	case VerbConcludes:
		return runConcludes(inst, c.Args)
	default:
		return Result{Err: errors.Errorf("unsupported verb %v", c.Verb)}
	}
}

func runFails(c Case) Result {
	asmText, err := compiler.Compile(c.Source)
	if err != nil {
		return Result{Passed: true}
	}
	if _, err := asm.Assemble(c.Title, strings.NewReader(asmText)); err != nil {
		return Result{Passed: true}
	}
	return Result{Detail: "expected compile or assemble to fail, but both succeeded"}
}

// runOutputs cycles inst, collecting the output latch only from cycles
// whose opcode is OUT or OUTC — most cycles leave the latch at zero
// simply because they aren't an output instruction, so counting every
// cycle's latch value (rather than only the ones that wrote it) would
// make the comparison depend on unrelated instruction timing.
func runOutputs(inst *vm.Instance, want []byte) Result {
	var got []byte
	for n := 0; n < maxCycles && len(got) < len(want); n++ {
		if inst.Halted() {
			break
		}
		op := vm.Op(inst.Image[inst.Image.IP()])
		b, err := inst.Cycle()
		if err != nil {
			return Result{Got: got, Err: err}
		}
		if op == vm.OpOUT || op == vm.OpOUTC {
			got = append(got, b)
		}
	}
	return compareBytes(got, want)
}

// runConcludes runs inst to completion and compares the n bytes
// starting at the stack pointer against want.
func runConcludes(inst *vm.Instance, want []byte) Result {
	for n := 0; n < maxCycles; n++ {
		if inst.Halted() {
			break
		}
		if _, err := inst.Cycle(); err != nil {
			return Result{Err: err}
		}
	}
	if !inst.Halted() {
		return Result{Detail: fmt.Sprintf("program did not halt within %d cycles", maxCycles)}
	}

	sp := inst.Image.SP()
	got := make([]byte, len(want))
	for i := range got {
		got[i] = inst.Image[(int(sp)+i)%256]
	}
	return compareBytes(got, want)
}

func compareBytes(got, want []byte) Result {
	if bytes.Equal(got, want) {
		return Result{Passed: true, Got: got}
	}
	return Result{Got: got, Detail: fmt.Sprintf("got %v, want %v", got, want)}
}

// RunFile reads the .ltest file at path, parses it, and runs each case
// as its own subtest, named after the case's title.
func RunFile(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cases, err := Parse(string(data))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		c := c
		t.Run(c.Title, func(t *testing.T) {
			res := RunCase(c)
			if res.Err != nil {
				t.Fatal(res.Err)
			}
			if !res.Passed {
				t.Error(res.Detail)
			}
		})
	}
}
