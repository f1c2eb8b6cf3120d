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

package asm_test

import (
	"strings"
	"testing"

	"github.com/miracade/lens/asm"
	"github.com/miracade/lens/vm"
)

func TestAssembleSimpleProgram(t *testing.T) {
	src := `
		&MAIN
		SET @A 5
		OUT @A
		END
	`
	img, err := asm.Assemble("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	i := vm.New(img)
	out, err := i.Run(10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 2 || out[1] != 5 {
		t.Errorf("out = %v, want [_, 5]", out)
	}
}

func TestMacroArithmetic(t *testing.T) {
	src := `
		&MAIN
		JMPC @LEN+3
		NOP
		NOP
		END
	`
	img, err := asm.Assemble("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if img[vm.OffsetIP] != 16 {
		t.Fatalf("MAIN = %d, want 16", img[vm.OffsetIP])
	}
	i := vm.New(img)
	// LEN is re-bound to the operand's own address (17) just before it is
	// emitted, so @LEN+3 resolves to 20: past the operand itself and the
	// two NOPs, landing exactly on END.
	if _, err := i.Cycle(); err != nil {
		t.Fatal(err)
	}
	if !i.Halted() {
		t.Error("expected the jump to land directly on END")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	src := "&MAIN # this is a comment\nEND # another\n"
	img, err := asm.Assemble("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if img[vm.OffsetIP] != vm.OffsetCodeStart {
		t.Errorf("MAIN = %d, want %d", img[vm.OffsetIP], vm.OffsetCodeStart)
	}
}

func TestUndefinedMacroIsAnError(t *testing.T) {
	src := "&MAIN\nJMP @NOPE\nEND\n"
	_, err := asm.Assemble("test", strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for an undefined macro")
	}
	if _, ok := err.(asm.ErrAsm); !ok {
		t.Fatalf("error type = %T, want asm.ErrAsm", err)
	}
}

func TestMissingMainFails(t *testing.T) {
	src := "NOP\nEND\n"
	_, err := asm.Assemble("test", strings.NewReader(src))
	if err == nil {
		t.Fatal("expected assembling a listing with no &MAIN to fail")
	}
}

func TestStackPointerOnNextSixteenByteBoundary(t *testing.T) {
	src := "&MAIN\nEND\n" // 17 bytes of code: 16 header + END
	img, err := asm.Assemble("test", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if img[vm.OffsetSP] != 32 {
		t.Errorf("SP = %d, want 32", img[vm.OffsetSP])
	}
}

func TestStackPointerStaysOnExactBoundary(t *testing.T) {
	// 16 NOPs bring the code length to exactly 32 bytes (16 header + 16 code).
	src := "&MAIN\n" + strings.Repeat("NOP\n", 16)
	img, err := asm.Assemble("test", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if img[vm.OffsetSP] != 32 {
		t.Errorf("SP = %d, want 32 (exact boundary, no extra block)", img[vm.OffsetSP])
	}
}
