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

package vm

import (
	"fmt"
	"io"
)

// Disassemble writes the instruction at pc in img to w and returns the
// address of the next instruction. Unknown opcodes are printed as
// "DB 0xNN" rather than erroring, since disassembly is a best-effort
// debugging aid, not a core pipeline stage.
func Disassemble(img Image, pc int, w io.Writer) (next int) {
	op := Op(img[pc])
	name := Mnemonic(op)
	n := OperandCount(op)
	pc++
	if n < 0 {
		fmt.Fprintf(w, "DB 0x%02X", byte(op))
		return pc
	}
	fmt.Fprint(w, name)
	for k := 0; k < n && pc < len(img); k++ {
		fmt.Fprintf(w, " %d", img[pc])
		pc++
	}
	return pc
}

// DisassembleAll disassembles every instruction from pc to the end of the
// image, one per line, prefixed with its address.
func DisassembleAll(img Image, pc int, w io.Writer) {
	for pc < len(img) {
		fmt.Fprintf(w, "%3d\t", pc)
		pc = Disassemble(img, pc, w)
		fmt.Fprintln(w)
	}
}
