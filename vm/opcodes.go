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

// Op is an opcode byte.
type Op byte

// Machine opcodes. Values match the toolchain specification exactly;
// gaps in the numbering are reserved for instructions the reference
// machine never shipped (e.g. SETN/CLR at 0x03/0x04).
//
// OpDIV/OpDIVC and OpOUTC fill the specification's two open opcode
// questions: DIV/DIVC get slots in the arithmetic family (0x28/0x29,
// the first even-aligned free pair above MULC at 0x26), and OUTC
// takes the suggested 0x49, immediately after OUT.
const (
	OpNOP Op = 0x00
	OpEND Op = 0x01
	OpSET Op = 0x02
	OpMOV Op = 0x06

	OpSEND  Op = 0x08
	OpSTACK Op = 0x0A
	OpSWAP  Op = 0x0C

	OpJMP     Op = 0x10
	OpJMPC    Op = 0x11
	OpJZ      Op = 0x12
	OpJNZ     Op = 0x13
	OpJPOS    Op = 0x14
	OpJNEG    Op = 0x15
	OpJCARRY  Op = 0x18
	OpJNCARRY Op = 0x19

	OpADD  Op = 0x20
	OpADDC Op = 0x21
	OpSUB  Op = 0x22
	OpSUBC Op = 0x23
	OpMUL  Op = 0x24
	OpMULC Op = 0x26
	OpDIV  Op = 0x28
	OpDIVC Op = 0x29

	OpINC Op = 0x30
	OpDEC Op = 0x31

	OpIN   Op = 0x40
	OpOUT  Op = 0x48
	OpOUTC Op = 0x49
)

// mnemonics maps every known opcode to the word the assembler and
// disassembler use for it.
var mnemonics = map[Op]string{
	OpNOP:     "NOP",
	OpEND:     "END",
	OpSET:     "SET",
	OpMOV:     "MOV",
	OpSEND:    "SEND",
	OpSTACK:   "STACK",
	OpSWAP:    "SWAP",
	OpJMP:     "JMP",
	OpJMPC:    "JMPC",
	OpJZ:      "JZ",
	OpJNZ:     "JNZ",
	OpJPOS:    "JPOS",
	OpJNEG:    "JNEG",
	OpJCARRY:  "JCARRY",
	OpJNCARRY: "JNCARRY",
	OpADD:     "ADD",
	OpADDC:    "ADDC",
	OpSUB:     "SUB",
	OpSUBC:    "SUBC",
	OpMUL:     "MUL",
	OpMULC:    "MULC",
	OpDIV:     "DIV",
	OpDIVC:    "DIVC",
	OpINC:     "INC",
	OpDEC:     "DEC",
	OpIN:      "IN",
	OpOUT:     "OUT",
	OpOUTC:    "OUTC",
}

// mnemonicOps is the reverse of mnemonics, built once at init time and
// consulted by the assembler.
var mnemonicOps = func() map[string]Op {
	m := make(map[string]Op, len(mnemonics))
	for op, name := range mnemonics {
		m[name] = op
	}
	return m
}()

// Mnemonic returns the assembly mnemonic for op, or "" if op is unknown.
func Mnemonic(op Op) string { return mnemonics[op] }

// Lookup returns the opcode for the given mnemonic and whether it exists.
func Lookup(mnemonic string) (Op, bool) {
	op, ok := mnemonicOps[mnemonic]
	return op, ok
}

// OperandCount returns the number of operand bytes that follow op in an
// encoded image, or -1 if op is not a known opcode.
func OperandCount(op Op) int {
	switch op {
	case OpNOP, OpEND:
		return 0
	case OpSTACK, OpJMP, OpJMPC, OpJCARRY, OpJNCARRY, OpINC, OpDEC, OpIN, OpOUT, OpOUTC:
		return 1
	case OpSET, OpMOV, OpSEND, OpSWAP,
		OpJZ, OpJNZ, OpJPOS, OpJNEG,
		OpADD, OpADDC, OpSUB, OpSUBC, OpMUL, OpMULC, OpDIV, OpDIVC:
		return 2
	default:
		return -1
	}
}
