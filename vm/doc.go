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

// Package vm implements the machine: a fixed 256-byte byte-addressed
// virtual machine with an instruction pointer, a stack pointer, a carry
// flag, a free-running clock, and a single input/output byte latch pair.
//
// The machine has no dynamic memory beyond its 256-byte Image and executes
// exactly one instruction per call to (*Instance).Cycle. There is
// deliberately no run-to-completion loop in the core interpreter: callers
// step the machine one instruction at a time, reading or writing the
// input/output latches between cycles, which is what makes it safe for an
// external front-end to poll the image without racing the interpreter.
// Run is provided as a thin convenience on top of Cycle for callers who
// don't need that interleaving.
//
// Byte layout:
//
//	0x00      instruction pointer (IP)
//	0x01      stack pointer (SP)
//	0x02      carry flag (0 or 1)
//	0x04-0x07 clock counter, big-endian, incremented every cycle
//	0x08      input latch, written externally before Cycle
//	0x09      output latch, written by OUT/OUTC, cleared every cycle
//	0x0A-0x0F heap-flag bits (reserved)
//	0x10-0x7F code/data region
//	0x80-0xFF heap region
//
// All arithmetic on bytes is mod 256. The carry flag is set exactly by the
// last ADD/ADDC/SUB/SUBC/INC/DEC/DIV/DIVC and left untouched by MUL/MULC.
package vm
