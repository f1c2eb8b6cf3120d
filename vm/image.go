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

// Cell is the unit of storage in an Image: a single byte.
type Cell = byte

// Image is the machine's entire addressable memory: a fixed 256-byte array.
// The zero value is a valid, blank image (every byte zero, IP and SP both
// at 0).
type Image [256]Cell

// Byte offsets of the machine's reserved header fields, per the memory
// layout table in the toolchain specification.
const (
	OffsetIP         = 0x00
	OffsetSP         = 0x01
	OffsetCarry      = 0x02
	OffsetClockStart = 0x04
	OffsetClockEnd   = 0x07
	OffsetInput      = 0x08
	OffsetOutput     = 0x09
	OffsetHeapFlags  = 0x0A
	OffsetHeaderEnd  = 0x0F

	OffsetCodeStart = 0x10
	OffsetHeapStart = 0x80
	OffsetHeapEnd   = 0xFF
)

// IP returns the current instruction pointer.
func (img *Image) IP() byte { return img[OffsetIP] }

// SP returns the current stack pointer.
func (img *Image) SP() byte { return img[OffsetSP] }

// Carry reports whether the carry flag is set.
func (img *Image) Carry() bool { return img[OffsetCarry] != 0 }

// Clock returns the 32-bit big-endian cycle counter at 0x04..0x07.
func (img *Image) Clock() uint32 {
	return uint32(img[OffsetClockStart])<<24 |
		uint32(img[OffsetClockStart+1])<<16 |
		uint32(img[OffsetClockStart+2])<<8 |
		uint32(img[OffsetClockStart+3])
}

// Input sets the input latch at offset 0x08. A front-end must write it
// before calling Cycle. No instruction writes it; an Instance built with
// WithInput copies a newly arrived byte into it at the start of a cycle.
func (img *Image) Input(b byte) { img[OffsetInput] = b }

// Output returns the output latch at offset 0x09, as last written by
// Cycle. A front-end must read it only after Cycle returns, since Cycle
// clears it at the start of every step.
func (img *Image) Output() byte { return img[OffsetOutput] }
