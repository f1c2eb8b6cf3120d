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

import "github.com/pkg/errors"

// read fetches the byte at the current IP and advances it by one, mod 256.
func (i *Instance) read() byte {
	ip := i.Image.IP()
	v := i.Image[ip]
	i.Image[OffsetIP] = ip + 1
	return v
}

// readRel fetches an operand byte and interprets it as a rel-addr:
// (byte + SP) mod 256.
func (i *Instance) readRel() byte {
	return i.read() + i.Image.SP()
}

// add computes the unsigned sum state[addr]+v, stores it mod 256 at addr,
// and, if setFlag, sets the carry flag to whether the sum overflowed or
// underflowed an 8-bit byte.
func (i *Instance) add(addr byte, v int, setFlag bool) {
	res := int(i.Image[addr]) + v
	if setFlag {
		if res < 0 || res > 255 {
			i.Image[OffsetCarry] = 1
		} else {
			i.Image[OffsetCarry] = 0
		}
	}
	i.Image[addr] = byte(((res % 256) + 256) % 256)
}

// Cycle executes exactly one instruction and returns the byte left in the
// output latch (offset 0x09) by that instruction, along with an error if
// the fetched opcode is unknown.
//
// Per cycle: the 32-bit clock at 0x04..0x07 is incremented (big-endian,
// carrying into more significant bytes on wraparound), the output latch is
// cleared, one opcode is fetched and dispatched, and the (possibly
// freshly-written) output latch is returned. Calling Cycle again after the
// machine has halted (IP pointing at an END instruction) is idempotent: it
// changes nothing but the clock and the output latch.
func (i *Instance) Cycle() (byte, error) {
	if i.clockEnabled {
		for b := OffsetClockEnd; b >= OffsetClockStart; b-- {
			i.Image[b]++
			if i.Image[b] != 0 {
				break
			}
		}
	}
	i.Image[OffsetOutput] = 0

	if i.input != nil {
		select {
		case b, ok := <-i.input:
			if ok {
				i.Image[OffsetInput] = b
			}
		default:
		}
	}

	op := Op(i.read())
	switch op {
	case OpNOP:
	case OpEND:
		i.Image[OffsetIP] = i.Image.IP() - 1
	case OpSET:
		d := i.readRel()
		k := i.read()
		i.Image[d] = k
	case OpMOV:
		d := i.readRel()
		s := i.readRel()
		i.Image[d] = i.Image[s]
	case OpSEND:
		s := i.readRel()
		o := i.readRel()
		i.Image[(int(s)+int(i.Image[o]))%256] = i.Image[s]
	case OpSTACK:
		k := i.read()
		i.Image[OffsetSP] = i.Image.SP() + k
	case OpSWAP:
		a := i.readRel()
		b := i.readRel()
		i.Image[a], i.Image[b] = i.Image[b], i.Image[a]
	case OpJMP:
		a := i.readRel()
		i.Image[OffsetIP] = i.Image[a]
	case OpJMPC:
		k := i.read()
		i.Image[OffsetIP] = k
	case OpJZ, OpJNZ, OpJPOS, OpJNEG:
		c := i.readRel()
		k := i.read()
		if jumpCondition(op, i.Image[c]) {
			i.Image[OffsetIP] = k
		}
	case OpJCARRY:
		k := i.read()
		if i.Image.Carry() {
			i.Image[OffsetIP] = k
		}
	case OpJNCARRY:
		k := i.read()
		if !i.Image.Carry() {
			i.Image[OffsetIP] = k
		}
	case OpADD:
		d := i.readRel()
		s := i.readRel()
		i.add(d, int(i.Image[s]), true)
	case OpADDC:
		d := i.readRel()
		k := i.read()
		i.add(d, int(k), true)
	case OpSUB:
		d := i.readRel()
		s := i.readRel()
		i.add(d, -int(i.Image[s]), true)
	case OpSUBC:
		d := i.readRel()
		k := i.read()
		i.add(d, -int(k), true)
	case OpMUL:
		d := i.readRel()
		s := i.readRel()
		i.Image[d] = byte((int(i.Image[d]) * int(i.Image[s])) % 256)
	case OpMULC:
		d := i.readRel()
		k := i.read()
		i.Image[d] = byte((int(i.Image[d]) * int(k)) % 256)
	case OpDIV:
		d := i.readRel()
		s := i.readRel()
		i.divide(d, int(i.Image[s]))
	case OpDIVC:
		d := i.readRel()
		k := i.read()
		i.divide(d, int(k))
	case OpINC:
		d := i.readRel()
		i.add(d, 1, true)
	case OpDEC:
		d := i.readRel()
		i.add(d, -1, true)
	case OpIN:
		d := i.readRel()
		i.Image[d] = i.Image[OffsetInput]
	case OpOUT:
		s := i.readRel()
		i.Image[OffsetOutput] = i.Image[s]
	case OpOUTC:
		k := i.read()
		i.Image[OffsetOutput] = k
	default:
		return 0, errors.Errorf("unknown opcode 0x%02X at address %d", byte(op), i.Image.IP()-1)
	}

	i.insCount++
	out := i.Image.Output()
	if i.trace != nil && (op == OpOUT || op == OpOUTC) {
		i.trace.Write([]byte{out})
	}
	return out, nil
}

// divide implements the DIV/DIVC opcodes: dest = dest / operand, mod 256.
// Division by zero leaves dest unchanged and sets the carry flag, the
// same "something unusual happened" signal every other arithmetic opcode
// uses, rather than panicking.
func (i *Instance) divide(dest byte, operand int) {
	if operand == 0 {
		i.Image[OffsetCarry] = 1
		return
	}
	i.Image[OffsetCarry] = 0
	i.Image[dest] = byte((int(i.Image[dest]) / operand) % 256)
}

func jumpCondition(op Op, v byte) bool {
	switch op {
	case OpJZ:
		return v == 0
	case OpJNZ:
		return v != 0
	case OpJPOS:
		return v >= 0x01 && v <= 0x7E
	case OpJNEG:
		return v >= 0x80 && v <= 0xFE
	}
	return false
}

// Run calls Cycle repeatedly until the machine halts (IP points at an END
// instruction) or maxCycles have elapsed, whichever comes first. It
// returns the sequence of output-latch bytes produced by every cycle that
// actually ran. Run is a convenience built on top of Cycle for callers
// that don't need to interleave per-cycle I/O; the core interpreter
// contract is Cycle alone.
func (i *Instance) Run(maxCycles int) ([]byte, error) {
	out := make([]byte, 0, maxCycles)
	for n := 0; n < maxCycles; n++ {
		if i.Halted() {
			break
		}
		b, err := i.Cycle()
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, nil
}
