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

import "io"

// Option configures an Instance at construction time.
type Option func(*Instance)

// WithOutput attaches a writer that receives a copy of every byte the
// machine latches to the output port (offset 0x09), in addition to it
// being readable through Output(). Useful for tracing or for a CLI that
// wants to stream output as the program runs instead of polling.
func WithOutput(w io.Writer) Option {
	return func(i *Instance) { i.trace = w }
}

// WithClock enables or disables the free-running cycle counter at
// 0x04..0x07. It is enabled by default; disabling it is useful for
// golden-file tests that compare an image byte-for-byte after a fixed
// number of cycles, since the clock's exact bit pattern is otherwise
// informational only and not something callers should depend on.
func WithClock(enabled bool) Option {
	return func(i *Instance) { i.clockEnabled = enabled }
}

// WithInput attaches a reader whose bytes are copied, one at a time, into
// the machine's input latch (offset 0x08) for the IN opcode to pick up.
// A background goroutine does the (possibly blocking) Read calls and
// only ever hands bytes off over a channel; Cycle claims whatever has
// arrived since the last cycle without blocking, on the same goroutine
// that owns Image, the same way a polling front end feeding bytes
// between cycles would. If nothing has arrived yet, the latch keeps
// whatever value the last cycle left it at.
func WithInput(r io.Reader) Option {
	return func(i *Instance) {
		ch := make(chan byte, 1)
		i.input = ch
		go func() {
			buf := make([]byte, 1)
			for {
				n, err := r.Read(buf)
				if n > 0 {
					ch <- buf[0]
				}
				if err != nil {
					close(ch)
					return
				}
			}
		}()
	}
}

// Instance steps a single Image. It holds no memory of its own beyond
// bookkeeping (instruction count, optional trace writer, optional input
// channel): all machine state lives in Image, which callers may inspect
// or save between cycles.
type Instance struct {
	Image Image

	trace        io.Writer
	input        <-chan byte
	clockEnabled bool
	insCount     int64
}

// New returns an Instance ready to run img from its current IP.
func New(img Image, opts ...Option) *Instance {
	i := &Instance{Image: img, clockEnabled: true}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 { return i.insCount }

// Halted reports whether the instruction at the current IP is END, i.e.
// the machine has halted by self-loop and further Cycle calls will not
// change anything but the clock and the (cleared) output latch.
func (i *Instance) Halted() bool {
	return Op(i.Image[i.Image.IP()]) == OpEND
}
