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

package ngi

import (
	"fmt"
	"io"

	"github.com/miracade/lens/vm"
)

// DumpImage renders img as a 16x16 hex grid, one row per 16 bytes, with
// the byte at the instruction pointer marked '>' and the byte at the
// stack pointer marked '<'. It's the text-mode equivalent of stepping
// through memory in a debugger when there's no front end to draw one.
func DumpImage(img vm.Image, w io.Writer) error {
	ew := NewErrWriter(w)
	ip, sp := img.IP(), img.SP()
	for row := 0; row < 16; row++ {
		fmt.Fprintf(ew, "%02X:", row*16)
		for col := 0; col < 16; col++ {
			addr := byte(row*16 + col)
			mark := byte(' ')
			switch addr {
			case ip:
				mark = '>'
			case sp:
				mark = '<'
			}
			fmt.Fprintf(ew, " %02X%c", img[addr], mark)
		}
		fmt.Fprintln(ew)
	}
	return ew.Err
}
