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

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/miracade/lens"
	"github.com/miracade/lens/vm"
)

func newRunCmd() *cobra.Command {
	var maxCycles int
	var step bool
	var interactive bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("run <image.%s>", lens.ExtBytecode),
		Short: "run an assembled image on the interpreter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}

			var opts []vm.Option
			if interactive {
				teardown, err := setRawIO()
				if err != nil {
					return errors.Wrap(err, "enable raw IO")
				}
				defer teardown()
				opts = append(opts, vm.WithInput(os.Stdin))
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			inst := vm.New(img, opts...)

			for n := 0; n < maxCycles; n++ {
				if inst.Halted() {
					break
				}
				// Only an OUT/OUTC cycle actually latches a byte worth
				// printing; every other cycle leaves it at zero.
				op := vm.Op(inst.Image[inst.Image.IP()])
				b, err := inst.Cycle()
				if err != nil {
					return err
				}
				if op == vm.OpOUT || op == vm.OpOUTC {
					out.WriteByte(b)
				}
				if step {
					fmt.Fprintf(os.Stderr, "cycle=%d ip=%d sp=%d carry=%t out=%d\n",
						n, inst.Image.IP(), inst.Image.SP(), inst.Image.Carry(), b)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 1<<20, "stop after this many cycles even if the program hasn't halted")
	cmd.Flags().BoolVar(&step, "step", false, "print one line of machine state per cycle to stderr")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "put the terminal in raw mode and feed stdin bytes to the machine's input latch")
	return cmd
}
