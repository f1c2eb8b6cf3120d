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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/miracade/lens"
	"github.com/miracade/lens/vm"
)

func newDisasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("disasm <image.%s>", lens.ExtBytecode),
		Short: "disassemble every instruction in an image, address 0 to the end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			vm.DisassembleAll(img, 0, os.Stdout)
			return nil
		},
	}
	return cmd
}
