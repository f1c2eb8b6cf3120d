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
	"github.com/miracade/lens/internal/ngi"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("dump <image.%s>", lens.ExtBytecode),
		Short: "print a hex grid of an image with the instruction and stack pointers marked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			return ngi.DumpImage(img, os.Stdout)
		},
	}
	return cmd
}
