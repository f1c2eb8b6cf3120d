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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/miracade/lens"
	"github.com/miracade/lens/compiler"
)

func newCompileCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("compile <source.%s>", lens.ExtCompilable),
		Short: "compile high-level source to assembly text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireExt(args[0], lens.ExtCompilable); err != nil {
				return err
			}
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			asmText, err := compiler.Compile(src)
			if err != nil {
				return errors.Wrap(err, "compile")
			}
			return writeOutput(output, []byte(asmText))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (\"-\" or unset for stdout)")
	return cmd
}
