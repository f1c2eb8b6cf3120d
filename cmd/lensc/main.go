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

// Command lensc drives the toolchain end to end: compile, assemble,
// run, test, disassemble, or dump an image.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:           "lensc",
		Short:         "compile, assemble, run, and test programs for the lens virtual machine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print the full error chain instead of just its cause")

	root.AddCommand(
		newCompileCmd(),
		newAssembleCmd(),
		newRunCmd(),
		newTestCmd(),
		newDisasmCmd(),
		newDumpCmd(),
	)

	if err := root.Execute(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintln(os.Stderr, errors.Cause(err))
	}
	os.Exit(1)
}
