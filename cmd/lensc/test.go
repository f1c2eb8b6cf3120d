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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/miracade/lens"
	"github.com/miracade/lens/ltest"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("test <file.%s> [file.%s...]", lens.ExtTest, lens.ExtTest),
		Short: "run .ltest case files and report pass/fail for each case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, failed := 0, 0
			for _, path := range args {
				if err := requireExt(path, lens.ExtTest); err != nil {
					return err
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "read %s", path)
				}
				cases, err := ltest.Parse(string(data))
				if err != nil {
					return errors.Wrapf(err, "parse %s", path)
				}
				for _, c := range cases {
					total++
					res := ltest.RunCase(c)
					switch {
					case res.Err != nil:
						failed++
						fmt.Printf("FAIL %s: %v\n", c.Title, res.Err)
					case !res.Passed:
						failed++
						fmt.Printf("FAIL %s: %s\n", c.Title, res.Detail)
					default:
						fmt.Printf("ok   %s\n", c.Title)
					}
				}
			}
			fmt.Printf("%d cases, %d failed\n", total, failed)
			if failed > 0 {
				return errors.Errorf("%d of %d cases failed", failed, total)
			}
			return nil
		},
	}
	return cmd
}
