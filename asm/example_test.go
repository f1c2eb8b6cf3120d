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

package asm_test

import (
	"fmt"
	"strings"

	"github.com/miracade/lens/asm"
	"github.com/miracade/lens/vm"
)

// ExampleAssemble assembles a short countdown program, using pre-seeded
// register macros (@A) and a user-defined one (&LOOP), then runs it to
// completion.
func ExampleAssemble() {
	src := `
		&MAIN
		SET @A 3
		&LOOP
		JZ @A @LEN+7
		OUT @A
		DEC @A
		JMPC @LOOP
		END
	`
	img, err := asm.Assemble("countdown.lasm", strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	i := vm.New(img)
	out, err := i.Run(64)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range out {
		if b != 0 {
			fmt.Println(b)
		}
	}
	// Output:
	// 3
	// 2
	// 1
}
