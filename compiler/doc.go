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

// Package compiler drives the high-level-language front end end to
// end: it tokenizes source with package lexer, builds an *ast.Root by
// dispatching on each token the way a hand-written recursive-descent
// parser would, and lowers the finished tree to assembly text with
// package codegen.
//
// Function calls compile down to a plain unconditional jump with no
// return stack: a function body ends in "JMPC @A", so a caller must
// write its own return address into address 0 (the @A register) before
// jumping to the callee's label. There is no call instruction and no
// argument passing; FunctionDef.Params is carried only for diagnostics.
package compiler
