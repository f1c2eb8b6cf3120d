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

// Package ltest parses and runs ".ltest" files: end-to-end test cases
// that carry a complete HLL program through the compiler, the
// assembler, and the interpreter in one step.
//
// A file is a sequence of cases, each introduced by a ">>>" header line
// and followed by the HLL source that makes up the case body, up to the
// next ">>>" or the end of the file:
//
//	>>> <title> outputs <byte> <byte> ...
//	<HLL source>
//
//	>>> <title> concludes <byte> <byte> ...
//	<HLL source>
//
//	>>> <title> fails
//	<HLL source>
//
// outputs watches for the program's OUT/OUTC instructions specifically
// and compares the bytes they latch, in order, against the header's
// argument list — not the output latch's value after every cycle, most
// of which are zero simply because no output instruction ran that
// cycle. concludes runs the program to completion and compares the
// bytes at [SP, SP+n) once it halts. fails expects the compile or
// assemble step to return an error.
//
// Case bodies are ordinary HLL source and, like any other compilable
// unit, need their own "def main ( ) { ... }" wrapper; there is no
// implicit top-level main.
package ltest
