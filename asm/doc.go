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

// Package asm translates assembly text ("ASM") into a vm.Image.
//
// The assembly language is whitespace-separated tokens. Comments begin
// with '#' and run to the end of the line. A token starting with '&'
// defines a macro bound to the current output length (e.g. "&MAIN"); a
// token starting with '@' references a macro's value, optionally offset
// by a trailing "+N" or "-N" (e.g. "@LEN+3"). The macro table is
// pre-seeded with A..Z mapped to 0..25, letting compact register
// references like "@A" stand in for decimal addresses. LEN is re-bound to
// the current output length before every token is processed, so "@LEN+N"
// always resolves relative to where it appears in the source, not to the
// final image size. Every other bare word is either an instruction
// mnemonic or a base-10 integer literal.
//
// Assembly proceeds in a single left-to-right pass: there is no forward
// label resolution, because every macro a program can reference (A..Z,
// LEN, MAIN, and any user-defined "&NAME") is always defined before first
// use by construction of the code generator in package compiler. This
// mirrors how the code generator emits "@LEN±N" jump targets rather than
// named forward labels.
package asm
