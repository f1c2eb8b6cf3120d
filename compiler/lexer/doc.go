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

// Package lexer turns source text into a flat token list and a
// cursor-based Reader over it.
//
// Tokenizing is a single forward scan driven entirely by the character
// class of each rune: a '#' starts a comment that runs to the next
// separator; letters and digits each accumulate into maximal runs;
// symbol characters ("#+-*/=(){}") form single-character tokens that
// extend to a two-character token only when the pair is a recognized
// long symbol ("++", "+="); ';' and newline are separators and are
// always emitted as their own token; any other non-space rune is a
// lexical error.
package lexer
