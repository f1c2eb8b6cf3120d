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

// Package codegen walks an *ast.Root and emits assembly text for the
// asm package to assemble.
//
// Each block gets its own namespace: Root, If, and While bodies get a
// child namespace built from the enclosing one, and a FunctionDef body
// starts from an empty namespace. Either way a variable declared inside
// a loop or function body never leaks an address binding to an outer
// scope. Expression codegen returns the address its result lives at
// explicitly (genExpr's addr return value) rather than relying on a
// fixed "lowest free address" convention: every caller, including
// recursive ones, uses the address a nested call actually reports
// instead of re-deriving it, which is what lets deeply nested
// expressions compose without clobbering each other's scratch space.
package codegen
