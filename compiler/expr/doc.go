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

// Package expr builds an *ast.Expression tree from a flat token list
// using explicit operator precedence rather than recursive descent.
//
// Every token is first classified as an operator, a literal (all
// digits), or an identifier (all letters). Parentheses are scope
// modifiers: '(' raises every following operator's effective precedence
// by 10, ')' lowers it back; unbalanced parentheses are a build error.
// Once scope is resolved the parenthesis tokens themselves are discarded
// and the remaining operators are reduced highest-effective-precedence
// first, ties broken leftmost, collapsing [left, op, right] triples into
// a single Expression node until one node remains.
package expr
