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

package expr

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/miracade/lens/compiler/ast"
)

var basePrecedence = map[string]int{
	"=": 0,
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

const parenScopeStep = 10

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// item is one element of the working list during reduction: either a
// value (Literal, Identifier, or a collapsed Expression) or an operator
// awaiting its effective precedence.
type item struct {
	value ast.Node
	op    string
	prec  int
}

func (it item) isOperator() bool { return it.op != "" }

// Build runs the five-step algorithm: classify, assign precedence with
// parenthesis scope, assert balance, strip parens, then reduce
// highest-precedence-first (ties leftmost) until one node remains.
func Build(tokens []string) (ast.Node, error) {
	items, err := classify(tokens)
	if err != nil {
		return nil, err
	}

	scope := 0
	for i, it := range items {
		if !it.isOperator() {
			continue
		}
		switch it.op {
		case "(":
			scope += parenScopeStep
		case ")":
			scope -= parenScopeStep
		}
		items[i].prec = basePrecedence[it.op] + scope
	}
	if scope != 0 {
		return nil, errors.Errorf("unbalanced parentheses in expression %v", tokens)
	}

	items = stripParens(items)

	for hasOperator(items) {
		idx := leftmostHighestPrecedence(items)
		if idx <= 0 || idx >= len(items)-1 {
			return nil, errors.Errorf("operator %q is missing an operand in expression %v", items[idx].op, tokens)
		}
		left, right := items[idx-1], items[idx+1]
		if left.isOperator() || right.isOperator() {
			return nil, errors.Errorf("operator %q is missing an operand in expression %v", items[idx].op, tokens)
		}
		collapsed := item{value: &ast.Expression{
			Left:     left.value,
			Operator: &ast.Operator{Value: items[idx].op},
			Right:    right.value,
		}}
		next := make([]item, 0, len(items)-2)
		next = append(next, items[:idx-1]...)
		next = append(next, collapsed)
		next = append(next, items[idx+2:]...)
		items = next
	}

	if len(items) != 1 {
		return nil, errors.Errorf("invalid expression %v", tokens)
	}
	return items[0].value, nil
}

func classify(tokens []string) ([]item, error) {
	items := make([]item, len(tokens))
	for i, tok := range tokens {
		switch {
		case isExprOp(tok):
			items[i] = item{op: tok}
		case isNumeric(tok):
			items[i] = item{value: &ast.Literal{Value: tok}}
		case isAlpha(tok):
			items[i] = item{value: &ast.Identifier{Value: tok}}
		default:
			return nil, errors.Errorf("could not classify expression token %q", tok)
		}
	}
	return items, nil
}

func isExprOp(tok string) bool { return strings.ContainsAny(tok, "=+-*/()") && len(tok) == 1 }

func stripParens(items []item) []item {
	out := items[:0:0]
	for _, it := range items {
		if it.op == "(" || it.op == ")" {
			continue
		}
		out = append(out, it)
	}
	return out
}

func hasOperator(items []item) bool {
	for _, it := range items {
		if it.isOperator() {
			return true
		}
	}
	return false
}

// leftmostHighestPrecedence returns the index of the highest-precedence
// operator, breaking ties by keeping the first (leftmost) one found.
func leftmostHighestPrecedence(items []item) int {
	best := -1
	for i, it := range items {
		if !it.isOperator() {
			continue
		}
		if best == -1 || it.prec > items[best].prec {
			best = i
		}
	}
	return best
}
