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

package compiler

import (
	stderrors "errors"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/miracade/lens/compiler/ast"
	"github.com/miracade/lens/compiler/codegen"
	"github.com/miracade/lens/compiler/expr"
	"github.com/miracade/lens/compiler/lexer"
)

// Compile tokenizes, parses, and lowers source to assembly text.
func Compile(source string) (string, error) {
	root, err := Parse(source)
	if err != nil {
		return "", err
	}
	return codegen.Translate(root)
}

// Parse builds the tree for source without lowering it, mainly useful
// for tests that want to inspect the tree itself.
func Parse(source string) (*ast.Root, error) {
	r, err := lexer.NewReader(source)
	if err != nil {
		return nil, err
	}

	root := ast.NewRoot()
	for {
		if err := skipSeparators(r); err != nil {
			if stderrors.Is(err, lexer.ErrEndOfFile) {
				break
			}
			return nil, err
		}
		tok, err := r.PeekToken(false)
		if err != nil {
			if stderrors.Is(err, lexer.ErrEndOfFile) {
				break
			}
			return nil, err
		}
		if err := parseStatement(r, root, tok); err != nil {
			return nil, err
		}
	}

	if root.Depth() != 0 {
		return nil, errors.New("unclosed block at end of input")
	}
	return root, nil
}

// skipSeparators advances past leading ';'/'\n' tokens. PeekToken's own
// skipSeparators flag looks past them without moving the cursor, which
// is exactly wrong here: the driver loop needs the cursor itself to
// land on the next real token before dispatching on it.
func skipSeparators(r *lexer.Reader) error {
	for {
		tok, err := r.PeekToken(false)
		if err != nil {
			return err
		}
		if !strings.ContainsRune(lexer.Separators, rune(tok[0])) {
			return nil
		}
		if _, err := r.ReadToken(false); err != nil {
			return err
		}
	}
}

func parseStatement(r *lexer.Reader, root *ast.Root, peeked string) error {
	switch {
	case strings.HasPrefix(peeked, "#"):
		tok, _ := r.ReadToken(true)
		root.Add(&ast.Comment{Value: tok})
		return nil

	case peeked == "if":
		return parseIf(r, root)

	case peeked == "while":
		return parseWhile(r, root)

	case peeked == "def":
		return parseFunctionDef(r, root)

	case peeked == "}":
		r.ReadToken(true)
		return root.Close()

	case peeked == "int" || peeked == "var":
		return parseVarDef(r, root)

	case peeked == "print":
		return parsePrint(r, root)

	default:
		return parseExprStatement(r, root)
	}
}

func parseIf(r *lexer.Reader, root *ast.Root) error {
	r.ReadToken(true) // "if"
	cond, err := r.ReadToken(false)
	if err != nil {
		return err
	}
	if err := expectBrace(r); err != nil {
		return err
	}
	node, err := ast.NewIf(cond)
	if err != nil {
		return err
	}
	root.Open(node)
	return nil
}

func parseWhile(r *lexer.Reader, root *ast.Root) error {
	r.ReadToken(true) // "while"
	cond, err := r.ReadToken(false)
	if err != nil {
		return err
	}
	if err := expectBrace(r); err != nil {
		return err
	}
	node, err := ast.NewWhile(cond)
	if err != nil {
		return err
	}
	root.Open(node)
	return nil
}

func expectBrace(r *lexer.Reader) error {
	brace, err := r.ReadToken(false)
	if err != nil {
		return err
	}
	if brace != "{" {
		return errors.Errorf("expected '{', got %q", brace)
	}
	return nil
}

func parseFunctionDef(r *lexer.Reader, root *ast.Root) error {
	r.ReadToken(true) // "def"
	name, err := r.ReadToken(false)
	if err != nil {
		return err
	}
	paren, err := r.ReadToken(false)
	if err != nil {
		return err
	}
	if paren != "(" {
		return errors.Errorf("expected '(' after function name %q, got %q", name, paren)
	}

	var params []string
	for {
		tok, err := r.ReadToken(false)
		if err != nil {
			return err
		}
		if tok == ")" {
			break
		}
		params = append(params, tok)
	}

	if err := expectBrace(r); err != nil {
		return err
	}
	root.Open(&ast.FunctionDef{Name: name, Params: params})
	return nil
}

func parseVarDef(r *lexer.Reader, root *ast.Root) error {
	typ, _ := r.ReadToken(true)
	name, err := r.ReadToken(false)
	if err != nil {
		return err
	}
	id, err := ast.NewIdentifier(name)
	if err != nil {
		return err
	}
	root.Add(&ast.VarDef{TypeName: &ast.Type{Value: typ}, Identifier: id})
	return nil
}

func parsePrint(r *lexer.Reader, root *ast.Root) error {
	r.ReadToken(true) // "print"
	tok, err := r.ReadToken(false)
	if err != nil {
		return err
	}

	var operand ast.Node
	switch {
	case isNumeric(tok):
		operand = &ast.Literal{Value: tok}
	default:
		id, err := ast.NewIdentifier(tok)
		if err != nil {
			return errors.Errorf("print operand %q is not a literal or identifier", tok)
		}
		operand = id
	}
	root.Add(&ast.Print{Value: operand})
	return nil
}

// parseExprStatement handles everything that isn't a keyword-led
// statement: plain assignment, compound assignment, and general
// arithmetic expressions. A 3-token "id (= | +=) literal-or-id" run is
// lowered directly to a BinOp, mirroring the fast dispatch codegen
// gives those forms; anything else goes through the precedence-climbing
// expression builder.
func parseExprStatement(r *lexer.Reader, root *ast.Root) error {
	tokens, err := r.ReadUntilSeparator()
	if err != nil {
		return err
	}

	if bin, ok := tryBinOp(tokens); ok {
		root.Add(bin)
		return nil
	}

	node, err := expr.Build(tokens)
	if err != nil {
		return err
	}
	e, ok := node.(*ast.Expression)
	if !ok {
		return errors.Errorf("statement %v is not an expression", tokens)
	}
	root.Add(e)
	return nil
}

func tryBinOp(tokens []string) (*ast.BinOp, bool) {
	if len(tokens) != 3 || (tokens[1] != "=" && tokens[1] != "+=") {
		return nil, false
	}
	left, err := ast.NewIdentifier(tokens[0])
	if err != nil {
		return nil, false
	}

	var right ast.Node
	switch {
	case isNumeric(tokens[2]):
		right = &ast.Literal{Value: tokens[2]}
	default:
		id, err := ast.NewIdentifier(tokens[2])
		if err != nil {
			return nil, false
		}
		right = id
	}

	return &ast.BinOp{Left: left, Operator: &ast.Operator{Value: tokens[1]}, Right: right}, true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
