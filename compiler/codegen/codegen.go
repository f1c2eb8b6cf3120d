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

package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/miracade/lens/compiler/ast"
	"github.com/miracade/lens/compiler/namespace"
)

var exprInstrs = map[string][2]string{
	"+": {"ADD", "ADDC"},
	"-": {"SUB", "SUBC"},
	"*": {"MUL", "MULC"},
	"/": {"DIV", "DIVC"},
}

// Translate walks root and returns the assembly text describing it.
func Translate(root *ast.Root) (string, error) {
	return traverse(root.Body, nil)
}

func indent(s string) string {
	const pad = "    "
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

var commentLineRE = regexp.MustCompile(`#[^\n]*\n`)

// tokenCount counts whitespace-separated tokens in s once full comment
// lines (emitted by the Comment and Expression cases below) are removed,
// matching the unit @LEN arithmetic is expressed in: the assembler emits
// exactly one byte per non-comment, non-label token.
func tokenCount(s string) int {
	stripped := commentLineRE.ReplaceAllString(s, "")
	return len(strings.Fields(stripped))
}

func traverse(body []ast.Node, parent *namespace.Namespace) (string, error) {
	ns := namespace.New(parent)
	var out strings.Builder

	for _, node := range body {
		switch n := node.(type) {
		case *ast.Comment:
			out.WriteString(n.Value + "\n")

		case *ast.VarDef:
			if _, err := ns.AddIdentifier(n.Identifier.Value, n.TypeName.Value); err != nil {
				return "", err
			}

		case *ast.Expression:
			lines, _, err := genExpr(n, ns)
			if err != nil {
				return "", err
			}
			out.WriteString(fmt.Sprintf("# %s\n", n.String()))
			out.WriteString(indent(strings.Join(lines, "\n")))
			out.WriteString("\n")

		case *ast.BinOp:
			line, err := genBinOp(n, ns)
			if err != nil {
				return "", err
			}
			out.WriteString(line + "\n")

		case *ast.Print:
			line, err := genPrint(n, ns)
			if err != nil {
				return "", err
			}
			out.WriteString(line + "\n")

		case *ast.If:
			prefix, condAddr, err := conditionCode(n.Condition, ns)
			if err != nil {
				return "", err
			}
			bodyStr, err := traverse(n.Body, ns)
			if err != nil {
				return "", err
			}
			bodyLen := tokenCount(bodyStr)
			for _, line := range prefix {
				out.WriteString(line + "\n")
			}
			out.WriteString(fmt.Sprintf("JZ %s @LEN+%d\n", condAddr, bodyLen+1))
			out.WriteString(indent(bodyStr))
			out.WriteString("\n")

		case *ast.While:
			prefix, condAddr, err := conditionCode(n.Condition, ns)
			if err != nil {
				return "", err
			}
			bodyStr, err := traverse(n.Body, ns)
			if err != nil {
				return "", err
			}
			bodyLen := tokenCount(bodyStr)
			for _, line := range prefix {
				out.WriteString(line + "\n")
			}
			out.WriteString(fmt.Sprintf("JZ %s @LEN+%d\n", condAddr, bodyLen+3))
			out.WriteString(indent(bodyStr))
			out.WriteString(fmt.Sprintf("JMPC @LEN-%d\n", bodyLen+4))

		case *ast.FunctionDef:
			bodyStr, err := traverse(n.Body, nil)
			if err != nil {
				return "", err
			}
			if n.Name == "main" {
				out.WriteString("&MAIN\n")
				out.WriteString(indent(bodyStr))
				out.WriteString("\nEND\n")
			} else {
				out.WriteString(fmt.Sprintf("&%s\n", n.Name))
				out.WriteString(indent(bodyStr))
				out.WriteString("\nJMPC @A\n")
			}

		default:
			return "", errors.Errorf("unsupported node type %T", node)
		}
	}
	return out.String(), nil
}

// conditionCode resolves an If/While condition to a rel-addr JZ can read.
// An Identifier condition resolves directly to its bound address. A
// Literal condition (only If permits one; While's constructor rejects
// anything but an identifier) has no address of its own, so it is
// materialized into a scratch slot first — the same technique genArith
// uses to give a bare literal operand an address — and conditionCode
// returns that SET instruction as a prefix line to emit ahead of the JZ.
func conditionCode(cond ast.Node, ns *namespace.Namespace) (prefix []string, addr string, err error) {
	switch c := cond.(type) {
	case *ast.Identifier:
		v, err := ns.Get(c.Value)
		if err != nil {
			return nil, "", err
		}
		return nil, v.AddrAsStr(), nil

	case *ast.Literal:
		scratch, err := ns.AddScratch()
		if err != nil {
			return nil, "", err
		}
		return []string{fmt.Sprintf("SET %s %s", scratch.AddrAsStr(), c.Value)}, scratch.AddrAsStr(), nil

	default:
		return nil, "", errors.Errorf("condition %v must be an identifier or a literal", cond)
	}
}

// genBinOp covers the four fast-path forms spec.md's codegen table names
// directly: "id = lit", "id = id", "id += lit", "id += id".
func genBinOp(n *ast.BinOp, ns *namespace.Namespace) (string, error) {
	left, err := ns.Get(n.Left.Value)
	if err != nil {
		return "", err
	}
	switch right := n.Right.(type) {
	case *ast.Literal:
		switch n.Operator.Value {
		case "=":
			return fmt.Sprintf("SET %s %s", left.AddrAsStr(), right.Value), nil
		case "+=":
			return fmt.Sprintf("ADDC %s %s", left.AddrAsStr(), right.Value), nil
		}
	case *ast.Identifier:
		rv, err := ns.Get(right.Value)
		if err != nil {
			return "", err
		}
		switch n.Operator.Value {
		case "=":
			return fmt.Sprintf("MOV %s %s", left.AddrAsStr(), rv.AddrAsStr()), nil
		case "+=":
			return fmt.Sprintf("ADD %s %s", left.AddrAsStr(), rv.AddrAsStr()), nil
		}
	}
	return "", errors.Errorf("unsupported assignment %s %s %v", n.Left.Value, n.Operator.Value, n.Right)
}

// genPrint lowers a Print node to the VM's single byte-emitting
// instructions: OUT for a variable's current value, OUTC for a literal.
// spec.md names Print in the AST but its codegen table is silent on it;
// OUT/OUTC is the direct reading of "Print | value | emit one byte".
func genPrint(n *ast.Print, ns *namespace.Namespace) (string, error) {
	switch v := n.Value.(type) {
	case *ast.Identifier:
		addr, err := ns.Get(v.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("OUT %s", addr.AddrAsStr()), nil
	case *ast.Literal:
		return fmt.Sprintf("OUTC %s", v.Value), nil
	default:
		return "", errors.Errorf("print operand must be an identifier or literal, got %T", n.Value)
	}
}

// genExpr generates code for a general Expression node and returns the
// address its resulting value lives at — the explicit return the
// generator relies on in place of an implicit "lowest free address"
// convention.
func genExpr(e *ast.Expression, ns *namespace.Namespace) ([]string, int, error) {
	if e.Operator.Value == "=" {
		return genAssign(e, ns)
	}
	return genArith(e, ns)
}

func genAssign(e *ast.Expression, ns *namespace.Namespace) ([]string, int, error) {
	left, ok := e.Left.(*ast.Identifier)
	if !ok {
		return nil, 0, errors.Errorf("can only assign to identifiers, got %T", e.Left)
	}
	lv, err := ns.Get(left.Value)
	if err != nil {
		return nil, 0, err
	}

	switch right := e.Right.(type) {
	case *ast.Identifier:
		rv, err := ns.Get(right.Value)
		if err != nil {
			return nil, 0, err
		}
		return []string{fmt.Sprintf("MOV %s %s", lv.AddrAsStr(), rv.AddrAsStr())}, lv.Addr, nil

	case *ast.Literal:
		return []string{fmt.Sprintf("SET %s %s", lv.AddrAsStr(), right.Value)}, lv.Addr, nil

	case *ast.Expression:
		lines, addr, err := genExpr(right, ns)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, fmt.Sprintf("MOV %s %s", lv.AddrAsStr(), namespace.AddrAsStr(addr)))
		return lines, lv.Addr, nil

	default:
		return nil, 0, errors.Errorf("invalid right-hand side %T in assignment", e.Right)
	}
}

// genArith handles '+', '-', '*', '/'. It evaluates the left operand
// into a scratch address (reusing a nested call's own returned address
// rather than re-deriving one when the left side is itself an
// Expression), then combines the right operand into that same address.
func genArith(e *ast.Expression, ns *namespace.Namespace) ([]string, int, error) {
	instrs, ok := exprInstrs[e.Operator.Value]
	if !ok {
		return nil, 0, errors.Errorf("unsupported operator %q", e.Operator.Value)
	}
	addrInstr, constInstr := instrs[0], instrs[1]

	var lines []string
	var dest int

	switch left := e.Left.(type) {
	case *ast.Identifier:
		lv, err := ns.Get(left.Value)
		if err != nil {
			return nil, 0, err
		}
		scratch, err := ns.AddScratch()
		if err != nil {
			return nil, 0, err
		}
		dest = scratch.Addr
		lines = append(lines, fmt.Sprintf("MOV %s %s", scratch.AddrAsStr(), lv.AddrAsStr()))

	case *ast.Literal:
		scratch, err := ns.AddScratch()
		if err != nil {
			return nil, 0, err
		}
		dest = scratch.Addr
		lines = append(lines, fmt.Sprintf("SET %s %s", scratch.AddrAsStr(), left.Value))

	case *ast.Expression:
		subLines, subAddr, err := genExpr(left, ns)
		if err != nil {
			return nil, 0, err
		}
		lines = subLines
		dest = subAddr

	default:
		return nil, 0, errors.Errorf("invalid left-hand side %T in expression", e.Left)
	}

	switch right := e.Right.(type) {
	case *ast.Identifier:
		rv, err := ns.Get(right.Value)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", addrInstr, namespace.AddrAsStr(dest), rv.AddrAsStr()))

	case *ast.Literal:
		lines = append(lines, fmt.Sprintf("%s %s %s", constInstr, namespace.AddrAsStr(dest), right.Value))

	case *ast.Expression:
		subLines, subAddr, err := genExpr(right, ns)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, subLines...)
		lines = append(lines, fmt.Sprintf("%s %s %s", addrInstr, namespace.AddrAsStr(dest), namespace.AddrAsStr(subAddr)))

	default:
		return nil, 0, errors.Errorf("invalid right-hand side %T in expression", e.Right)
	}

	return lines, dest, nil
}
