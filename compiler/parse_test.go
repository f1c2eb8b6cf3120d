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

package compiler_test

import (
	"testing"

	"github.com/miracade/lens/compiler"
	"github.com/miracade/lens/compiler/ast"
)

func TestParseVarDefAndAssign(t *testing.T) {
	root, err := compiler.Parse("int x\nx = 5\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Body) != 2 {
		t.Fatalf("len(root.Body) = %d, want 2", len(root.Body))
	}
	if _, ok := root.Body[0].(*ast.VarDef); !ok {
		t.Errorf("root.Body[0] type = %T, want *ast.VarDef", root.Body[0])
	}
	bin, ok := root.Body[1].(*ast.BinOp)
	if !ok {
		t.Fatalf("root.Body[1] type = %T, want *ast.BinOp", root.Body[1])
	}
	if bin.Left.Value != "x" || bin.Operator.Value != "=" {
		t.Errorf("bin = %+v, want left x, op =", bin)
	}
	if lit, ok := bin.Right.(*ast.Literal); !ok || lit.Value != "5" {
		t.Errorf("bin.Right = %+v, want Literal 5", bin.Right)
	}
}

func TestParseGeneralExpressionFallsThroughToExprBuild(t *testing.T) {
	root, err := compiler.Parse("int a\nint b\nint r\nr = a + b * 2\n")
	if err != nil {
		t.Fatal(err)
	}
	e, ok := root.Body[3].(*ast.Expression)
	if !ok {
		t.Fatalf("root.Body[3] type = %T, want *ast.Expression", root.Body[3])
	}
	if got, want := e.String(), "(r = (a + (b * 2)))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseIfAndWhileBlocks(t *testing.T) {
	src := "int flag\n" +
		"if flag {\n" +
		"int y\n" +
		"y = 1\n" +
		"}\n" +
		"while flag {\n" +
		"y += 1\n" +
		"}\n"
	root, err := compiler.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Body) != 3 {
		t.Fatalf("len(root.Body) = %d, want 3", len(root.Body))
	}
	ifNode, ok := root.Body[1].(*ast.If)
	if !ok {
		t.Fatalf("root.Body[1] type = %T, want *ast.If", root.Body[1])
	}
	if len(ifNode.Body) != 2 {
		t.Errorf("len(ifNode.Body) = %d, want 2", len(ifNode.Body))
	}
	whileNode, ok := root.Body[2].(*ast.While)
	if !ok {
		t.Fatalf("root.Body[2] type = %T, want *ast.While", root.Body[2])
	}
	if len(whileNode.Body) != 1 {
		t.Errorf("len(whileNode.Body) = %d, want 1", len(whileNode.Body))
	}
}

func TestParseFunctionDefCollectsParams(t *testing.T) {
	root, err := compiler.Parse("def add ( a b ) {\nprint a\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	fn, ok := root.Body[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("root.Body[0] type = %T, want *ast.FunctionDef", root.Body[0])
	}
	if fn.Name != "add" {
		t.Errorf("fn.Name = %q, want %q", fn.Name, "add")
	}
	if got, want := fn.Params, []string{"a", "b"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("fn.Params = %v, want %v", got, want)
	}
}

func TestParsePrintLiteralAndIdentifier(t *testing.T) {
	root, err := compiler.Parse("int x\nx = 9\nprint x\nprint 42\n")
	if err != nil {
		t.Fatal(err)
	}
	p1, ok := root.Body[2].(*ast.Print)
	if !ok {
		t.Fatalf("root.Body[2] type = %T, want *ast.Print", root.Body[2])
	}
	if _, ok := p1.Value.(*ast.Identifier); !ok {
		t.Errorf("p1.Value type = %T, want *ast.Identifier", p1.Value)
	}
	p2, ok := root.Body[3].(*ast.Print)
	if !ok {
		t.Fatalf("root.Body[3] type = %T, want *ast.Print", root.Body[3])
	}
	if lit, ok := p2.Value.(*ast.Literal); !ok || lit.Value != "42" {
		t.Errorf("p2.Value = %+v, want Literal 42", p2.Value)
	}
}

func TestParseUnclosedBlockErrors(t *testing.T) {
	if _, err := compiler.Parse("if x {\nint y\n"); err == nil {
		t.Fatal("expected an error for an unclosed block")
	}
}

func TestParseUnexpectedCloseBraceErrors(t *testing.T) {
	if _, err := compiler.Parse("}\n"); err == nil {
		t.Fatal("expected an error for an unmatched '}'")
	}
}

func TestCompileFunctionMain(t *testing.T) {
	src := "def main ( ) {\nint x\nx = 3\nprint x\n}\n"
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	want := "&MAIN\n    SET @A 3\n    OUT @A\n    \nEND\n"
	if out != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", out, want)
	}
}

func TestCompileCommentIsPreserved(t *testing.T) {
	out, err := compiler.Compile("# a lone comment\n")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "# a lone comment\n"; got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}
