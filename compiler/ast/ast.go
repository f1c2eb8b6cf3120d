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

// Package ast defines the tree produced by parsing source text.
//
// Block nesting ("is this node still accepting children") is tracked by
// an explicit stack of open containers held on Root, not by a mutable
// flag carried on every node. A node only needs that flag for as long as
// it is being built; modeling it as stack membership instead means a
// closed node can never accidentally be written to again, and the
// "innermost open node" lookup Root.Add performs is a slice index
// instead of a tree walk.
package ast

import (
	"fmt"
	"unicode"

	"github.com/pkg/errors"
)

// Node is any element of the tree. Leaf kinds (Comment, Literal,
// Identifier, ...) carry no children; container kinds additionally
// satisfy Container.
type Node interface{}

// Container is a Node that accepts children while it is open.
type Container interface {
	Add(Node)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
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

// Comment carries a comment's text verbatim, '#' included.
type Comment struct{ Value string }

// Literal is a numeric literal token.
type Literal struct{ Value string }

// Identifier is a bound or to-be-bound variable name.
type Identifier struct{ Value string }

// NewIdentifier validates that value is alphabetic before wrapping it.
func NewIdentifier(value string) (*Identifier, error) {
	if !isAlpha(value) {
		return nil, errors.Errorf("identifier %q is not alphabetic", value)
	}
	return &Identifier{Value: value}, nil
}

// Type names a declared variable's type, e.g. "int".
type Type struct{ Value string }

// VarDef declares a variable without initializing it.
type VarDef struct {
	TypeName   *Type
	Identifier *Identifier
}

// Operator is one expression operator token: "=", "+", "-", "*", or "/".
type Operator struct{ Value string }

// Expression is a binary operation produced by the expression builder.
// Left and Right are each a *Literal, *Identifier, or *Expression.
type Expression struct {
	Left     Node
	Operator *Operator
	Right    Node
}

// String renders the expression the way the compiler's pretty-printer
// comment does: "(left op right)", recursively.
func (e *Expression) String() string {
	return fmt.Sprintf("(%s %s %s)", nodeText(e.Left), e.Operator.Value, nodeText(e.Right))
}

func nodeText(n Node) string {
	switch v := n.(type) {
	case *Literal:
		return v.Value
	case *Identifier:
		return v.Value
	case *Expression:
		return v.String()
	default:
		return fmt.Sprintf("%v", n)
	}
}

// BinOp is a simple two-operand form the codegen dispatch table handles
// directly (e.g. "x = 1", "x += y"), as opposed to a general Expression.
type BinOp struct {
	Left     *Identifier
	Operator *Operator
	Right    Node
}

// If is a conditional block. Its condition may be a *Literal or an
// *Identifier.
type If struct {
	Condition Node
	Body      []Node
}

// NewIf validates that condition is numeric or alphabetic.
func NewIf(condition string) (*If, error) {
	switch {
	case isNumeric(condition):
		return &If{Condition: &Literal{Value: condition}}, nil
	case isAlpha(condition):
		id, _ := NewIdentifier(condition)
		return &If{Condition: id}, nil
	default:
		return nil, errors.Errorf("condition %q is not alphabetic or numeric", condition)
	}
}

// Add implements Container.
func (n *If) Add(child Node) { n.Body = append(n.Body, child) }

// While is a loop block. Its condition must be an *Identifier.
type While struct {
	Condition Node
	Body      []Node
}

// NewWhile validates that condition is alphabetic.
func NewWhile(condition string) (*While, error) {
	if !isAlpha(condition) {
		return nil, errors.Errorf("condition %q is not alphabetic", condition)
	}
	id, _ := NewIdentifier(condition)
	return &While{Condition: id}, nil
}

// Add implements Container.
func (n *While) Add(child Node) { n.Body = append(n.Body, child) }

// Print emits a single Literal or Identifier operand.
type Print struct{ Value Node }

// FunctionDef is a named, parameterless-at-the-VM-level function body.
// Params is retained from the source for diagnostics; the VM's calling
// convention (see package codegen) does not pass arguments through it.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Node
}

// Add implements Container.
func (n *FunctionDef) Add(child Node) { n.Body = append(n.Body, child) }

// Root is the top of the tree and the parser's single entry point for
// adding and closing nodes.
type Root struct {
	Body  []Node
	stack []Container
}

// NewRoot returns an empty Root with no open containers.
func NewRoot() *Root { return &Root{} }

// Add appends node to the innermost open container, or to the root body
// if nothing is open.
func (r *Root) Add(node Node) {
	if len(r.stack) > 0 {
		r.stack[len(r.stack)-1].Add(node)
		return
	}
	r.Body = append(r.Body, node)
}

// Open adds container like Add, then pushes it as the new innermost open
// node so subsequent Add calls land inside it until a matching Close.
func (r *Root) Open(container Container) {
	r.Add(container)
	r.stack = append(r.stack, container)
}

// Close pops the innermost open container. It errors if nothing is open.
func (r *Root) Close() error {
	if len(r.stack) == 0 {
		return errors.New("unexpected '}': no open block to close")
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Depth reports how many containers are currently open, for diagnostics
// (e.g. detecting an unclosed block at end of input).
func (r *Root) Depth() int { return len(r.stack) }
