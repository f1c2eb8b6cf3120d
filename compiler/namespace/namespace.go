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

// Package namespace is the compiler's single authority for variable
// placement: it binds names to addresses in [0, AddressSpace) and
// renders addresses in the assembler's @A..@Z macro notation.
package namespace

import (
	"fmt"

	"github.com/pkg/errors"
)

// AddressSpace is the default range of addresses a Namespace allocates
// from: enough to cover every register macro (@A..@Z) plus generous
// scratch room. Addresses are rel-addrs: at run time the machine adds
// SP to each, so a variable bound to addr lives at byte SP+addr.
const AddressSpace = 64

// Var is one name bound to an address.
type Var struct {
	Name string
	Type string
	Addr int
}

// AddrAsStr renders v's address the way AddrAsStr does.
func (v Var) AddrAsStr() string { return AddrAsStr(v.Addr) }

// Namespace is an ordered set of bindings. A child built with New(parent)
// copies the parent's bindings by value, so additions or removals in the
// child never propagate back to the parent.
type Namespace struct {
	vars []Var
}

// New returns a Namespace seeded from parent's current bindings, or an
// empty one if parent is nil.
func New(parent *Namespace) *Namespace {
	n := &Namespace{}
	if parent != nil {
		n.vars = append(n.vars, parent.vars...)
	}
	return n
}

// AddrAsStr renders addresses 0..25 as "@A".."@Z", the macro syntax the
// assembler's pre-seeded register table understands, and any other
// address as a plain decimal string.
func AddrAsStr(addr int) string {
	if addr >= 0 && addr < 26 {
		return "@" + string(rune('A'+addr))
	}
	return fmt.Sprintf("%d", addr)
}

// Contains reports whether name is bound.
func (n *Namespace) Contains(name string) bool {
	for _, v := range n.vars {
		if v.Name == name {
			return true
		}
	}
	return false
}

// Get looks up a bound name.
func (n *Namespace) Get(name string) (Var, error) {
	for _, v := range n.vars {
		if v.Name == name {
			return v, nil
		}
	}
	return Var{}, errors.Errorf("%q is not defined", name)
}

func (n *Namespace) addressOccupied(addr int) bool {
	for _, v := range n.vars {
		if v.Addr == addr {
			return true
		}
	}
	return false
}

// GetFreeAddresses returns every unoccupied address in [0, checkDist).
func (n *Namespace) GetFreeAddresses(checkDist int) []int {
	var free []int
	for i := 0; i < checkDist; i++ {
		if !n.addressOccupied(i) {
			free = append(free, i)
		}
	}
	return free
}

// AddIdentifier binds name at the lowest free address in [0, AddressSpace)
// and returns the new binding.
func (n *Namespace) AddIdentifier(name, typ string) (Var, error) {
	free := n.GetFreeAddresses(AddressSpace)
	if len(free) == 0 {
		return Var{}, errors.Errorf("no free address for %q: namespace exhausted", name)
	}
	v := Var{Name: name, Type: typ, Addr: free[0]}
	n.vars = append(n.vars, v)
	return v, nil
}

// AddScratch allocates an anonymous temporary binding at the lowest free
// address. Scratch names are never user-visible (they can't collide with
// a source identifier, which is always alphabetic) and are never reused,
// so every call during codegen is guaranteed a distinct address.
func (n *Namespace) AddScratch() (Var, error) {
	return n.AddIdentifier(fmt.Sprintf("$%d", len(n.vars)), "tmp")
}
