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

package namespace_test

import (
	"testing"

	"github.com/miracade/lens/compiler/namespace"
)

func TestAddIdentifierPicksLowestFreeAddress(t *testing.T) {
	ns := namespace.New(nil)
	a, err := ns.AddIdentifier("x", "int")
	if err != nil {
		t.Fatal(err)
	}
	if a.Addr != 0 {
		t.Errorf("first var addr = %d, want 0", a.Addr)
	}
	b, err := ns.AddIdentifier("y", "int")
	if err != nil {
		t.Fatal(err)
	}
	if b.Addr != 1 {
		t.Errorf("second var addr = %d, want 1", b.Addr)
	}
}

func TestAddrAsStr(t *testing.T) {
	cases := []struct {
		addr int
		want string
	}{
		{0, "@A"},
		{25, "@Z"},
		{26, "26"},
		{63, "63"},
	}
	for _, c := range cases {
		if got := namespace.AddrAsStr(c.addr); got != c.want {
			t.Errorf("AddrAsStr(%d) = %q, want %q", c.addr, got, c.want)
		}
	}
}

func TestContainsAndGet(t *testing.T) {
	ns := namespace.New(nil)
	if ns.Contains("x") {
		t.Fatal("empty namespace should not contain x")
	}
	if _, err := ns.Get("x"); err == nil {
		t.Fatal("expected an error looking up an unbound name")
	}
	if _, err := ns.AddIdentifier("x", "int"); err != nil {
		t.Fatal(err)
	}
	if !ns.Contains("x") {
		t.Fatal("namespace should contain x after AddIdentifier")
	}
	v, err := ns.Get("x")
	if err != nil || v.Addr != 0 {
		t.Fatalf("Get(x) = %+v, %v; want addr 0, nil", v, err)
	}
}

func TestChildNamespaceCopiesAndIsolates(t *testing.T) {
	parent := namespace.New(nil)
	if _, err := parent.AddIdentifier("x", "int"); err != nil {
		t.Fatal(err)
	}
	child := namespace.New(parent)
	if !child.Contains("x") {
		t.Fatal("child should inherit parent's bindings")
	}
	if _, err := child.AddIdentifier("y", "int"); err != nil {
		t.Fatal(err)
	}
	if parent.Contains("y") {
		t.Error("additions to a child must not propagate to the parent")
	}
}

func TestAddScratchNeverCollides(t *testing.T) {
	ns := namespace.New(nil)
	seen := map[int]bool{}
	for i := 0; i < 10; i++ {
		v, err := ns.AddScratch()
		if err != nil {
			t.Fatal(err)
		}
		if seen[v.Addr] {
			t.Fatalf("AddScratch reused address %d", v.Addr)
		}
		seen[v.Addr] = true
	}
}

func TestAddIdentifierExhaustion(t *testing.T) {
	ns := namespace.New(nil)
	for i := 0; i < namespace.AddressSpace; i++ {
		if _, err := ns.AddScratch(); err != nil {
			t.Fatalf("unexpected exhaustion at %d: %v", i, err)
		}
	}
	if _, err := ns.AddScratch(); err == nil {
		t.Fatal("expected an error once the address space is exhausted")
	}
}
