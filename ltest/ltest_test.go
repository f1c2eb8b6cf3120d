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

package ltest_test

import (
	"testing"

	"github.com/miracade/lens/ltest"
)

func TestParseSplitsOnHeaders(t *testing.T) {
	text := ">>> a outputs 1\ndef main ( ) {\nprint 1\n}\n" +
		">>> b fails\nx = 1\n"
	cases, err := ltest.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	if cases[0].Title != "a" || cases[0].Verb != ltest.VerbOutputs {
		t.Errorf("cases[0] = %+v", cases[0])
	}
	if got, want := cases[0].Args, []byte{1}; len(got) != 1 || got[0] != want[0] {
		t.Errorf("cases[0].Args = %v, want %v", got, want)
	}
	if cases[1].Title != "b" || cases[1].Verb != ltest.VerbFails {
		t.Errorf("cases[1] = %+v", cases[1])
	}
}

func TestParseRejectsUnknownVerb(t *testing.T) {
	if _, err := ltest.Parse(">>> a bogus\nprint 1\n"); err == nil {
		t.Fatal("expected an error for an unknown verb")
	}
}

func TestParseRejectsMissingVerb(t *testing.T) {
	if _, err := ltest.Parse(">>> a\nprint 1\n"); err == nil {
		t.Fatal("expected an error for a header with no verb")
	}
}

func TestRunCaseOutputs(t *testing.T) {
	c := ltest.Case{
		Title: "direct",
		Verb:  ltest.VerbOutputs,
		Args:  []byte{9},
		Source: "def main ( ) {\n" +
			"print 9\n" +
			"}\n",
	}
	res := ltest.RunCase(c)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if !res.Passed {
		t.Errorf("RunCase() did not pass: %s (got %v)", res.Detail, res.Got)
	}
}

func TestRunCaseOutputsMismatchFails(t *testing.T) {
	c := ltest.Case{
		Title: "wrong",
		Verb:  ltest.VerbOutputs,
		Args:  []byte{1},
		Source: "def main ( ) {\n" +
			"print 9\n" +
			"}\n",
	}
	res := ltest.RunCase(c)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Passed {
		t.Fatal("expected a mismatch, got a pass")
	}
}

func TestRunCaseConcludes(t *testing.T) {
	c := ltest.Case{
		Title: "tail",
		Verb:  ltest.VerbConcludes,
		Args:  []byte{7},
		Source: "def main ( ) {\n" +
			"int x\n" +
			"x = 7\n" +
			"}\n",
	}
	res := ltest.RunCase(c)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if !res.Passed {
		t.Errorf("RunCase() did not pass: %s (got %v)", res.Detail, res.Got)
	}
}

func TestRunCaseFailsVerbWantsAnError(t *testing.T) {
	c := ltest.Case{
		Title: "undeclared",
		Verb:  ltest.VerbFails,
		Source: "def main ( ) {\n" +
			"x = 1\n" +
			"}\n",
	}
	res := ltest.RunCase(c)
	if !res.Passed {
		t.Errorf("RunCase() did not pass: %s", res.Detail)
	}
}

func TestRunCaseFailsVerbRejectsCleanProgram(t *testing.T) {
	c := ltest.Case{
		Title: "clean",
		Verb:  ltest.VerbFails,
		Source: "def main ( ) {\n" +
			"print 1\n" +
			"}\n",
	}
	res := ltest.RunCase(c)
	if res.Passed {
		t.Fatal("expected fails verb to reject a program that compiles and assembles cleanly")
	}
}

func TestRunFileCorpus(t *testing.T) {
	ltest.RunFile(t, "testdata/basic.ltest")
}
