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

package lexer_test

import (
	"testing"

	"github.com/miracade/lens/compiler/lexer"
)

func tokensOf(t *testing.T, src string) []string {
	t.Helper()
	r, err := lexer.NewReader(src)
	if err != nil {
		t.Fatalf("NewReader(%q): %v", src, err)
	}
	var got []string
	for {
		tok, err := r.ReadToken(false)
		if err == lexer.ErrEndOfFile {
			return got
		}
		if err != nil {
			t.Fatalf("ReadToken: %v", err)
		}
		got = append(got, tok)
	}
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeIdentifiersAndNumbers(t *testing.T) {
	got := tokensOf(t, "int x = 12;")
	want := []string{"int", "x", "=", "12", ";"}
	if !equalTokens(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenizeLongSymbols(t *testing.T) {
	got := tokensOf(t, "x++;y+=2;")
	want := []string{"x", "++", ";", "y", "+=", "2", ";"}
	if !equalTokens(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenizeShortSymbolNotMerged(t *testing.T) {
	// "-" followed by "-" is not a recognized long symbol, so it stays
	// two separate one-character tokens.
	got := tokensOf(t, "x--y")
	want := []string{"x", "-", "-", "y"}
	if !equalTokens(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenizeComment(t *testing.T) {
	got := tokensOf(t, "x = 1 # set x to one\ny = 2")
	want := []string{"x", "=", "1", "# set x to one", "\n", "y", "=", "2"}
	if !equalTokens(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenizeCommentConsumesSymbolsAndDigits(t *testing.T) {
	got := tokensOf(t, "#a+1 b2;c")
	want := []string{"#a+1 b2", ";", "c"}
	if !equalTokens(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := lexer.NewReader("x = $1")
	if err == nil {
		t.Fatal("expected a lexical error for '$'")
	}
}

func TestReadTokenSkipsSeparators(t *testing.T) {
	r, err := lexer.NewReader("x\n\n= 1")
	if err != nil {
		t.Fatal(err)
	}
	tok, err := r.ReadToken(true)
	if err != nil || tok != "x" {
		t.Fatalf("ReadToken = %q, %v; want x, nil", tok, err)
	}
	tok, err = r.ReadToken(true)
	if err != nil || tok != "=" {
		t.Fatalf("ReadToken = %q, %v; want =, nil (separators skipped)", tok, err)
	}
}

func TestPeekTokenDoesNotAdvance(t *testing.T) {
	r, err := lexer.NewReader("x = 1")
	if err != nil {
		t.Fatal(err)
	}
	peeked, err := r.PeekToken(true)
	if err != nil || peeked != "x" {
		t.Fatalf("PeekToken = %q, %v; want x, nil", peeked, err)
	}
	read, err := r.ReadToken(true)
	if err != nil || read != peeked {
		t.Fatalf("ReadToken after PeekToken = %q, %v; want %q, nil", read, err, peeked)
	}
}

func TestReadUntilSeparator(t *testing.T) {
	r, err := lexer.NewReader("x = 1 + 2;\ny = 3")
	if err != nil {
		t.Fatal(err)
	}
	toks, err := r.ReadUntilSeparator()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"x", "=", "1", "+", "2"}
	if !equalTokens(toks, want) {
		t.Errorf("ReadUntilSeparator = %v, want %v", toks, want)
	}
	sep, err := r.ReadToken(false)
	if err != nil || sep != ";" {
		t.Fatalf("next token = %q, %v; want ';', nil", sep, err)
	}
}

func TestReadTokenEndOfFile(t *testing.T) {
	r, err := lexer.NewReader("x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadToken(true); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadToken(true); err != lexer.ErrEndOfFile {
		t.Fatalf("ReadToken at EOF = %v, want ErrEndOfFile", err)
	}
}
