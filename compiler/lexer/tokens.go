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

package lexer

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// SymbolChars is the set of runes that form one-character symbol tokens.
const SymbolChars = "#+-*/=(){}"

// LongSymbols are the only two-character symbol tokens the lexer
// recognizes; a symbol pair not on this list is emitted as two tokens.
var LongSymbols = []string{"++", "+="}

// Separators are the runes that always end the current token and are
// themselves emitted as a single-rune token.
const Separators = ";\n"

func isLongSymbol(s string) bool {
	for _, l := range LongSymbols {
		if s == l {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool { return strings.ContainsRune(Separators, r) }
func isSymbol(r rune) bool    { return strings.ContainsRune(SymbolChars, r) }

// tokenize runs the full character-class state machine over src and
// returns the flat ordered token list.
func tokenize(src string) ([]string, error) {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Once a token starts with '#', everything up to the next
		// separator belongs to it, regardless of character class.
		if cur.Len() > 0 && cur.String()[0] == '#' && !isSeparator(r) {
			cur.WriteRune(r)
			continue
		}

		switch {
		case unicode.IsLetter(r):
			if cur.Len() == 0 || isAlpha(cur.String()) {
				cur.WriteRune(r)
			} else {
				flush()
				cur.WriteRune(r)
			}

		case isSeparator(r):
			flush()
			tokens = append(tokens, string(r))

		case unicode.IsSpace(r):
			flush()

		case unicode.IsDigit(r):
			if cur.Len() == 0 || isNumeric(cur.String()) {
				cur.WriteRune(r)
			} else {
				flush()
				cur.WriteRune(r)
			}

		case isSymbol(r):
			switch {
			case cur.Len() == 0:
				cur.WriteRune(r)
			case isLongSymbol(cur.String() + string(r)):
				cur.WriteRune(r)
			default:
				flush()
				cur.WriteRune(r)
			}

		default:
			return nil, errors.Errorf("illegal character %q", r)
		}
	}
	flush()
	return tokens, nil
}

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
