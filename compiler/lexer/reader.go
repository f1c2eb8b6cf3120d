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

import "github.com/pkg/errors"

// ErrEndOfFile is returned by ReadToken, PeekToken, and
// ReadUntilSeparator once every token has been consumed. It is a
// sentinel, not a parse error: a driver loop checks for it with
// errors.Is to know when to stop.
var ErrEndOfFile = errors.New("lexer: end of file")

// Reader is a cursor over a token list produced by tokenizing a
// complete source text up front.
type Reader struct {
	tokens []string
	index  int
}

// NewReader tokenizes src in full and returns a Reader positioned at
// its first token.
func NewReader(src string) (*Reader, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Reader{tokens: tokens}, nil
}

// ReadToken returns the next token and advances the cursor past it. If
// skipSeparators is true, leading ';'/'\n' tokens are consumed and
// discarded first.
func (r *Reader) ReadToken(skipSeparators bool) (string, error) {
	for skipSeparators && r.index < len(r.tokens) && isSeparator(rune(r.tokens[r.index][0])) {
		r.index++
	}
	if r.index >= len(r.tokens) {
		return "", ErrEndOfFile
	}
	tok := r.tokens[r.index]
	r.index++
	return tok, nil
}

// PeekToken is ReadToken without advancing the cursor.
func (r *Reader) PeekToken(skipSeparators bool) (string, error) {
	i := r.index
	for skipSeparators && i < len(r.tokens) && isSeparator(rune(r.tokens[i][0])) {
		i++
	}
	if i >= len(r.tokens) {
		return "", ErrEndOfFile
	}
	return r.tokens[i], nil
}

// ReadUntilSeparator reads and returns every token up to (but not
// including) the next separator token, consuming them all. It never
// skips leading separators itself; callers that want that consume them
// with ReadToken first (PeekToken does not move the cursor).
func (r *Reader) ReadUntilSeparator() ([]string, error) {
	var out []string
	for {
		tok, err := r.PeekToken(false)
		if err != nil {
			return nil, err
		}
		if isSeparator(rune(tok[0])) {
			return out, nil
		}
		tok, _ = r.ReadToken(false)
		out = append(out, tok)
	}
}
