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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/miracade/lens/vm"
)

const maxErrors = 10

// AsmError is one assembler diagnostic, carrying the source position it
// was raised at.
type AsmError struct {
	Pos scanner.Position
	Msg string
}

func (e AsmError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// ErrAsm collects every diagnostic raised while assembling a single file.
// Assemble returns it (rather than the first error alone) so that a
// caller — or a test — can report every mistake in a bad listing at once.
type ErrAsm []AsmError

func (e ErrAsm) Error() string {
	lines := make([]string, len(e))
	for i, d := range e {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// isMacroOrIdentRune lets '@', '&', '+', and '-' stick to an identifier
// token so that "@LEN+3" and "&MAIN" each scan as a single word instead of
// being split at the scanner's usual symbol boundaries.
func isMacroOrIdentRune(ch rune, i int) bool {
	if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
		return true
	}
	if i == 0 && (ch == '@' || ch == '&') {
		return true
	}
	return ch == '+' || ch == '-'
}

type assembler struct {
	s      scanner.Scanner
	out    []byte
	macros map[string]int
	errs   ErrAsm
}

func newAssembler(name string, r io.Reader) *assembler {
	a := &assembler{
		out: make([]byte, vm.OffsetCodeStart),
		macros: map[string]int{
			"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 5, "G": 6, "H": 7,
			"I": 8, "J": 9, "K": 10, "L": 11, "M": 12, "N": 13, "O": 14, "P": 15,
			"Q": 16, "R": 17, "S": 18, "T": 19, "U": 20, "V": 21, "W": 22, "X": 23,
			"Y": 24, "Z": 25,
		},
	}
	a.s.Init(r)
	a.s.Filename = name
	a.s.Mode = scanner.ScanIdents | scanner.ScanInts
	a.s.IsIdentRune = isMacroOrIdentRune
	a.s.Error = func(s *scanner.Scanner, msg string) { a.error(msg) }
	return a
}

func (a *assembler) abort() bool { return len(a.errs) >= maxErrors }

func (a *assembler) error(msg string) {
	pos := a.s.Position
	if !pos.IsValid() {
		pos = a.s.Pos()
	}
	a.errs = append(a.errs, AsmError{pos, msg})
}

func (a *assembler) emit(b byte) { a.out = append(a.out, b) }

// resolveMacroRef parses "@NAME", "@NAME+N", or "@NAME-N" and returns the
// resolved byte value.
func (a *assembler) resolveMacroRef(word string) (int, bool) {
	body := word[1:]
	name, sign, offset := body, 0, 0
	if idx := strings.IndexByte(body, '+'); idx >= 0 {
		name, sign = body[:idx], 1
		n, err := strconv.Atoi(body[idx+1:])
		if err != nil {
			a.error("bad macro offset in " + strconv.Quote(word))
			return 0, false
		}
		offset = n
	} else if idx := strings.IndexByte(body, '-'); idx >= 0 {
		name, sign = body[:idx], -1
		n, err := strconv.Atoi(body[idx+1:])
		if err != nil {
			a.error("bad macro offset in " + strconv.Quote(word))
			return 0, false
		}
		offset = n
	}
	v, ok := a.macros[name]
	if !ok {
		a.error("undefined macro " + strconv.Quote(name))
		return 0, false
	}
	return v + sign*offset, true
}

// parse runs the single left-to-right assembly pass described in doc.go.
func (a *assembler) parse() {
	for tok := a.s.Scan(); !a.abort() && tok != scanner.EOF; tok = a.s.Scan() {
		if tok == '#' {
			// a comment runs from '#' to the end of the line.
			for {
				r := a.s.Next()
				if r == '\n' || r == scanner.EOF {
					break
				}
			}
			continue
		}
		word := a.s.TokenText()
		a.macros["LEN"] = len(a.out)

		switch {
		case strings.HasPrefix(word, "&"):
			a.macros[word[1:]] = len(a.out)

		case strings.HasPrefix(word, "@"):
			if v, ok := a.resolveMacroRef(word); ok {
				a.emit(byte(((v % 256) + 256) % 256))
			}

		default:
			if op, ok := vm.Lookup(word); ok {
				a.emit(byte(op))
				continue
			}
			n, err := strconv.Atoi(word)
			if err != nil {
				a.error("unrecognized token " + strconv.Quote(word))
				continue
			}
			a.emit(byte(((n % 256) + 256) % 256))
		}
	}
}

// Assemble compiles the assembly text read from r into a 256-byte image.
// name is used only to tag error positions (e.g. the source file name).
//
// On success, image[vm.OffsetIP] is set to the address bound to the MAIN
// macro and image[vm.OffsetSP] is set to the next 16-byte boundary at or
// above the end of the assembled code, per the toolchain's image format.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	a := newAssembler(name, r)
	a.parse()

	var img vm.Image
	if len(a.errs) > 0 {
		return img, a.errs
	}

	main, ok := a.macros["MAIN"]
	if !ok {
		return img, ErrAsm{{a.s.Position, "no &MAIN label defined"}}
	}
	if main < 0 || main > 255 {
		return img, ErrAsm{{a.s.Position, "MAIN label out of range"}}
	}

	n := len(a.out)
	sp := n
	if n%16 != 0 {
		sp = n + (16 - n%16)
	}
	if sp > 255 {
		return img, ErrAsm{{a.s.Position, "program too large: stack pointer would exceed image bounds"}}
	}

	copy(img[:], a.out)
	img[vm.OffsetIP] = byte(main)
	img[vm.OffsetSP] = byte(sp)
	return img, nil
}
