// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer reads the primitive tokens of the vector drawing
// language (identifiers, numbers, commas and comments) from source
// runes, tracking a row / column / offset cursor.
package lexer

import (
	"strconv"
	"unicode"

	"cogentcore.org/vegravis/token"
)

// State is the lexing state over one source text.
// The cursor only ever moves forward.
type State struct {

	// Src is the source being lexed.
	Src []rune

	// Cursor is the current position in Src.
	Cursor token.Cursor

	// Strict requires a literal comma in [State.ExpectComma],
	// instead of also accepting whitespace or comments as a separator.
	Strict bool
}

// NewState returns a new lexing state at the start of src.
func NewState(src string) *State {
	return &State{Src: []rune(src)}
}

// AtEof returns true if current position is at end of source
func (ls *State) AtEof() bool {
	return ls.Cursor.Pos >= len(ls.Src)
}

// Rune gets the rune at given offset from current position,
// returning false if out of range
func (ls *State) Rune(off int) (rune, bool) {
	idx := ls.Cursor.Pos + off
	if idx < 0 || idx >= len(ls.Src) {
		return -1, false
	}
	return ls.Src[idx], true
}

// Next advances the cursor past the current rune.
func (ls *State) Next() {
	if ls.AtEof() {
		return
	}
	ls.Cursor = ls.Cursor.Next(ls.Src[ls.Cursor.Pos])
}

func (ls *State) span(st token.Cursor) token.Span {
	return token.Span{St: st, Ed: ls.Cursor}
}

// ReadIdentifier reads a run of letters, digits and underscores,
// which may be empty.
func (ls *State) ReadIdentifier() token.Token {
	st := ls.Cursor
	for !ls.AtEof() {
		r := ls.Src[ls.Cursor.Pos]
		if !IsLetterOrDigit(r) {
			break
		}
		ls.Next()
	}
	return token.Token{Token: token.Ident, Text: string(ls.Src[st.Pos:ls.Cursor.Pos]), Span: ls.span(st)}
}

// ReadNumber reads a run of digits, minus signs and decimal points
// and parses it as a float64. A literal that does not parse
// (e.g. "1.2.3", or an empty one) is an error at its start.
func (ls *State) ReadNumber() (token.Token, error) {
	st := ls.Cursor
	for !ls.AtEof() {
		r := ls.Src[ls.Cursor.Pos]
		if !(r == '-' || r == '.' || IsDigit(r)) {
			break
		}
		ls.Next()
	}
	lit := string(ls.Src[st.Pos:ls.Cursor.Pos])
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token.Token{}, Errorf(st, "Invalid number '%s'", lit)
	}
	return token.Token{Token: token.Number, Text: lit, Number: n, Span: ls.span(st)}, nil
}

// SkipWhitespace skips over any whitespace, returning
// true if anything was skipped.
func (ls *State) SkipWhitespace() bool {
	st := ls.Cursor.Pos
	for !ls.AtEof() && unicode.IsSpace(ls.Src[ls.Cursor.Pos]) {
		ls.Next()
	}
	return ls.Cursor.Pos > st
}

// SkipComments repeatedly skips whitespace and comments until neither
// is found. It returns the last comment skipped, which is a zero token
// if there was none. An unterminated block comment is an error.
func (ls *State) SkipComments() (token.Token, error) {
	var last token.Token
	for {
		ls.SkipWhitespace()
		tok, ok, err := ls.readComment()
		if err != nil {
			return tok, err
		}
		if !ok {
			return last, nil
		}
		last = tok
	}
}

// readComment reads one comment starting at the current position,
// returning false if there is no comment here.
func (ls *State) readComment() (token.Token, bool, error) {
	r0, _ := ls.Rune(0)
	r1, _ := ls.Rune(1)
	if r0 != '/' || (r1 != '/' && r1 != '*') {
		return token.Token{}, false, nil
	}
	st := ls.Cursor
	ls.Next()
	ls.Next()
	if r1 == '/' {
		for !ls.AtEof() {
			r := ls.Src[ls.Cursor.Pos]
			ls.Next()
			if r == '\n' {
				break
			}
		}
	} else {
		closed := false
		for !ls.AtEof() {
			if r, _ := ls.Rune(0); r == '*' {
				if r, _ := ls.Rune(1); r == '/' {
					ls.Next()
					ls.Next()
					closed = true
					break
				}
			}
			ls.Next()
		}
		if !closed {
			return token.Token{}, false, Errorf(st, "Invalid comment")
		}
	}
	tok := token.Token{Token: token.Comment, Text: string(ls.Src[st.Pos:ls.Cursor.Pos]), Span: ls.span(st)}
	return tok, true, nil
}

// ExpectComma skips whitespace and comments and then consumes a comma,
// along with any whitespace and comments after it. The end of the
// source also ends a list. Unless [State.Strict] is set, whitespace or
// a comment is accepted in place of the comma, so a comma is only
// required where two tokens abut. A missing comma is an error at the
// position before anything was skipped.
func (ls *State) ExpectComma() (token.Token, error) {
	st := ls.Cursor
	if _, err := ls.SkipComments(); err != nil {
		return token.Token{}, err
	}
	skipped := ls.Cursor.Pos > st.Pos
	if ls.AtEof() {
		return token.Token{Token: token.Comma, Span: ls.span(st)}, nil
	}
	if ls.Src[ls.Cursor.Pos] != ',' {
		if skipped && !ls.Strict {
			return token.Token{Token: token.Comma, Span: ls.span(st)}, nil
		}
		return token.Token{}, Errorf(st, "Expected comma")
	}
	ls.Next()
	tok := token.Token{Token: token.Comma, Span: ls.span(st)}
	if _, err := ls.SkipComments(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// IsLetterOrDigit returns true if the rune may appear in an identifier.
func IsLetterOrDigit(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsDigit returns true if the rune is a decimal digit.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9' || r >= 0x80 && unicode.IsDigit(r)
}
