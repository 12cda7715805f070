// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical tokens of the vector drawing
// language, along with source positions (cursors) and spans.
package token

import "fmt"

// Tokens is the kind of a lexical token.
type Tokens int32

const (
	// Ident is a command name: a run of letters, digits and underscores.
	Ident Tokens = iota

	// Number is a numeric literal, parsed as float64.
	Number

	// Comment is a // line or /* block */ comment.
	Comment

	// Comma separates a command name from its arguments,
	// and follows every argument.
	Comma

	// TokensN is the number of token kinds.
	TokensN
)

var tokensNames = [TokensN]string{"Ident", "Number", "Comment", "Comma"}

func (tk Tokens) String() string {
	if tk < 0 || tk >= TokensN {
		return fmt.Sprintf("Tokens(%d)", int32(tk))
	}
	return tokensNames[tk]
}

// Token is one lexed token. Text holds the source text for
// Ident and Comment tokens, and Number the value for Number tokens.
type Token struct {
	Token  Tokens
	Text   string
	Number float64

	// Span is the half-open source region [Span.St, Span.Ed) of the token.
	Span Span
}

func (tk Token) String() string {
	switch tk.Token {
	case Number:
		return fmt.Sprintf("%v(%g) at %v", tk.Token, tk.Number, tk.Span.St)
	case Comma:
		return fmt.Sprintf("%v at %v", tk.Token, tk.Span.St)
	}
	return fmt.Sprintf("%v(%q) at %v", tk.Token, tk.Text, tk.Span.St)
}
