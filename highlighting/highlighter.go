// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the default highlighting style.
const DefaultStyle = "monokai"

// Highlighter performs syntax highlighting of drawing programs.
type Highlighter struct {

	// syntax highlighting style to use
	StyleName string

	// Syntax is the language being highlighted.
	Syntax *Syntax

	lexer chroma.Lexer
}

// New returns a new [Highlighter] for the syntax and style name.
// An empty style name uses [DefaultStyle].
func New(sy *Syntax, style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{StyleName: style, Syntax: sy, lexer: chroma.Coalesce(sy.Lexer())}
}

// Styles returns the names of the available highlighting styles.
func Styles() []string {
	return styles.Names()
}

// Style returns the chroma style, falling back on the chroma
// default style when the name is not known.
func (hi *Highlighter) Style() *chroma.Style {
	st, ok := styles.Registry[hi.StyleName]
	if !ok {
		slog.Error("highlighting style not found", "style", hi.StyleName)
		return styles.Fallback
	}
	return st
}

// Tokens returns the highlighting tokens for the source.
func (hi *Highlighter) Tokens(src string) ([]chroma.Token, error) {
	it, err := hi.lexer.Tokenise(nil, src)
	if err != nil {
		return nil, err
	}
	return it.Tokens(), nil
}

// Terminal writes the source to w with 256-color terminal escapes.
func (hi *Highlighter) Terminal(w io.Writer, src string) error {
	return hi.format(w, formatters.TTY256, src)
}

// HTML writes the source to w as a standalone HTML document
// with inline styles.
func (hi *Highlighter) HTML(w io.Writer, src string) error {
	return hi.format(w, html.New(html.Standalone(true), html.WithClasses(false)), src)
}

func (hi *Highlighter) format(w io.Writer, f chroma.Formatter, src string) error {
	it, err := hi.lexer.Tokenise(nil, src)
	if err != nil {
		return err
	}
	return f.Format(w, hi.Style(), it)
}
