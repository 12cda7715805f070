// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting provides syntax highlighting of drawing
// programs, using a chroma lexer built from the command registry.
package highlighting

import (
	"slices"

	"cogentcore.org/vegravis/commands"
	"github.com/alecthomas/chroma/v2"
)

// Syntax describes the drawing language for highlighting.
type Syntax struct {

	// Language is the name of the language.
	Language string

	// CaseSensitive is whether keywords only match in their exact case.
	CaseSensitive bool

	// Comment starts a line comment.
	Comment string

	// CommentMultiline is the start and end of a block comment.
	CommentMultiline [2]string

	// Keywords are all of the command names.
	Keywords []string
}

// NewSyntax returns the syntax for the commands in the given registry.
func NewSyntax(reg *commands.Registry) *Syntax {
	return &Syntax{
		Language:         "VeGraVis",
		CaseSensitive:    reg.CaseSensitive,
		Comment:          "//",
		CommentMultiline: [2]string{"/*", "*/"},
		Keywords:         reg.Keywords(),
	}
}

// Lexer returns a chroma lexer for the syntax.
func (sy *Syntax) Lexer() chroma.Lexer {
	cfg := &chroma.Config{
		Name:            sy.Language,
		Aliases:         []string{"vec", "vegravis"},
		Filenames:       []string{"*.vec"},
		CaseInsensitive: !sy.CaseSensitive,
	}
	return chroma.MustNewLexer(cfg, sy.rules)
}

func (sy *Syntax) rules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Whitespace},
			{Pattern: `//[^\n]*`, Type: chroma.CommentSingle},
			{Pattern: `/\*[\s\S]*?\*/`, Type: chroma.CommentMultiline},
			{Pattern: `/\*[\s\S]*`, Type: chroma.Error},
			{Pattern: chroma.Words(`\b`, `\b`, slices.Clone(sy.Keywords)...), Type: chroma.Keyword},
			{Pattern: `[^\W\d]\w*`, Type: chroma.Name},
			{Pattern: `[-.0-9]+`, Type: chroma.LiteralNumber},
			{Pattern: `,`, Type: chroma.Punctuation},
			{Pattern: `.`, Type: chroma.Error},
		},
	}
}
