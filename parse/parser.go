// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns vector drawing language source into a
// [commands.Program]. Parsing stops at the first error, which
// is always a [*lexer.Error] locating the offending token.
package parse

import (
	"log/slog"

	"cogentcore.org/vegravis/commands"
	"cogentcore.org/vegravis/parse/lexer"
)

// Parser holds the parsing options.
// The zero value is ready to use.
type Parser struct {

	// Registry resolves command names; [commands.Default] if nil.
	Registry *commands.Registry

	// StrictCommas requires a comma after the command name and after
	// every argument, instead of also accepting whitespace.
	StrictCommas bool
}

// Parse parses the source with default options.
func Parse(src string) (*commands.Program, error) {
	var pr Parser
	return pr.Parse(src)
}

// Parse parses the source into a program of commands.
func (pr *Parser) Parse(src string) (*commands.Program, error) {
	reg := pr.Registry
	if reg == nil {
		reg = commands.Default
	}
	ls := lexer.NewState(src)
	ls.Strict = pr.StrictCommas
	prog := &commands.Program{}
	if _, err := ls.SkipComments(); err != nil {
		return nil, err
	}
	for !ls.AtEof() {
		cmd, err := parseOp(ls, reg)
		if err != nil {
			slog.Debug("parse failed", "error", err, "commands", prog.Len())
			return nil, err
		}
		prog.Add(cmd)
	}
	slog.Debug("parsed program", "commands", prog.Len())
	return prog, nil
}

// parseOp parses one command name followed by its arguments.
func parseOp(ls *lexer.State, reg *commands.Registry) (commands.Command, error) {
	if _, err := ls.SkipComments(); err != nil {
		return commands.Command{}, err
	}
	id := ls.ReadIdentifier()
	if _, err := ls.ExpectComma(); err != nil {
		return commands.Command{}, err
	}
	if id.Text == "" {
		return commands.Command{}, lexer.Errorf(id.Span.St, "Empty op type")
	}
	d, suggest := reg.Match(id.Text)
	if d == nil {
		if suggest != "" {
			return commands.Command{}, lexer.Errorf(id.Span.St, "Invalid op type '%s', maybe it is '%s'", id.Text, suggest)
		}
		return commands.Command{}, lexer.Errorf(id.Span.St, "Invalid op type '%s'", id.Text)
	}
	args := make([]float64, 0, d.Argc)
	for range d.Argc {
		if _, err := ls.SkipComments(); err != nil {
			return commands.Command{}, err
		}
		num, err := ls.ReadNumber()
		if err != nil {
			return commands.Command{}, err
		}
		args = append(args, num.Number)
		if _, err := ls.ExpectComma(); err != nil {
			return commands.Command{}, err
		}
	}
	return commands.New(d, args...), nil
}
