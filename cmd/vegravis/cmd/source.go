// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the vegravis command line tool operations.
package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"cogentcore.org/vegravis/base/errors"
	"cogentcore.org/vegravis/commands"
	"cogentcore.org/vegravis/config"
	"cogentcore.org/vegravis/parse"
	"cogentcore.org/vegravis/parse/lexer"
	"github.com/h2non/filetype"
	"github.com/muesli/termenv"
)

// ReadSource reads the drawing program in the given file.
// Files recognized as a binary format are rejected.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if kind, _ := filetype.Match(b); kind != filetype.Unknown {
		return "", fmt.Errorf("%s: not a drawing program: detected %s", path, kind.MIME.Value)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: not a drawing program: invalid UTF-8", path)
	}
	return string(b), nil
}

// NewParser returns the parser configured by the settings.
func NewParser(s *config.Settings) *parse.Parser {
	reg := commands.Default
	if s.CaseSensitive {
		reg = commands.NewRegistry(commands.Formats())
		reg.CaseSensitive = true
	}
	return &parse.Parser{Registry: reg, StrictCommas: s.StrictCommas}
}

// ParseFile reads and parses the drawing program in the given file.
func ParseFile(s *config.Settings, path string) (*commands.Program, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return NewParser(s).Parse(src)
}

// FormatError returns the error message for display. Parse errors
// are prefixed by the file name and colored red on terminals.
func FormatError(o *termenv.Output, path string, err error) string {
	var le *lexer.Error
	if !errors.As(err, &le) {
		return err.Error()
	}
	msg := le.Error()
	if path != "" {
		msg = path + " " + msg
	}
	return o.String(msg).Foreground(o.Color("1")).String()
}
