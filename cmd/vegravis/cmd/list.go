// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/vegravis/commands"
	"cogentcore.org/vegravis/config"
	"cogentcore.org/vegravis/highlighting"
	"cogentcore.org/vegravis/samples"
)

// Commands writes the table of known commands to w.
func Commands(w io.Writer) error {
	for _, d := range commands.Formats() {
		if _, err := fmt.Fprintf(w, "%-22s %d  %s\n", d.Names[0], d.Argc, strings.Join(d.Names[1:], " ")); err != nil {
			return err
		}
	}
	return nil
}

// Samples writes the named sample to w, or the list of
// sample names if name is empty.
func Samples(w io.Writer, name string) error {
	if name == "" {
		_, err := fmt.Fprintln(w, strings.Join(samples.Names(), "\n"))
		return err
	}
	src, err := samples.Get(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, src)
	return err
}

// Styles writes the names of the available highlighting styles to w.
func Styles(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(highlighting.Styles(), "\n"))
	return err
}

// Formats are the output formats of [Highlight].
type Formats int32

const (
	// Terminal is text with 256-color terminal escapes.
	Terminal Formats = iota

	// HTML is a standalone HTML page.
	HTML

	// Plain is the source as is.
	Plain
)

// Highlight writes the drawing program in the given file to w
// with syntax highlighting in the given format.
func Highlight(w io.Writer, s *config.Settings, path string, format Formats) error {
	src, err := ReadSource(path)
	if err != nil {
		return err
	}
	hi := highlighting.New(highlighting.NewSyntax(NewParser(s).Registry), s.HighlightStyle)
	switch format {
	case HTML:
		return hi.HTML(w, src)
	case Plain:
		_, err = io.WriteString(w, src)
		return err
	}
	return hi.Terminal(w, src)
}
