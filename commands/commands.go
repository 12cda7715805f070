// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands defines the static table of drawing commands,
// name resolution with "did you mean" suggestions, and the
// Program of bound commands produced by the parser.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// Descriptor describes one command: its names (the first is the
// primary name, the rest are aliases), and its fixed argument count.
// Descriptors are shared read-only for the life of the program.
type Descriptor struct {
	Kind  Kinds
	Names []string
	Argc  int
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s:%d", strings.Join(d.Names, "|"), d.Argc)
}

var formats = [KindsN]Descriptor{
	Move:  {Move, []string{"MOVE"}, 2},
	Line:  {Line, []string{"LINE"}, 2},
	Quad:  {Quad, []string{"QUAD"}, 4},
	Cubic: {Cubic, []string{"CUBI", "CUBIC"}, 6},
	End:   {End, []string{"END", "CLOSE"}, 0},

	PushTrans:     {PushTrans, []string{"PUSH_TRANS"}, 9},
	PopTrans:      {PopTrans, []string{"POP_TRANS"}, 0},
	PushScale:     {PushScale, []string{"PUSH_SCALE", "SCALE"}, 2},
	PushRotate:    {PushRotate, []string{"PUSH_ROTATE", "ROTATE"}, 1},
	PushSkew:      {PushSkew, []string{"PUSH_SKEW", "SKEW"}, 2},
	PushTranslate: {PushTranslate, []string{"PUSH_TRANSLATE", "TRANSLATE"}, 2},

	PushWorldTrans:     {PushWorldTrans, []string{"PUSH_WORLD_TRANS"}, 9},
	PopWorldTrans:      {PopWorldTrans, []string{"POP_WORLD_TRANS"}, 0},
	PushWorldScale:     {PushWorldScale, []string{"PUSH_WORLD_SCALE", "WORLD_SCALE"}, 2},
	PushWorldRotate:    {PushWorldRotate, []string{"PUSH_WORLD_ROTATE", "WORLD_ROTATE"}, 1},
	PushWorldSkew:      {PushWorldSkew, []string{"PUSH_WORLD_SKEW", "WORLD_SKEW"}, 2},
	PushWorldTranslate: {PushWorldTranslate, []string{"PUSH_WORLD_TRANSLATE", "WORLD_TRANSLATE"}, 2},
}

// Formats returns all known command descriptors, in table order.
func Formats() []*Descriptor {
	fs := make([]*Descriptor, KindsN)
	for i := range formats {
		fs[i] = &formats[i]
	}
	return fs
}

// Lookup returns the descriptor for the given kind.
func Lookup(k Kinds) *Descriptor {
	return &formats[k]
}

// Command is a descriptor bound to its arguments.
type Command struct {
	*Descriptor

	// Args has exactly Descriptor.Argc values.
	Args []float64
}

// New returns a new command binding the given arguments.
// It panics if the number of arguments does not match the
// descriptor, which is a programming error: the parser only
// ever reads exactly Argc arguments.
func New(d *Descriptor, args ...float64) Command {
	if len(args) != d.Argc {
		panic(fmt.Sprintf("commands.New: %s takes %d arguments, got %d", d.Names[0], d.Argc, len(args)))
	}
	return Command{Descriptor: d, Args: args}
}

// String returns the command in source form, e.g. "LINE, 10, 10,".
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Names[0])
	b.WriteByte(',')
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		b.WriteByte(',')
	}
	return b.String()
}

// Program is an ordered sequence of commands. Order defines both
// cursor motion and drawing order.
type Program struct {
	Commands []Command
}

// Add appends a command to the program.
func (p *Program) Add(c Command) {
	p.Commands = append(p.Commands, c)
}

// Len returns the number of commands in the program.
func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Commands)
}

// String returns the program in source form, one command per line.
func (p *Program) String() string {
	var b strings.Builder
	for _, c := range p.Commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
