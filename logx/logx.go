// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by the
// vegravis tools, built on log/slog with colored level names.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is settable at
// any time, including after [SetDefaultLogger].
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// LevelFromString returns the [slog.Level] for the given name
// (debug, info, warn or error), ignoring case.
func LevelFromString(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return l, fmt.Errorf("logx: invalid log level %q", s)
	}
	return l, nil
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(o *termenv.Output, l slog.Level) termenv.Color {
	switch {
	case l >= slog.LevelError:
		return o.Color("1")
	case l >= slog.LevelWarn:
		return o.Color("3")
	case l >= slog.LevelInfo:
		return o.Color("4")
	}
	return o.Color("8")
}

// NewHandler returns a text handler writing to w, filtered at
// [UserLevel], that colors level names when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	o := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key != slog.LevelKey || len(groups) != 0 {
				return a
			}
			l, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(o.String(l.String()).Foreground(LevelColor(o, l)).Bold().String())
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one writing
// to stderr through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
