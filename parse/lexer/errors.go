// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"fmt"

	"cogentcore.org/vegravis/token"
)

// Error is a parse error at a given source position.
// It is produced once, at the first failure, and never modified.
type Error struct {
	// Msg is the message describing the error.
	Msg string

	// Cursor is the position of the start of the offending token.
	Cursor token.Cursor
}

// Errorf returns a new [Error] at the given cursor.
func Errorf(cr token.Cursor, format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Cursor: cr}
}

// Error implements the error interface, in the display form
// "(row, col): Error: msg" with a 1-based row and 0-based column.
func (e *Error) Error() string {
	return fmt.Sprintf("(%d, %d): Error: %s", e.Cursor.Row+1, e.Cursor.Col, e.Msg)
}
